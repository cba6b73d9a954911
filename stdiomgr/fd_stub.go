//go:build !linux && !darwin

package stdiomgr

import (
	"errors"
	"os"
)

// ErrDescriptorsUnsupported is returned when descriptor-level capture is
// requested on a platform without it.
var ErrDescriptorsUnsupported = errors.New("stdiomgr: descriptor capture not supported on this platform")

type fdCapture struct{}

func captureDescriptors(_, _ *os.File) (*fdCapture, error) {
	return nil, ErrDescriptorsUnsupported
}

func (c *fdCapture) restoreDescriptors() {
}
