//go:build linux || darwin

package stdiomgr

import (
	"os"

	"golang.org/x/sys/unix"
)

// A fdCapture remembers duplicates of the original descriptors 1 and 2
// while they point at the capture pipes.
type fdCapture struct {
	savedOut int
	savedErr int
}

func captureDescriptors(outW, errW *os.File) (*fdCapture, error) {
	savedOut, err := unix.Dup(1)
	if err != nil {
		return nil, err
	}
	savedErr, err := unix.Dup(2)
	if err != nil {
		_ = unix.Close(savedOut)
		return nil, err
	}

	if err := dupTo(int(outW.Fd()), 1); err != nil {
		_ = unix.Close(savedOut)
		_ = unix.Close(savedErr)
		return nil, err
	}
	if err := dupTo(int(errW.Fd()), 2); err != nil {
		_ = dupTo(savedOut, 1)
		_ = unix.Close(savedOut)
		_ = unix.Close(savedErr)
		return nil, err
	}

	return &fdCapture{
		savedOut: savedOut,
		savedErr: savedErr,
	}, nil
}

func (c *fdCapture) restoreDescriptors() {
	_ = dupTo(c.savedOut, 1)
	_ = dupTo(c.savedErr, 2)
	_ = unix.Close(c.savedOut)
	_ = unix.Close(c.savedErr)
}
