package iox

import (
	"errors"
	"io"
	"strings"
)

// ErrNilTee is returned when a Tee is constructed without a writable tee target.
var ErrNilTee = errors.New("iox: tee target must be a writable text stream")

// A Tee is a readable text stream that duplicates everything read from it
// into a secondary tee target, the way a terminal echoes typed input.
// Content consumed by Read or ReadLine is written verbatim, newline included,
// to the tee target at its current write position.
type Tee struct {
	primary *Buffer
	tee     io.Writer
}

// NewTee returns a Tee preloaded with the given content, duplicating reads
// into tee. It fails if tee is missing.
func NewTee(tee io.Writer, preload string) (*Tee, error) {
	if tee == nil {
		return nil, ErrNilTee
	}

	return &Tee{
		primary: NewBuffer(preload),
		tee:     tee,
	}, nil
}

// Read consumes from the pending content, copying whatever was consumed
// to the tee target. The read result is unchanged by the teeing.
func (t *Tee) Read(p []byte) (int, error) {
	n, err := t.primary.Read(p)
	if n > 0 {
		// tee failures don't disturb the read, the data was already consumed
		_, _ = t.tee.Write(p[:n])
	}
	return n, err
}

// ReadLine consumes one line and returns it without its trailing newline.
// The tee target receives the line with the newline retained.
func (t *Tee) ReadLine() (string, error) {
	line, err := t.primary.readLine()
	if len(line) > 0 {
		_, _ = io.WriteString(t.tee, line)
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(line, "\n"), nil
}

// Append adds content to the end of the pending input without disturbing
// the read position, so the next read still starts where it left off.
func (t *Tee) Append(s string) (int, error) {
	return t.primary.WriteString(s)
}

// Write appends p as pending input. Written content is not teed,
// teeing happens on reads only.
func (t *Tee) Write(p []byte) (int, error) {
	return t.primary.Write(p)
}

// Close closes the pending input buffer. The tee target is left open,
// it belongs to the caller.
func (t *Tee) Close() error {
	return t.primary.Close()
}

// Value returns the pending, not yet consumed input.
func (t *Tee) Value() string {
	return t.primary.Pending()
}
