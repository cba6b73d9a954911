package iox

import (
	"errors"
	"io"
	"sync"
)

// ErrClosedStream is returned when reading from or writing to a closed stream.
var ErrClosedStream = errors.New("iox: stream already closed")

// A Buffer is an in-memory text stream used to stand in for stdout or stderr.
// Writes always append, reads consume from a separate read offset, so content
// written after a partial read is still picked up by later reads.
// The accumulated value stays retrievable after Close.
type Buffer struct {
	lock   sync.Mutex
	data   []byte
	off    int
	closed bool
}

// NewBuffer returns a Buffer preloaded with s.
func NewBuffer(s string) *Buffer {
	return &Buffer{
		data: []byte(s),
	}
}

// Read consumes up to len(p) bytes from the unread portion of b.
func (b *Buffer) Read(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.closed {
		return 0, ErrClosedStream
	}
	if b.off >= len(b.data) {
		return 0, io.EOF
	}

	n := copy(p, b.data[b.off:])
	b.off += n
	return n, nil
}

// Write appends p to b without moving the read offset.
func (b *Buffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.closed {
		return 0, ErrClosedStream
	}

	b.data = append(b.data, p...)
	return len(p), nil
}

// WriteString appends s to b without moving the read offset.
func (b *Buffer) WriteString(s string) (int, error) {
	return b.Write([]byte(s))
}

// Close marks b closed. The accumulated value remains available via Value.
// Closing an already closed buffer is a no-op.
func (b *Buffer) Close() error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.closed = true
	return nil
}

// Closed reports whether b has been closed.
func (b *Buffer) Closed() bool {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.closed
}

// Value returns everything ever written to b, read or not,
// even after b is closed.
func (b *Buffer) Value() string {
	b.lock.Lock()
	defer b.lock.Unlock()

	return string(b.data)
}

// Pending returns the content not yet consumed by Read.
func (b *Buffer) Pending() string {
	b.lock.Lock()
	defer b.lock.Unlock()

	return string(b.data[b.off:])
}

// readLine consumes bytes up to and including the next '\n',
// or to the end of the buffer if no newline remains.
func (b *Buffer) readLine() (string, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.closed {
		return "", ErrClosedStream
	}
	if b.off >= len(b.data) {
		return "", io.EOF
	}

	rest := b.data[b.off:]
	end := len(rest)
	for i, c := range rest {
		if c == '\n' {
			end = i + 1
			break
		}
	}

	line := string(rest[:end])
	b.off += end
	return line, nil
}
