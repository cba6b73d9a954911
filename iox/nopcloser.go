package iox

import "io"

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// NopCloser returns an io.WriteCloser that does nothing on calling Close.
// Useful for handing a plain writer to code that insists on closing its streams.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
