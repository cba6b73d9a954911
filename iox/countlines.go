package iox

import (
	"bytes"
	"errors"
	"io"
)

const bufSize = 32 * 1024

// CountLines returns the number of lines read from r.
// A trailing chunk without a final newline still counts as a line.
func CountLines(r io.Reader) (int, error) {
	var noEol bool
	buf := make([]byte, bufSize)
	count := 0
	lineSep := []byte{'\n'}

	for {
		c, err := r.Read(buf)
		count += bytes.Count(buf[:c], lineSep)

		switch {
		case errors.Is(err, io.EOF):
			if noEol {
				count++
			}
			return count, nil
		case err != nil:
			return count, err
		}

		noEol = c > 0 && buf[c-1] != '\n'
	}
}
