package iox

import "os"

// RedirectStdio redirects os.Stdin, os.Stdout and os.Stderr to the given
// files, skipping nil entries, and callers need to call restore afterwards.
func RedirectStdio(in, out, errOut *os.File) (restore func()) {
	oi, oo, oe := os.Stdin, os.Stdout, os.Stderr
	if in != nil {
		os.Stdin = in
	}
	if out != nil {
		os.Stdout = out
	}
	if errOut != nil {
		os.Stderr = errOut
	}

	return func() {
		os.Stdin, os.Stdout, os.Stderr = oi, oo, oe
	}
}

// RedirectInOut redirects stdin to the read end and stdout to the write end
// of a fresh pipe, and callers need to call restore afterwards.
func RedirectInOut() (restore func(), err error) {
	var r, w *os.File
	r, w, err = os.Pipe()
	if err != nil {
		return
	}

	restore = RedirectStdio(r, w, nil)
	return
}
