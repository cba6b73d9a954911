// Package console reads and writes through the current process-wide stream
// handles, so anything printed here is captured by an active stdiomgr
// session and goes to the real terminal otherwise.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/chazex/stdiox/stdiomgr"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

// Printf writes a formatted message to the current stdout handle.
func Printf(format string, args ...any) {
	fmt.Fprintf(stdiomgr.Out(), format, args...)
}

// Println writes args to the current stdout handle, newline terminated.
func Println(args ...any) {
	fmt.Fprintln(stdiomgr.Out(), args...)
}

// Success writes a formatted message to the current stdout handle,
// green when that handle is a terminal.
func Success(format string, args ...any) {
	writeColored(stdiomgr.Out(), successColor, format, args...)
}

// Error writes a formatted message to the current stderr handle,
// red when that handle is a terminal.
func Error(format string, args ...any) {
	writeColored(stdiomgr.ErrOut(), errorColor, format, args...)
}

// ReadLine reads one line from the current stdin handle, without the
// trailing newline. Streams with native line reads, like the tee-wrapped
// input of a capture session, are used directly; others are consumed byte
// by byte so no look-ahead input is swallowed.
func ReadLine() (string, error) {
	in := stdiomgr.In()
	if lr, ok := in.(interface{ ReadLine() (string, error) }); ok {
		return lr.ReadLine()
	}

	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return string(line), nil
			}
			line = append(line, buf[0])
		}
		if err != nil {
			if err == io.EOF && len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}
	}
}

func writeColored(w io.Writer, c *color.Color, format string, args ...any) {
	if isTerminal(w) {
		_, _ = c.Fprintf(w, format+"\n", args...)
		return
	}

	fmt.Fprintf(w, format+"\n", args...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
