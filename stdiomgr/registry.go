// Package stdiomgr substitutes the process-wide standard stream handles with
// in-memory, inspectable streams for the duration of a scoped capture, and
// restores the originals on exit.
package stdiomgr

import (
	"io"
	"os"
	"sync"

	"github.com/chazex/stdiox/trio"
)

// The process-wide handle registry. All reads and swaps of the current
// stdin/stdout/stderr handles go through here, no other code path holds
// its own copy of the globals.
var std = struct {
	lock    sync.Mutex
	handles trio.Trio
}{
	handles: trio.Of(os.Stdin, os.Stdout, os.Stderr),
}

// Handles returns the current process-wide stream handles.
func Handles() trio.Trio {
	std.lock.Lock()
	defer std.lock.Unlock()

	return std.handles
}

// swapHandles installs next as the process-wide handles and returns the
// previous ones, as a single operation.
func swapHandles(next trio.Trio) (prev trio.Trio) {
	std.lock.Lock()
	defer std.lock.Unlock()

	prev = std.handles
	std.handles = next
	return
}

// In returns the current stdin handle as a reader.
// Code under test reads its input from here.
func In() io.Reader {
	if r, ok := Handles().In().(io.Reader); ok {
		return r
	}
	return os.Stdin
}

// Out returns the current stdout handle as a writer.
// Code under test writes its output here.
func Out() io.Writer {
	if w, ok := Handles().Out().(io.Writer); ok {
		return w
	}
	return os.Stdout
}

// ErrOut returns the current stderr handle as a writer.
func ErrOut() io.Writer {
	if w, ok := Handles().Err().(io.Writer); ok {
		return w
	}
	return os.Stderr
}
