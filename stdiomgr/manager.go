package stdiomgr

import (
	"github.com/chazex/stdiox/iox"
	"github.com/chazex/stdiox/trio"
)

type (
	// Option defines the method to customize a capture session.
	Option func(*options)

	options struct {
		input       string
		keepOpen    bool
		descriptors bool
	}

	// A Session is one scoped substitution of the standard streams.
	// Between Open and Restore, the process-wide handles point at the
	// session's in-memory streams. Sessions are independent, each Open
	// builds fresh streams and its own swap.
	Session struct {
		swap   *Swap
		in     *iox.Tee
		out    *iox.Buffer
		errOut *iox.Buffer
	}
)

// WithInput preloads the substituted stdin with s.
func WithInput(s string) Option {
	return func(o *options) {
		o.input = s
	}
}

// WithoutClose leaves the substituted streams open after Restore,
// so their content can still be read through the stream objects.
func WithoutClose() Option {
	return func(o *options) {
		o.keepOpen = true
	}
}

// Open substitutes fresh in-memory streams for the process-wide handles:
// two capture buffers for stdout and stderr, and a tee-wrapped input stream
// echoing reads into the new stdout, matching terminal echo. Callers must
// pair it with Restore, usually deferred:
//
//	s := stdiomgr.Open(stdiomgr.WithInput("yes\n"))
//	defer s.Restore()
func Open(opts ...Option) *Session {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	out := iox.NewBuffer("")
	errOut := iox.NewBuffer("")
	// out is never nil here, so NewTee cannot fail
	in, _ := iox.NewTee(out, o.input)

	var sopts []SwapOption
	if o.keepOpen {
		sopts = append(sopts, KeepOpen())
	}

	s := &Session{
		swap:   NewSwap(trio.TextOf(in, out, errOut).Trio, sopts...),
		in:     in,
		out:    out,
		errOut: errOut,
	}
	s.swap.Acquire()
	return s
}

// Restore closes the session's streams and puts the prior handles back.
// Safe to call more than once, later calls are no-ops.
func (s *Session) Restore() {
	s.swap.Release()
}

// Stdin returns the substituted input stream.
func (s *Session) Stdin() *iox.Tee {
	return s.in
}

// Stdout returns the buffer capturing standard output.
func (s *Session) Stdout() *iox.Buffer {
	return s.out
}

// Stderr returns the buffer capturing standard error.
func (s *Session) Stderr() *iox.Buffer {
	return s.errOut
}

// With runs fn with substituted streams and restores the prior handles
// afterwards, even when fn fails or panics. fn's error comes back unchanged.
func With(fn func(s *Session) error, opts ...Option) error {
	s := Open(opts...)
	defer s.Restore()

	return fn(s)
}
