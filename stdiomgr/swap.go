package stdiomgr

import (
	"io"

	"github.com/chazex/stdiox/trio"
)

type (
	// SwapOption defines the method to customize a Swap.
	SwapOption func(*Swap)

	// A Swap installs the members of a trio as the process-wide stream
	// handles and guarantees the previous handles come back on Release,
	// no matter how the guarded block exits. Each Swap owns exactly one
	// snapshot of the prior handles; nested swaps restore in LIFO order.
	Swap struct {
		streams  trio.Trio
		prev     trio.Trio
		closers  []io.Closer
		keepOpen bool
		entered  bool
		released bool
	}
)

// NewSwap returns a Swap for the given trio.
func NewSwap(t trio.Trio, opts ...SwapOption) *Swap {
	s := &Swap{
		streams: t,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// KeepOpen leaves the substituted streams open on Release,
// restoring the prior handles only.
func KeepOpen() SwapOption {
	return func(s *Swap) {
		s.keepOpen = true
	}
}

// Acquire captures the current process-wide handles, then installs the
// trio's members in their place and returns the trio. Members without
// close support are tolerated, they are simply not closed on Release.
// Acquiring twice panics, a Swap is single use.
func (s *Swap) Acquire() trio.Trio {
	if s.entered {
		panic("stdiomgr: swap already acquired")
	}

	for _, m := range [3]any{s.streams.In(), s.streams.Out(), s.streams.Err()} {
		if c, ok := m.(io.Closer); ok {
			s.closers = append(s.closers, c)
		}
	}

	s.prev = swapHandles(s.streams)
	s.entered = true
	return s.streams
}

// Release closes the members entered at Acquire time, then restores the
// captured handles unconditionally. It runs at most once; calling it on a
// swap that was never acquired, or a second time, is a no-op. Close
// failures are swallowed so they can never mask a failure from the
// guarded block.
func (s *Swap) Release() {
	if !s.entered || s.released {
		return
	}
	s.released = true

	if !s.keepOpen {
		for _, c := range s.closers {
			_ = c.Close()
		}
	}

	swapHandles(s.prev)
}
