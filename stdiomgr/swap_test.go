package stdiomgr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chazex/stdiox/iox"
	"github.com/chazex/stdiox/trio"
	"github.com/stretchr/testify/assert"
)

func newTextTrio() (trio.TextTrio, *iox.Tee, *iox.Buffer, *iox.Buffer) {
	out := iox.NewBuffer("")
	errOut := iox.NewBuffer("")
	// out is never nil here
	in, _ := iox.NewTee(out, "")
	return trio.TextOf(in, out, errOut), in, out, errOut
}

func TestSwapRoundTrip(t *testing.T) {
	orig := Handles()

	tt, in, out, errOut := newTextTrio()
	s := NewSwap(tt.Trio)
	got := s.Acquire()

	assert.Same(t, in, got.In())
	assert.Same(t, in, Handles().In())
	assert.Same(t, out, Handles().Out())
	assert.Same(t, errOut, Handles().Err())

	s.Release()
	// bit-for-bit the same handle objects as before entry
	assert.Same(t, orig.In(), Handles().In())
	assert.Same(t, orig.Out(), Handles().Out())
	assert.Same(t, orig.Err(), Handles().Err())
}

func TestSwapSequential(t *testing.T) {
	orig := Handles()

	for i := 0; i < 2; i++ {
		tt, _, _, _ := newTextTrio()
		s := NewSwap(tt.Trio)
		s.Acquire()
		s.Release()
	}

	assert.Same(t, orig.In(), Handles().In())
	assert.Same(t, orig.Out(), Handles().Out())
	assert.Same(t, orig.Err(), Handles().Err())
}

func TestSwapNestedLIFO(t *testing.T) {
	orig := Handles()

	outerTrio, _, outerOut, _ := newTextTrio()
	outer := NewSwap(outerTrio.Trio)
	outer.Acquire()

	innerTrio, _, innerOut, _ := newTextTrio()
	inner := NewSwap(innerTrio.Trio)
	inner.Acquire()
	assert.Same(t, innerOut, Handles().Out())

	inner.Release()
	assert.Same(t, outerOut, Handles().Out())

	outer.Release()
	assert.Same(t, orig.Out(), Handles().Out())
}

func TestSwapToleratesLooseMembers(t *testing.T) {
	orig := Handles()

	// none of these satisfy TextStream, and stdin has no close support;
	// the swap installs and restores them all the same
	in := strings.NewReader("fake")
	loose := trio.Of(in, &bytes.Buffer{}, iox.NopCloser(&bytes.Buffer{}))
	s := NewSwap(loose)
	s.Acquire()
	assert.Same(t, in, Handles().In())
	s.Release()

	assert.Same(t, orig.In(), Handles().In())
	assert.Same(t, orig.Out(), Handles().Out())
}

func TestSwapClosesOnRelease(t *testing.T) {
	tt, _, out, errOut := newTextTrio()
	s := NewSwap(tt.Trio)
	s.Acquire()
	s.Release()

	assert.True(t, out.Closed())
	assert.True(t, errOut.Closed())
}

func TestSwapKeepOpen(t *testing.T) {
	tt, _, out, errOut := newTextTrio()
	s := NewSwap(tt.Trio, KeepOpen())
	s.Acquire()
	s.Release()

	assert.False(t, out.Closed())
	assert.False(t, errOut.Closed())
}

func TestSwapAcquireTwicePanics(t *testing.T) {
	tt, _, _, _ := newTextTrio()
	s := NewSwap(tt.Trio)
	s.Acquire()
	defer s.Release()

	assert.Panics(t, func() {
		s.Acquire()
	})
}

func TestSwapReleaseIsIdempotent(t *testing.T) {
	orig := Handles()

	// releasing a swap that was never acquired changes nothing
	tt, _, _, _ := newTextTrio()
	s := NewSwap(tt.Trio)
	s.Release()
	assert.Same(t, orig.Out(), Handles().Out())

	s.Acquire()
	s.Release()
	s.Release()
	assert.Same(t, orig.Out(), Handles().Out())
}
