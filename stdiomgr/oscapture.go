package stdiomgr

import (
	"io"
	"os"
	"sync"

	"github.com/chazex/stdiox/iox"
)

var drainPool = iox.NewBufferPool(32 * 1024)

// An OSSession captures the real os.Stdin, os.Stdout and os.Stderr files
// through pipes, for code under test that bypasses the handle registry and
// reaches for the os package directly. Output is drained into inspectable
// buffers on background goroutines; Restore waits for the drains, so the
// captured content is complete once it returns.
type OSSession struct {
	out      *iox.Buffer
	errOut   *iox.Buffer
	inR, inW *os.File
	outW     *os.File
	errW     *os.File
	restore  func()
	fds      *fdCapture
	wg       sync.WaitGroup
	released bool
}

// WithDescriptors additionally points file descriptors 1 and 2 at the
// capture pipes, so writes bypassing the os package still land in the
// session buffers. Honored by OpenOS only, and only on linux and darwin.
func WithDescriptors() Option {
	return func(o *options) {
		o.descriptors = true
	}
}

// OpenOS substitutes pipes for the process's os.Stdin, os.Stdout and
// os.Stderr files. The substituted stdin is fed the preload input, and more
// can be added with Append. Callers must pair it with Restore.
func OpenOS(opts ...Option) (*OSSession, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	inR, inW, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		closeAll(inR, inW)
		return nil, err
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		closeAll(inR, inW, outR, outW)
		return nil, err
	}

	s := &OSSession{
		out:    iox.NewBuffer(""),
		errOut: iox.NewBuffer(""),
		inR:    inR,
		inW:    inW,
		outW:   outW,
		errW:   errW,
	}

	s.wg.Add(2)
	go s.drain(outR, s.out)
	go s.drain(errR, s.errOut)

	if len(o.input) > 0 {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			// fails once the pipe is torn down at Restore, nothing to report
			_, _ = io.WriteString(inW, o.input)
		}()
	}

	s.restore = iox.RedirectStdio(inR, outW, errW)

	if o.descriptors {
		s.fds, err = captureDescriptors(outW, errW)
		if err != nil {
			s.Restore()
			return nil, err
		}
	}

	return s, nil
}

// Append feeds more content to the substituted stdin.
func (s *OSSession) Append(content string) error {
	_, err := io.WriteString(s.inW, content)
	return err
}

// Stdout returns the buffer collecting captured standard output.
// Its full content is guaranteed only after Restore.
func (s *OSSession) Stdout() *iox.Buffer {
	return s.out
}

// Stderr returns the buffer collecting captured standard error.
// Its full content is guaranteed only after Restore.
func (s *OSSession) Stderr() *iox.Buffer {
	return s.errOut
}

// Restore puts the original files and descriptors back, tears down the
// pipes and waits for the drain goroutines to finish. Safe to call more
// than once, later calls are no-ops.
func (s *OSSession) Restore() {
	if s.released {
		return
	}
	s.released = true

	if s.fds != nil {
		s.fds.restoreDescriptors()
	}
	s.restore()

	closeAll(s.inW, s.inR, s.outW, s.errW)
	s.wg.Wait()
}

func (s *OSSession) drain(r *os.File, dst *iox.Buffer) {
	defer s.wg.Done()

	buf := drainPool.Get()
	defer drainPool.Put(buf)

	_, _ = io.CopyBuffer(dst, r, buf)
	_ = r.Close()
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
