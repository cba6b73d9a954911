package iox

import "sync"

// A BufferPool is a pool of fixed-size scratch byte slices,
// used to avoid re-allocating copy buffers on every pipe drain.
type BufferPool struct {
	size int
	pool *sync.Pool
}

// NewBufferPool returns a BufferPool handing out slices of the given size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: &sync.Pool{
			New: func() any {
				return make([]byte, size)
			},
		},
	}
}

// Get returns a scratch slice from bp.
func (bp *BufferPool) Get() []byte {
	return bp.pool.Get().([]byte)
}

// Put returns buf into bp. Slices of the wrong size are dropped.
func (bp *BufferPool) Put(buf []byte) {
	if len(buf) != bp.size {
		return
	}

	bp.pool.Put(buf)
}
