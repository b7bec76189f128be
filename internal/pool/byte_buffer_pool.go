// Package pool provides pooled byte buffers for the block engine's shuffle
// scratch space.
package pool

import "sync"

const (
	// ShuffleBufferDefaultSize is the initial capacity of pooled shuffle
	// buffers, sized for typical block payloads.
	ShuffleBufferDefaultSize = 64 * 1024

	// ShuffleBufferMaxThreshold caps the capacity of buffers returned to
	// the pool; larger buffers are dropped to avoid memory bloat.
	ShuffleBufferMaxThreshold = 4 * 1024 * 1024
)

// ByteBuffer is a reusable byte slice wrapper.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Reset empties the buffer but keeps the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the current length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the current capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Resize sets the buffer length to n, reallocating when the capacity is
// insufficient. The content of the first min(len, n) bytes is preserved.
func (bb *ByteBuffer) Resize(n int) {
	if n <= cap(bb.B) {
		bb.B = bb.B[:n]
		return
	}

	grown := make([]byte, n)
	copy(grown, bb.B)
	bb.B = grown
}

// ByteBufferPool pools ByteBuffers to minimize allocations. Buffers whose
// capacity exceeds maxThreshold are not retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var shuffleDefaultPool = NewByteBufferPool(ShuffleBufferDefaultSize, ShuffleBufferMaxThreshold)

// GetShuffleBuffer retrieves a ByteBuffer from the default shuffle pool.
func GetShuffleBuffer() *ByteBuffer {
	return shuffleDefaultPool.Get()
}

// PutShuffleBuffer returns a ByteBuffer to the default shuffle pool.
func PutShuffleBuffer(bb *ByteBuffer) {
	shuffleDefaultPool.Put(bb)
}
