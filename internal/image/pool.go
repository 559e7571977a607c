package image

import (
	"errors"
	"math/bits"
	"sync"
)

// ErrScratchExhausted is returned by Pool.Get when handing out the requested
// buffer would exceed the pool's byte limit.
var ErrScratchExhausted = errors.New("image: scratch budget exhausted")

// Pool is a thread-safe pool of scratch scanline buffers.
//
// Buffers are grouped into power-of-two capacity classes so that iterators
// of slightly different widths share storage. An optional byte limit caps
// the memory held by buffers currently handed out; Get fails with
// ErrScratchExhausted rather than exceed it.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]uint32
	maxSize int // max buffers per bucket
	limit   int // max outstanding bytes, 0 = unlimited
	inUse   int // outstanding bytes
}

// NewPool creates a new scratch pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]uint32),
		maxSize: maxPerBucket,
	}
}

// SetLimit caps the bytes held by outstanding buffers. Zero removes the cap.
func (p *Pool) SetLimit(bytes int) {
	p.mu.Lock()
	p.limit = bytes
	p.mu.Unlock()
}

// InUse returns the number of bytes currently handed out.
func (p *Pool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inUse
}

func sizeClass(n int) int {
	if n <= 16 {
		return 16
	}
	return 1 << bits.Len(uint(n-1))
}

// Get returns a zeroed buffer of length n.
func (p *Pool) Get(n int) ([]uint32, error) {
	if n <= 0 {
		return nil, nil
	}
	class := sizeClass(n)
	size := class * 4

	p.mu.Lock()
	if p.limit > 0 && p.inUse+size > p.limit {
		p.mu.Unlock()
		return nil, ErrScratchExhausted
	}
	p.inUse += size
	bucket := p.buckets[class]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[class] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		buf = buf[:n]
		clear(buf)
		return buf, nil
	}
	p.mu.Unlock()

	return make([]uint32, n, class), nil
}

// Put returns a buffer obtained from Get. Buffers of foreign capacity are
// dropped after releasing their budget.
func (p *Pool) Put(buf []uint32) {
	if buf == nil {
		return
	}
	class := cap(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.inUse -= class * 4
	if p.inUse < 0 {
		p.inUse = 0
	}
	if class != sizeClass(class) {
		return
	}
	bucket := p.buckets[class]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[class] = append(bucket, buf[:0])
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// DefaultPool returns the package-level scratch pool.
func DefaultPool() *Pool {
	return defaultPool
}
