package md2html

import (
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one converter is available.
	MinPoolSize = 1

	// MaxPoolSize caps in-flight conversions for batch work.
	MaxPoolSize = 8

	// cpuDivisor leaves CPU headroom for the caller's own work.
	cpuDivisor = 2
)

// ConverterPool bounds the number of in-flight conversions for batch
// processing. Converters are created lazily on first acquire and all
// share the same options.
type ConverterPool struct {
	size    int
	opts    []Option
	sem     chan *Converter
	mu      sync.Mutex
	created int
	closed  bool
}

// NewConverterPool creates a pool with capacity for n Converter
// instances, each configured with the given options.
func NewConverterPool(n int, opts ...Option) *ConverterPool {
	if n < 1 {
		n = 1
	}

	return &ConverterPool{
		size: n,
		opts: opts,
		sem:  make(chan *Converter, n),
	}
}

// Acquire gets a converter from the pool, creating one if capacity
// allows. Blocks if all converters are in use. Acquire on a closed
// pool returns nil.
func (p *ConverterPool) Acquire() *Converter {
	// Try to get an existing converter (non-blocking)
	select {
	case conv := <-p.sem:
		return conv
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return NewConverter(p.opts...)
	}
	p.mu.Unlock()

	// All converters created, wait for one to be released
	return <-p.sem
}

// Release returns a converter to the pool. Releasing into a closed
// pool is a no-op.
// The lock is released before sending to avoid deadlock when the
// channel is full.
func (p *ConverterPool) Release(conv *Converter) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.sem <- conv
}

// Close shuts the pool down. Converters hold configuration only, so
// there is nothing to tear down per instance; Close stops further
// Release calls and unblocks any Acquire waiting on the semaphore.
// Close is idempotent.
func (p *ConverterPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.sem)
	p.mu.Unlock()
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size for batch conversion.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
