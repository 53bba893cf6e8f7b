package sandbox

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrPoolClosed = errors.New("sandbox pool is closed")
	ErrAcquire    = errors.New("sandbox acquisition timeout")
)

// acquireWait bounds how long Execute blocks when every runtime is busy.
const acquireWait = 5 * time.Second

// Pool manages a set of reusable sandbox runtimes. A runtime that
// timed out mid-run is discarded on release and replaced with a
// fresh one, so an abandoned snippet can never leak output into a
// later run.
type Pool struct {
	config   Config
	runtimes chan *Runtime
	size     int
	mu       sync.RWMutex
	closed   bool
}

// NewPool creates a pool of size pre-created runtimes.
func NewPool(config Config, size int) (*Pool, error) {
	if size <= 0 {
		size = 4
	}

	pool := &Pool{
		config:   config,
		runtimes: make(chan *Runtime, size),
		size:     size,
	}

	for i := 0; i < size; i++ {
		rt, err := New(config)
		if err != nil {
			pool.Close()
			return nil, err
		}
		pool.runtimes <- rt
	}

	return pool, nil
}

// Acquire gets a runtime, waiting up to acquireWait.
func (p *Pool) Acquire(ctx context.Context) (*Runtime, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrPoolClosed
	}

	select {
	case rt := <-p.runtimes:
		return rt, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(acquireWait):
		return nil, ErrAcquire
	}
}

// Release returns a runtime to the pool. Poisoned or unresettable
// runtimes are replaced rather than reused.
func (p *Pool) Release(rt *Runtime) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return rt.Close()
	}

	if rt.Poisoned() || rt.Reset() != nil {
		rt.Close()
		fresh, err := New(p.config)
		if err != nil {
			return err
		}
		rt = fresh
	}

	select {
	case p.runtimes <- rt:
		return nil
	default:
		return rt.Close()
	}
}

// Execute runs one request on a pooled runtime. The returned error
// covers host-side problems only (closed pool, acquisition timeout,
// cancelled context); everything the snippet itself did is reported
// inside the Result.
func (p *Pool) Execute(ctx context.Context, req Request) (*Result, error) {
	rt, err := p.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer p.Release(rt)

	return rt.Execute(req), nil
}

// Close closes the pool and all idle runtimes.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true
	close(p.runtimes)

	for rt := range p.runtimes {
		rt.Close()
	}

	return nil
}

// Stats returns pool occupancy for health reporting.
func (p *Pool) Stats() map[string]interface{} {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return map[string]interface{}{
		"size":      p.size,
		"available": len(p.runtimes),
		"in_use":    p.size - len(p.runtimes),
		"closed":    p.closed,
	}
}
