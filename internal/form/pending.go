package form

import (
	"context"
	"time"
)

// Pending is the eventual outcome of a delayed operation.
type Pending[T any] struct {
	done   chan struct{}
	record T
	err    error
}

// Delay runs fn once after latency elapses. It is not cancellable.
func Delay[T any](latency time.Duration, fn func() (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}

	time.AfterFunc(latency, func() {
		p.record, p.err = fn()
		close(p.done)
	})

	return p
}

// Done is closed once the outcome is known.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Result returns the outcome. It must only be called after Done is closed.
func (p *Pending[T]) Result() (T, error) {
	return p.record, p.err
}

// Wait blocks until the outcome is known or ctx ends. Cancelling ctx does
// not stop the operation.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.record, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
