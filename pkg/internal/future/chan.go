// Package future provides a one-shot result that can be awaited by many goroutines.
package future

import (
	"context"
	"sync"
)

// Chan is a future completed once with a value of type T.
// It is safe for concurrent use and every waiter observes the same value.
// Only the first call to Complete has an effect.
type Chan[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
}

// NewChan returns a new uncompleted Chan.
func NewChan[T any]() *Chan[T] {
	return &Chan[T]{done: make(chan struct{})}
}

// Complete sets the result once and wakes up all waiters.
func (f *Chan[T]) Complete(result T) *Chan[T] {
	f.once.Do(func() {
		f.value = result
		close(f.done)
	})
	return f
}

// Completed reports whether Complete was called.
func (f *Chan[T]) Completed() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed on completion.
func (f *Chan[T]) Done() <-chan struct{} { return f.done }

// Get blocks until the result is available.
func (f *Chan[T]) Get() T {
	<-f.done
	return f.value
}

// Await blocks until the result is available or ctx is done.
func (f *Chan[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Receive returns a channel that receives the result and is closed afterwards.
func (f *Chan[T]) Receive() <-chan T {
	c := make(chan T, 1)
	go func() { c <- f.Get(); close(c) }()
	return c
}

// ThenAccept calls callback in a new goroutine once the future completed.
func (f *Chan[T]) ThenAccept(callback func(T)) *Chan[T] {
	go func() { callback(f.Get()) }()
	return f
}

// ThenApply returns a future completed with callback applied to the result of f.
func ThenApply[O1, O2 any](f *Chan[O1], callback func(O1) O2) *Chan[O2] {
	f2 := NewChan[O2]()
	f.ThenAccept(func(o1 O1) { f2.Complete(callback(o1)) })
	return f2
}
