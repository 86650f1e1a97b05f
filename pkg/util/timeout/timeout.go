// Package timeout bounds blocking operations by wall-clock time.
package timeout

import (
	"context"
	"io"
	"time"
)

// Perform runs fn and waits at most d for it to return.
//
// On timeout Perform returns context.DeadlineExceeded while fn may keep
// running in the background. fn receives a context that is canceled on
// timeout and should return early when it can. A d <= 0 waits for fn
// (or ctx) without a time bound.
func Perform(ctx context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	_, err := PerformValue(ctx, d, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// PerformValue is Perform for actions returning a value.
// A value implementing io.Closer that is returned after the timeout is closed.
func PerformValue[T any](ctx context.Context, d time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	cancel := context.CancelFunc(func() {})
	if d > 0 {
		ctx, cancel = context.WithTimeout(ctx, d)
	}
	defer cancel()

	done := make(chan result[T], 1) // fn never blocks on send
	go func() {
		v, err := fn(ctx)
		done <- result[T]{v, err}
	}()

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		go discard[T](done)
		var zero T
		return zero, ctx.Err()
	}
}

type result[T any] struct {
	v   T
	err error
}

// discard closes a value that arrives after the caller gave up on it.
func discard[T any](done <-chan result[T]) {
	r := <-done
	if c, ok := any(r.v).(io.Closer); ok && r.err == nil {
		_ = c.Close()
	}
}
