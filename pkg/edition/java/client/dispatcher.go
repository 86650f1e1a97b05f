package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/gammazero/deque"
	"github.com/go-logr/logr"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/internal/future"
)

// Dispatcher runs closures on a single designated goroutine, the main
// thread of the application consuming the session.
//
// Handler callbacks run on the network goroutine. Code that must touch
// state owned by the main thread hands a closure to Invoke which blocks
// until the main thread ran it. Tasks run in FIFO order.
//
// Invoke must not be called from a task run by the same Dispatcher.
type Dispatcher struct {
	log logr.Logger

	mu     sync.Mutex
	tasks  *deque.Deque[*task]
	signal chan struct{} // one pending wakeup
}

type task struct {
	fn   func()
	done *future.Chan[any] // completed with the recovered panic, if any
}

// NewDispatcher returns an idle Dispatcher.
func NewDispatcher(log logr.Logger) *Dispatcher {
	return &Dispatcher{
		log:    log.WithName("dispatcher"),
		tasks:  deque.New[*task](),
		signal: make(chan struct{}, 1),
	}
}

// Invoke enqueues fn and blocks until it ran or ctx is done.
// If fn panics the panic is returned as error.
// When ctx is done first, fn still runs later.
func (d *Dispatcher) Invoke(ctx context.Context, fn func()) error {
	t := &task{fn: fn, done: future.NewChan[any]()}
	d.mu.Lock()
	d.tasks.PushBack(t)
	d.mu.Unlock()
	select {
	case d.signal <- struct{}{}:
	default:
	}

	recovered, err := t.done.Await(ctx)
	if err != nil {
		return err
	}
	if recovered != nil {
		return fmt.Errorf("dispatched task panicked: %v", recovered)
	}
	return nil
}

// InvokeValue runs fn on the dispatcher and returns its result.
func InvokeValue[T any](ctx context.Context, d *Dispatcher, fn func() T) (T, error) {
	var v T
	if err := d.Invoke(ctx, func() { v = fn() }); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Pending returns the number of queued tasks.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tasks.Len()
}

// Run runs tasks on the calling goroutine until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		d.Drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.signal:
		}
	}
}

// Drain runs all queued tasks on the calling goroutine and returns
// how many ran. Game loops call it once per tick instead of Run.
func (d *Dispatcher) Drain() (n int) {
	for {
		d.mu.Lock()
		if d.tasks.Len() == 0 {
			d.mu.Unlock()
			return n
		}
		t := d.tasks.PopFront()
		d.mu.Unlock()

		t.done.Complete(d.run(t.fn))
		n++
	}
}

func (d *Dispatcher) run(fn func()) (recovered any) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error(nil, "recovered panic in dispatched task", "panic", r)
			recovered = r
		}
	}()
	fn()
	return nil
}
