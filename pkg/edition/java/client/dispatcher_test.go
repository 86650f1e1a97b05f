package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_RunsOnMainGoroutine(t *testing.T) {
	d := NewDispatcher(logr.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mainDone := make(chan error, 1)
	var mainState []int // only touched by tasks
	go func() { mainDone <- d.Run(ctx) }()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, d.Invoke(ctx, func() { mainState = append(mainState, i) }))
		}(i)
	}
	wg.Wait()

	n, err := InvokeValue(ctx, d, func() int { return len(mainState) })
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	cancel()
	select {
	case err := <-mainDone:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
}

func TestDispatcher_FIFO(t *testing.T) {
	d := NewDispatcher(logr.Discard())
	var order []int
	results := make(chan error, 3)
	for i := 1; i <= 3; i++ {
		i := i
		go func() { results <- d.Invoke(context.Background(), func() { order = append(order, i) }) }()
		// wait until enqueued to fix the order
		require.Eventually(t, func() bool { return d.Pending() == i }, time.Second, time.Millisecond)
	}
	assert.Equal(t, 3, d.Drain())
	for i := 0; i < 3; i++ {
		require.NoError(t, <-results)
	}
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Zero(t, d.Drain())
}

func TestDispatcher_Panic(t *testing.T) {
	d := NewDispatcher(logr.Discard())
	errc := make(chan error, 1)
	go func() { errc <- d.Invoke(context.Background(), func() { panic("main thread exploded") }) }()
	require.Eventually(t, func() bool { return d.Pending() == 1 }, time.Second, time.Millisecond)
	d.Drain()
	err := <-errc
	require.Error(t, err)
	assert.Contains(t, err.Error(), "main thread exploded")
}

func TestDispatcher_InvokeCanceled(t *testing.T) {
	d := NewDispatcher(logr.Discard())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := InvokeValue(ctx, d, func() string { return "never" })
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// the abandoned task still runs
	assert.Equal(t, 1, d.Drain())
}
