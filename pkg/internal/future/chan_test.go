package future

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunWithTimeout runs a test function with a timeout.
func RunWithTimeout(t *testing.T, timeout time.Duration, testFunc func()) {
	done := make(chan bool)

	go func() {
		testFunc()
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal("Test timed out")
	}
}

func TestNewChan(t *testing.T) {
	f := NewChan[int]()
	require.NotNil(t, f)
	assert.False(t, f.Completed())
}

func TestThenAccept(t *testing.T) {
	RunWithTimeout(t, time.Second, func() {
		result := make(chan int)
		NewChan[int]().ThenAccept(func(value int) {
			result <- value
		}).Complete(10)
		assert.Equal(t, 10, <-result)
	})
}

func TestThenApply(t *testing.T) {
	RunWithTimeout(t, time.Second, func() {
		f1 := NewChan[int]()
		f2 := ThenApply[int, string](f1, func(value int) string {
			if value == 10 {
				return "ten"
			}
			return "other"
		})
		f1.Complete(10)
		assert.Equal(t, "ten", <-f2.Receive())
	})
}

func TestCompleteOnce(t *testing.T) {
	RunWithTimeout(t, time.Second, func() {
		f := NewChan[int]()
		f.Complete(10).Complete(20)
		assert.True(t, f.Completed())
		assert.Equal(t, 10, f.Get())
		assert.Equal(t, 10, <-f.Receive())
	})
}

func TestChan_Get(t *testing.T) {
	RunWithTimeout(t, time.Second, func() {
		f := NewChan[int]()
		go func() { time.Sleep(time.Millisecond * 50); f.Complete(10) }()
		assert.Equal(t, 10, f.Get())
	})
}

func TestChan_Await(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		f := NewChan[string]().Complete("ok")
		v, err := f.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
	})
	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		v, err := NewChan[string]().Await(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Empty(t, v)
	})
}
