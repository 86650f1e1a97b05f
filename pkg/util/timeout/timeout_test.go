package timeout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerform(t *testing.T) {
	tests := []struct {
		name    string
		d       time.Duration
		fn      func(ctx context.Context) error
		wantErr error
	}{
		{
			name: "completes",
			d:    time.Second,
			fn:   func(context.Context) error { return nil },
		},
		{
			name:    "returns action error",
			d:       time.Second,
			fn:      func(context.Context) error { return errBoom },
			wantErr: errBoom,
		},
		{
			name: "times out",
			d:    20 * time.Millisecond,
			fn: func(context.Context) error {
				time.Sleep(time.Second)
				return nil
			},
			wantErr: context.DeadlineExceeded,
		},
		{
			name: "no bound",
			d:    0,
			fn: func(context.Context) error {
				time.Sleep(10 * time.Millisecond)
				return nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			err := Perform(context.Background(), tt.d, tt.fn)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Less(t, time.Since(start), 500*time.Millisecond)
		})
	}
}

func TestPerformValue(t *testing.T) {
	v, err := PerformValue(context.Background(), time.Second, func(context.Context) (string, error) {
		return "mc.example.com", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "mc.example.com", v)
}

func TestPerform_ActionSeesCancellation(t *testing.T) {
	stopped := make(chan struct{})
	err := Perform(context.Background(), 10*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return ctx.Err()
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("action did not observe cancellation")
	}
}

var errBoom = errors.New("boom")

type closer struct{ closed chan struct{} }

func (c *closer) Close() error {
	close(c.closed)
	return nil
}

func TestPerformValue_ClosesLateResult(t *testing.T) {
	late := &closer{closed: make(chan struct{})}
	_, err := PerformValue(context.Background(), 10*time.Millisecond, func(context.Context) (*closer, error) {
		time.Sleep(50 * time.Millisecond)
		return late, nil
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	select {
	case <-late.closed:
	case <-time.After(time.Second):
		t.Fatal("late result was not closed")
	}
}
