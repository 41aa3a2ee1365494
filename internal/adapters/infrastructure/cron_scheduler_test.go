package infrastructure

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breezy.app/internal/mocks"
	"breezy.app/pkg/errors"
)

func TestCronScheduler_InvalidSpec(t *testing.T) {
	scheduler := NewCronScheduler(time.Second, mocks.NewPermissiveLogger(t))

	err := scheduler.Schedule("full-refresh", "whenever", func(context.Context) error { return nil })

	assert.True(t, errors.IsConfigurationError(err))
}

func TestCronScheduler_RunsTasks(t *testing.T) {
	scheduler := NewCronScheduler(time.Second, mocks.NewPermissiveLogger(t))

	var runs atomic.Int32
	require.NoError(t, scheduler.Schedule("full-refresh", "@every 1s", func(ctx context.Context) error {
		runs.Add(1)
		return stderrors.New("upstream unavailable")
	}))

	scheduler.Start()
	scheduler.Start()
	defer scheduler.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
}

func TestCronScheduler_StopCancelsRunningTask(t *testing.T) {
	scheduler := NewCronScheduler(time.Hour, mocks.NewPermissiveLogger(t))

	started := make(chan struct{}, 1)
	var cancelled atomic.Bool
	require.NoError(t, scheduler.Schedule("slow", "@every 1s", func(ctx context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	}))
	scheduler.Start()

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("task never started")
	}

	stopped := make(chan struct{})
	go func() {
		scheduler.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.True(t, cancelled.Load())
}

func TestToFields(t *testing.T) {
	fields := toFields([]interface{}{"now", 1, "entry", 2, "dangling"})

	require.Len(t, fields, 2)
	assert.Equal(t, "now", fields[0].Key)
	assert.Equal(t, 2, fields[1].Value)
}
