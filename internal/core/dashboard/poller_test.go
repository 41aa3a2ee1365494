package dashboard

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"breezy.app/internal/mocks"
)

type countingRefresher struct {
	calls       atomic.Int32
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	delay       time.Duration
	err         error
}

func (r *countingRefresher) RefreshFocused(ctx context.Context) error {
	r.calls.Add(1)
	n := r.inFlight.Add(1)
	defer r.inFlight.Add(-1)
	if n > r.maxInFlight.Load() {
		r.maxInFlight.Store(n)
	}

	select {
	case <-time.After(r.delay):
	case <-ctx.Done():
		return ctx.Err()
	}
	return r.err
}

func runPoller(ctx context.Context, p *Poller) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()
	return done
}

func TestPoller_TicksUntilStopped(t *testing.T) {
	refresher := &countingRefresher{err: stderrors.New("upstream down")}
	poller := NewPoller(refresher, 5*time.Millisecond, mocks.NewPermissiveLogger(t))

	done := runPoller(context.Background(), poller)
	assert.Eventually(t, func() bool { return refresher.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	poller.Stop()
	poller.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}

func TestPoller_NeverOverlaps(t *testing.T) {
	refresher := &countingRefresher{delay: 25 * time.Millisecond}
	poller := NewPoller(refresher, time.Millisecond, mocks.NewPermissiveLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := runPoller(ctx, poller)
	assert.Eventually(t, func() bool { return refresher.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, int32(1), refresher.maxInFlight.Load())
}

func TestPoller_StopCancelsInFlightRefresh(t *testing.T) {
	refresher := &countingRefresher{delay: time.Hour}
	poller := NewPoller(refresher, time.Millisecond, mocks.NewPermissiveLogger(t))

	done := runPoller(context.Background(), poller)
	assert.Eventually(t, func() bool { return refresher.inFlight.Load() == 1 }, time.Second, time.Millisecond)
	poller.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}

func TestPoller_DisabledWithoutInterval(t *testing.T) {
	refresher := &countingRefresher{}
	poller := NewPoller(refresher, 0, mocks.NewPermissiveLogger(t))

	poller.Run(context.Background())

	assert.Equal(t, int32(0), refresher.calls.Load())
}
