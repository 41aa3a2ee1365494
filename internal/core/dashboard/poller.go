package dashboard

import (
	"context"
	"sync"
	"time"

	"breezy.app/internal/ports"
)

// FocusedRefresher refreshes whatever city is focused
type FocusedRefresher interface {
	RefreshFocused(ctx context.Context) error
}

// Poller refreshes the focused city on a fixed interval. Ticks run on the
// poller goroutine, so a tick never starts while the previous one is still
// running; ticks that fire meanwhile are dropped by the ticker.
type Poller struct {
	refresher FocusedRefresher
	interval  time.Duration
	logger    ports.Logger

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewPoller(refresher FocusedRefresher, interval time.Duration, logger ports.Logger) *Poller {
	return &Poller{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}
}

// Run blocks until ctx is cancelled or Stop is called
func (p *Poller) Run(ctx context.Context) {
	if p.interval <= 0 {
		p.logger.Warn("Poller disabled: non-positive interval", ports.F("interval", p.interval.String()))
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-p.stopChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("Poller started", ports.F("interval", p.interval.String()))
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Poller stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// Stop ends Run. In-flight refreshes see their context cancelled.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
}

func (p *Poller) tick(ctx context.Context) {
	if err := p.refresher.RefreshFocused(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Warn("Focused city refresh failed", ports.F("error", err))
	}
}
