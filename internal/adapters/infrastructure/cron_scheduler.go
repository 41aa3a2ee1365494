package infrastructure

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

// Task is a scheduled job
type Task func(ctx context.Context) error

// CronScheduler runs tasks on cron specs. A run that is still in progress
// when the next one is due causes that next run to be skipped.
type CronScheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	logger  ports.Logger

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
}

// NewCronScheduler creates a scheduler whose task runs are bounded by timeout
func NewCronScheduler(timeout time.Duration, logger ports.Logger) *CronScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	cronLog := cronLogger{logger: logger}

	return &CronScheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog))),
		timeout: timeout,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Schedule registers task under spec (standard five-field or descriptor such
// as "@every 15m")
func (s *CronScheduler) Schedule(name, spec string, task Task) error {
	entryID, err := s.cron.AddFunc(spec, s.wrapTask(name, task))
	if err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("invalid schedule %q for %s", spec, name), err)
	}

	s.logger.Info("Task scheduled",
		ports.F("task", name),
		ports.F("spec", spec),
		ports.F("entry_id", int(entryID)))
	return nil
}

// Start begins running scheduled tasks
func (s *CronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.cron.Start()
	s.logger.Info("Cron scheduler started", ports.F("entries", len(s.cron.Entries())))
}

// Stop cancels in-flight tasks and waits for them to return
func (s *CronScheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.logger.Info("Cron scheduler stopped")
}

func (s *CronScheduler) wrapTask(name string, task Task) func() {
	return func() {
		startTime := time.Now()

		ctx := s.ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		if err := task(ctx); err != nil {
			s.logger.Error("Scheduled task failed",
				ports.F("task", name),
				ports.F("duration_ms", time.Since(startTime).Milliseconds()),
				ports.F("error", err.Error()))
			return
		}

		s.logger.Debug("Scheduled task completed",
			ports.F("task", name),
			ports.F("duration_ms", time.Since(startTime).Milliseconds()))
	}
}

// cronLogger adapts the Logger port to cron.Logger
type cronLogger struct {
	logger ports.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, toFields(keysAndValues)...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := append(toFields(keysAndValues), ports.F("error", fmt.Sprint(err)))
	l.logger.Error("cron: "+msg, fields...)
}

func toFields(keysAndValues []interface{}) []ports.Field {
	fields := make([]ports.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields = append(fields, ports.F(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1]))
	}
	return fields
}
