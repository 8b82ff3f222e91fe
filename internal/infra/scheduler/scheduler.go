package scheduler

import (
	"context"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/notification"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollScheduler runs status cycles one after another with a fixed delay between
// the end of a cycle and the start of the next. Cycles never overlap.
type PollScheduler struct {
	runner   app.CycleRunner
	schedule cron.Schedule // source of the wait after each cycle
	logger   *logrus.Entry
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

func NewPollScheduler(runner app.CycleRunner, interval time.Duration, logger *logrus.Entry) *PollScheduler {
	return &PollScheduler{
		runner:   runner,
		schedule: cron.Every(interval), // constant delay, rounded to whole seconds
		logger:   logger,
		now:      time.Now,
		after:    time.After,
	}
}

// Run polls until ctx is cancelled. The first cycle starts immediately.
// The notification state lives for the duration of Run only.
func (s *PollScheduler) Run(ctx context.Context) {
	state := notification.NewState()
	s.logger.Info("Starting homework status polling")

	for cycle := 1; ; cycle++ {
		if err := ctx.Err(); err != nil {
			s.logger.Info("Homework status polling stopped")
			return
		}

		text := s.runner.RunCycle(ctx, state)
		s.logger.WithFields(logrus.Fields{"cycle": cycle, "text": text}).Debug("Poll cycle finished")

		// The schedule decides when the next cycle starts; Run only waits for it,
		// so the delay always counts from the end of the previous cycle.
		now := s.now()
		next := s.schedule.Next(now)
		select {
		case <-ctx.Done():
			s.logger.Info("Homework status polling stopped")
			return
		case <-s.after(next.Sub(now)):
		}
	}
}
