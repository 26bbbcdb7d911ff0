package trigger

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// InvokeFunc runs a single trigger invocation
type InvokeFunc func(ctx context.Context, event json.RawMessage) (Response, error)

// Scheduler invokes the trigger on a cron schedule
type Scheduler struct {
	cron   *cron.Cron
	invoke InvokeFunc
}

// ScheduledEvent is the event payload passed to scheduled invocations
type ScheduledEvent struct {
	Source   string    `json:"source"`
	Schedule string    `json:"schedule"`
	Time     time.Time `json:"time"`
}

// NewScheduler returns a scheduler for a standard 5 field cron expression
func NewScheduler(schedule string, invoke InvokeFunc) (*Scheduler, error) {
	logger := cronLogger{}

	// an invocation still running when the next one is due is skipped, the remote race between hosts remains
	c := cron.New(cron.WithLogger(logger), cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)))

	s := &Scheduler{
		cron:   c,
		invoke: invoke,
	}

	_, err := c.AddFunc(schedule, func() {
		s.runOnce(context.Background(), schedule)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "Failed scheduling trigger with cron expression '%v'", schedule)
	}

	return s, nil
}

func (s *Scheduler) runOnce(ctx context.Context, schedule string) {
	event, err := json.Marshal(ScheduledEvent{
		Source:   "schedule",
		Schedule: schedule,
		Time:     time.Now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed marshalling scheduled event")
		return
	}

	response, err := s.invoke(ctx, event)
	if err != nil {
		log.Error().Err(err).Msg("Scheduled trigger invocation failed")
		return
	}

	log.Debug().Msg(response.Body.Message)
}

// Run starts the schedule and blocks until ctx is done and any running invocation has finished
func (s *Scheduler) Run(ctx context.Context) {
	log.Info().Msg("Starting trigger schedule...")
	s.cron.Start()

	<-ctx.Done()

	log.Info().Msg("Stopping trigger schedule...")
	<-s.cron.Stop().Done()
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msgf("cron: %v", msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msgf("cron: %v", msg)
}
