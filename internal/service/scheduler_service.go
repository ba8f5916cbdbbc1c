package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"calendar-planner/internal/calendar"
)

// Job is a scheduled unit of work. It gets a context bounded by the
// scheduler's job timeout.
type Job func(ctx context.Context) error

// SchedulerService runs report jobs on a cron clock. A job still running when
// its next tick arrives is skipped for that tick.
type SchedulerService struct {
	cron    *cron.Cron
	timeout time.Duration
}

func NewSchedulerService(loc *time.Location, jobTimeout time.Duration) *SchedulerService {
	logger := cron.PrintfLogger(log.Default())
	return &SchedulerService{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithSeconds(),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		timeout: jobTimeout,
	}
}

// ScheduleDaily registers job once a day at the "HH:MM" wall-clock time.
func (s *SchedulerService) ScheduleDaily(name, timeStr string, job Job) (cron.EntryID, error) {
	spec, err := DailySpec(timeStr)
	if err != nil {
		return 0, fmt.Errorf("schedule %s: %w", name, err)
	}
	return s.cron.AddFunc(spec, s.wrap(name, job))
}

// ScheduleInterval registers job every interval, rounded down to seconds.
func (s *SchedulerService) ScheduleInterval(name string, interval time.Duration, job Job) (cron.EntryID, error) {
	seconds := int(interval / time.Second)
	if seconds <= 0 {
		return 0, fmt.Errorf("schedule %s: interval must be at least 1s, got %s", name, interval)
	}
	return s.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), s.wrap(name, job))
}

// Run executes job once with the same timeout and logging as a scheduled run.
func (s *SchedulerService) Run(name string, job Job) {
	s.wrap(name, job)()
}

func (s *SchedulerService) wrap(name string, job Job) func() {
	return func() {
		ctx := context.Background()
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		started := time.Now()
		if err := job(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("job %s: %v", name, err)
			return
		}
		log.Printf("[info] job %s done in %s", name, time.Since(started).Round(time.Millisecond))
	}
}

// Next reports when the entry runs next; zero if it is unknown.
func (s *SchedulerService) Next(id cron.EntryID) time.Time {
	return s.cron.Entry(id).Next
}

func (s *SchedulerService) Len() int {
	return len(s.cron.Entries())
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

// Stop waits for running jobs until ctx is done.
func (s *SchedulerService) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stop scheduler: %w", ctx.Err())
	}
}

// DailySpec turns "HH:MM" into a seconds-precision cron spec.
func DailySpec(timeStr string) (string, error) {
	c, err := calendar.ParseClock(timeStr)
	if err != nil {
		return "", err
	}
	// second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", c.Minute, c.Hour), nil
}
