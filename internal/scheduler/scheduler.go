package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Runner executes one report cycle.
type Runner interface {
	Run(ctx context.Context) error
}

// Scheduler fires report cycles on a cron cadence in a fixed timezone.
type Scheduler struct {
	Cron   *cron.Cron
	Runner Runner
	Ctx    context.Context
}

// NewScheduler creates a Scheduler anchored to the given timezone.
func NewScheduler(ctx context.Context, runner Runner, timezone string) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		Runner: runner,
		Ctx:    ctx,
	}, nil
}

// Register adds the report task at the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.runCycle); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes a report cycle immediately (startup run / manual trigger).
func (s *Scheduler) RunNow() {
	s.runCycle()
}

func (s *Scheduler) runCycle() {
	log.Println("[INFO] running report cycle")
	if err := s.Runner.Run(s.Ctx); err != nil {
		log.Printf("[ERROR] report cycle: %v", err)
	}
}
