package scheduler

import (
	"context"
	"time"

	"reminder_planner_bot/internal/app" // For DispatchService interface

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DispatchScheduler triggers the dispatch service on a fixed cron spec.
// It is fully decoupled from inbound message handling: the only shared
// state between the two sides is the durable task store.
type DispatchScheduler struct {
	cronEngine       *cron.Cron
	dispatchService  app.DispatchService // Using the interface
	logger           *logrus.Entry
	cronSpecDispatch string
}

func NewDispatchScheduler(
	dispatchService app.DispatchService,
	logger *logrus.Entry,
	cronSpecDispatch string, // e.g., "* * * * *" (every minute)
) *DispatchScheduler {
	return &DispatchScheduler{
		cronEngine:       cron.New(cron.WithLocation(time.Local)), // Task times are naive local
		dispatchService:  dispatchService,
		logger:           logger,
		cronSpecDispatch: cronSpecDispatch,
	}
}

func (s *DispatchScheduler) Start() {
	s.logger.Info("Starting dispatch scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecDispatch, func() {
		s.logger.Debug("Cron job triggered for due-task dispatch.")
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute) // Context for the job
		defer cancel()
		if err := s.dispatchService.DispatchDueTasks(ctx); err != nil {
			s.logger.WithError(err).Error("Error during due-task dispatch")
		}
	})
	if err != nil {
		s.logger.Fatalf("FATAL: Could not add dispatch cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.Info("Dispatch scheduler started.")
}

func (s *DispatchScheduler) Stop() {
	s.logger.Info("Stopping dispatch scheduler...")
	ctx := s.cronEngine.Stop() // Stops scheduling new runs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Dispatch scheduler gracefully stopped.")
}
