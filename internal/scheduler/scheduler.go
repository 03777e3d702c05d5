package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lottolabs/lottologic-backend/internal/services"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic draw refresh
type Scheduler struct {
	cron     *cron.Cron
	history  services.HistoryService
	analysis services.AnalysisService
}

// New creates a new Scheduler
func New(history services.HistoryService, analysis services.AnalysisService) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		history:  history,
		analysis: analysis,
	}
}

// Register adds the refresh task under the given cron spec
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) refreshTask() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	stored, err := s.history.Refresh(ctx)
	if err != nil {
		slog.Error("Scheduled refresh failed", "error", err)
		return
	}
	if stored == 0 {
		slog.Info("Scheduled refresh found no new draws")
		return
	}

	if err := s.analysis.Recalibrate(ctx); err != nil {
		slog.Error("Scheduled recalibration failed", "error", err)
		return
	}
	slog.Info("Scheduled refresh complete", "newDraws", stored)
}
