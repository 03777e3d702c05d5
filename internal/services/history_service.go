package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/lottolabs/lottologic-backend/internal/config"
	"github.com/lottolabs/lottologic-backend/internal/models"
	"github.com/lottolabs/lottologic-backend/internal/repositories"
	"github.com/lottolabs/lottologic-backend/pkg/dhlottery"
)

// Compile-time check to ensure HistoryServiceImpl implements HistoryService
var _ HistoryService = (*HistoryServiceImpl)(nil)

// HistoryServiceImpl maintains the cached draw history
type HistoryServiceImpl struct {
	drawRepo repositories.DrawRepository
	client   *dhlottery.Client
	cfg      config.LottoConfig
}

// NewHistoryService creates a new HistoryServiceImpl
func NewHistoryService(drawRepo repositories.DrawRepository, client *dhlottery.Client, cfg config.LottoConfig) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		drawRepo: drawRepo,
		client:   client,
		cfg:      cfg,
	}
}

// Refresh probes forward from the highest cached round until the upstream
// reports an undrawn round or the per-refresh cap is reached
func (s *HistoryServiceImpl) Refresh(ctx context.Context) (int, error) {
	latest, err := s.drawRepo.LatestRound(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read latest cached round: %w", err)
	}
	if latest < s.cfg.SeedRound {
		latest = s.cfg.SeedRound
	}

	stored := 0
	for round := latest + 1; round <= latest+s.cfg.MaxNewRounds; round++ {
		result, err := s.fetchWithRetry(ctx, round)
		if errors.Is(err, dhlottery.ErrRoundNotDrawn) {
			break
		}
		if err != nil {
			// Best effort: keep what we have
			slog.Warn("Draw refresh aborted", "round", round, "stored", stored, "error", err)
			return stored, nil
		}

		draw := &models.Draw{
			Round:             result.Round,
			DrawDate:          result.Date,
			Numbers:           result.Numbers,
			BonusNumber:       result.BonusNumber,
			TotalSales:        result.TotalSales,
			FirstPrizeAmount:  result.FirstPrizeAmount,
			FirstPrizeWinners: result.FirstPrizeWinners,
		}
		if err := s.drawRepo.Upsert(ctx, draw); err != nil {
			return stored, fmt.Errorf("failed to cache round %d: %w", round, err)
		}
		stored++
		slog.Info("Cached draw", "round", draw.Round, "date", draw.DrawDate.Format("2006-01-02"))
	}

	return stored, nil
}

// fetchWithRetry wraps the upstream fetch in an exponential backoff.
// ErrRoundNotDrawn is a terminal answer, not a failure.
func (s *HistoryServiceImpl) fetchWithRetry(ctx context.Context, round int) (*dhlottery.DrawResult, error) {
	var result *dhlottery.DrawResult

	operation := func() error {
		var err error
		result, err = s.client.FetchRound(ctx, round)
		if errors.Is(err, dhlottery.ErrRoundNotDrawn) {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = 15 * time.Second

	notify := func(err error, next time.Duration) {
		slog.Warn("Upstream fetch retry", "round", round, "next", next, "error", err)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(bo, ctx), notify); err != nil {
		return nil, err
	}
	return result, nil
}

// Window returns the analysis window, newest round first
func (s *HistoryServiceImpl) Window(ctx context.Context) ([]*models.Draw, error) {
	return s.drawRepo.FindRecent(ctx, s.cfg.HistorySize)
}

// RecentDraws returns up to limit cached draws, newest round first
func (s *HistoryServiceImpl) RecentDraws(ctx context.Context, limit int) ([]*models.Draw, error) {
	if limit <= 0 || limit > s.cfg.HistorySize {
		limit = s.cfg.HistorySize
	}
	return s.drawRepo.FindRecent(ctx, limit)
}

// DrawByRound retrieves one cached draw
func (s *HistoryServiceImpl) DrawByRound(ctx context.Context, round int) (*models.Draw, error) {
	return s.drawRepo.FindByRound(ctx, round)
}
