package services

import (
	"context"

	"github.com/lottolabs/lottologic-backend/internal/models"
	"github.com/lottolabs/lottologic-backend/internal/resonance"
)

// HistoryService defines the interface for draw history operations
type HistoryService interface {
	// Refresh probes the upstream for rounds newer than the cache and stores
	// them. Returns the number of new rounds cached. Best effort: an upstream
	// failure mid-probe keeps what was already stored.
	Refresh(ctx context.Context) (int, error)

	// Window returns the analysis window, newest round first
	Window(ctx context.Context) ([]*models.Draw, error)

	// RecentDraws returns up to limit cached draws, newest round first
	RecentDraws(ctx context.Context, limit int) ([]*models.Draw, error)

	// DrawByRound retrieves one cached draw
	DrawByRound(ctx context.Context, round int) (*models.Draw, error)
}

// AnalysisService defines the interface for statistics and rule calibration
type AnalysisService interface {
	// Recalibrate recomputes statistics and rule weights from the current
	// analysis window
	Recalibrate(ctx context.Context) error

	// Weights returns a copy of the current rule weight table
	Weights() resonance.Weights

	// OverrideWeights replaces individual weights. Values must lie in [0,1]
	// and keys must name known rules. Overrides last until the next
	// recalibration.
	OverrideWeights(overrides map[string]float64) error

	// RuleContext returns the history-derived inputs for the rule predicates
	RuleContext() *resonance.Context

	// Stats returns the statistics computed by the last recalibration
	Stats() *models.HistoryStats
}

// GeneratorService defines the interface for candidate set generation
type GeneratorService interface {
	// Generate produces count candidate sets, sorted by resonance score
	// descending
	Generate(ctx context.Context, count int) ([]*models.CandidateSet, error)
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	// Login verifies credentials and returns a signed JWT
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)

	// EnsureDefaultAdmin seeds the configured admin account when no admin
	// exists yet
	EnsureDefaultAdmin(ctx context.Context) error
}
