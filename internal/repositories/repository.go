package repositories

import (
	"context"

	"github.com/lottolabs/lottologic-backend/internal/models"
)

// DrawRepository defines the interface for draw cache operations
type DrawRepository interface {
	// Upsert stores a draw keyed by round, leaving an existing round untouched
	Upsert(ctx context.Context, draw *models.Draw) error

	// FindByRound retrieves a single draw
	FindByRound(ctx context.Context, round int) (*models.Draw, error)

	// FindRecent retrieves up to limit draws, newest round first
	FindRecent(ctx context.Context, limit int) ([]*models.Draw, error)

	// LatestRound returns the highest cached round, or 0 when the cache is empty
	LatestRound(ctx context.Context) (int, error)

	// Count returns the number of cached draws
	Count(ctx context.Context) (int64, error)
}

// AdminUserRepository defines the interface for admin account operations
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}
