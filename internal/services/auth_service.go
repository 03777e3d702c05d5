package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lottolabs/lottologic-backend/internal/config"
	"github.com/lottolabs/lottologic-backend/internal/models"
	"github.com/lottolabs/lottologic-backend/internal/repositories"
	"github.com/lottolabs/lottologic-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure so callers cannot
// distinguish unknown accounts from wrong passwords
var ErrInvalidCredentials = errors.New("invalid credentials")

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// AuthServiceImpl handles admin authentication
type AuthServiceImpl struct {
	adminRepo repositories.AdminUserRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthServiceImpl
func NewAuthService(adminRepo repositories.AdminUserRepository, cfg *config.Config) *AuthServiceImpl {
	return &AuthServiceImpl{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Login verifies credentials and returns a signed JWT
func (s *AuthServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(time.Duration(s.cfg.JWT.ExpiresIn) * time.Second)
	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role, expiresAt, s.cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// EnsureDefaultAdmin seeds the configured admin account when the collection
// is empty. A blank configured password disables seeding.
func (s *AuthServiceImpl) EnsureDefaultAdmin(ctx context.Context) error {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if s.cfg.Admin.Password == "" {
		slog.Warn("No admin account exists and no seed password is configured")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.AdminUser{
		Email:    s.cfg.Admin.Email,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	slog.Info("Seeded default admin account", "email", admin.Email)
	return nil
}
