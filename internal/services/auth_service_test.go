package services

import (
	"context"
	"testing"

	"github.com/lottolabs/lottologic-backend/internal/config"
	"github.com/lottolabs/lottologic-backend/internal/models"
	"github.com/lottolabs/lottologic-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// memAdminRepo is an in-memory AdminUserRepository
type memAdminRepo struct {
	users map[string]*models.AdminUser
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{users: make(map[string]*models.AdminUser)}
}

func (r *memAdminRepo) Create(ctx context.Context, user *models.AdminUser) error {
	r.users[user.Email] = user
	return nil
}

func (r *memAdminRepo) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return user, nil
}

func (r *memAdminRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func authTestConfig() *config.Config {
	return &config.Config{
		JWT:   config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
		Admin: config.AdminConfig{Email: "admin@example.com", Password: "s3cret"},
	}
}

func TestEnsureDefaultAdmin_SeedsOnce(t *testing.T) {
	repo := newMemAdminRepo()
	svc := NewAuthService(repo, authTestConfig())

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	count, _ := repo.Count(context.Background())
	assert.Equal(t, int64(1), count)

	// a second call must not create another account
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	count, _ = repo.Count(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestEnsureDefaultAdmin_NoPasswordConfigured(t *testing.T) {
	repo := newMemAdminRepo()
	cfg := authTestConfig()
	cfg.Admin.Password = ""
	svc := NewAuthService(repo, cfg)

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	count, _ := repo.Count(context.Background())
	assert.Equal(t, int64(0), count)
}

func TestLogin(t *testing.T) {
	repo := newMemAdminRepo()
	cfg := authTestConfig()
	svc := NewAuthService(repo, cfg)
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := utils.ValidateJWT(resp.Token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := newMemAdminRepo()
	svc := NewAuthService(repo, authTestConfig())
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	repo := newMemAdminRepo()
	cfg := authTestConfig()
	svc := NewAuthService(repo, cfg)
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = utils.ValidateJWT(resp.Token, "other-secret")
	assert.Error(t, err)
}
