package services

import (
	"context"
	"sort"
	"testing"

	"github.com/lottolabs/lottologic-backend/internal/config"
	"github.com/lottolabs/lottologic-backend/internal/models"
	"github.com/lottolabs/lottologic-backend/pkg/dhlottery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// memDrawRepo is an in-memory DrawRepository with upsert-on-round semantics
type memDrawRepo struct {
	draws map[int]*models.Draw
}

func newMemDrawRepo() *memDrawRepo {
	return &memDrawRepo{draws: make(map[int]*models.Draw)}
}

func (r *memDrawRepo) Upsert(ctx context.Context, draw *models.Draw) error {
	if err := draw.Validate(); err != nil {
		return err
	}
	if _, exists := r.draws[draw.Round]; exists {
		return nil // cached rounds stay untouched
	}
	copied := *draw
	r.draws[draw.Round] = &copied
	return nil
}

func (r *memDrawRepo) FindByRound(ctx context.Context, round int) (*models.Draw, error) {
	draw, ok := r.draws[round]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return draw, nil
}

func (r *memDrawRepo) FindRecent(ctx context.Context, limit int) ([]*models.Draw, error) {
	rounds := make([]int, 0, len(r.draws))
	for round := range r.draws {
		rounds = append(rounds, round)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rounds)))
	if len(rounds) > limit {
		rounds = rounds[:limit]
	}
	out := make([]*models.Draw, 0, len(rounds))
	for _, round := range rounds {
		out = append(out, r.draws[round])
	}
	return out, nil
}

func (r *memDrawRepo) LatestRound(ctx context.Context) (int, error) {
	latest := 0
	for round := range r.draws {
		if round > latest {
			latest = round
		}
	}
	return latest, nil
}

func (r *memDrawRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.draws)), nil
}

func testLottoConfig() config.LottoConfig {
	return config.LottoConfig{
		MockAPI:      true,
		HistorySize:  200,
		SeedRound:    dhlottery.MockLatestRound - 10,
		MaxNewRounds: 200,
	}
}

func TestRefresh_ProbesForward(t *testing.T) {
	repo := newMemDrawRepo()
	client := dhlottery.NewClient("", true)
	svc := NewHistoryService(repo, client, testLottoConfig())

	stored, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stored) // SeedRound+1 .. MockLatestRound

	latest, err := repo.LatestRound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dhlottery.MockLatestRound, latest)
}

func TestRefresh_NoNewRounds(t *testing.T) {
	repo := newMemDrawRepo()
	client := dhlottery.NewClient("", true)
	svc := NewHistoryService(repo, client, testLottoConfig())

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	stored, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stored)
}

func TestRefresh_CachedDrawsImmutable(t *testing.T) {
	repo := newMemDrawRepo()
	client := dhlottery.NewClient("", true)
	svc := NewHistoryService(repo, client, testLottoConfig())

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	before, err := repo.FindByRound(context.Background(), dhlottery.MockLatestRound)
	require.NoError(t, err)
	beforeNums := append([]int(nil), before.Numbers...)

	_, err = svc.Refresh(context.Background())
	require.NoError(t, err)

	after, err := repo.FindByRound(context.Background(), dhlottery.MockLatestRound)
	require.NoError(t, err)
	assert.Equal(t, beforeNums, after.Numbers)
}

func TestRecentDraws_ClampsLimit(t *testing.T) {
	repo := newMemDrawRepo()
	client := dhlottery.NewClient("", true)
	svc := NewHistoryService(repo, client, testLottoConfig())

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	draws, err := svc.RecentDraws(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, draws, 3)
	assert.Equal(t, dhlottery.MockLatestRound, draws[0].Round)
	assert.Greater(t, draws[0].Round, draws[1].Round)

	// zero falls back to the window size
	draws, err = svc.RecentDraws(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, draws, 10)
}
