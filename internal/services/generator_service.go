package services

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/lottolabs/lottologic-backend/internal/config"
	"github.com/lottolabs/lottologic-backend/internal/models"
	"github.com/lottolabs/lottologic-backend/internal/resonance"
)

// Compile-time check to ensure GeneratorServiceImpl implements GeneratorService
var _ GeneratorService = (*GeneratorServiceImpl)(nil)

// GeneratorServiceImpl produces candidate sets by weighted pattern resonance:
// random sets are drawn and the best-scoring one per slot is kept
type GeneratorServiceImpl struct {
	analysis AnalysisService
	cfg      config.GeneratorConfig

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGeneratorService creates a new GeneratorServiceImpl
func NewGeneratorService(analysis AnalysisService, cfg config.GeneratorConfig) *GeneratorServiceImpl {
	return &GeneratorServiceImpl{
		analysis: analysis,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewGeneratorServiceWithSource creates a GeneratorServiceImpl with a fixed
// random source, for reproducible output
func NewGeneratorServiceWithSource(analysis AnalysisService, cfg config.GeneratorConfig, src rand.Source) *GeneratorServiceImpl {
	return &GeneratorServiceImpl{
		analysis: analysis,
		cfg:      cfg,
		rng:      rand.New(src),
	}
}

// Generate produces count candidate sets, sorted by resonance score descending
func (s *GeneratorServiceImpl) Generate(ctx context.Context, count int) ([]*models.CandidateSet, error) {
	if count <= 0 {
		count = s.cfg.SetsPerRequest
	}
	if count > s.cfg.MaxSetsPerRequest {
		count = s.cfg.MaxSetsPerRequest
	}

	ruleCtx := s.analysis.RuleContext()
	weights := s.analysis.Weights()

	sets := make([]*models.CandidateSet, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sets = append(sets, s.bestOf(ruleCtx, weights))
	}

	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].ResonanceScore > sets[j].ResonanceScore
	})
	return sets, nil
}

// bestOf draws up to Attempts random sets and keeps the best-scoring one,
// stopping early once the target score is beaten
func (s *GeneratorServiceImpl) bestOf(ruleCtx *resonance.Context, weights resonance.Weights) *models.CandidateSet {
	var best *models.CandidateSet
	bestScore := -1.0

	for attempt := 0; attempt < s.cfg.Attempts; attempt++ {
		nums := s.randomSet()
		result := resonance.Score(ruleCtx, weights, nums)

		if result.Score > bestScore {
			bestScore = result.Score
			best = &models.CandidateSet{
				Numbers:        nums,
				ResonanceScore: math.Round(result.Score*10) / 10,
				Details:        result.Details,
			}
		}
		if result.Score > s.cfg.TargetScore {
			break
		}
	}

	return best
}

// randomSet draws six unique numbers in 1..45, sorted ascending
func (s *GeneratorServiceImpl) randomSet() []int {
	s.mu.Lock()
	perm := s.rng.Perm(models.MaxNumber)
	s.mu.Unlock()

	nums := make([]int, models.DrawSetSize)
	for i := 0; i < models.DrawSetSize; i++ {
		nums[i] = perm[i] + 1
	}
	sort.Ints(nums)
	return nums
}
