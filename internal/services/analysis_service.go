package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/lottolabs/lottologic-backend/internal/models"
	"github.com/lottolabs/lottologic-backend/internal/resonance"
	"github.com/montanaflynn/stats"
)

const (
	// hotWindow/coldWindow are the recent slices used for hot and cold sets
	hotWindow  = 20
	coldWindow = 10
	hotCount   = 6
)

// Compile-time check to ensure AnalysisServiceImpl implements AnalysisService
var _ AnalysisService = (*AnalysisServiceImpl)(nil)

// AnalysisServiceImpl computes history statistics and calibrates rule weights
type AnalysisServiceImpl struct {
	history HistoryService

	mu      sync.RWMutex
	weights resonance.Weights
	ruleCtx *resonance.Context
	stats   *models.HistoryStats
}

// NewAnalysisService creates a new AnalysisServiceImpl with default weights
func NewAnalysisService(history HistoryService) *AnalysisServiceImpl {
	return &AnalysisServiceImpl{
		history: history,
		weights: resonance.DefaultWeights(),
		ruleCtx: &resonance.Context{},
		stats:   &models.HistoryStats{},
	}
}

// Recalibrate recomputes statistics and rule weights from the analysis window
func (s *AnalysisServiceImpl) Recalibrate(ctx context.Context) error {
	draws, err := s.history.Window(ctx)
	if err != nil {
		return fmt.Errorf("failed to load analysis window: %w", err)
	}
	if len(draws) == 0 {
		slog.Warn("Recalibration skipped: draw cache is empty")
		return nil
	}

	historyStats := computeStats(draws)
	ruleCtx := buildRuleContext(draws, historyStats)
	weights := calibrateWeights(draws, ruleCtx)

	s.mu.Lock()
	s.stats = historyStats
	s.ruleCtx = ruleCtx
	s.weights = weights
	s.mu.Unlock()

	slog.Info("Rule weights recalibrated", "draws", len(draws), "latestRound", historyStats.LatestRound)
	return nil
}

// Weights returns a copy of the current rule weight table
func (s *AnalysisServiceImpl) Weights() resonance.Weights {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weights.Clone()
}

// OverrideWeights replaces individual weights until the next recalibration
func (s *AnalysisServiceImpl) OverrideWeights(overrides map[string]float64) error {
	for key, value := range overrides {
		if _, ok := resonance.RuleByKey(key); !ok {
			return fmt.Errorf("unknown rule %q", key)
		}
		if value < 0 || value > 1 {
			return fmt.Errorf("weight for %q must be in [0,1], got %v", key, value)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	weights := s.weights.Clone()
	for key, value := range overrides {
		weights[key] = value
	}
	s.weights = weights
	return nil
}

// RuleContext returns the history-derived inputs for the rule predicates
func (s *AnalysisServiceImpl) RuleContext() *resonance.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ruleCtx
}

// Stats returns the statistics computed by the last recalibration
func (s *AnalysisServiceImpl) Stats() *models.HistoryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// computeStats aggregates the window. draws is newest round first.
func computeStats(draws []*models.Draw) *models.HistoryStats {
	out := &models.HistoryStats{
		DrawCount:   len(draws),
		LatestRound: draws[0].Round,
		OldestRound: draws[len(draws)-1].Round,
	}

	sums := make([]float64, 0, len(draws))
	zoneHits := [resonance.ZoneCount]int{}

	for _, draw := range draws {
		sum := 0
		odd := 0
		var covered [resonance.ZoneCount]bool
		for _, n := range draw.Numbers {
			sum += n
			if n%2 != 0 {
				odd++
			}
			out.Frequency[n]++
			covered[resonance.ZoneOf(n)] = true
		}
		sums = append(sums, float64(sum))
		out.OddCounts[odd]++
		for z, c := range covered {
			if c {
				zoneHits[z]++
			}
		}
		if out.SumMin == 0 || sum < out.SumMin {
			out.SumMin = sum
		}
		if sum > out.SumMax {
			out.SumMax = sum
		}
	}

	out.SumMean, _ = stats.Mean(sums)
	out.SumStdDev, _ = stats.StandardDeviation(sums)
	for z, hits := range zoneHits {
		out.ZoneRates[z] = float64(hits) / float64(len(draws))
	}

	out.HotNumbers = hotNumbers(draws)
	out.ColdNumbers = coldNumbers(draws)
	return out
}

// hotNumbers returns the most frequent numbers over the recent slice
func hotNumbers(draws []*models.Draw) []int {
	recent := draws
	if len(recent) > hotWindow {
		recent = recent[:hotWindow]
	}

	var freq [models.MaxNumber + 1]int
	for _, draw := range recent {
		for _, n := range draw.Numbers {
			freq[n]++
		}
	}

	nums := make([]int, 0, models.MaxNumber)
	for n := models.MinNumber; n <= models.MaxNumber; n++ {
		if freq[n] > 0 {
			nums = append(nums, n)
		}
	}
	sort.SliceStable(nums, func(i, j int) bool { return freq[nums[i]] > freq[nums[j]] })

	if len(nums) > hotCount {
		nums = nums[:hotCount]
	}
	sort.Ints(nums)
	return nums
}

// coldNumbers returns the numbers absent from the recent slice
func coldNumbers(draws []*models.Draw) []int {
	recent := draws
	if len(recent) > coldWindow {
		recent = recent[:coldWindow]
	}

	seen := make(map[int]bool)
	for _, draw := range recent {
		for _, n := range draw.Numbers {
			seen[n] = true
		}
	}

	var cold []int
	for n := models.MinNumber; n <= models.MaxNumber; n++ {
		if !seen[n] {
			cold = append(cold, n)
		}
	}
	return cold
}

// buildRuleContext derives the predicate inputs from the window
func buildRuleContext(draws []*models.Draw, historyStats *models.HistoryStats) *resonance.Context {
	return &resonance.Context{
		LastDraw: toSet(draws[0].Numbers),
		Hot:      toSet(historyStats.HotNumbers),
		Cold:     toSet(historyStats.ColdNumbers),
	}
}

// calibrateWeights sets each rule's weight to the fraction of window draws
// that satisfy it. Historical draws are checked against the draw that
// preceded them, so carry_over is skipped for the oldest draw in the window.
func calibrateWeights(draws []*models.Draw, ruleCtx *resonance.Context) resonance.Weights {
	weights := resonance.DefaultWeights()

	for _, rule := range resonance.Rules {
		hits := 0
		applicable := 0
		for i, draw := range draws {
			drawCtx := &resonance.Context{
				Hot:  ruleCtx.Hot,
				Cold: ruleCtx.Cold,
			}
			if i+1 < len(draws) {
				drawCtx.LastDraw = toSet(draws[i+1].Numbers)
			} else if rule.Key == "carry_over" {
				continue // no preceding draw to compare against
			}
			applicable++
			if rule.Check(drawCtx, draw.Numbers) {
				hits++
			}
		}
		if applicable > 0 {
			weights[rule.Key] = float64(hits) / float64(applicable)
		}
	}

	return weights
}

func toSet(nums []int) map[int]bool {
	set := make(map[int]bool, len(nums))
	for _, n := range nums {
		set[n] = true
	}
	return set
}
