package resonance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	require.Len(t, w, len(Rules))
	for _, rule := range Rules {
		assert.Equal(t, 0.5, w[rule.Key], rule.Key)
	}
}

func TestScore_SumOfSatisfiedWeights(t *testing.T) {
	// Only two rules carry weight; everything else contributes nothing
	weights := make(Weights)
	weights["sum_range"] = 1.0
	weights["odd_even"] = 0.5
	ctx := &Context{}

	// sum 142, two odd numbers: both rules pass
	result := Score(ctx, weights, []int{10, 20, 25, 26, 30, 31})
	assert.InDelta(t, 100.0, result.Score, 1e-9)
	assert.True(t, result.Details["sum_range"])
	assert.True(t, result.Details["odd_even"])

	// sum 142 but zero odd numbers: only sum_range passes
	result = Score(ctx, weights, []int{10, 20, 24, 26, 30, 32})
	assert.InDelta(t, 100.0*10.0/15.0, result.Score, 1e-9)
	assert.True(t, result.Details["sum_range"])
	assert.False(t, result.Details["odd_even"])
}

func TestScore_Deterministic(t *testing.T) {
	weights := DefaultWeights()
	ctx := &Context{
		LastDraw: set(1, 2, 3, 4, 5, 6),
		Hot:      set(7, 8, 9),
		Cold:     set(44, 45),
	}
	nums := []int{3, 12, 21, 30, 39, 44}

	first := Score(ctx, weights, nums)
	second := Score(ctx, weights, nums)
	assert.Equal(t, first, second)
}

func TestScore_ReportsEveryRule(t *testing.T) {
	result := Score(&Context{}, DefaultWeights(), []int{1, 2, 10, 20, 30, 40})
	require.Len(t, result.Details, len(Rules))
	for _, rule := range Rules {
		_, ok := result.Details[rule.Key]
		assert.True(t, ok, rule.Key)
	}
}

func TestScore_ClampsWeights(t *testing.T) {
	ctx := &Context{}
	nums := []int{10, 20, 25, 26, 30, 31} // passes sum_range

	over := Weights{"sum_range": 5.0}
	capped := Weights{"sum_range": 1.0}
	assert.Equal(t, Score(ctx, capped, nums).Score, Score(ctx, over, nums).Score)

	// a negative weight is treated as zero, leaving nothing attainable
	negative := Weights{"sum_range": -1.0}
	assert.Equal(t, 0.0, Score(ctx, negative, nums).Score)
}

func TestScore_ZeroAttainable(t *testing.T) {
	result := Score(&Context{}, Weights{}, []int{1, 2, 3, 4, 5, 6})
	assert.Equal(t, 0.0, result.Score)
}

func TestWeightsClone(t *testing.T) {
	w := DefaultWeights()
	clone := w.Clone()
	clone["sum_range"] = 0.9
	assert.Equal(t, 0.5, w["sum_range"])
}
