package resonance

// Weights maps rule keys to weights in [0,1]. Values outside the range are
// clamped at scoring time.
type Weights map[string]float64

// DefaultWeights returns the uncalibrated table: every rule at 0.5
func DefaultWeights() Weights {
	w := make(Weights, len(Rules))
	for _, r := range Rules {
		w[r.Key] = 0.5
	}
	return w
}

// Clone returns an independent copy of the weight table
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// Result is the outcome of scoring one candidate set
type Result struct {
	Score   float64         // normalized to [0,100]
	Details map[string]bool // rule key -> passed
}

const pointsPerRule = 10.0

// Score evaluates the six-number set against the rule table. Each rule
// contributes 10*weight points to the attainable maximum and, when satisfied,
// the same to the raw score; the result is raw/attainable scaled to 100.
// Deterministic for a fixed set, context and weight table.
func Score(ctx *Context, weights Weights, nums []int) Result {
	raw := 0.0
	attainable := 0.0
	details := make(map[string]bool, len(Rules))

	for _, rule := range Rules {
		points := pointsPerRule * clamp01(weights[rule.Key])
		attainable += points
		passed := rule.Check(ctx, nums)
		if passed {
			raw += points
		}
		details[rule.Key] = passed
	}

	score := 0.0
	if attainable > 0 {
		score = raw / attainable * 100
	}
	return Result{Score: score, Details: details}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
