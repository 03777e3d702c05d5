package models

// CandidateSet is a generated six-number set annotated with its resonance
// score and per-rule pass/fail details. Candidates are never persisted.
type CandidateSet struct {
	Numbers        []int           `json:"numbers"`
	ResonanceScore float64         `json:"resonance_score"`
	Details        map[string]bool `json:"details"`
}
