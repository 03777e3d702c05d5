package models

// HistoryStats holds aggregate statistics over the analysis window
type HistoryStats struct {
	DrawCount   int     `json:"draw_count"`
	LatestRound int     `json:"latest_round"`
	OldestRound int     `json:"oldest_round"`
	SumMean     float64 `json:"sum_mean"`
	SumStdDev   float64 `json:"sum_std_dev"`
	SumMin      int     `json:"sum_min"`
	SumMax      int     `json:"sum_max"`

	// OddCounts[i] is how many draws in the window had exactly i odd numbers
	OddCounts [DrawSetSize + 1]int `json:"odd_counts"`

	// Frequency[n] is how often number n was drawn in the window (index 0 unused)
	Frequency [MaxNumber + 1]int `json:"frequency"`

	// HotNumbers are the most frequent numbers over the recent slice of the
	// window; ColdNumbers have not appeared at all in the recent slice.
	HotNumbers  []int `json:"hot_numbers"`
	ColdNumbers []int `json:"cold_numbers"`

	// ZoneRates[z] is the fraction of draws covering zone z (1-10, 11-20,
	// 21-30, 31-40, 41-45)
	ZoneRates [5]float64 `json:"zone_rates"`
}

// StatsResponse is the payload of GET /api/v1/stats
type StatsResponse struct {
	Weights map[string]float64 `json:"weights"`
	History *HistoryStats      `json:"history"`
}
