package dhlottery

import (
	"math/rand"
	"sort"
	"time"
)

// MockLatestRound is the highest round the mock upstream knows about
const MockLatestRound = 1150

// Round 1 was drawn on 2002-12-07; one round per week since
var mockEpoch = time.Date(2002, 12, 7, 0, 0, 0, 0, time.UTC)

// mockFetchRound produces a deterministic synthetic result for local
// development and tests. The same round always yields the same numbers.
func (c *Client) mockFetchRound(round int) (*DrawResult, error) {
	if round <= 0 || round > MockLatestRound {
		return nil, ErrRoundNotDrawn
	}

	rng := rand.New(rand.NewSource(int64(round)))
	perm := rng.Perm(45)

	nums := make([]int, 6)
	for i := 0; i < 6; i++ {
		nums[i] = perm[i] + 1
	}
	sort.Ints(nums)
	bonus := perm[6] + 1

	return &DrawResult{
		Round:             round,
		Date:              mockEpoch.AddDate(0, 0, 7*(round-1)),
		Numbers:           nums,
		BonusNumber:       bonus,
		TotalSales:        80_000_000_000 + rng.Int63n(20_000_000_000),
		FirstPrizeAmount:  1_500_000_000 + rng.Int63n(1_500_000_000),
		FirstPrizeWinners: 1 + rng.Intn(15),
	}, nil
}
