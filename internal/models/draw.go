package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lotto 6/45 bounds
const (
	DrawSetSize = 6
	MinNumber   = 1
	MaxNumber   = 45
)

// Draw represents one historical lottery result. Draws are immutable once
// stored; a refresh only ever inserts rounds that are not yet cached.
type Draw struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Round             int                `bson:"round" json:"round"`
	DrawDate          time.Time          `bson:"drawDate" json:"draw_date"`
	Numbers           []int              `bson:"numbers" json:"numbers"`
	BonusNumber       int                `bson:"bonusNumber" json:"bonus_number"`
	TotalSales        int64              `bson:"totalSales" json:"total_sales"`
	FirstPrizeAmount  int64              `bson:"firstPrizeAmount" json:"first_prize_amount"`
	FirstPrizeWinners int                `bson:"firstPrizeWinners" json:"first_prize_winners"`
	CreatedAt         time.Time          `bson:"createdAt" json:"-"`
}

// Validate checks the six-unique-numbers-in-range invariant
func (d *Draw) Validate() error {
	if d.Round <= 0 {
		return fmt.Errorf("invalid round %d", d.Round)
	}
	if err := ValidateNumbers(d.Numbers); err != nil {
		return fmt.Errorf("round %d: %w", d.Round, err)
	}
	if d.BonusNumber < MinNumber || d.BonusNumber > MaxNumber {
		return fmt.Errorf("round %d: bonus number %d out of range", d.Round, d.BonusNumber)
	}
	return nil
}

// ValidateNumbers checks that nums holds exactly six unique numbers in 1..45,
// sorted ascending.
func ValidateNumbers(nums []int) error {
	if len(nums) != DrawSetSize {
		return fmt.Errorf("expected %d numbers, got %d", DrawSetSize, len(nums))
	}
	for i, n := range nums {
		if n < MinNumber || n > MaxNumber {
			return fmt.Errorf("number %d out of range [%d,%d]", n, MinNumber, MaxNumber)
		}
		if i > 0 && nums[i-1] >= n {
			return fmt.Errorf("numbers must be strictly ascending, got %v", nums)
		}
	}
	return nil
}
