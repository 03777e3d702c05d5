package resonance

// Primes in 1..45
var primes = map[int]bool{
	2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true,
	19: true, 23: true, 29: true, 31: true, 37: true, 41: true, 43: true,
}

// OMR sheet edge/center positions that players tend to skip
var deadZones = map[int]bool{
	1: true, 4: true, 7: true, 8: true, 14: true, 15: true, 21: true,
	22: true, 28: true, 29: true, 35: true, 36: true, 38: true, 42: true,
	43: true,
}

// Zone boundaries: 1-10, 11-20, 21-30, 31-40, 41-45
const ZoneCount = 5

// ZoneOf returns the zone index (0..4) of a number in 1..45
func ZoneOf(n int) int {
	z := (n - 1) / 10
	if z >= ZoneCount {
		z = ZoneCount - 1
	}
	return z
}

// Context carries history-derived inputs the rules need. A zero Context is
// valid: the history-dependent rules simply never match.
type Context struct {
	LastDraw map[int]bool // numbers of the most recent draw
	Hot      map[int]bool // most frequent numbers over the recent window
	Cold     map[int]bool // numbers absent from the recent window
}

// Rule is a named boolean predicate over a six-number set
type Rule struct {
	Key   string
	Name  string
	Check func(ctx *Context, nums []int) bool
}

// Rules is the fixed table of the ten resonance heuristics. Order is the
// display order; keys are stable identifiers used by the weight table.
var Rules = []Rule{
	{"missing_zone", "Missing Zone", checkMissingZone},
	{"carry_over", "Carry Over", checkCarryOver},
	{"same_ending", "Same Ending", checkSameEnding},
	{"sum_range", "Sum Range", checkSumRange},
	{"prime_count", "Prime Count", checkPrimeCount},
	{"consecutive", "Consecutive Pair", checkConsecutive},
	{"dead_zone", "Dead Zone", checkDeadZone},
	{"odd_even", "Odd/Even Balance", checkOddEven},
	{"cold_num", "Cold Number", checkColdNumber},
	{"hot_rest", "Hot Restraint", checkHotRestraint},
}

// RuleByKey returns the rule with the given key, or false
func RuleByKey(key string) (Rule, bool) {
	for _, r := range Rules {
		if r.Key == key {
			return r, true
		}
	}
	return Rule{}, false
}

// checkMissingZone passes when at least one of the five zones is empty.
// Winning draws rarely cover all five zones.
func checkMissingZone(_ *Context, nums []int) bool {
	var covered [ZoneCount]bool
	for _, n := range nums {
		covered[ZoneOf(n)] = true
	}
	for _, c := range covered {
		if !c {
			return true
		}
	}
	return false
}

// checkCarryOver passes when the set shares at least one number with the
// previous draw.
func checkCarryOver(ctx *Context, nums []int) bool {
	if len(ctx.LastDraw) == 0 {
		return false
	}
	for _, n := range nums {
		if ctx.LastDraw[n] {
			return true
		}
	}
	return false
}

// checkSameEnding passes when at least two numbers share a last digit
func checkSameEnding(_ *Context, nums []int) bool {
	var endings [10]int
	for _, n := range nums {
		endings[n%10]++
		if endings[n%10] >= 2 {
			return true
		}
	}
	return false
}

// checkSumRange passes when the sum lies in [120, 160]
func checkSumRange(_ *Context, nums []int) bool {
	sum := 0
	for _, n := range nums {
		sum += n
	}
	return sum >= 120 && sum <= 160
}

// checkPrimeCount passes when the set holds one to three primes
func checkPrimeCount(_ *Context, nums []int) bool {
	count := 0
	for _, n := range nums {
		if primes[n] {
			count++
		}
	}
	return count >= 1 && count <= 3
}

// checkConsecutive passes when the set has at least one consecutive pair
// but no run of three or more. Assumes nums is sorted ascending.
func checkConsecutive(_ *Context, nums []int) bool {
	run := 1
	pairs := 0
	for i := 1; i < len(nums); i++ {
		if nums[i] == nums[i-1]+1 {
			run++
			if run >= 3 {
				return false
			}
			pairs++
		} else {
			run = 1
		}
	}
	return pairs >= 1
}

// checkDeadZone passes when at most two numbers fall in the OMR dead zones
func checkDeadZone(_ *Context, nums []int) bool {
	count := 0
	for _, n := range nums {
		if deadZones[n] {
			count++
		}
	}
	return count <= 2
}

// checkOddEven passes when the odd count is 2, 3 or 4
func checkOddEven(_ *Context, nums []int) bool {
	odd := 0
	for _, n := range nums {
		if n%2 != 0 {
			odd++
		}
	}
	return odd >= 2 && odd <= 4
}

// checkColdNumber passes when the set contains at least one cold number
func checkColdNumber(ctx *Context, nums []int) bool {
	for _, n := range nums {
		if ctx.Cold[n] {
			return true
		}
	}
	return false
}

// checkHotRestraint passes when the set contains at most two hot numbers
func checkHotRestraint(ctx *Context, nums []int) bool {
	count := 0
	for _, n := range nums {
		if ctx.Hot[n] {
			count++
		}
	}
	return count <= 2
}
