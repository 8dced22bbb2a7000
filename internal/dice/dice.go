package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// RollResult is the outcome of rolling count dice of the same size
type RollResult struct {
	Total   int
	Rolls   []int
	Bonus   int
	Count   int
	Sides   int
	Highest int
	Lowest  int
}

// Roll rolls count dice with size faces using the process-wide source
func Roll(count, size, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if size < 1 {
		return nil, errors.New("invalid dice size")
	}

	out := make([]int, count)
	for i := 0; i < count; i++ {
		out[i] = rand.Intn(size) + 1
	}

	return NewRollResult(out, size, bonus), nil
}

// NewRollResult totals rolls that were already made
func NewRollResult(rolls []int, sides, bonus int) *RollResult {
	result := &RollResult{
		Rolls: rolls,
		Bonus: bonus,
		Count: len(rolls),
		Sides: sides,
	}

	total := 0
	for i, roll := range rolls {
		total += roll
		if i == 0 || roll < result.Lowest {
			result.Lowest = roll
		}
		if roll > result.Highest {
			result.Highest = roll
		}
	}
	result.Total = total + bonus

	return result
}

func (r *RollResult) String() string {
	faces := make([]string, len(r.Rolls))
	for i, roll := range r.Rolls {
		faces[i] = strconv.Itoa(roll)
	}
	compact := "[" + strings.Join(faces, ",") + "]"
	if r.Bonus != 0 {
		return fmt.Sprintf("%dd%d+%d %s = %d", r.Count, r.Sides, r.Bonus, compact, r.Total)
	}
	return fmt.Sprintf("%dd%d %s = %d", r.Count, r.Sides, compact, r.Total)
}
