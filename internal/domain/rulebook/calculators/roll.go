package calculators

import (
	"github.com/KirkDiggler/rpg-arena/internal/dice"
)

// rollUnder draws a percent roll and reports whether it landed below chance.
// Certain outcomes (chance >= 100 or <= 0) do not consume a draw.
func rollUnder(roller dice.Roller, chance float64) (bool, int, error) {
	if chance >= 100 {
		return true, 0, nil
	}
	if chance <= 0 {
		return false, 0, nil
	}
	roll, err := roller.Percent()
	if err != nil {
		return false, 0, err
	}
	return float64(roll) < chance, roll, nil
}

// RollEffect decides whether an ability's status effect lands
func RollEffect(roller dice.Roller, effectChance int) (bool, error) {
	ok, _, err := rollUnder(roller, float64(effectChance))
	return ok, err
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// truncate drops the fractional part, absorbing float error just below a
// whole number
func truncate(v float64) int {
	if v < 0 {
		return int(v)
	}
	return int(v + 1e-9)
}
