package dice

import (
	"math/rand"
)

// randomRoller implements Roller using the process-wide math/rand source
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	return Roll(count, sides, bonus)
}

// Percent implements Roller.Percent
func (r *randomRoller) Percent() (int, error) {
	return rand.Intn(100), nil
}
