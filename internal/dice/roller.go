package dice

// Roller is the random source for battle resolution.
// Every call site draws independently, so implementations must not batch or
// reuse values between calls.
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// Percent draws a uniform integer in [0, 100)
	Percent() (int, error)
}
