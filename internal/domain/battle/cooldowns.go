package battle

// Cooldowns maps an ability to the owner's turns left before it is ready.
// Ready abilities have no entry.
type Cooldowns map[AbilityTag]int

// Remaining returns the turns left for tag, 0 when ready
func (c Cooldowns) Remaining(tag AbilityTag) int {
	if turns := c[tag]; turns > 0 {
		return turns
	}
	return 0
}

// Ready reports whether tag can be cast
func (c Cooldowns) Ready(tag AbilityTag) bool {
	return c.Remaining(tag) == 0
}

// Set starts a cooldown. Zero or negative turns clear the entry.
func (c *Cooldowns) Set(tag AbilityTag, turns int) {
	if turns <= 0 {
		delete(*c, tag)
		return
	}
	if *c == nil {
		*c = make(Cooldowns)
	}
	(*c)[tag] = turns
}

// Tick advances every cooldown by one owner turn and drops finished ones
func (c Cooldowns) Tick() {
	for tag, turns := range c {
		if turns <= 1 {
			delete(c, tag)
			continue
		}
		c[tag] = turns - 1
	}
}
