package effects

import (
	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
)

// StackingRule defines what happens when a tag is applied to a holder that
// already carries it
type StackingRule string

const (
	StackingReplace StackingRule = "replace" // New instance replaces old
	StackingIgnore  StackingRule = "ignore"  // Existing instance is kept untouched
)

// RuleFor returns the stacking rule for tag. Crowd control never refreshes.
func RuleFor(tag battle.EffectTag) StackingRule {
	if tag.IsCrowdControl() {
		return StackingIgnore
	}
	return StackingReplace
}

// TickResult is the aggregate of one start-of-turn tick
type TickResult struct {
	// Stunned means the holder loses this turn. StunTag is the consumed effect.
	Stunned bool
	StunTag battle.EffectTag

	Damage   int
	Heal     int
	Expired  []battle.EffectTag
	Defeated bool
}
