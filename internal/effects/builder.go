package effects

import (
	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/elements"
)

// Builder helps create status effect instances
type Builder struct {
	effect *battle.StatusEffect
}

// NewBuilder creates a new effect builder lasting one turn
func NewBuilder(tag battle.EffectTag) *Builder {
	return &Builder{
		effect: &battle.StatusEffect{
			Tag:            tag,
			TurnsTotal:     1,
			TurnsRemaining: 1,
		},
	}
}

// WithMagnitude sets the magnitude
func (b *Builder) WithMagnitude(magnitude int) *Builder {
	b.effect.Magnitude = magnitude
	return b
}

// ForTurns sets the duration. Durations under one turn become one.
func (b *Builder) ForTurns(turns int) *Builder {
	if turns < 1 {
		turns = 1
	}
	b.effect.TurnsTotal = turns
	b.effect.TurnsRemaining = turns
	return b
}

// WithDamagePerTurn fixes the per-tick damage
func (b *Builder) WithDamagePerTurn(damage int) *Builder {
	if damage < 0 {
		damage = 0
	}
	b.effect.DamagePerTurn = damage
	return b
}

// FromSource records who applied the effect
func (b *Builder) FromSource(element elements.Element, sourceID string) *Builder {
	b.effect.SourceElement = element
	b.effect.SourceID = sourceID
	return b
}

// Build returns the constructed effect
func (b *Builder) Build() *battle.StatusEffect {
	return b.effect
}
