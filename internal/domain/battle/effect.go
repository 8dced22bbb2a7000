package battle

import (
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/elements"
)

// EffectTag identifies a status effect
type EffectTag string

const (
	// Damage over time
	EffectBurn    EffectTag = "burn"
	EffectPoison  EffectTag = "poison"
	EffectBleed   EffectTag = "bleed"
	EffectInferno EffectTag = "inferno"

	// Crowd control
	EffectStun      EffectTag = "stun"
	EffectFreeze    EffectTag = "freeze"
	EffectParalysis EffectTag = "paralysis"
	EffectShock     EffectTag = "shock"

	// Buffs, always placed on the caster
	EffectDefenseUp    EffectTag = "defense_up"
	EffectEvasionUp    EffectTag = "evasion_up"
	EffectSpeedUp      EffectTag = "speed_up"
	EffectRegeneration EffectTag = "regeneration"
	EffectInvisible    EffectTag = "invisible"
	EffectTrueStrike   EffectTag = "true_strike"
	EffectFlameShield  EffectTag = "flame_shield"

	// EffectLifeSteal resolves as an immediate heal and is never stored
	EffectLifeSteal EffectTag = "life_steal"
)

var crowdControl = map[EffectTag]bool{
	EffectStun:      true,
	EffectFreeze:    true,
	EffectParalysis: true,
	EffectShock:     true,
}

var buffs = map[EffectTag]bool{
	EffectDefenseUp:    true,
	EffectEvasionUp:    true,
	EffectSpeedUp:      true,
	EffectRegeneration: true,
	EffectInvisible:    true,
	EffectTrueStrike:   true,
	EffectFlameShield:  true,
}

// IsCrowdControl reports whether the tag skips the holder's turn
func (t EffectTag) IsCrowdControl() bool { return crowdControl[t] }

// IsBuff reports whether the tag is routed onto the caster
func (t EffectTag) IsBuff() bool { return buffs[t] }

// IsRegen reports whether the tag heals on tick
func (t EffectTag) IsRegen() bool { return t == EffectRegeneration }

// StatusEffect is an active effect instance on a combatant.
// DamagePerTurn is fixed when the effect is applied.
type StatusEffect struct {
	Tag            EffectTag        `json:"tag"`
	Magnitude      int              `json:"magnitude"`
	DamagePerTurn  int              `json:"damage_per_turn"`
	TurnsTotal     int              `json:"turns_total"`
	TurnsRemaining int              `json:"turns_remaining"`
	SourceElement  elements.Element `json:"source_element"`
	SourceID       string           `json:"source_id"`
}

// HealPerTurn returns the regen amount for regen-class effects
func (e *StatusEffect) HealPerTurn() int {
	if !e.Tag.IsRegen() || e.Magnitude < 0 {
		return 0
	}
	return e.Magnitude
}
