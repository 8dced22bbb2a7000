package calculators

import (
	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/KirkDiggler/rpg-arena/internal/effects"
)

const counterBurnTurns = 2

type dotFormula struct {
	perPower float64
	flat     float64
}

var damagePerTurn = map[battle.EffectTag]dotFormula{
	battle.EffectBurn:    {perPower: 0.2, flat: 5},
	battle.EffectPoison:  {perPower: 0.2, flat: 5},
	battle.EffectBleed:   {perPower: 0.2, flat: 5},
	battle.EffectInferno: {perPower: 0.4, flat: 10},
	battle.EffectShock:   {perPower: 0.15, flat: 3},
}

// DamagePerTurn is the fixed per-tick damage tag deals when applied by a
// combatant with the given power. Tags without a formula deal none.
func DamagePerTurn(tag battle.EffectTag, power int) int {
	f, ok := damagePerTurn[tag]
	if !ok {
		return 0
	}
	return truncate(f.perPower*float64(power) + f.flat)
}

// BuildEffect materializes spec as applied by applier. Damage per turn is
// computed now and never recomputed.
func BuildEffect(spec battle.EffectSpec, applier *battle.Combatant) *battle.StatusEffect {
	return effects.NewBuilder(spec.Tag).
		WithMagnitude(spec.Magnitude).
		ForTurns(spec.Duration).
		WithDamagePerTurn(DamagePerTurn(spec.Tag, applier.Stats.Forca)).
		FromSource(applier.Element, applier.ID).
		Build()
}

// CounterBurn is the retaliatory burn a flame shield holder inflicts on whoever
// hits them, regardless of the attacker's element
func CounterBurn(holder *battle.Combatant) *battle.StatusEffect {
	return effects.NewBuilder(battle.EffectBurn).
		ForTurns(counterBurnTurns).
		WithDamagePerTurn(DamagePerTurn(battle.EffectBurn, holder.Stats.Forca)).
		FromSource(holder.Element, holder.ID).
		Build()
}
