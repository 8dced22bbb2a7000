package calculators

import (
	"math"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
)

// AbilityHeal is the raw heal of a heal-resolution ability. It takes no
// elemental, crit or defense modifiers. Callers clamp to missing hp.
func AbilityHeal(caster *battle.Combatant, ability *battle.Ability) int {
	base := ability.BaseDamage
	if base < 0 {
		base = -base
	}
	primary := float64(caster.Stats.Value(ability.PrimaryStat))
	heal := float64(base) + primary*ability.StatMultiplier
	if heal < 0 {
		return 0
	}
	return truncate(heal)
}

// LifeStealHeal converts a life steal magnitude (whole percent) into a heal
func LifeStealHeal(damage, percent int) int {
	if damage <= 0 || percent <= 0 {
		return 0
	}
	return int(math.Floor(float64(damage) * float64(percent) / 100))
}
