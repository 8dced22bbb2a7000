package calculators

import (
	"math"

	"github.com/KirkDiggler/rpg-arena/internal/dice"
	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/elements"
)

const (
	basicAttackFlat      = 5.0
	basicAttackPowerMult = 0.5
	spreadSides          = 5

	// The two reduction constants differ and must stay that way
	basicAttackDefense = 0.3
	abilityDefense     = 0.4

	defenseUpFactor = 2.0
	critBase        = 5.0
	critPerFocus    = 0.3
	critMultiplier  = 2.0
	blockMultiplier = 0.5
	minDamage       = 1
)

// DamageResult is the computed outcome of a damaging hit
type DamageResult struct {
	// Damage is the total dealt, PerHit times Hits
	Damage    int
	PerHit    int
	Hits      int
	Base      float64
	Reduction float64
	Spread    int
	Critical  bool
	Blocked   bool
	Matchup   elements.Matchup
	// LifeSteal is the synergy heal owed to the attacker. It is never fed
	// back into Damage.
	LifeSteal int
}

// DamageCalculator computes basic attack and ability damage
type DamageCalculator struct {
	roller dice.Roller
}

// NewDamageCalculator creates a damage calculator drawing from roller
func NewDamageCalculator(roller dice.Roller) *DamageCalculator {
	if roller == nil {
		panic("roller is required")
	}
	return &DamageCalculator{roller: roller}
}

// BasicAttack computes basic attack damage. Draws the spread roll then the crit roll.
func (c *DamageCalculator) BasicAttack(attacker, defender *battle.Combatant) (*DamageResult, error) {
	spread, err := c.spread()
	if err != nil {
		return nil, err
	}
	base := basicAttackFlat + basicAttackPowerMult*float64(attacker.Stats.Forca) + float64(spread)

	result, err := c.pipeline(attacker, defender, base, basicAttackDefense, 1)
	if err != nil {
		return nil, err
	}
	result.Spread = spread
	return result, nil
}

// Ability computes damage for a damage-resolution ability
func (c *DamageCalculator) Ability(attacker, defender *battle.Combatant, ability *battle.Ability) (*DamageResult, error) {
	spread, err := c.spread()
	if err != nil {
		return nil, err
	}
	primary := float64(attacker.Stats.Value(ability.PrimaryStat))
	base := float64(ability.BaseDamage) + primary*ability.StatMultiplier + float64(spread)

	hits := ability.HitsCount
	if hits < 1 {
		hits = 1
	}

	result, err := c.pipeline(attacker, defender, base, abilityDefense, hits)
	if err != nil {
		return nil, err
	}
	result.Spread = spread
	return result, nil
}

func (c *DamageCalculator) spread() (int, error) {
	roll, err := c.roller.Roll(1, spreadSides, 0)
	if err != nil {
		return 0, err
	}
	return roll.Total, nil
}

// pipeline applies every modifier in its fixed order. Reordering any step
// changes numeric outcomes.
func (c *DamageCalculator) pipeline(attacker, defender *battle.Combatant, base, defenseFactor float64, hits int) (*DamageResult, error) {
	result := &DamageResult{Base: base, Hits: hits}

	// 1. defense reduction
	result.Reduction = DefenseReduction(attacker, defender, defenseFactor)
	damage := base - result.Reduction

	// 2. exhaustion penalty
	damage *= ExhaustionMultiplier(attacker.Exhaustion)

	// 3. bond bonus
	damage *= BondMultiplier(attacker.Bond)

	// 4. elemental multiplier
	result.Matchup = elements.Lookup(attacker.Element, defender.Element)
	damage *= result.Matchup.Multiplier

	// 5. attacker synergy bonus
	damage *= 1 + attacker.Synergy.DamageBonus

	// 6. defender synergy reduction
	damage *= 1 - defender.Synergy.DamageReduction

	// 7. critical
	crit, _, err := rollUnder(c.roller, CritChance(attacker))
	if err != nil {
		return nil, err
	}
	if crit {
		result.Critical = true
		damage *= critMultiplier
	}

	// 8. defending block
	if defender.IsDefending {
		result.Blocked = true
		damage *= blockMultiplier
	}

	// 9. floor and truncate, then multi-hit
	result.PerHit = minDamage
	if damage > minDamage {
		result.PerHit = truncate(damage)
	}
	result.Damage = result.PerHit * hits

	if pct := attacker.Synergy.LifeSteal; pct > 0 {
		result.LifeSteal = int(math.Floor(float64(result.Damage) * pct))
	}

	return result, nil
}

// DefenseReduction is factor times the defender's effective resistance,
// doubled while the defender holds defense up
func DefenseReduction(attacker, defender *battle.Combatant, factor float64) float64 {
	effective := float64(defender.Stats.Resistencia) * (1 - attacker.Synergy.EnemyResistanceReduction)
	reduction := factor * effective
	if defender.HasEffect(battle.EffectDefenseUp) {
		reduction *= defenseUpFactor
	}
	return reduction
}

// CritChance is the attacker's critical chance in percentage points
func CritChance(attacker *battle.Combatant) float64 {
	return critBase + critPerFocus*float64(attacker.Stats.Foco)
}

// ExhaustionMultiplier is the tiered exhaustion penalty
func ExhaustionMultiplier(exhaustion int) float64 {
	switch {
	case exhaustion >= 80:
		return 0.5
	case exhaustion >= 60:
		return 0.75
	case exhaustion >= 40:
		return 0.95
	}
	return 1.0
}

// BondMultiplier is the tiered bond bonus
func BondMultiplier(bond int) float64 {
	switch {
	case bond >= 80:
		return 1.2
	case bond >= 60:
		return 1.15
	case bond >= 40:
		return 1.1
	}
	return 1.0
}
