package calculators

import (
	"github.com/KirkDiggler/rpg-arena/internal/dice"
	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
)

const (
	basicAttackHitBase   = 70.0
	basicAttackAgility   = 2.0
	abilityDefenderAgi   = 0.5
	evasionUpBonus       = 30.0
	speedUpBonus         = 15.0
	minHitChance         = 5.0
	maxBasicAttackChance = 95.0
	maxAbilityChance     = 100.0
)

// EvadedInvisible is logged when invisibility forces a miss
const EvadedInvisible = "invisible"

// HitResult is the outcome of hit arbitration
type HitResult struct {
	Hit                  bool
	Chance               float64
	Roll                 int
	Guaranteed           bool
	EvadedByInvisibility bool
}

// HitArbitrator decides whether attacks and ability casts connect
type HitArbitrator struct {
	roller dice.Roller
}

// NewHitArbitrator creates a hit arbitrator drawing from roller
func NewHitArbitrator(roller dice.Roller) *HitArbitrator {
	if roller == nil {
		panic("roller is required")
	}
	return &HitArbitrator{roller: roller}
}

// ResolveBasicAttackHit arbitrates a basic attack. Chance is clamped to [5, 95].
func (h *HitArbitrator) ResolveBasicAttackHit(attacker, defender *battle.Combatant) (*HitResult, error) {
	if attacker.HasEffect(battle.EffectTrueStrike) {
		return &HitResult{Hit: true, Chance: 100, Guaranteed: true}, nil
	}
	if defender.HasEffect(battle.EffectInvisible) {
		return &HitResult{Chance: 0, EvadedByInvisibility: true}, nil
	}

	agility := basicAttackAgility * float64(attacker.Stats.Agilidade-defender.Stats.Agilidade)
	chance := basicAttackHitBase + agility - evasionBonus(attacker, defender)
	chance = clamp(chance, minHitChance, maxBasicAttackChance)

	return h.roll(chance)
}

// ResolveAbilityHit arbitrates an ability cast. Chance is clamped to [5, 100].
// Abilities with full base accuracy still connect against invisibility.
func (h *HitArbitrator) ResolveAbilityHit(attacker, defender *battle.Combatant, ability *battle.Ability) (*HitResult, error) {
	if attacker.HasEffect(battle.EffectTrueStrike) {
		return &HitResult{Hit: true, Chance: 100, Guaranteed: true}, nil
	}
	if defender.HasEffect(battle.EffectInvisible) && ability.HitChanceBase < 100 {
		return &HitResult{Chance: 0, EvadedByInvisibility: true}, nil
	}

	chance := float64(ability.HitChanceBase) -
		abilityDefenderAgi*float64(defender.Stats.Agilidade) -
		evasionBonus(attacker, defender)
	chance = clamp(chance, minHitChance, maxAbilityChance)

	return h.roll(chance)
}

func (h *HitArbitrator) roll(chance float64) (*HitResult, error) {
	hit, roll, err := rollUnder(h.roller, chance)
	if err != nil {
		return nil, err
	}
	return &HitResult{Hit: hit, Chance: chance, Roll: roll}, nil
}

// evasionBonus is the defender's total evasion in percentage points
func evasionBonus(attacker, defender *battle.Combatant) float64 {
	bonus := 0.0
	if defender.HasEffect(battle.EffectEvasionUp) {
		bonus += evasionUpBonus
	}
	if defender.HasEffect(battle.EffectSpeedUp) {
		bonus += speedUpBonus
	}
	bonus += 100 * defender.Synergy.Evasion
	bonus -= 100 * attacker.Synergy.EvasionReductionOnEnemy
	return bonus
}
