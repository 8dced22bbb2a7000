package calculators_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/dice/mock"
	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/calculators"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/elements"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noCrit is a crit roll above any chance reachable from focus 0
const noCrit = 99

func fighter(element elements.Element, stats battle.Stats) *battle.Combatant {
	return &battle.Combatant{
		ID:        string(element),
		Element:   element,
		Stats:     stats,
		HPCurrent: 100,
		HPMax:     100,
		Effects:   map[battle.EffectTag]*battle.StatusEffect{},
	}
}

func basicAttack(t *testing.T, attacker, defender *battle.Combatant, rolls ...int) *calculators.DamageResult {
	t.Helper()
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls(rolls)
	calc := calculators.NewDamageCalculator(roller)

	result, err := calc.BasicAttack(attacker, defender)
	require.NoError(t, err)
	assert.Equal(t, 0, roller.Remaining(), "all rolls consumed")
	return result
}

func TestBasicAttack_ElementalDisadvantage(t *testing.T) {
	attacker := fighter(elements.Fire, battle.Stats{Forca: 20, Resistencia: 10})
	water := fighter(elements.Water, battle.Stats{Resistencia: 10})
	neutral := fighter(elements.Fire, battle.Stats{Resistencia: 10})

	vsWater := basicAttack(t, attacker, water, 3, noCrit)
	vsNeutral := basicAttack(t, attacker, neutral, 3, noCrit)

	// base 5 + 10 + 3 = 18, reduction 0.3*10 = 3
	assert.Equal(t, 15, vsNeutral.Damage)
	assert.Equal(t, 11, vsWater.Damage) // 15 * 0.75 truncated
	assert.Equal(t, elements.ClassDisadvantage, vsWater.Matchup.Class)
	assert.Less(t, vsWater.Damage, vsNeutral.Damage)
	assert.False(t, vsWater.Critical)
}

func TestBasicAttack_DefenseUpDoublesReduction(t *testing.T) {
	attacker := fighter(elements.Fire, battle.Stats{Forca: 20})
	plain := fighter(elements.Fire, battle.Stats{Resistencia: 10})
	buffed := fighter(elements.Fire, battle.Stats{Resistencia: 10})
	buffed.Effects[battle.EffectDefenseUp] = &battle.StatusEffect{Tag: battle.EffectDefenseUp, TurnsRemaining: 2}

	without := basicAttack(t, attacker, plain, 3, noCrit)
	with := basicAttack(t, attacker, buffed, 3, noCrit)

	assert.InDelta(t, 3.0, without.Reduction, 1e-9)
	assert.InDelta(t, 2*without.Reduction, with.Reduction, 1e-9)
	assert.Equal(t, 15, without.Damage)
	assert.Equal(t, 12, with.Damage)
}

func TestBasicAttack_Modifiers(t *testing.T) {
	tests := []struct {
		name     string
		attacker func() *battle.Combatant
		defender func() *battle.Combatant
		rolls    []int
		want     int
		crit     bool
		blocked  bool
	}{
		{
			name:     "critical doubles",
			attacker: func() *battle.Combatant { return fighter(elements.Fire, battle.Stats{Forca: 20, Foco: 50}) },
			defender: func() *battle.Combatant { return fighter(elements.Fire, battle.Stats{Resistencia: 10}) },
			rolls:    []int{3, 19}, // crit chance 5 + 15 = 20
			want:     30,
			crit:     true,
		},
		{
			name:     "defending halves after crit",
			attacker: func() *battle.Combatant { return fighter(elements.Fire, battle.Stats{Forca: 20, Foco: 50}) },
			defender: func() *battle.Combatant {
				d := fighter(elements.Fire, battle.Stats{Resistencia: 10})
				d.IsDefending = true
				return d
			},
			rolls:   []int{3, 0},
			want:    15,
			crit:    true,
			blocked: true,
		},
		{
			name:     "floor at one",
			attacker: func() *battle.Combatant { return fighter(elements.Fire, battle.Stats{}) },
			defender: func() *battle.Combatant { return fighter(elements.Fire, battle.Stats{Resistencia: 100}) },
			rolls:    []int{1, noCrit},
			want:     1,
		},
		{
			name: "bond and exhaustion tiers",
			attacker: func() *battle.Combatant {
				a := fighter(elements.Fire, battle.Stats{Forca: 20})
				a.Bond = 80
				a.Exhaustion = 60
				return a
			},
			defender: func() *battle.Combatant { return fighter(elements.Fire, battle.Stats{Resistencia: 10}) },
			rolls:    []int{3, noCrit},
			want:     13, // 15 * 0.75 * 1.2 = 13.5
		},
		{
			name: "synergy bonus and reduction",
			attacker: func() *battle.Combatant {
				a := fighter(elements.Fire, battle.Stats{Forca: 20})
				a.Synergy.DamageBonus = 0.2
				a.Synergy.EnemyResistanceReduction = 0.5
				return a
			},
			defender: func() *battle.Combatant {
				d := fighter(elements.Fire, battle.Stats{Resistencia: 10})
				d.Synergy.DamageReduction = 0.1
				return d
			},
			rolls: []int{3, noCrit},
			want:  17, // (18 - 1.5) * 1.2 * 0.9 = 17.82
		},
		{
			name:     "opposite pair",
			attacker: func() *battle.Combatant { return fighter(elements.Light, battle.Stats{Forca: 20}) },
			defender: func() *battle.Combatant { return fighter(elements.Shadow, battle.Stats{Resistencia: 10}) },
			rolls:    []int{3, noCrit},
			want:     30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := basicAttack(t, tt.attacker(), tt.defender(), tt.rolls...)
			assert.Equal(t, tt.want, result.Damage)
			assert.Equal(t, tt.crit, result.Critical)
			assert.Equal(t, tt.blocked, result.Blocked)
			assert.Equal(t, 1, result.Hits)
		})
	}
}

func TestAbilityDamage_MultiHitAndLifeSteal(t *testing.T) {
	attacker := fighter(elements.Fire, battle.Stats{Forca: 20})
	attacker.Synergy.LifeSteal = 0.25
	defender := fighter(elements.Fire, battle.Stats{Resistencia: 10})

	ability := &battle.Ability{
		Tag:            "flurry",
		Kind:           battle.AbilityOffensive,
		BaseDamage:     10,
		StatMultiplier: 1.0,
		HitsCount:      3,
	}
	ability.Compile()

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{2, noCrit})
	calc := calculators.NewDamageCalculator(roller)

	result, err := calc.Ability(attacker, defender, ability)
	require.NoError(t, err)

	// 10 + 20 + 2 = 32, reduction 0.4*10 = 4
	assert.InDelta(t, 4.0, result.Reduction, 1e-9)
	assert.Equal(t, 28, result.PerHit)
	assert.Equal(t, 84, result.Damage)
	assert.Equal(t, 3, result.Hits)
	assert.Equal(t, 21, result.LifeSteal)
}

func TestAbilityDamage_MinimumBeforeMultiHit(t *testing.T) {
	attacker := fighter(elements.Fire, battle.Stats{})
	defender := fighter(elements.Fire, battle.Stats{Resistencia: 200})
	ability := &battle.Ability{Kind: battle.AbilityOffensive, BaseDamage: 1, HitsCount: 4}
	ability.Compile()

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1, noCrit})

	result, err := calculators.NewDamageCalculator(roller).Ability(attacker, defender, ability)
	require.NoError(t, err)
	assert.Equal(t, 1, result.PerHit)
	assert.Equal(t, 4, result.Damage)
}

func TestTierMultipliers(t *testing.T) {
	assert.Equal(t, 1.0, calculators.ExhaustionMultiplier(39))
	assert.Equal(t, 0.95, calculators.ExhaustionMultiplier(40))
	assert.Equal(t, 0.75, calculators.ExhaustionMultiplier(60))
	assert.Equal(t, 0.5, calculators.ExhaustionMultiplier(100))

	assert.Equal(t, 1.0, calculators.BondMultiplier(0))
	assert.Equal(t, 1.1, calculators.BondMultiplier(40))
	assert.Equal(t, 1.15, calculators.BondMultiplier(79))
	assert.Equal(t, 1.2, calculators.BondMultiplier(80))
}

func TestDamageCalculator_PropagatesRollErrors(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	calc := calculators.NewDamageCalculator(roller)

	_, err := calc.BasicAttack(fighter(elements.Fire, battle.Stats{}), fighter(elements.Water, battle.Stats{}))
	assert.Error(t, err)
}
