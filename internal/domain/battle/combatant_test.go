package battle_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/stretchr/testify/assert"
)

func TestCombatant_Clamping(t *testing.T) {
	c := &battle.Combatant{HPCurrent: 10, HPMax: 50, EnergyCurrent: 15, EnergyMax: 100}

	assert.Equal(t, 10, c.TakeDamage(25), "damage caps at remaining hp")
	assert.Equal(t, 0, c.HPCurrent)
	assert.True(t, c.IsDefeated())
	assert.Equal(t, 0, c.TakeDamage(-5))

	assert.Equal(t, 50, c.Heal(80), "heal caps at hp max")
	assert.Equal(t, 50, c.HPCurrent)
	assert.Equal(t, 0, c.Heal(1))

	assert.Equal(t, 15, c.SpendEnergy(40))
	assert.Equal(t, 0, c.EnergyCurrent)
	assert.Equal(t, 100, c.RestoreEnergy(500))
	assert.Equal(t, 100, c.EnergyCurrent)
}

func TestStats_Value(t *testing.T) {
	s := battle.Stats{Forca: 1, Agilidade: 2, Resistencia: 3, Foco: 4}
	assert.Equal(t, 1, s.Value(battle.StatPower))
	assert.Equal(t, 2, s.Value(battle.StatAgility))
	assert.Equal(t, 3, s.Value(battle.StatResistance))
	assert.Equal(t, 4, s.Value(battle.StatFocus))
	assert.Equal(t, 0, s.Value(battle.Stat("luck")))
}

func TestCooldowns(t *testing.T) {
	var cd battle.Cooldowns
	assert.True(t, cd.Ready("fireball"))

	cd.Set("fireball", 3)
	cd.Set("heal", 1)
	cd.Set("jab", 0)
	assert.Equal(t, 3, cd.Remaining("fireball"))
	assert.NotContains(t, cd, battle.AbilityTag("jab"))

	cd.Tick()
	assert.Equal(t, 2, cd.Remaining("fireball"))
	assert.True(t, cd.Ready("heal"))
	assert.NotContains(t, cd, battle.AbilityTag("heal"))

	cd.Tick()
	cd.Tick()
	cd.Tick()
	assert.Empty(t, cd)
}

func TestAbility_Compile(t *testing.T) {
	tests := []struct {
		name       string
		ability    battle.Ability
		resolution battle.Resolution
		self       bool
	}{
		{
			name:       "offensive with damage",
			ability:    battle.Ability{Kind: battle.AbilityOffensive, BaseDamage: 20},
			resolution: battle.ResolveDamage,
		},
		{
			name:       "support heal",
			ability:    battle.Ability{Kind: battle.AbilitySupport, BaseDamage: -25},
			resolution: battle.ResolveHeal,
			self:       true,
		},
		{
			name: "defensive buff",
			ability: battle.Ability{Kind: battle.AbilityDefensive, StatusEffects: []battle.EffectSpec{
				{Tag: battle.EffectDefenseUp, Duration: 2},
			}},
			resolution: battle.ResolveEffect,
			self:       true,
		},
		{
			name: "control debuff",
			ability: battle.Ability{Kind: battle.AbilityControl, StatusEffects: []battle.EffectSpec{
				{Tag: battle.EffectStun, Duration: 1},
			}},
			resolution: battle.ResolveEffect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.ability
			a.Compile()
			assert.Equal(t, tt.resolution, a.Resolution)
			assert.Equal(t, tt.self, a.SelfTargeted())
			assert.Equal(t, 100, a.HitChanceBase)
			assert.Equal(t, 100, a.EffectChance)
			assert.Equal(t, 1, a.HitsCount)
			assert.Equal(t, battle.StatPower, a.PrimaryStat)
		})
	}
}

func TestEffectTagGroups(t *testing.T) {
	for _, tag := range []battle.EffectTag{battle.EffectStun, battle.EffectFreeze, battle.EffectParalysis, battle.EffectShock} {
		assert.True(t, tag.IsCrowdControl(), string(tag))
		assert.False(t, tag.IsBuff(), string(tag))
	}
	assert.True(t, battle.EffectFlameShield.IsBuff())
	assert.False(t, battle.EffectBurn.IsBuff())
	assert.False(t, battle.EffectLifeSteal.IsBuff())
	assert.Equal(t, 6, (&battle.StatusEffect{Tag: battle.EffectRegeneration, Magnitude: 6}).HealPerTurn())
	assert.Equal(t, 0, (&battle.StatusEffect{Tag: battle.EffectBurn, Magnitude: 6}).HealPerTurn())
}
