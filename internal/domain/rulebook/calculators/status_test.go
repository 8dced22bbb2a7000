package calculators_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/calculators"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/elements"
	"github.com/stretchr/testify/assert"
)

func TestDamagePerTurn(t *testing.T) {
	tests := []struct {
		tag  battle.EffectTag
		want int
	}{
		{battle.EffectBurn, 9},
		{battle.EffectPoison, 9},
		{battle.EffectBleed, 9},
		{battle.EffectInferno, 18},
		{battle.EffectShock, 6},
		{battle.EffectStun, 0},
		{battle.EffectDefenseUp, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			assert.Equal(t, tt.want, calculators.DamagePerTurn(tt.tag, 20))
		})
	}
}

func TestBuildEffect(t *testing.T) {
	applier := fighter(elements.Electricity, battle.Stats{Forca: 30})

	effect := calculators.BuildEffect(battle.EffectSpec{Tag: battle.EffectPoison, Magnitude: 2, Duration: 3}, applier)

	assert.Equal(t, battle.EffectPoison, effect.Tag)
	assert.Equal(t, 11, effect.DamagePerTurn)
	assert.Equal(t, 3, effect.TurnsTotal)
	assert.Equal(t, 3, effect.TurnsRemaining)
	assert.Equal(t, elements.Electricity, effect.SourceElement)

	applier.Stats.Forca = 100
	assert.Equal(t, 11, effect.DamagePerTurn, "fixed at apply time")
}

func TestCounterBurn(t *testing.T) {
	holder := fighter(elements.Water, battle.Stats{Forca: 10})
	burn := calculators.CounterBurn(holder)

	assert.Equal(t, battle.EffectBurn, burn.Tag)
	assert.Equal(t, 7, burn.DamagePerTurn)
	assert.Equal(t, 2, burn.TurnsRemaining)
}

func TestAbilityHeal(t *testing.T) {
	caster := fighter(elements.Light, battle.Stats{Foco: 10})
	ability := &battle.Ability{Kind: battle.AbilitySupport, BaseDamage: -25, StatMultiplier: 0.5, PrimaryStat: battle.StatFocus}

	assert.Equal(t, 30, calculators.AbilityHeal(caster, ability))
	assert.Equal(t, 16, calculators.LifeStealHeal(84, 20))
	assert.Equal(t, 0, calculators.LifeStealHeal(0, 20))
}
