package effects

import (
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/elements"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	t.Run("builds full effect", func(t *testing.T) {
		effect := NewBuilder(battle.EffectBurn).
			WithMagnitude(3).
			ForTurns(4).
			WithDamagePerTurn(9).
			FromSource(elements.Fire, "caster-1").
			Build()

		assert.Equal(t, battle.EffectBurn, effect.Tag)
		assert.Equal(t, 3, effect.Magnitude)
		assert.Equal(t, 4, effect.TurnsTotal)
		assert.Equal(t, 4, effect.TurnsRemaining)
		assert.Equal(t, 9, effect.DamagePerTurn)
		assert.Equal(t, elements.Fire, effect.SourceElement)
		assert.Equal(t, "caster-1", effect.SourceID)
	})

	t.Run("defaults to one turn", func(t *testing.T) {
		effect := NewBuilder(battle.EffectStun).Build()
		assert.Equal(t, 1, effect.TurnsRemaining)

		effect = NewBuilder(battle.EffectStun).ForTurns(0).Build()
		assert.Equal(t, 1, effect.TurnsTotal)
	})

	t.Run("negative damage clamps", func(t *testing.T) {
		effect := NewBuilder(battle.EffectPoison).WithDamagePerTurn(-4).Build()
		assert.Equal(t, 0, effect.DamagePerTurn)
	})
}

func TestRuleFor(t *testing.T) {
	assert.Equal(t, StackingIgnore, RuleFor(battle.EffectStun))
	assert.Equal(t, StackingIgnore, RuleFor(battle.EffectShock))
	assert.Equal(t, StackingReplace, RuleFor(battle.EffectBurn))
	assert.Equal(t, StackingReplace, RuleFor(battle.EffectDefenseUp))
}
