package catalog_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/catalog"
	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	arenaerr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := catalog.Default()

	fireball, err := c.GetAbility("fireball")
	require.NoError(t, err)
	assert.Equal(t, battle.ResolveDamage, fireball.Resolution)

	mend, err := c.GetAbility("tidal_mend")
	require.NoError(t, err)
	assert.Equal(t, battle.ResolveHeal, mend.Resolution)
	assert.True(t, mend.SelfTargeted())

	skin, err := c.GetAbility("stone_skin")
	require.NoError(t, err)
	assert.Equal(t, battle.ResolveEffect, skin.Resolution)
	assert.True(t, skin.SelfTargeted())
	assert.Equal(t, 100, skin.HitChanceBase)

	clap, err := c.GetAbility("thunder_clap")
	require.NoError(t, err)
	assert.False(t, clap.SelfTargeted())

	potion, err := c.GetItem(catalog.DefaultItem)
	require.NoError(t, err)
	assert.Equal(t, 30, potion.Heal)
	assert.True(t, potion.IsHealing())

	bomb, err := c.GetItem("smoke_bomb")
	require.NoError(t, err)
	assert.False(t, bomb.IsHealing())

	_, err = c.GetAbility("missing")
	assert.True(t, arenaerr.IsNotFound(err))
	_, err = c.GetItem("missing")
	assert.True(t, arenaerr.IsNotFound(err))

	assert.Contains(t, c.Tags(), battle.AbilityTag("flurry"))
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		abilities []battle.Ability
		items     []catalog.Item
		code      arenaerr.Code
	}{
		{
			name:      "missing tag",
			abilities: []battle.Ability{{Name: "Nameless"}},
			code:      arenaerr.CodeValidation,
		},
		{
			name:      "negative energy cost",
			abilities: []battle.Ability{{Tag: "bad", EnergyCost: -1}},
			code:      arenaerr.CodeValidation,
		},
		{
			name:      "duplicate ability",
			abilities: []battle.Ability{{Tag: "twin"}, {Tag: "twin"}},
			code:      arenaerr.CodeAlreadyExists,
		},
		{
			name:  "item without key",
			items: []catalog.Item{{Name: "Mystery"}},
			code:  arenaerr.CodeValidation,
		},
		{
			name:  "duplicate item",
			items: []catalog.Item{{Key: "potion"}, {Key: "potion"}},
			code:  arenaerr.CodeAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.New(tt.abilities, tt.items)
			require.Error(t, err)
			assert.Equal(t, tt.code, arenaerr.GetCode(err))
		})
	}
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	abilities := []battle.Ability{{Tag: "jab", Kind: battle.AbilityOffensive, BaseDamage: 5}}
	c, err := catalog.New(abilities, nil)
	require.NoError(t, err)

	abilities[0].BaseDamage = 500
	jab, err := c.GetAbility("jab")
	require.NoError(t, err)
	assert.Equal(t, 5, jab.BaseDamage)
}

func TestParse(t *testing.T) {
	data := []byte(`
abilities:
  - tag: quake
    kind: offensive
    base_damage: 12
    stat_multiplier: 0.5
    primary_stat: resistencia
    energy_cost: 20
    hits_count: 2
    status_effects:
      - tag: stun
        duration: 1
  - tag: rally
    kind: support
    status_effects:
      - tag: evasion_up
        duration: 2
items:
  - key: potion
    heal: 30
`)

	c, err := catalog.Parse(data)
	require.NoError(t, err)

	quake, err := c.GetAbility("quake")
	require.NoError(t, err)
	assert.Equal(t, battle.StatResistance, quake.PrimaryStat)
	assert.Equal(t, 2, quake.HitsCount)
	assert.Equal(t, battle.ResolveDamage, quake.Resolution)
	require.Len(t, quake.StatusEffects, 1)
	assert.Equal(t, battle.EffectStun, quake.StatusEffects[0].Tag)

	rally, err := c.GetAbility("rally")
	require.NoError(t, err)
	assert.Equal(t, battle.ResolveEffect, rally.Resolution)
	assert.True(t, rally.SelfTargeted())

	_, err = catalog.Parse([]byte("abilities: [::"))
	assert.Equal(t, arenaerr.CodeValidation, arenaerr.GetCode(err))
}

func TestLoad(t *testing.T) {
	c, err := catalog.Load("../../configs/catalog.yaml")
	require.NoError(t, err)

	fireball, err := c.GetAbility("fireball")
	require.NoError(t, err)
	assert.Equal(t, 25, fireball.EnergyCost)
	assert.Equal(t, 40, fireball.EffectChance)

	_, err = catalog.Load("does-not-exist.yaml")
	assert.Error(t, err)
}
