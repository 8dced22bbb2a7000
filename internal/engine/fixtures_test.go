package engine_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/catalog"
	"github.com/KirkDiggler/rpg-arena/internal/dice"
	"github.com/KirkDiggler/rpg-arena/internal/dice/mock"
	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/elements"
	"github.com/KirkDiggler/rpg-arena/internal/engine"
	"github.com/stretchr/testify/require"
)

const noCrit = 99

var testAbilities = []battle.Ability{
	{Tag: "quake", Kind: battle.AbilityOffensive, BaseDamage: 10, EnergyCost: 10, CooldownTurns: 3},
	{Tag: "stun_bolt", Kind: battle.AbilityControl, EnergyCost: 10, CooldownTurns: 2,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectStun, Duration: 1}}},
	{Tag: "stone_skin", Kind: battle.AbilityDefensive, EnergyCost: 10,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectDefenseUp, Duration: 2}}},
	{Tag: "mend", Kind: battle.AbilitySupport, BaseDamage: -20, StatMultiplier: 1, PrimaryStat: battle.StatFocus, EnergyCost: 10},
	{Tag: "leech", Kind: battle.AbilityOffensive, BaseDamage: 10, EnergyCost: 10,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectLifeSteal, Magnitude: 50}}},
	{Tag: "scorch", Kind: battle.AbilityOffensive, BaseDamage: 5, EnergyCost: 10, EffectChance: 50,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectBurn, Duration: 2}}},
	{Tag: "wild_swing", Kind: battle.AbilityOffensive, BaseDamage: 10, EnergyCost: 10, CooldownTurns: 2, HitChanceBase: 60},
	{Tag: "costly", Kind: battle.AbilityOffensive, BaseDamage: 10, EnergyCost: 500},
}

var testItems = []catalog.Item{
	{Key: catalog.DefaultItem, Heal: 30},
	{Key: "smoke_bomb"},
}

type fixture struct {
	roller   *mockdice.ManualMockRoller
	resolver *engine.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c, err := catalog.New(testAbilities, testItems)
	require.NoError(t, err)

	roller := mockdice.NewManualMockRoller()
	return &fixture{
		roller:   roller,
		resolver: newResolver(roller, c),
	}
}

func newResolver(roller dice.Roller, c *catalog.Catalog) *engine.Resolver {
	return engine.NewResolver(&engine.ResolverConfig{
		Roller:    roller,
		Abilities: c,
		Items:     c,
	})
}

func combatant(id string, stats battle.Stats, abilities ...battle.AbilityTag) *battle.Combatant {
	return &battle.Combatant{
		ID:        id,
		PlayerID:  "player-" + id,
		Name:      id,
		Element:   elements.Fire,
		Stats:     stats,
		HPCurrent: 100,
		HPMax:     100,
		Abilities: abilities,
	}
}

func readyRoom(t *testing.T, a, b *battle.Combatant) *battle.Room {
	t.Helper()
	room := battle.NewRoom("room-1", a, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, room.Seat(b))
	room.A.Ready = true
	room.B.Ready = true
	return room
}

func (f *fixture) activeRoom(t *testing.T, a, b *battle.Combatant) *battle.Room {
	t.Helper()
	room, err := f.resolver.Start(readyRoom(t, a, b))
	require.NoError(t, err)
	return room
}

func (f *fixture) resolve(t *testing.T, room *battle.Room, side battle.Side, action battle.Action, rolls ...int) (*battle.Room, []battle.Outcome) {
	t.Helper()
	f.roller.SetRolls(rolls)
	next, outcomes, err := f.resolver.Resolve(room, side, action)
	require.NoError(t, err)
	require.Equal(t, 0, f.roller.Remaining(), "unexpected unused rolls")
	return next, outcomes
}

// last returns the action outcome, skipping any start-of-turn outcome
func last(outcomes []battle.Outcome) battle.Outcome {
	return outcomes[len(outcomes)-1]
}

var (
	attack = battle.Action{Kind: battle.ActionAttack}
	defend = battle.Action{Kind: battle.ActionDefend}
)

func cast(index int) battle.Action {
	return battle.Action{Kind: battle.ActionAbility, AbilityIndex: index}
}

func useItem(key string) battle.Action {
	return battle.Action{Kind: battle.ActionUseItem, Item: key}
}
