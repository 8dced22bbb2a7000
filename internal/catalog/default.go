package catalog

import (
	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
)

var defaultAbilities = []battle.Ability{
	{
		Tag: "fireball", Name: "Fireball", Kind: battle.AbilityOffensive,
		BaseDamage: 18, StatMultiplier: 0.6, PrimaryStat: battle.StatPower,
		EnergyCost: 25, CooldownTurns: 2, HitChanceBase: 90, EffectChance: 40,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectBurn, Duration: 3}},
	},
	{
		Tag: "inferno_blast", Name: "Inferno Blast", Kind: battle.AbilityOffensive,
		BaseDamage: 30, StatMultiplier: 0.8, PrimaryStat: battle.StatPower,
		EnergyCost: 45, CooldownTurns: 4, HitChanceBase: 80, EffectChance: 30,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectInferno, Duration: 2}},
	},
	{
		Tag: "venom_strike", Name: "Venom Strike", Kind: battle.AbilityOffensive,
		BaseDamage: 8, StatMultiplier: 0.4, PrimaryStat: battle.StatAgility,
		EnergyCost: 15, CooldownTurns: 1, HitChanceBase: 95, EffectChance: 60,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectPoison, Duration: 3}},
	},
	{
		Tag: "flurry", Name: "Flurry", Kind: battle.AbilityOffensive,
		BaseDamage: 4, StatMultiplier: 0.2, PrimaryStat: battle.StatAgility,
		EnergyCost: 20, CooldownTurns: 2, HitChanceBase: 85, HitsCount: 3,
	},
	{
		Tag: "vampiric_bite", Name: "Vampiric Bite", Kind: battle.AbilityOffensive,
		BaseDamage: 12, StatMultiplier: 0.5, PrimaryStat: battle.StatPower,
		EnergyCost: 20, CooldownTurns: 2, HitChanceBase: 90,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectLifeSteal, Magnitude: 50}},
	},
	{
		Tag: "shock_bolt", Name: "Shock Bolt", Kind: battle.AbilityControl,
		BaseDamage: 10, StatMultiplier: 0.3, PrimaryStat: battle.StatFocus,
		EnergyCost: 30, CooldownTurns: 3, HitChanceBase: 85, EffectChance: 35,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectShock, Duration: 1}},
	},
	{
		Tag: "thunder_clap", Name: "Thunder Clap", Kind: battle.AbilityControl,
		EnergyCost: 30, CooldownTurns: 4, HitChanceBase: 75,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectStun, Duration: 1}},
	},
	{
		Tag: "tidal_mend", Name: "Tidal Mend", Kind: battle.AbilitySupport,
		BaseDamage: -20, StatMultiplier: 0.5, PrimaryStat: battle.StatFocus,
		EnergyCost: 25, CooldownTurns: 3,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectRegeneration, Magnitude: 5, Duration: 2}},
	},
	{
		Tag: "stone_skin", Name: "Stone Skin", Kind: battle.AbilityDefensive,
		EnergyCost: 15, CooldownTurns: 3,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectDefenseUp, Duration: 2}},
	},
	{
		Tag: "tailwind", Name: "Tailwind", Kind: battle.AbilityDefensive,
		EnergyCost: 15, CooldownTurns: 3,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectSpeedUp, Duration: 2}},
	},
	{
		Tag: "shadow_veil", Name: "Shadow Veil", Kind: battle.AbilityDefensive,
		EnergyCost: 30, CooldownTurns: 5,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectInvisible, Duration: 1}},
	},
	{
		Tag: "hawk_eye", Name: "Hawk Eye", Kind: battle.AbilitySupport,
		EnergyCost: 10, CooldownTurns: 4,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectTrueStrike, Duration: 2}},
	},
	{
		Tag: "flame_ward", Name: "Flame Ward", Kind: battle.AbilityDefensive,
		EnergyCost: 20, CooldownTurns: 4,
		StatusEffects: []battle.EffectSpec{{Tag: battle.EffectFlameShield, Duration: 3}},
	},
}

var defaultItems = []Item{
	{Key: DefaultItem, Name: "Potion", Heal: 30},
	{Key: "hi_potion", Name: "Hi-Potion", Heal: 60},
	{Key: "smoke_bomb", Name: "Smoke Bomb"},
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(defaultAbilities, defaultItems)
	if err != nil {
		panic(err)
	}
	return c
}
