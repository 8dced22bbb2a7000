package main

import (
	"github.com/KirkDiggler/rpg-arena/internal/catalog"
	domain "github.com/KirkDiggler/rpg-arena/internal/domain/battle"
)

const (
	potionThreshold = 0.35
	maxPotions      = 2
	attackCost      = 10
)

// chooseAction picks a move from the actor's own view of the room: drink when
// low, cast the first affordable ability, else attack, else defend to recover
func chooseAction(actor *domain.Combatant, abilities catalog.AbilityCatalog) domain.Action {
	if actor.ItemsUsed < maxPotions && float64(actor.HPCurrent) < potionThreshold*float64(actor.HPMax) {
		return domain.Action{Kind: domain.ActionUseItem, Item: catalog.DefaultItem}
	}

	for i, tag := range actor.Abilities {
		ability, err := abilities.GetAbility(tag)
		if err != nil || !actor.Cooldowns.Ready(tag) || ability.EnergyCost > actor.EnergyCurrent {
			continue
		}
		if ability.Resolution == domain.ResolveHeal && actor.MissingHP() == 0 {
			continue
		}
		return domain.Action{Kind: domain.ActionAbility, AbilityIndex: i}
	}

	if actor.EnergyCurrent >= attackCost {
		return domain.Action{Kind: domain.ActionAttack}
	}
	return domain.Action{Kind: domain.ActionDefend}
}
