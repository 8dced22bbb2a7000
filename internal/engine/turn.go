package engine

import (
	"github.com/KirkDiggler/rpg-arena/internal/catalog"
	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/calculators"
	"github.com/KirkDiggler/rpg-arena/internal/effects"
	arenaerr "github.com/KirkDiggler/rpg-arena/internal/errors"
)

// turnContext carries one action through validation and execution
type turnContext struct {
	r      *Resolver
	room   *battle.Room
	side   battle.Side
	actor  *battle.Combatant
	target *battle.Combatant

	// resolved by validate
	ability *battle.Ability
	item    *catalog.Item
}

func newTurnContext(r *Resolver, room *battle.Room, side battle.Side) *turnContext {
	return &turnContext{
		r:      r,
		room:   room,
		side:   side,
		actor:  room.Combatant(side),
		target: room.Combatant(side.Opponent()),
	}
}

// validate checks every precondition of action without mutating anything
func (tc *turnContext) validate(action battle.Action) error {
	switch action.Kind {
	case battle.ActionAttack:
		return tc.requireEnergy(basicAttackCost)

	case battle.ActionAbility:
		if action.AbilityIndex < 0 || action.AbilityIndex >= len(tc.actor.Abilities) {
			return arenaerr.AbilityIndexInvalid(action.AbilityIndex)
		}
		tag := tc.actor.Abilities[action.AbilityIndex]
		ability, err := tc.r.abilities.GetAbility(tag)
		if err != nil {
			if arenaerr.IsNotFound(err) {
				return arenaerr.AbilityIndexInvalid(action.AbilityIndex).WithMeta("ability", string(tag))
			}
			return arenaerr.Wrapf(err, "failed to look up ability %s", tag)
		}
		if remaining := tc.actor.Cooldowns.Remaining(tag); remaining > 0 {
			return arenaerr.AbilityOnCooldown(string(tag), remaining)
		}
		if err := tc.requireEnergy(ability.EnergyCost); err != nil {
			return err
		}
		tc.ability = ability
		return nil

	case battle.ActionDefend:
		return nil

	case battle.ActionUseItem:
		if tc.actor.ItemsUsed >= maxItemsPerBattle {
			return arenaerr.ItemUseLimitReached(maxItemsPerBattle)
		}
		key := action.Item
		if key == "" {
			key = catalog.DefaultItem
		}
		item, err := tc.r.items.GetItem(key)
		if err != nil {
			if arenaerr.IsNotFound(err) {
				return arenaerr.InvalidItem(key)
			}
			return arenaerr.Wrapf(err, "failed to look up item %s", key)
		}
		if !item.IsHealing() {
			return arenaerr.InvalidItem(key)
		}
		if tc.actor.MissingHP() == 0 {
			return arenaerr.HPAlreadyFull()
		}
		tc.item = item
		return nil
	}

	return arenaerr.UnknownAction(string(action.Kind))
}

func (tc *turnContext) requireEnergy(cost int) error {
	if tc.actor.EnergyCurrent < cost {
		return arenaerr.InsufficientEnergy(cost, tc.actor.EnergyCurrent)
	}
	return nil
}

// execute applies a validated action and ends the turn
func (tc *turnContext) execute(action battle.Action) (*battle.Outcome, error) {
	outcome := &battle.Outcome{
		Turn:  tc.room.Turn,
		Kind:  action.Kind,
		Actor: tc.side,
	}

	var err error
	switch action.Kind {
	case battle.ActionAttack:
		err = tc.attack(outcome)
	case battle.ActionAbility:
		err = tc.cast(outcome)
	case battle.ActionDefend:
		tc.defend(outcome)
	case battle.ActionUseItem:
		tc.useItem(outcome)
	}
	if err != nil {
		return nil, err
	}

	tc.endTurn(outcome)
	return outcome, nil
}

func (tc *turnContext) attack(outcome *battle.Outcome) error {
	outcome.Target = tc.side.Opponent()
	outcome.EnergySpent = tc.actor.SpendEnergy(basicAttackCost)

	hit, err := tc.r.hits.ResolveBasicAttackHit(tc.actor, tc.target)
	if err != nil {
		return arenaerr.Wrap(err, "failed to resolve hit")
	}
	outcome.HitChance = hit.Chance
	if !hit.Hit {
		recordMiss(outcome, hit)
		return nil
	}

	dmg, err := tc.r.damage.BasicAttack(tc.actor, tc.target)
	if err != nil {
		return arenaerr.Wrap(err, "failed to compute damage")
	}
	tc.applyDamage(outcome, dmg)
	return nil
}

func (tc *turnContext) cast(outcome *battle.Outcome) error {
	ability := tc.ability
	outcome.Ability = ability.Tag
	outcome.EnergySpent = tc.actor.SpendEnergy(ability.EnergyCost)

	if ability.SelfTargeted() {
		outcome.Target = tc.side
		if ability.Resolution == battle.ResolveHeal {
			outcome.Heal = tc.actor.Heal(calculators.AbilityHeal(tc.actor, ability))
		}
		if err := tc.applyEffects(outcome, ability, 0); err != nil {
			return err
		}
		tc.actor.Cooldowns.Set(ability.Tag, ability.CooldownTurns)
		return nil
	}

	outcome.Target = tc.side.Opponent()
	hit, err := tc.r.hits.ResolveAbilityHit(tc.actor, tc.target, ability)
	if err != nil {
		return arenaerr.Wrap(err, "failed to resolve hit")
	}
	outcome.HitChance = hit.Chance
	if !hit.Hit {
		recordMiss(outcome, hit)
		return nil
	}

	damage := 0
	if ability.Resolution == battle.ResolveDamage {
		dmg, err := tc.r.damage.Ability(tc.actor, tc.target, ability)
		if err != nil {
			return arenaerr.Wrap(err, "failed to compute damage")
		}
		outcome.HitsCount = dmg.Hits
		tc.applyDamage(outcome, dmg)
		damage = dmg.Damage
	} else {
		tc.target.IsDefending = false
	}

	if err := tc.applyEffects(outcome, ability, damage); err != nil {
		return err
	}
	tc.actor.Cooldowns.Set(ability.Tag, ability.CooldownTurns)
	return nil
}

func (tc *turnContext) defend(outcome *battle.Outcome) {
	tc.actor.IsDefending = true
	outcome.Target = tc.side
	outcome.EnergyRestored = tc.actor.RestoreEnergy(defendEnergy)
}

func (tc *turnContext) useItem(outcome *battle.Outcome) {
	outcome.Target = tc.side
	outcome.Item = tc.item.Key
	outcome.Heal = tc.actor.Heal(tc.item.Heal)
	tc.actor.ItemsUsed++
}

// applyDamage lands a computed hit. Outcome damage is the hp actually removed;
// life steal is sized from the computed damage.
func (tc *turnContext) applyDamage(outcome *battle.Outcome, dmg *calculators.DamageResult) {
	outcome.Damage = tc.target.TakeDamage(dmg.Damage)
	tc.target.IsDefending = false

	outcome.Critical = dmg.Critical
	outcome.Blocked = dmg.Blocked
	outcome.ElementalClass = dmg.Matchup.Class
	if dmg.LifeSteal > 0 {
		outcome.LifeSteal += tc.actor.Heal(dmg.LifeSteal)
	}

	if tc.target.HasEffect(battle.EffectFlameShield) {
		if effects.NewLedger(tc.actor).Apply(calculators.CounterBurn(tc.target)) {
			outcome.CounterEffects = append(outcome.CounterEffects, battle.EffectBurn)
		}
	}
}

// applyEffects rolls each of ability's effects in order. Buffs land on the
// caster, everything else on the target. Life steal heals immediately.
func (tc *turnContext) applyEffects(outcome *battle.Outcome, ability *battle.Ability, damage int) error {
	for _, spec := range ability.StatusEffects {
		landed, err := calculators.RollEffect(tc.r.roller, ability.EffectChance)
		if err != nil {
			return arenaerr.Wrap(err, "failed to roll effect")
		}
		if !landed {
			continue
		}

		if spec.Tag == battle.EffectLifeSteal {
			outcome.LifeSteal += tc.actor.Heal(calculators.LifeStealHeal(damage, spec.Magnitude))
			continue
		}

		holder := tc.target
		if spec.Tag.IsBuff() {
			holder = tc.actor
		}
		if effects.NewLedger(holder).Apply(calculators.BuildEffect(spec, tc.actor)) {
			outcome.EffectsApplied = append(outcome.EffectsApplied, spec.Tag)
		}
	}
	return nil
}

// endTurn finishes the battle if the target fell, otherwise hands over the turn
func (tc *turnContext) endTurn(outcome *battle.Outcome) {
	if tc.target.IsDefeated() {
		tc.r.finish(tc.room, tc.side, outcome)
		return
	}
	tc.room.FlipTurn()
}

func recordMiss(outcome *battle.Outcome, hit *calculators.HitResult) {
	outcome.Missed = true
	if hit.EvadedByInvisibility {
		outcome.EvadedReason = calculators.EvadedInvisible
	}
}
