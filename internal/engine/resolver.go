package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-arena/internal/catalog"
	"github.com/KirkDiggler/rpg-arena/internal/dice"
	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/calculators"
	"github.com/KirkDiggler/rpg-arena/internal/effects"
	arenaerr "github.com/KirkDiggler/rpg-arena/internal/errors"
)

const (
	baseEnergy        = 100
	basicAttackCost   = 10
	defendEnergy      = 20
	maxItemsPerBattle = 2
)

// ResolverConfig holds the collaborators of a Resolver
type ResolverConfig struct {
	Roller    dice.Roller
	Abilities catalog.AbilityCatalog
	Items     catalog.ItemCatalog
}

// Resolver sequences a battle one action at a time. Every call works on a deep
// copy of the given room and returns the new room, so a failed call leaves the
// caller's snapshot untouched.
type Resolver struct {
	roller    dice.Roller
	hits      *calculators.HitArbitrator
	damage    *calculators.DamageCalculator
	abilities catalog.AbilityCatalog
	items     catalog.ItemCatalog
}

// NewResolver creates a resolver
func NewResolver(cfg *ResolverConfig) *Resolver {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}
	if cfg.Abilities == nil {
		panic("ability catalog is required")
	}
	if cfg.Items == nil {
		panic("item catalog is required")
	}

	return &Resolver{
		roller:    cfg.Roller,
		hits:      calculators.NewHitArbitrator(cfg.Roller),
		damage:    calculators.NewDamageCalculator(cfg.Roller),
		abilities: cfg.Abilities,
		items:     cfg.Items,
	}
}

// Start moves a ready room to active, seeding energy and giving side A the
// first turn
func (r *Resolver) Start(room *battle.Room) (*battle.Room, error) {
	if room == nil {
		return nil, arenaerr.InvalidArgument("room is required")
	}
	if !room.CanStart() {
		return nil, arenaerr.Validationf("room %s cannot start from %s with both sides ready", room.ID, room.Status)
	}

	work := room.Clone()
	for _, side := range []battle.Side{battle.SideA, battle.SideB} {
		c := work.Combatant(side)
		opponent := work.Combatant(side.Opponent())

		c.EnergyMax = StartingEnergy(c.Synergy, opponent.Synergy)
		c.EnergyCurrent = c.EnergyMax
		if c.HPCurrent > c.HPMax || c.HPCurrent <= 0 {
			c.HPCurrent = c.HPMax
		}
		c.IsDefending = false
		c.ItemsUsed = 0
		if c.Effects == nil {
			c.Effects = make(map[battle.EffectTag]*battle.StatusEffect)
		}
		if c.Cooldowns == nil {
			c.Cooldowns = make(battle.Cooldowns)
		}
	}

	if err := work.Activate(); err != nil {
		return nil, arenaerr.Wrap(err, "failed to activate room")
	}
	return work, nil
}

// StartingEnergy is the max energy of a combatant given its own modifiers and
// its opponent's. Never below 1.
func StartingEnergy(own, opponent battle.SynergyModifiers) int {
	energy := math.Floor(baseEnergy * (1 + own.EnergyBonus) * (1 - opponent.EnemyEnergyReduction))
	if energy < 1 {
		return 1
	}
	return int(energy)
}

// BeginTurn runs the start-of-turn phase for the side to act: cooldowns count
// down, then effects tick. It runs at most once per turn. The returned outcome
// is nil when nothing happened.
func (r *Resolver) BeginTurn(room *battle.Room) (*battle.Room, *battle.Outcome, error) {
	if err := checkActive(room); err != nil {
		return nil, nil, err
	}

	work := room.Clone()
	outcome := r.beginTurn(work)
	return work, outcome, nil
}

func (r *Resolver) beginTurn(work *battle.Room) *battle.Outcome {
	if work.TurnStarted {
		return nil
	}

	side := work.CurrentTurn
	actor := work.Combatant(side)

	actor.Cooldowns.Tick()
	actor.IsDefending = false
	tick := effects.NewLedger(actor).Tick()

	outcome := battle.Outcome{
		Turn:           work.Turn,
		Kind:           battle.ActionTurnStart,
		Actor:          side,
		Damage:         tick.Damage,
		Heal:           tick.Heal,
		EffectsExpired: tick.Expired,
		Stunned:        tick.Stunned,
	}

	switch {
	case tick.Defeated:
		r.finish(work, side.Opponent(), &outcome)
	case tick.Stunned:
		work.FlipTurn()
	default:
		work.TurnStarted = true
	}

	if !outcome.Stunned && !outcome.Finished && outcome.Damage == 0 && outcome.Heal == 0 && len(outcome.EffectsExpired) == 0 {
		return nil
	}
	logged := work.Append(outcome)
	return &logged
}

// Resolve applies action for side. The start-of-turn phase runs first when it
// has not yet run this turn; if it stuns or defeats the actor the action is not
// applied and only the tick outcome is returned. Preconditions are checked
// after the tick, and any error discards the whole call.
func (r *Resolver) Resolve(room *battle.Room, side battle.Side, action battle.Action) (*battle.Room, []battle.Outcome, error) {
	if err := checkActive(room); err != nil {
		return nil, nil, err
	}
	if !side.Valid() {
		return nil, nil, arenaerr.InvalidArgumentf("unknown side %q", side)
	}
	if !knownAction(action.Kind) {
		return nil, nil, arenaerr.UnknownAction(string(action.Kind))
	}

	if action.Kind == battle.ActionSurrender {
		work := room.Clone()
		outcome := r.surrender(work, side)
		return work, []battle.Outcome{outcome}, nil
	}

	if side != room.CurrentTurn {
		return nil, nil, arenaerr.NotYourTurn(string(side))
	}

	work := room.Clone()
	var outcomes []battle.Outcome
	if tick := r.beginTurn(work); tick != nil {
		outcomes = append(outcomes, *tick)
	}
	if work.IsFinished() || work.CurrentTurn != side {
		return work, outcomes, nil
	}

	tc := newTurnContext(r, work, side)
	if err := tc.validate(action); err != nil {
		return nil, nil, err
	}

	outcome, err := tc.execute(action)
	if err != nil {
		return nil, nil, err
	}
	outcomes = append(outcomes, work.Append(*outcome))

	return work, outcomes, nil
}

// Surrender ends an active battle in favour of side's opponent, whoever's turn
// it is
func (r *Resolver) Surrender(room *battle.Room, side battle.Side) (*battle.Room, *battle.Outcome, error) {
	work, outcomes, err := r.Resolve(room, side, battle.Action{Kind: battle.ActionSurrender})
	if err != nil {
		return nil, nil, err
	}
	return work, &outcomes[0], nil
}

func (r *Resolver) surrender(work *battle.Room, side battle.Side) battle.Outcome {
	outcome := battle.Outcome{
		Turn:   work.Turn,
		Kind:   battle.ActionSurrender,
		Actor:  side,
		Target: side.Opponent(),
	}
	r.finish(work, side.Opponent(), &outcome)
	return work.Append(outcome)
}

// finish ends the battle. Only an active room can finish, so the termination
// fields are set exactly once.
func (r *Resolver) finish(work *battle.Room, winner battle.Side, outcome *battle.Outcome) {
	if err := work.Finish(winner); err != nil {
		return
	}
	work.TurnStarted = false
	outcome.Finished = true
	outcome.Winner = winner
}

func checkActive(room *battle.Room) error {
	if room == nil {
		return arenaerr.InvalidArgument("room is required")
	}
	if !room.IsActive() {
		return arenaerr.BattleNotActive(string(room.Status))
	}
	if room.A == nil || room.B == nil {
		return arenaerr.Internalf("active room %s is missing a combatant", room.ID)
	}
	return nil
}

func knownAction(kind battle.ActionKind) bool {
	switch kind {
	case battle.ActionAttack, battle.ActionAbility, battle.ActionDefend, battle.ActionUseItem, battle.ActionSurrender:
		return true
	}
	return false
}
