package battle

import (
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/elements"
)

// ActionKind is what a side does on its turn
type ActionKind string

const (
	ActionAttack    ActionKind = "attack"
	ActionAbility   ActionKind = "ability"
	ActionDefend    ActionKind = "defend"
	ActionUseItem   ActionKind = "use_item"
	ActionSurrender ActionKind = "surrender"

	// ActionTurnStart marks the outcome of a start-of-turn tick
	ActionTurnStart ActionKind = "turn_start"
)

// Action is a request from one side
type Action struct {
	Kind         ActionKind `json:"kind"`
	AbilityIndex int        `json:"ability_index,omitempty"`
	Item         string     `json:"item,omitempty"`
}

// Outcome is the log record of one resolved action or tick. It is the only
// contract for display layers.
type Outcome struct {
	Sequence int        `json:"sequence"`
	Turn     int        `json:"turn"`
	Kind     ActionKind `json:"action_kind"`
	Actor    Side       `json:"actor"`
	Target   Side       `json:"target,omitempty"`
	Ability  AbilityTag `json:"ability,omitempty"`
	Item     string     `json:"item,omitempty"`

	Damage         int            `json:"damage,omitempty"`
	Heal           int            `json:"heal,omitempty"`
	LifeSteal      int            `json:"life_steal,omitempty"`
	Critical       bool           `json:"critical,omitempty"`
	Blocked        bool           `json:"blocked,omitempty"`
	ElementalClass elements.Class `json:"elemental_class,omitempty"`
	HitsCount      int            `json:"hits_count,omitempty"`

	Missed       bool    `json:"missed,omitempty"`
	HitChance    float64 `json:"hit_chance,omitempty"`
	EvadedReason string  `json:"evaded_reason,omitempty"`

	EffectsApplied []EffectTag `json:"effects_applied,omitempty"`
	EffectsExpired []EffectTag `json:"effects_expired,omitempty"`
	CounterEffects []EffectTag `json:"counter_effects,omitempty"`

	EnergySpent    int `json:"energy_spent,omitempty"`
	EnergyRestored int `json:"energy_restored,omitempty"`

	Stunned  bool `json:"stunned,omitempty"`
	Finished bool `json:"finished,omitempty"`
	Winner   Side `json:"winner,omitempty"`
}

func (o Outcome) clone() Outcome {
	o.EffectsApplied = append([]EffectTag(nil), o.EffectsApplied...)
	o.EffectsExpired = append([]EffectTag(nil), o.EffectsExpired...)
	o.CounterEffects = append([]EffectTag(nil), o.CounterEffects...)
	return o
}
