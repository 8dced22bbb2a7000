package effects

import (
	"sort"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
)

// Ledger owns the active effects of one combatant
type Ledger struct {
	holder *battle.Combatant
}

// NewLedger creates a ledger over holder's effect map
func NewLedger(holder *battle.Combatant) *Ledger {
	if holder == nil {
		panic("holder is required")
	}
	if holder.Effects == nil {
		holder.Effects = make(map[battle.EffectTag]*battle.StatusEffect)
	}
	return &Ledger{holder: holder}
}

// Apply adds effect following its stacking rule. Returns false when the
// holder kept an existing instance instead.
func (l *Ledger) Apply(effect *battle.StatusEffect) bool {
	if effect == nil || effect.Tag == battle.EffectLifeSteal {
		return false
	}
	if _, exists := l.holder.Effects[effect.Tag]; exists && RuleFor(effect.Tag) == StackingIgnore {
		return false
	}
	l.holder.Effects[effect.Tag] = effect
	return true
}

// Remove drops the effect with tag
func (l *Ledger) Remove(tag battle.EffectTag) {
	delete(l.holder.Effects, tag)
}

// Active returns the holder's effects ordered by tag
func (l *Ledger) Active() []*battle.StatusEffect {
	active := make([]*battle.StatusEffect, 0, len(l.holder.Effects))
	for _, tag := range l.tags() {
		active = append(active, l.holder.Effects[tag])
	}
	return active
}

// Tick runs the start-of-turn phase. A held crowd control effect is consumed
// in place of the normal tick and the holder loses the turn.
func (l *Ledger) Tick() *TickResult {
	result := &TickResult{}

	for _, tag := range l.tags() {
		if !tag.IsCrowdControl() {
			continue
		}
		effect := l.holder.Effects[tag]
		result.Stunned = true
		result.StunTag = tag
		result.Damage = l.holder.TakeDamage(effect.DamagePerTurn)
		if l.decrement(effect) {
			result.Expired = append(result.Expired, tag)
		}
		result.Defeated = l.holder.IsDefeated()
		return result
	}

	damage, heal := 0, 0
	for _, tag := range l.tags() {
		effect := l.holder.Effects[tag]
		damage += effect.DamagePerTurn
		heal += effect.HealPerTurn()
		if l.decrement(effect) {
			result.Expired = append(result.Expired, tag)
		}
	}

	result.Damage = l.holder.TakeDamage(damage)
	if l.holder.IsDefeated() {
		result.Defeated = true
		return result
	}
	result.Heal = l.holder.Heal(heal)

	return result
}

// decrement counts one turn off effect and removes it when spent
func (l *Ledger) decrement(effect *battle.StatusEffect) bool {
	effect.TurnsRemaining--
	if effect.TurnsRemaining > 0 {
		return false
	}
	effect.TurnsRemaining = 0
	delete(l.holder.Effects, effect.Tag)
	return true
}

func (l *Ledger) tags() []battle.EffectTag {
	tags := make([]battle.EffectTag, 0, len(l.holder.Effects))
	for tag := range l.holder.Effects {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
