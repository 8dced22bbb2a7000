package main

import (
	"fmt"
	"strings"

	domain "github.com/KirkDiggler/rpg-arena/internal/domain/battle"
)

// formatOutcome renders one log record as a single display line
func formatOutcome(room *domain.Room, o domain.Outcome) string {
	actor := name(room, o.Actor)
	target := name(room, o.Target)

	var b strings.Builder
	fmt.Fprintf(&b, "[%03d t%d] ", o.Sequence, o.Turn)

	switch o.Kind {
	case domain.ActionTurnStart:
		b.WriteString(actor + " turn start:")
		if o.Damage > 0 {
			fmt.Fprintf(&b, " takes %d", o.Damage)
		}
		if o.Heal > 0 {
			fmt.Fprintf(&b, " regenerates %d", o.Heal)
		}
		if o.Stunned {
			b.WriteString(" is stunned")
		}
	case domain.ActionAttack:
		fmt.Fprintf(&b, "%s attacks %s", actor, target)
	case domain.ActionAbility:
		fmt.Fprintf(&b, "%s uses %s on %s", actor, o.Ability, target)
	case domain.ActionDefend:
		fmt.Fprintf(&b, "%s defends (+%d energy)", actor, o.EnergyRestored)
	case domain.ActionUseItem:
		fmt.Fprintf(&b, "%s drinks %s (+%d hp)", actor, o.Item, o.Heal)
	case domain.ActionSurrender:
		fmt.Fprintf(&b, "%s surrenders", actor)
	default:
		fmt.Fprintf(&b, "%s %s", actor, o.Kind)
	}

	if o.Kind == domain.ActionAttack || o.Kind == domain.ActionAbility {
		b.WriteString(hitDetail(o))
	}

	if len(o.EffectsApplied) > 0 {
		fmt.Fprintf(&b, " +%s", joinTags(o.EffectsApplied))
	}
	if len(o.EffectsExpired) > 0 {
		fmt.Fprintf(&b, " -%s", joinTags(o.EffectsExpired))
	}
	if len(o.CounterEffects) > 0 {
		fmt.Fprintf(&b, " counter %s", joinTags(o.CounterEffects))
	}
	if o.Finished {
		fmt.Fprintf(&b, " | %s wins", name(room, o.Winner))
	}

	return b.String()
}

func hitDetail(o domain.Outcome) string {
	if o.Missed {
		if o.EvadedReason != "" {
			return fmt.Sprintf(": evaded (%s)", o.EvadedReason)
		}
		return fmt.Sprintf(": miss (%.0f%%)", o.HitChance)
	}

	var parts []string
	if o.Damage > 0 {
		dmg := fmt.Sprintf("%d dmg", o.Damage)
		if o.HitsCount > 1 {
			dmg += fmt.Sprintf(" in %d hits", o.HitsCount)
		}
		parts = append(parts, dmg)
	}
	if o.Heal > 0 {
		parts = append(parts, fmt.Sprintf("%d heal", o.Heal))
	}
	if o.LifeSteal > 0 {
		parts = append(parts, fmt.Sprintf("%d drained", o.LifeSteal))
	}
	if o.Critical {
		parts = append(parts, "critical")
	}
	if o.Blocked {
		parts = append(parts, "blocked")
	}
	if o.ElementalClass != "" && o.Damage > 0 {
		parts = append(parts, string(o.ElementalClass))
	}
	if len(parts) == 0 {
		return ""
	}
	return ": " + strings.Join(parts, ", ")
}

func name(room *domain.Room, side domain.Side) string {
	if !side.Valid() {
		return string(side)
	}
	if c := room.Combatant(side); c != nil {
		return c.Name
	}
	return string(side)
}

func joinTags(tags []domain.EffectTag) string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = string(tag)
	}
	return strings.Join(out, ",")
}
