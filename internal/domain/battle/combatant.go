package battle

import (
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/elements"
)

// Stat names one of the four combat attributes
type Stat string

const (
	StatPower      Stat = "forca"
	StatAgility    Stat = "agilidade"
	StatResistance Stat = "resistencia"
	StatFocus      Stat = "foco"
)

// Stats holds a combatant's attribute block. All values are >= 0.
type Stats struct {
	Forca       int `json:"forca" yaml:"forca"`
	Agilidade   int `json:"agilidade" yaml:"agilidade"`
	Resistencia int `json:"resistencia" yaml:"resistencia"`
	Foco        int `json:"foco" yaml:"foco"`
}

// Value returns the attribute named by s, or 0 for an unknown stat
func (s Stats) Value(stat Stat) int {
	switch stat {
	case StatPower:
		return s.Forca
	case StatAgility:
		return s.Agilidade
	case StatResistance:
		return s.Resistencia
	case StatFocus:
		return s.Foco
	}
	return 0
}

// Combatant is one side of a battle
type Combatant struct {
	ID       string           `json:"id"`
	PlayerID string           `json:"player_id"`
	Name     string           `json:"name"`
	Stats    Stats            `json:"stats"`
	Element  elements.Element `json:"element"`

	HPCurrent     int `json:"hp_current"`
	HPMax         int `json:"hp_max"`
	EnergyCurrent int `json:"energy_current"`
	EnergyMax     int `json:"energy_max"`

	// Bond and Exhaustion are 0-100 passive damage tiers
	Bond       int `json:"bond"`
	Exhaustion int `json:"exhaustion"`

	IsDefending bool `json:"is_defending"`
	Ready       bool `json:"ready"`
	ItemsUsed   int  `json:"items_used"`

	Abilities []AbilityTag                 `json:"abilities"`
	Effects   map[EffectTag]*StatusEffect `json:"effects"`
	Cooldowns Cooldowns                    `json:"cooldowns"`
	Synergy   SynergyModifiers             `json:"synergy_modifiers"`
}

// IsDefeated returns true once hp reaches 0
func (c *Combatant) IsDefeated() bool {
	return c.HPCurrent <= 0
}

// HasEffect checks if an effect with the tag is active
func (c *Combatant) HasEffect(tag EffectTag) bool {
	_, ok := c.Effects[tag]
	return ok
}

// MissingHP returns how much healing the combatant can absorb
func (c *Combatant) MissingHP() int {
	missing := c.HPMax - c.HPCurrent
	if missing < 0 {
		return 0
	}
	return missing
}

// TakeDamage lowers hp, never below 0, and returns the amount removed
func (c *Combatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > c.HPCurrent {
		amount = c.HPCurrent
	}
	c.HPCurrent -= amount
	return amount
}

// Heal raises hp, never above HPMax, and returns the amount restored
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	if missing := c.MissingHP(); amount > missing {
		amount = missing
	}
	c.HPCurrent += amount
	return amount
}

// SpendEnergy removes energy, never below 0, and returns the amount spent
func (c *Combatant) SpendEnergy(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > c.EnergyCurrent {
		amount = c.EnergyCurrent
	}
	c.EnergyCurrent -= amount
	return amount
}

// RestoreEnergy adds energy up to EnergyMax and returns the amount restored
func (c *Combatant) RestoreEnergy(amount int) int {
	if amount <= 0 {
		return 0
	}
	if room := c.EnergyMax - c.EnergyCurrent; amount > room {
		amount = room
	}
	if amount < 0 {
		return 0
	}
	c.EnergyCurrent += amount
	return amount
}

// Clone returns a deep copy of the combatant
func (c *Combatant) Clone() *Combatant {
	if c == nil {
		return nil
	}
	out := *c
	out.Abilities = append([]AbilityTag(nil), c.Abilities...)
	if c.Effects != nil {
		out.Effects = make(map[EffectTag]*StatusEffect, len(c.Effects))
		for tag, eff := range c.Effects {
			copied := *eff
			out.Effects[tag] = &copied
		}
	}
	if c.Cooldowns != nil {
		out.Cooldowns = make(Cooldowns, len(c.Cooldowns))
		for tag, turns := range c.Cooldowns {
			out.Cooldowns[tag] = turns
		}
	}
	return &out
}
