package catalog

import (
	"sort"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	arenaerr "github.com/KirkDiggler/rpg-arena/internal/errors"
)

//go:generate mockgen -destination=mock/mock_catalog.go -package=mockcatalog -source=catalog.go

// DefaultItem is used when an item action names no item
const DefaultItem = "potion"

// Item is a consumable usable during battle
type Item struct {
	Key  string `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
	Heal int    `json:"heal" yaml:"heal"`
}

// IsHealing reports whether the item restores hp
func (i *Item) IsHealing() bool {
	return i != nil && i.Heal > 0
}

// AbilityCatalog is a read-only lookup of ability definitions
type AbilityCatalog interface {
	GetAbility(tag battle.AbilityTag) (*battle.Ability, error)
}

// ItemCatalog is a read-only lookup of consumables
type ItemCatalog interface {
	GetItem(key string) (*Item, error)
}

// Catalog holds compiled abilities and items. It is immutable after New.
type Catalog struct {
	abilities map[battle.AbilityTag]*battle.Ability
	items     map[string]*Item
}

// New compiles abilities and indexes both lists
func New(abilities []battle.Ability, items []Item) (*Catalog, error) {
	c := &Catalog{
		abilities: make(map[battle.AbilityTag]*battle.Ability, len(abilities)),
		items:     make(map[string]*Item, len(items)),
	}

	for i := range abilities {
		ability := abilities[i]
		if err := validateAbility(&ability); err != nil {
			return nil, err
		}
		if _, exists := c.abilities[ability.Tag]; exists {
			return nil, arenaerr.AlreadyExistsf("ability %s defined twice", ability.Tag)
		}
		ability.Compile()
		c.abilities[ability.Tag] = &ability
	}

	for i := range items {
		item := items[i]
		if item.Key == "" {
			return nil, arenaerr.Validationf("item %d has no key", i)
		}
		if _, exists := c.items[item.Key]; exists {
			return nil, arenaerr.AlreadyExistsf("item %s defined twice", item.Key)
		}
		c.items[item.Key] = &item
	}

	return c, nil
}

func validateAbility(a *battle.Ability) error {
	if a.Tag == "" {
		return arenaerr.Validationf("ability %q has no tag", a.Name)
	}
	if a.EnergyCost < 0 {
		return arenaerr.Validationf("ability %s has negative energy cost", a.Tag)
	}
	if a.CooldownTurns < 0 {
		return arenaerr.Validationf("ability %s has negative cooldown", a.Tag)
	}
	if a.HitChanceBase < 0 || a.EffectChance < 0 {
		return arenaerr.Validationf("ability %s has negative chance", a.Tag)
	}
	for _, spec := range a.StatusEffects {
		if spec.Tag == "" {
			return arenaerr.Validationf("ability %s has an untagged status effect", a.Tag)
		}
	}
	return nil
}

// GetAbility implements AbilityCatalog
func (c *Catalog) GetAbility(tag battle.AbilityTag) (*battle.Ability, error) {
	ability, ok := c.abilities[tag]
	if !ok {
		return nil, arenaerr.NotFoundf("ability %s not found", tag)
	}
	return ability, nil
}

// GetItem implements ItemCatalog
func (c *Catalog) GetItem(key string) (*Item, error) {
	item, ok := c.items[key]
	if !ok {
		return nil, arenaerr.NotFoundf("item %s not found", key)
	}
	return item, nil
}

// Tags returns every ability tag in sorted order
func (c *Catalog) Tags() []battle.AbilityTag {
	tags := make([]battle.AbilityTag, 0, len(c.abilities))
	for tag := range c.abilities {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
