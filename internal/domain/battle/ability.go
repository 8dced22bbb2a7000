package battle

// AbilityTag identifies an ability in the catalog
type AbilityTag string

// AbilityKind is the catalog category of an ability
type AbilityKind string

const (
	AbilityOffensive AbilityKind = "offensive"
	AbilityDefensive AbilityKind = "defensive"
	AbilitySupport   AbilityKind = "support"
	AbilityControl   AbilityKind = "control"
)

// Resolution is how a cast is resolved. It is derived once by Compile and
// never re-inferred per cast.
type Resolution string

const (
	ResolveDamage Resolution = "damage"
	ResolveHeal   Resolution = "heal"
	ResolveEffect Resolution = "effect"
)

const (
	defaultHitChance    = 100
	defaultEffectChance = 100
	defaultHitsCount    = 1
)

// EffectSpec is a status effect an ability may apply on hit
type EffectSpec struct {
	Tag       EffectTag `json:"tag" yaml:"tag"`
	Magnitude int       `json:"magnitude" yaml:"magnitude"`
	Duration  int       `json:"duration" yaml:"duration"`
}

// Ability is an immutable catalog definition
type Ability struct {
	Tag            AbilityTag   `json:"tag" yaml:"tag"`
	Name           string       `json:"name" yaml:"name"`
	Kind           AbilityKind  `json:"kind" yaml:"kind"`
	BaseDamage     int          `json:"base_damage" yaml:"base_damage"`
	StatMultiplier float64      `json:"stat_multiplier" yaml:"stat_multiplier"`
	PrimaryStat    Stat         `json:"primary_stat" yaml:"primary_stat"`
	EnergyCost     int          `json:"energy_cost" yaml:"energy_cost"`
	CooldownTurns  int          `json:"cooldown_turns" yaml:"cooldown_turns"`
	HitChanceBase  int          `json:"hit_chance_base" yaml:"hit_chance_base"`
	EffectChance   int          `json:"effect_chance" yaml:"effect_chance"`
	StatusEffects  []EffectSpec `json:"status_effects" yaml:"status_effects"`
	HitsCount      int          `json:"hits_count" yaml:"hits_count"`

	Resolution Resolution `json:"resolution" yaml:"-"`
}

// Compile fills in catalog defaults and derives the resolution
func (a *Ability) Compile() {
	if a.HitChanceBase == 0 {
		a.HitChanceBase = defaultHitChance
	}
	if a.EffectChance == 0 {
		a.EffectChance = defaultEffectChance
	}
	if a.HitsCount < 1 {
		a.HitsCount = defaultHitsCount
	}
	if a.PrimaryStat == "" {
		a.PrimaryStat = StatPower
	}

	switch {
	case a.Kind == AbilitySupport && a.BaseDamage < 0:
		a.Resolution = ResolveHeal
	case a.BaseDamage > 0 || a.Kind == AbilityOffensive:
		a.Resolution = ResolveDamage
	default:
		a.Resolution = ResolveEffect
	}
}

// SelfTargeted reports whether the cast only affects the caster. Such casts,
// and heals, do not go through hit arbitration.
func (a *Ability) SelfTargeted() bool {
	if a.Resolution == ResolveHeal {
		return true
	}
	if a.Resolution != ResolveEffect || len(a.StatusEffects) == 0 {
		return false
	}
	for _, spec := range a.StatusEffects {
		if !spec.Tag.IsBuff() {
			return false
		}
	}
	return true
}
