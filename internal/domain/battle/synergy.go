package battle

// SynergyModifiers is supplied by the pairing subsystem before a battle starts
// and is never recomputed mid-battle. All values are fractions (0.1 = 10%).
// The zero value has no effect.
type SynergyModifiers struct {
	// Applied when this combatant attacks
	DamageBonus              float64 `json:"damage_bonus,omitempty" yaml:"damage_bonus"`
	EnemyResistanceReduction float64 `json:"enemy_resistance_reduction,omitempty" yaml:"enemy_resistance_reduction"`
	EvasionReductionOnEnemy  float64 `json:"evasion_reduction_on_enemy,omitempty" yaml:"evasion_reduction_on_enemy"`
	LifeSteal                float64 `json:"life_steal_percent,omitempty" yaml:"life_steal_percent"`

	// Applied when this combatant is attacked
	DamageReduction float64 `json:"damage_reduction,omitempty" yaml:"damage_reduction"`
	Evasion         float64 `json:"evasion,omitempty" yaml:"evasion"`

	// Applied when the battle starts
	EnergyBonus          float64 `json:"energy_bonus,omitempty" yaml:"energy_bonus"`
	EnemyEnergyReduction float64 `json:"enemy_energy_reduction,omitempty" yaml:"enemy_energy_reduction"`
}
