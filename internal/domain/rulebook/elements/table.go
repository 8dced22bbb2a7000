package elements

// Element is the elemental affinity of a combatant
type Element string

const (
	Fire        Element = "fire"
	Water       Element = "water"
	Earth       Element = "earth"
	Wind        Element = "wind"
	Electricity Element = "electricity"
	Light       Element = "light"
	Shadow      Element = "shadow"
	Void        Element = "void"
	Aether      Element = "aether"
)

// All lists every element in table order
var All = []Element{Fire, Water, Earth, Wind, Electricity, Light, Shadow, Void, Aether}

// Class describes how an attacker's element relates to the defender's
type Class string

const (
	ClassNeutral          Class = "neutral"
	ClassAdvantage        Class = "advantage"
	ClassAdvantageSpecial Class = "advantage_special"
	ClassDisadvantage     Class = "disadvantage"
	ClassOpposite         Class = "opposite"
)

// Matchup is the table result for one attacker/defender pair
type Matchup struct {
	Multiplier float64 `json:"multiplier"`
	Class      Class   `json:"class"`
}

type pair struct {
	attacker Element
	defender Element
}

// The reverse-cycle multiplier is 0.75, not 1/1.5. Every row is listed
// explicitly so nothing is derived from the forward entries.
var table = map[pair]Matchup{
	// Fire -> Wind -> Earth -> Electricity -> Water -> Fire
	{Fire, Wind}:         {1.5, ClassAdvantage},
	{Wind, Earth}:        {1.5, ClassAdvantage},
	{Earth, Electricity}: {1.5, ClassAdvantage},
	{Electricity, Water}: {1.5, ClassAdvantage},
	{Water, Fire}:        {1.5, ClassAdvantage},

	{Wind, Fire}:         {0.75, ClassDisadvantage},
	{Earth, Wind}:        {0.75, ClassDisadvantage},
	{Electricity, Earth}: {0.75, ClassDisadvantage},
	{Water, Electricity}: {0.75, ClassDisadvantage},
	{Fire, Water}:        {0.75, ClassDisadvantage},

	{Light, Shadow}: {2.0, ClassOpposite},
	{Shadow, Light}: {2.0, ClassOpposite},

	{Void, Light}:  {1.4, ClassAdvantageSpecial},
	{Void, Shadow}: {1.4, ClassAdvantageSpecial},
	{Aether, Void}: {1.4, ClassAdvantageSpecial},
}

var neutral = Matchup{Multiplier: 1.0, Class: ClassNeutral}

// Lookup returns the damage multiplier and classification for an attack.
// Unknown elements and same-element pairs are neutral.
func Lookup(attacker, defender Element) Matchup {
	if m, ok := table[pair{attacker, defender}]; ok {
		return m
	}
	return neutral
}

// IsValid reports whether e is one of the nine known elements
func IsValid(e Element) bool {
	for _, known := range All {
		if known == e {
			return true
		}
	}
	return false
}
