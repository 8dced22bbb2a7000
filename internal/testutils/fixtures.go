package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/elements"
)

// FixedTime is the clock used by room fixtures
var FixedTime = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// CreateTestCombatant creates a combatant with balanced stats and full hp
func CreateTestCombatant(id, playerID string, element elements.Element, abilities ...battle.AbilityTag) *battle.Combatant {
	return &battle.Combatant{
		ID:       id,
		PlayerID: playerID,
		Name:     "Fighter " + id,
		Element:  element,
		Stats: battle.Stats{
			Forca:       12,
			Agilidade:   10,
			Resistencia: 10,
			Foco:        8,
		},
		HPCurrent: 100,
		HPMax:     100,
		Abilities: abilities,
	}
}

// CreateTestRoom creates a waiting room with the host seated
func CreateTestRoom(id string) *battle.Room {
	host := CreateTestCombatant(id+"-a", "player-a", elements.Fire)
	return battle.NewRoom(id, host, FixedTime)
}

// CreateActiveTestRoom creates a room that has already started, with A to act
func CreateActiveTestRoom(id string) *battle.Room {
	room := CreateTestRoom(id)
	room.B = CreateTestCombatant(id+"-b", "player-b", elements.Water)
	room.A.Ready = true
	room.B.Ready = true
	room.Status = battle.RoomStatusActive
	room.CurrentTurn = battle.SideA
	room.Turn = 1
	for _, c := range []*battle.Combatant{room.A, room.B} {
		c.EnergyMax = 100
		c.EnergyCurrent = 100
		c.Effects = map[battle.EffectTag]*battle.StatusEffect{}
		c.Cooldowns = battle.Cooldowns{}
	}
	return room
}
