package events

import (
	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
)

// EventType represents the type of battle event
type EventType string

// Event is the base interface for all battle events
type Event interface {
	GetType() EventType
	GetRoomID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	RoomID    string
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) GetRoomID() string  { return e.RoomID }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// BattleStartedEvent fires once both sides are ready and the room went active
type BattleStartedEvent struct {
	BaseEvent
	Room *battle.Room
}

// NewBattleStartedEvent builds the event for room
func NewBattleStartedEvent(room *battle.Room) *BattleStartedEvent {
	return &BattleStartedEvent{
		BaseEvent: BaseEvent{Type: EventTypeBattleStarted, RoomID: room.ID},
		Room:      room,
	}
}

// ActionResolvedEvent carries one committed outcome, including start-of-turn ticks
type ActionResolvedEvent struct {
	BaseEvent
	Outcome battle.Outcome
	Room    *battle.Room
}

// NewActionResolvedEvent builds the event for an outcome committed to room
func NewActionResolvedEvent(room *battle.Room, outcome battle.Outcome) *ActionResolvedEvent {
	return &ActionResolvedEvent{
		BaseEvent: BaseEvent{Type: EventTypeActionResolved, RoomID: room.ID},
		Outcome:   outcome,
		Room:      room,
	}
}

// BattleFinishedEvent fires exactly once per room
type BattleFinishedEvent struct {
	BaseEvent
	Winner battle.Side
	Reason FinishReason
	Room   *battle.Room
}

// NewBattleFinishedEvent builds the event for a finished room
func NewBattleFinishedEvent(room *battle.Room, reason FinishReason) *BattleFinishedEvent {
	return &BattleFinishedEvent{
		BaseEvent: BaseEvent{Type: EventTypeBattleFinished, RoomID: room.ID},
		Winner:    room.Winner,
		Reason:    reason,
		Room:      room,
	}
}
