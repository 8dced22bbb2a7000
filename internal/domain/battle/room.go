package battle

import (
	"context"
	"time"

	"github.com/looplab/fsm"
)

// Side identifies a seat in a room. A is the host and always acts first.
type Side string

const (
	SideA Side = "a"
	SideB Side = "b"
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Valid reports whether s names a seat
func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

// RoomStatus is the lifecycle state of a room
type RoomStatus string

const (
	RoomStatusWaiting  RoomStatus = "waiting"  // Host seated, waiting for a challenger
	RoomStatusReady    RoomStatus = "ready"    // Both seats filled
	RoomStatusActive   RoomStatus = "active"   // Battle in progress
	RoomStatusFinished RoomStatus = "finished" // Terminal
)

const (
	eventSeat   = "seat"
	eventStart  = "start"
	eventFinish = "finish"
)

var statusEvents = fsm.Events{
	{Name: eventSeat, Src: []string{string(RoomStatusWaiting)}, Dst: string(RoomStatusReady)},
	{Name: eventStart, Src: []string{string(RoomStatusReady)}, Dst: string(RoomStatusActive)},
	{Name: eventFinish, Src: []string{string(RoomStatusActive)}, Dst: string(RoomStatusFinished)},
}

// Room is the persisted battle container
type Room struct {
	ID          string     `json:"id"`
	Status      RoomStatus `json:"status"`
	A           *Combatant `json:"a,omitempty"`
	B           *Combatant `json:"b,omitempty"`
	CurrentTurn Side       `json:"current_turn"`
	// TurnStarted is set once the current side's start-of-turn tick has run
	TurnStarted bool      `json:"turn_started"`
	Turn        int       `json:"turn"`
	Winner      Side      `json:"winner,omitempty"`
	Log         []Outcome `json:"log"`

	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastActionAt time.Time `json:"last_action_at"`
}

// NewRoom creates a waiting room with the host seated on side A
func NewRoom(id string, host *Combatant, now time.Time) *Room {
	return &Room{
		ID:           id,
		Status:       RoomStatusWaiting,
		A:            host,
		CurrentTurn:  SideA,
		Log:          []Outcome{},
		CreatedAt:    now,
		UpdatedAt:    now,
		LastActionAt: now,
	}
}

// Combatant returns the combatant seated on side
func (r *Room) Combatant(side Side) *Combatant {
	if side == SideA {
		return r.A
	}
	return r.B
}

// SideOf returns the side a player is seated on
func (r *Room) SideOf(playerID string) (Side, bool) {
	if r.A != nil && r.A.PlayerID == playerID {
		return SideA, true
	}
	if r.B != nil && r.B.PlayerID == playerID {
		return SideB, true
	}
	return "", false
}

// IsActive returns true while actions are accepted
func (r *Room) IsActive() bool {
	return r.Status == RoomStatusActive
}

// IsFinished returns true once the battle has ended
func (r *Room) IsFinished() bool {
	return r.Status == RoomStatusFinished
}

// can reports whether the status machine allows event from the current status
func (r *Room) can(event string) bool {
	return fsm.NewFSM(string(r.Status), statusEvents, nil).Can(event)
}

func (r *Room) transition(event string) error {
	machine := fsm.NewFSM(string(r.Status), statusEvents, nil)
	if err := machine.Event(context.Background(), event); err != nil {
		return err
	}
	r.Status = RoomStatus(machine.Current())
	return nil
}

// Seat places the challenger on side B and moves the room to ready
func (r *Room) Seat(challenger *Combatant) error {
	if err := r.transition(eventSeat); err != nil {
		return err
	}
	r.B = challenger
	return nil
}

// CanStart reports whether both sides are seated and flagged ready
func (r *Room) CanStart() bool {
	return r.can(eventStart) && r.A != nil && r.B != nil && r.A.Ready && r.B.Ready
}

// Activate moves a ready room to active with the host to act
func (r *Room) Activate() error {
	if err := r.transition(eventStart); err != nil {
		return err
	}
	r.CurrentTurn = SideA
	r.TurnStarted = false
	r.Turn = 1
	return nil
}

// Finish ends the battle with winner
func (r *Room) Finish(winner Side) error {
	if err := r.transition(eventFinish); err != nil {
		return err
	}
	r.Winner = winner
	return nil
}

// FlipTurn hands the turn to the other side
func (r *Room) FlipTurn() {
	r.CurrentTurn = r.CurrentTurn.Opponent()
	r.TurnStarted = false
	r.Turn++
}

// Append records an outcome in the battle log, assigning its sequence number
func (r *Room) Append(o Outcome) Outcome {
	o.Sequence = len(r.Log) + 1
	r.Log = append(r.Log, o)
	return o
}

// Clone returns a deep copy of the room
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	out := *r
	out.A = r.A.Clone()
	out.B = r.B.Clone()
	out.Log = make([]Outcome, len(r.Log))
	for i, o := range r.Log {
		out.Log[i] = o.clone()
	}
	return &out
}
