package events

// Event type constants
const (
	EventTypeBattleStarted  EventType = "battle_started"
	EventTypeActionResolved EventType = "action_resolved"
	EventTypeBattleFinished EventType = "battle_finished"
)

// FinishReason explains how a battle ended
type FinishReason string

const (
	FinishReasonDefeat    FinishReason = "defeat"
	FinishReasonSurrender FinishReason = "surrender"
	FinishReasonTimeout   FinishReason = "timeout"
)

// Priority levels for listener order. Lower runs first.
const (
	PriorityCore      = 0   // State that other listeners read
	PriorityDefault   = 100 // Display, notifications
	PriorityObservers = 500 // Audit, stats
)
