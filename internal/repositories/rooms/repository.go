package rooms

//go:generate mockgen -destination=mock/mock_repository.go -package=mockrooms -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
)

// MutateFunc receives a private copy of the stored room and returns the room
// to store. Returning a nil room leaves the record unchanged. Returning an
// error aborts without writing.
type MutateFunc func(room *battle.Room) (*battle.Room, error)

// Repository defines the interface for battle room storage
type Repository interface {
	// Create stores a new room
	Create(ctx context.Context, room *battle.Room) error

	// Get retrieves a room by ID
	Get(ctx context.Context, id string) (*battle.Room, error)

	// Update overwrites an existing room
	Update(ctx context.Context, room *battle.Room) error

	// Mutate runs a read-modify-write on one room. Concurrent mutations of
	// the same room are serialized; the committed result is returned.
	Mutate(ctx context.Context, id string, fn MutateFunc) (*battle.Room, error)

	// Delete removes a room
	Delete(ctx context.Context, id string) error

	// ListActive returns every room with a battle in progress
	ListActive(ctx context.Context) ([]*battle.Room, error)
}
