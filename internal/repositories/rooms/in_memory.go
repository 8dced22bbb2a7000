package rooms

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	arenaerr "github.com/KirkDiggler/rpg-arena/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu    sync.RWMutex
	rooms map[string]*battle.Room
}

// NewInMemoryRepository creates a new in-memory room repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		rooms: make(map[string]*battle.Room),
	}
}

// Create stores a new room
func (r *inMemoryRepository) Create(ctx context.Context, room *battle.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[room.ID]; exists {
		return arenaerr.AlreadyExistsf("room %s already exists", room.ID)
	}

	r.rooms[room.ID] = room.Clone()
	return nil
}

// Get retrieves a room by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*battle.Room, error) {
	if id == "" {
		return nil, arenaerr.InvalidArgument("room ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, exists := r.rooms[id]
	if !exists {
		return nil, arenaerr.NotFoundf("room not found: %s", id)
	}

	return room.Clone(), nil
}

// Update overwrites an existing room
func (r *inMemoryRepository) Update(ctx context.Context, room *battle.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[room.ID]; !exists {
		return arenaerr.NotFoundf("room not found: %s", room.ID)
	}

	r.rooms[room.ID] = room.Clone()
	return nil
}

// Mutate holds the write lock for the whole read-modify-write
func (r *inMemoryRepository) Mutate(ctx context.Context, id string, fn MutateFunc) (*battle.Room, error) {
	if id == "" {
		return nil, arenaerr.InvalidArgument("room ID is required")
	}
	if fn == nil {
		return nil, arenaerr.InvalidArgument("mutate func is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.rooms[id]
	if !exists {
		return nil, arenaerr.NotFoundf("room not found: %s", id)
	}

	next, err := fn(current.Clone())
	if err != nil {
		return nil, err
	}
	if next == nil {
		return current.Clone(), nil
	}
	if next.ID != id {
		return nil, arenaerr.InvalidArgumentf("mutate cannot change room ID %s to %s", id, next.ID)
	}

	r.rooms[id] = next.Clone()
	return next.Clone(), nil
}

// Delete removes a room
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return arenaerr.InvalidArgument("room ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[id]; !exists {
		return arenaerr.NotFoundf("room not found: %s", id)
	}

	delete(r.rooms, id)
	return nil
}

// ListActive returns active rooms ordered by ID
func (r *inMemoryRepository) ListActive(ctx context.Context) ([]*battle.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*battle.Room, 0)
	for _, room := range r.rooms {
		if room.IsActive() {
			result = append(result, room.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func validateRoom(room *battle.Room) error {
	if room == nil {
		return arenaerr.InvalidArgument("room cannot be nil")
	}
	if room.ID == "" {
		return arenaerr.InvalidArgument("room ID is required")
	}
	return nil
}
