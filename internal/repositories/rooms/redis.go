package rooms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	arenaerr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	// Key patterns
	roomKeyPrefix  = "room:"
	activeRoomsKey = "rooms:active"

	// Default TTL for rooms (24 hours)
	roomTTL = 24 * time.Hour

	// Default optimistic lock attempts for Mutate
	mutateRetries = 5
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client     redis.UniversalClient
	RoomTTL    time.Duration
	MaxRetries int
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client     redis.UniversalClient
	roomTTL    time.Duration
	maxRetries int
}

// NewRedisRepository creates a new Redis-backed room repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.RoomTTL
	if ttl == 0 {
		ttl = roomTTL
	}

	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = mutateRetries
	}

	return &redisRepository{
		client:     cfg.Client,
		roomTTL:    ttl,
		maxRetries: retries,
	}
}

func roomKey(id string) string {
	return roomKeyPrefix + id
}

// Create stores a new room, failing if the ID is taken
func (r *redisRepository) Create(ctx context.Context, room *battle.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}

	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to serialize room: %w", err)
	}

	created, err := r.client.SetNX(ctx, roomKey(room.ID), string(data), r.roomTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	if !created {
		return arenaerr.AlreadyExistsf("room %s already exists", room.ID)
	}

	if room.IsActive() {
		if err := r.client.SAdd(ctx, activeRoomsKey, room.ID).Err(); err != nil {
			return fmt.Errorf("failed to index room: %w", err)
		}
	}

	return nil
}

// Get retrieves a room by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*battle.Room, error) {
	if id == "" {
		return nil, arenaerr.InvalidArgument("room ID is required")
	}

	data, err := r.client.Get(ctx, roomKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, arenaerr.NotFoundf("room not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return decodeRoom(data)
}

// Update overwrites an existing room and keeps the active index in step
func (r *redisRepository) Update(ctx context.Context, room *battle.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}

	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to serialize room: %w", err)
	}

	pipe := r.client.TxPipeline()
	set := pipe.SetXX(ctx, roomKey(room.ID), string(data), r.roomTTL)
	r.index(ctx, pipe, room)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	if !set.Val() {
		return arenaerr.NotFoundf("room not found: %s", room.ID)
	}

	return nil
}

// Mutate runs fn under WATCH on the room key and retries when another
// writer commits first
func (r *redisRepository) Mutate(ctx context.Context, id string, fn MutateFunc) (*battle.Room, error) {
	if id == "" {
		return nil, arenaerr.InvalidArgument("room ID is required")
	}
	if fn == nil {
		return nil, arenaerr.InvalidArgument("mutate func is required")
	}

	key := roomKey(id)
	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		var committed *battle.Room

		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Bytes()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					return arenaerr.NotFoundf("room not found: %s", id)
				}
				return fmt.Errorf("failed to get room: %w", err)
			}

			current, err := decodeRoom(data)
			if err != nil {
				return err
			}

			next, err := fn(current.Clone())
			if err != nil {
				return err
			}
			if next == nil {
				committed = current
				return nil
			}
			if next.ID != id {
				return arenaerr.InvalidArgumentf("mutate cannot change room ID %s to %s", id, next.ID)
			}

			payload, err := json.Marshal(next)
			if err != nil {
				return fmt.Errorf("failed to serialize room: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, string(payload), r.roomTTL)
				r.index(ctx, pipe, next)
				return nil
			})
			if err != nil {
				return err
			}

			committed = next
			return nil
		}, key)

		if err == nil {
			return committed, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}

		log.Printf("RoomRepository: write conflict room=%s attempt=%d", id, attempt)
	}

	return nil, arenaerr.Conflictf("room %s changed concurrently after %d attempts", id, r.maxRetries)
}

// Delete removes a room and its index entry
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return arenaerr.InvalidArgument("room ID is required")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, roomKey(id))
	pipe.SRem(ctx, activeRoomsKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if del.Val() == 0 {
		return arenaerr.NotFoundf("room not found: %s", id)
	}

	return nil
}

// ListActive returns active rooms ordered by ID. Index entries whose room
// has expired are dropped from the index.
func (r *redisRepository) ListActive(ctx context.Context) ([]*battle.Room, error) {
	ids, err := r.client.SMembers(ctx, activeRoomsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list active rooms: %w", err)
	}

	found := make([]*battle.Room, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			room, err := r.Get(gctx, id)
			if err != nil {
				if arenaerr.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get room %s: %w", id, err)
			}
			found[i] = room
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*battle.Room, 0, len(found))
	var stale []any
	for i, room := range found {
		switch {
		case room == nil:
			stale = append(stale, ids[i])
		case room.IsActive():
			result = append(result, room)
		}
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, activeRoomsKey, stale...).Err(); err != nil {
			log.Printf("RoomRepository: failed to prune active index: %v", err)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *redisRepository) index(ctx context.Context, pipe redis.Pipeliner, room *battle.Room) {
	if room.IsActive() {
		pipe.SAdd(ctx, activeRoomsKey, room.ID)
		return
	}
	pipe.SRem(ctx, activeRoomsKey, room.ID)
}

func decodeRoom(data []byte) (*battle.Room, error) {
	var room battle.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("failed to deserialize room: %w", err)
	}
	return &room, nil
}
