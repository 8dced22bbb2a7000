package rooms_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	arenaerr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/rooms"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := rooms.NewInMemoryRepository()
	room := testutils.CreateTestRoom("room-1")

	require.NoError(t, repo.Create(ctx, room))
	err := repo.Create(ctx, room)
	assert.True(t, arenaerr.Is(err, arenaerr.CodeAlreadyExists))

	got, err := repo.Get(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, room, got)

	// Stored copies are isolated from callers
	got.A.HPCurrent = 1
	room.A.HPCurrent = 2
	again, err := repo.Get(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, 100, again.A.HPCurrent)

	again.Turn = 7
	require.NoError(t, repo.Update(ctx, again))
	updated, err := repo.Get(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Turn)

	require.NoError(t, repo.Delete(ctx, "room-1"))
	_, err = repo.Get(ctx, "room-1")
	assert.True(t, arenaerr.IsNotFound(err))
	assert.True(t, arenaerr.IsNotFound(repo.Delete(ctx, "room-1")))
	assert.True(t, arenaerr.IsNotFound(repo.Update(ctx, updated)))
}

func TestInMemoryRepository_InputValidation(t *testing.T) {
	ctx := context.Background()
	repo := rooms.NewInMemoryRepository()

	assert.True(t, arenaerr.IsInvalidArgument(repo.Create(ctx, nil)))
	assert.True(t, arenaerr.IsInvalidArgument(repo.Create(ctx, &battle.Room{})))
	_, err := repo.Get(ctx, "")
	assert.True(t, arenaerr.IsInvalidArgument(err))
	assert.True(t, arenaerr.IsInvalidArgument(repo.Delete(ctx, "")))
	_, err = repo.Mutate(ctx, "room-1", nil)
	assert.True(t, arenaerr.IsInvalidArgument(err))
}

func TestInMemoryRepository_Mutate(t *testing.T) {
	ctx := context.Background()
	repo := rooms.NewInMemoryRepository()
	require.NoError(t, repo.Create(ctx, testutils.CreateTestRoom("room-1")))

	t.Run("commits returned room", func(t *testing.T) {
		got, err := repo.Mutate(ctx, "room-1", func(room *battle.Room) (*battle.Room, error) {
			room.Turn = 3
			return room, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, got.Turn)

		stored, err := repo.Get(ctx, "room-1")
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Turn)
	})

	t.Run("error aborts without writing", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := repo.Mutate(ctx, "room-1", func(room *battle.Room) (*battle.Room, error) {
			room.Turn = 99
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)

		stored, err := repo.Get(ctx, "room-1")
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Turn)
	})

	t.Run("nil room is a no-op", func(t *testing.T) {
		got, err := repo.Mutate(ctx, "room-1", func(room *battle.Room) (*battle.Room, error) {
			room.Turn = 50
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, got.Turn)
	})

	t.Run("id cannot change", func(t *testing.T) {
		_, err := repo.Mutate(ctx, "room-1", func(room *battle.Room) (*battle.Room, error) {
			room.ID = "other"
			return room, nil
		})
		assert.True(t, arenaerr.IsInvalidArgument(err))
	})

	t.Run("missing room", func(t *testing.T) {
		_, err := repo.Mutate(ctx, "nope", func(room *battle.Room) (*battle.Room, error) {
			return room, nil
		})
		assert.True(t, arenaerr.IsNotFound(err))
	})
}

func TestInMemoryRepository_MutateSerializes(t *testing.T) {
	ctx := context.Background()
	repo := rooms.NewInMemoryRepository()
	require.NoError(t, repo.Create(ctx, testutils.CreateTestRoom("room-1")))

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Mutate(ctx, "room-1", func(room *battle.Room) (*battle.Room, error) {
				room.Turn++
				return room, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := repo.Get(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, writers, stored.Turn)
}

func TestInMemoryRepository_ListActive(t *testing.T) {
	ctx := context.Background()
	repo := rooms.NewInMemoryRepository()

	require.NoError(t, repo.Create(ctx, testutils.CreateTestRoom("waiting")))
	require.NoError(t, repo.Create(ctx, testutils.CreateActiveTestRoom("room-b")))
	require.NoError(t, repo.Create(ctx, testutils.CreateActiveTestRoom("room-a")))

	finished := testutils.CreateActiveTestRoom("done")
	finished.Status = battle.RoomStatusFinished
	require.NoError(t, repo.Create(ctx, finished))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "room-a", active[0].ID)
	assert.Equal(t, "room-b", active[1].ID)
}
