//go:build integration
// +build integration

package rooms_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	arenaerr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/rooms"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := rooms.NewRedis(client)
	ctx := context.Background()

	t.Run("create get delete", func(t *testing.T) {
		room := testutils.CreateTestRoom("int-1")
		require.NoError(t, repo.Create(ctx, room))
		assert.True(t, arenaerr.Is(repo.Create(ctx, room), arenaerr.CodeAlreadyExists))

		got, err := repo.Get(ctx, "int-1")
		require.NoError(t, err)
		assert.Equal(t, room, got)

		require.NoError(t, repo.Delete(ctx, "int-1"))
		_, err = repo.Get(ctx, "int-1")
		assert.True(t, arenaerr.IsNotFound(err))
	})

	t.Run("active index follows status", func(t *testing.T) {
		room := testutils.CreateActiveTestRoom("int-2")
		require.NoError(t, repo.Create(ctx, room))

		active, err := repo.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "int-2", active[0].ID)

		_, err = repo.Mutate(ctx, "int-2", func(r *battle.Room) (*battle.Room, error) {
			return r, r.Finish(battle.SideB)
		})
		require.NoError(t, err)

		active, err = repo.ListActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("concurrent mutations all land", func(t *testing.T) {
		repo := rooms.NewRedisRepository(&rooms.RedisRepoConfig{Client: client, MaxRetries: 100})
		require.NoError(t, repo.Create(ctx, testutils.CreateTestRoom("int-3")))

		const writers = 10
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Mutate(ctx, "int-3", func(r *battle.Room) (*battle.Room, error) {
					r.Turn++
					return r, nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := repo.Get(ctx, "int-3")
		require.NoError(t, err)
		assert.Equal(t, writers, got.Turn)
	})
}
