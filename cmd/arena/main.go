package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-arena/internal/catalog"
	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/dice"
	domain "github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/elements"
	arenaerr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/events"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/rooms"
	"github.com/KirkDiggler/rpg-arena/internal/services"
	"github.com/KirkDiggler/rpg-arena/internal/services/battle"
)

// maxActions bounds a duel between two passive fighters
const maxActions = 200

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cat := catalog.Default()
	if cfg.Arena.CatalogPath != "" {
		cat, err = catalog.Load(cfg.Arena.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		log.Printf("Loaded catalog from %s", cfg.Arena.CatalogPath)
	}

	repo, redisClient := newRepository(cfg)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
	}

	provider := services.NewProvider(&services.ProviderConfig{
		Catalog:        cat,
		Roller:         dice.NewRandomRoller(),
		RoomRepository: repo,
		ActionTimeout:  cfg.Arena.ActionTimeout,
	})
	svc := provider.BattleService

	provider.EventBus.Subscribe(events.EventTypeActionResolved, events.NewListenerFunc("printer", events.PriorityDefault,
		func(e events.Event) error {
			if resolved, ok := e.(*events.ActionResolvedEvent); ok {
				fmt.Println(formatOutcome(resolved.Room, resolved.Outcome))
			}
			return nil
		}))
	provider.EventBus.Subscribe(events.EventTypeBattleFinished, events.NewListenerFunc("printer", events.PriorityDefault,
		func(e events.Event) error {
			if finished, ok := e.(*events.BattleFinishedEvent); ok {
				winner := finished.Room.Combatant(finished.Winner)
				fmt.Printf("== %s wins by %s ==\n", winner.Name, finished.Reason)
			}
			return nil
		}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	go sweep(ctx, svc, cfg.Arena.ActionTimeout)

	if err := runDuel(ctx, svc, cat); err != nil {
		log.Fatalf("Duel failed: %v", err)
	}
}

// newRepository uses Redis when configured and reachable, else in-memory storage
func newRepository(cfg *config.Config) (rooms.Repository, *redis.Client) {
	if !cfg.Redis.Enabled() {
		log.Println("No REDIS_URL found, using in-memory repositories")
		return rooms.NewInMemoryRepository(), nil
	}

	log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory repositories")
		return rooms.NewInMemoryRepository(), nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repositories")
		return rooms.NewInMemoryRepository(), nil
	}

	log.Println("Using Redis for persistence")
	return rooms.NewRedisRepository(&rooms.RedisRepoConfig{
		Client:     client,
		RoomTTL:    cfg.Arena.RoomTTL,
		MaxRetries: cfg.Arena.MutateRetries,
	}), client
}

// sweep expires idle rooms until ctx is done
func sweep(ctx context.Context, svc battle.Service, timeout time.Duration) {
	ticker := time.NewTicker(timeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := svc.ExpireIdleRooms(ctx); err != nil {
				log.Printf("Sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("Expired %d idle rooms", n)
			}
		}
	}
}

func runDuel(ctx context.Context, svc battle.Service, cat *catalog.Catalog) error {
	room, err := svc.CreateRoom(ctx, &battle.FighterInput{
		PlayerID:  "ember",
		Name:      "Ember",
		Element:   elements.Fire,
		Stats:     domain.Stats{Forca: 16, Agilidade: 10, Resistencia: 8, Foco: 10},
		HPMax:     120,
		Abilities: []domain.AbilityTag{"fireball", "flame_ward", "vampiric_bite"},
		Bond:      40,
	})
	if err != nil {
		return err
	}

	if _, err := svc.JoinRoom(ctx, room.ID, &battle.FighterInput{
		PlayerID:  "tide",
		Name:      "Tide",
		Element:   elements.Water,
		Stats:     domain.Stats{Forca: 12, Agilidade: 12, Resistencia: 12, Foco: 12},
		HPMax:     120,
		Abilities: []domain.AbilityTag{"venom_strike", "tidal_mend", "thunder_clap"},
	}); err != nil {
		return err
	}

	for _, player := range []string{"ember", "tide"} {
		if room, err = svc.SetReady(ctx, room.ID, player); err != nil {
			return err
		}
	}
	fmt.Printf("== %s vs %s in room %s ==\n", room.A.Name, room.B.Name, room.ID)

	for i := 0; i < maxActions && room.IsActive(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		actor := room.Combatant(room.CurrentTurn)
		result, err := svc.SubmitAction(ctx, &battle.SubmitActionInput{
			RoomID:   room.ID,
			PlayerID: actor.PlayerID,
			Action:   chooseAction(actor, cat),
		})
		if arenaerr.IsPrecondition(err) {
			log.Printf("%s cannot act as planned (%v), defending", actor.Name, err)
			result, err = svc.SubmitAction(ctx, &battle.SubmitActionInput{
				RoomID:   room.ID,
				PlayerID: actor.PlayerID,
				Action:   domain.Action{Kind: domain.ActionDefend},
			})
		}
		if err != nil {
			return err
		}
		room = result.Room
	}

	if room.IsActive() {
		_, err = svc.Surrender(ctx, room.ID, room.A.PlayerID)
		return err
	}
	return nil
}
