package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-arena/internal/repositories/rooms"
)

func main() {
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	active, err := rooms.NewRedis(client).ListActive(ctx)
	if err != nil {
		log.Fatalf("Failed to list active rooms: %v", err)
	}

	fmt.Printf("Found %d active rooms:\n", len(active))
	now := time.Now().UTC()
	for _, room := range active {
		fmt.Printf("  %s: %s (%d/%d) vs %s (%d/%d), turn %d, %s to act, idle %s\n",
			room.ID,
			room.A.Name, room.A.HPCurrent, room.A.HPMax,
			room.B.Name, room.B.HPCurrent, room.B.HPMax,
			room.Turn, room.CurrentTurn,
			now.Sub(room.LastActionAt).Truncate(time.Second))
	}
}
