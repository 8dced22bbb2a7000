package services

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/catalog"
	"github.com/KirkDiggler/rpg-arena/internal/dice"
	"github.com/KirkDiggler/rpg-arena/internal/engine"
	"github.com/KirkDiggler/rpg-arena/internal/events"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/rooms"
	battleService "github.com/KirkDiggler/rpg-arena/internal/services/battle"
)

// Provider holds all service instances
type Provider struct {
	BattleService battleService.Service
	EventBus      *events.Bus
	Catalog       *catalog.Catalog
}

// ProviderConfig holds configuration for creating services. Every field is
// optional.
type ProviderConfig struct {
	Catalog        *catalog.Catalog
	Roller         dice.Roller
	RoomRepository rooms.Repository
	EventBus       *events.Bus
	ActionTimeout  time.Duration
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	// Use in-memory repository if none provided
	roomRepo := cfg.RoomRepository
	if roomRepo == nil {
		roomRepo = rooms.NewInMemoryRepository()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	svc := battleService.NewService(&battleService.ServiceConfig{
		Repository: roomRepo,
		Resolver: engine.NewResolver(&engine.ResolverConfig{
			Roller:    roller,
			Abilities: cat,
			Items:     cat,
		}),
		Abilities:     cat,
		EventBus:      bus,
		ActionTimeout: cfg.ActionTimeout,
	})

	return &Provider{
		BattleService: svc,
		EventBus:      bus,
		Catalog:       cat,
	}
}
