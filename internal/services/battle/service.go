package battle

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/catalog"
	domain "github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	"github.com/KirkDiggler/rpg-arena/internal/domain/rulebook/elements"
	"github.com/KirkDiggler/rpg-arena/internal/engine"
	arenaerr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/events"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/rooms"
	"github.com/KirkDiggler/rpg-arena/internal/uuid"
)

// DefaultActionTimeout is how long the side to act may stay idle before
// ExpireIdleRooms forfeits it
const DefaultActionTimeout = 2 * time.Minute

const maxTier = 100

// Service defines the battle room service interface
type Service interface {
	// CreateRoom opens a room with the host seated on side A
	CreateRoom(ctx context.Context, host *FighterInput) (*domain.Room, error)

	// JoinRoom seats a challenger on side B
	JoinRoom(ctx context.Context, roomID string, challenger *FighterInput) (*domain.Room, error)

	// SetReady flags a player ready. The battle starts once both are.
	SetReady(ctx context.Context, roomID, playerID string) (*domain.Room, error)

	// SubmitAction resolves one action for the player's side
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*ActionResult, error)

	// Surrender ends the battle in favour of the player's opponent
	Surrender(ctx context.Context, roomID, playerID string) (*ActionResult, error)

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)

	// ExpireIdleRooms forfeits the side to act in every active room idle for
	// longer than the action timeout. Returns how many rooms were closed.
	ExpireIdleRooms(ctx context.Context) (int, error)
}

// FighterInput describes a combatant entering a room
type FighterInput struct {
	PlayerID   string
	Name       string
	Element    elements.Element
	Stats      domain.Stats
	HPMax      int
	Abilities  []domain.AbilityTag
	Bond       int
	Exhaustion int
	Synergy    domain.SynergyModifiers
}

// SubmitActionInput contains data for submitting an action
type SubmitActionInput struct {
	RoomID   string
	PlayerID string
	Action   domain.Action
}

// ActionResult is the committed room and the outcomes this call produced
type ActionResult struct {
	Room     *domain.Room
	Outcomes []domain.Outcome
}

type service struct {
	repository    rooms.Repository
	resolver      *engine.Resolver
	abilities     catalog.AbilityCatalog
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
	eventBus      events.Emitter
	actionTimeout time.Duration
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    rooms.Repository
	Resolver      *engine.Resolver
	Abilities     catalog.AbilityCatalog
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
	EventBus      events.Emitter
	ActionTimeout time.Duration
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Resolver == nil {
		panic("resolver is required")
	}
	if cfg.Abilities == nil {
		panic("ability catalog is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		resolver:      cfg.Resolver,
		abilities:     cfg.Abilities,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
		eventBus:      cfg.EventBus,
		actionTimeout: cfg.ActionTimeout,
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.timeProvider == nil {
		svc.timeProvider = systemClock{}
	}
	if svc.eventBus == nil {
		svc.eventBus = events.NewBus()
	}
	if svc.actionTimeout <= 0 {
		svc.actionTimeout = DefaultActionTimeout
	}

	return svc
}

// CreateRoom opens a room with the host seated on side A
func (s *service) CreateRoom(ctx context.Context, host *FighterInput) (*domain.Room, error) {
	combatant, err := s.newCombatant(host)
	if err != nil {
		return nil, err
	}

	room := domain.NewRoom(s.uuidGenerator.New(), combatant, s.timeProvider.Now())
	if err := s.repository.Create(ctx, room); err != nil {
		return nil, arenaerr.Wrap(err, "failed to create room")
	}

	log.Printf("BattleService: room created room=%s host=%s", room.ID, host.PlayerID)
	return room, nil
}

// JoinRoom seats a challenger on side B
func (s *service) JoinRoom(ctx context.Context, roomID string, challenger *FighterInput) (*domain.Room, error) {
	if strings.TrimSpace(roomID) == "" {
		return nil, arenaerr.InvalidArgument("room ID is required")
	}
	combatant, err := s.newCombatant(challenger)
	if err != nil {
		return nil, err
	}

	room, err := s.repository.Mutate(ctx, roomID, func(room *domain.Room) (*domain.Room, error) {
		if _, seated := room.SideOf(challenger.PlayerID); seated {
			return nil, arenaerr.InvalidArgumentf("player %s is already seated in room %s", challenger.PlayerID, roomID)
		}
		if err := room.Seat(combatant); err != nil {
			return nil, arenaerr.Validationf("room %s cannot seat a challenger while %s", roomID, room.Status)
		}
		room.UpdatedAt = s.timeProvider.Now()
		return room, nil
	})
	if err != nil {
		return nil, arenaerr.Wrapf(err, "failed to join room '%s'", roomID)
	}

	log.Printf("BattleService: challenger joined room=%s player=%s", roomID, challenger.PlayerID)
	return room, nil
}

// SetReady flags a player ready and starts the battle once both are
func (s *service) SetReady(ctx context.Context, roomID, playerID string) (*domain.Room, error) {
	if strings.TrimSpace(roomID) == "" {
		return nil, arenaerr.InvalidArgument("room ID is required")
	}

	var started bool
	room, err := s.repository.Mutate(ctx, roomID, func(room *domain.Room) (*domain.Room, error) {
		started = false

		side, err := seat(room, playerID)
		if err != nil {
			return nil, err
		}
		if room.IsActive() || room.IsFinished() {
			return nil, arenaerr.Validationf("room %s is already %s", roomID, room.Status)
		}

		now := s.timeProvider.Now()
		room.Combatant(side).Ready = true
		room.UpdatedAt = now

		if !room.CanStart() {
			return room, nil
		}

		active, err := s.resolver.Start(room)
		if err != nil {
			return nil, err
		}
		active.LastActionAt = now
		started = true
		return active, nil
	})
	if err != nil {
		return nil, arenaerr.Wrapf(err, "failed to set ready in room '%s'", roomID)
	}

	if started {
		log.Printf("BattleService: battle started room=%s", roomID)
		s.emit(events.NewBattleStartedEvent(room))
	}

	return room, nil
}

// SubmitAction resolves one action for the player's side
func (s *service) SubmitAction(ctx context.Context, input *SubmitActionInput) (*ActionResult, error) {
	if input == nil {
		return nil, arenaerr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.RoomID) == "" {
		return nil, arenaerr.InvalidArgument("room ID is required")
	}

	var outcomes []domain.Outcome
	room, err := s.repository.Mutate(ctx, input.RoomID, func(room *domain.Room) (*domain.Room, error) {
		side, err := seat(room, input.PlayerID)
		if err != nil {
			return nil, err
		}

		next, resolved, err := s.resolver.Resolve(room, side, input.Action)
		if err != nil {
			return nil, err
		}

		next, ticks, err := s.advance(next)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, ticks...)

		now := s.timeProvider.Now()
		next.UpdatedAt = now
		next.LastActionAt = now
		outcomes = resolved
		return next, nil
	})
	if err != nil {
		return nil, arenaerr.Wrapf(err, "failed to resolve %s in room '%s'", input.Action.Kind, input.RoomID)
	}

	s.publish(room, outcomes, finishReason(outcomes))
	return &ActionResult{Room: room, Outcomes: outcomes}, nil
}

// Surrender ends the battle in favour of the player's opponent
func (s *service) Surrender(ctx context.Context, roomID, playerID string) (*ActionResult, error) {
	return s.SubmitAction(ctx, &SubmitActionInput{
		RoomID:   roomID,
		PlayerID: playerID,
		Action:   domain.Action{Kind: domain.ActionSurrender},
	})
}

// GetRoom retrieves a room by ID
func (s *service) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	if strings.TrimSpace(roomID) == "" {
		return nil, arenaerr.InvalidArgument("room ID is required")
	}

	room, err := s.repository.Get(ctx, roomID)
	if err != nil {
		return nil, arenaerr.Wrapf(err, "failed to get room '%s'", roomID)
	}

	return room, nil
}

// ExpireIdleRooms forfeits the idle side in every stale active room. A room
// that fails to expire is logged and skipped.
func (s *service) ExpireIdleRooms(ctx context.Context) (int, error) {
	active, err := s.repository.ListActive(ctx)
	if err != nil {
		return 0, arenaerr.Wrap(err, "failed to list active rooms")
	}

	now := s.timeProvider.Now()
	expired := 0
	for _, candidate := range active {
		if !s.idle(candidate, now) {
			continue
		}

		var outcome *domain.Outcome
		room, err := s.repository.Mutate(ctx, candidate.ID, func(room *domain.Room) (*domain.Room, error) {
			outcome = nil
			// Someone may have acted since the listing
			if !room.IsActive() || !s.idle(room, now) {
				return nil, nil
			}

			next, forfeit, err := s.resolver.Surrender(room, room.CurrentTurn)
			if err != nil {
				return nil, err
			}
			next.UpdatedAt = now
			outcome = forfeit
			return next, nil
		})
		if err != nil {
			log.Printf("BattleService: failed to expire room=%s: %v", candidate.ID, err)
			continue
		}
		if outcome == nil {
			continue
		}

		log.Printf("BattleService: room expired room=%s idle_side=%s", room.ID, outcome.Actor)
		s.publish(room, []domain.Outcome{*outcome}, events.FinishReasonTimeout)
		expired++
	}

	return expired, nil
}

// advance runs the start-of-turn phase for the side now to act, so a stunned
// side loses its turn without submitting and its opponent can act at once
func (s *service) advance(room *domain.Room) (*domain.Room, []domain.Outcome, error) {
	var ticks []domain.Outcome
	for room.IsActive() && !room.TurnStarted {
		next, tick, err := s.resolver.BeginTurn(room)
		if err != nil {
			return nil, nil, err
		}
		room = next
		if tick != nil {
			ticks = append(ticks, *tick)
		}
	}
	return room, ticks, nil
}

func (s *service) idle(room *domain.Room, now time.Time) bool {
	return now.Sub(room.LastActionAt) >= s.actionTimeout
}

// publish emits the committed outcomes, then battle_finished when this call
// ended the battle. Only the call that moved the room to finished carries a
// Finished outcome, so the finish event fires once per room.
func (s *service) publish(room *domain.Room, outcomes []domain.Outcome, reason events.FinishReason) {
	finished := false
	for _, outcome := range outcomes {
		s.emit(events.NewActionResolvedEvent(room, outcome))
		finished = finished || outcome.Finished
	}

	if finished {
		log.Printf("BattleService: battle finished room=%s winner=%s reason=%s", room.ID, room.Winner, reason)
		s.emit(events.NewBattleFinishedEvent(room, reason))
	}
}

func (s *service) emit(event events.Event) {
	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("BattleService: failed to emit %s for room=%s: %v", event.GetType(), event.GetRoomID(), err)
	}
}

func finishReason(outcomes []domain.Outcome) events.FinishReason {
	for _, outcome := range outcomes {
		if outcome.Finished && outcome.Kind == domain.ActionSurrender {
			return events.FinishReasonSurrender
		}
	}
	return events.FinishReasonDefeat
}

func seat(room *domain.Room, playerID string) (domain.Side, error) {
	if strings.TrimSpace(playerID) == "" {
		return "", arenaerr.InvalidArgument("player ID is required")
	}
	side, ok := room.SideOf(playerID)
	if !ok {
		return "", arenaerr.InvalidArgumentf("player %s is not seated in room %s", playerID, room.ID)
	}
	return side, nil
}

// newCombatant validates input and builds a fresh combatant with full hp
func (s *service) newCombatant(input *FighterInput) (*domain.Combatant, error) {
	if input == nil {
		return nil, arenaerr.InvalidArgument("fighter cannot be nil")
	}
	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, arenaerr.InvalidArgument("player ID is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, arenaerr.InvalidArgument("fighter name is required")
	}
	if !elements.IsValid(input.Element) {
		return nil, arenaerr.InvalidArgumentf("unknown element %q", input.Element)
	}
	if input.HPMax <= 0 {
		return nil, arenaerr.InvalidArgument("hp max must be positive")
	}
	st := input.Stats
	if st.Forca < 0 || st.Agilidade < 0 || st.Resistencia < 0 || st.Foco < 0 {
		return nil, arenaerr.InvalidArgument("stats cannot be negative")
	}
	if input.Bond < 0 || input.Bond > maxTier || input.Exhaustion < 0 || input.Exhaustion > maxTier {
		return nil, arenaerr.InvalidArgumentf("bond and exhaustion must be within 0-%d", maxTier)
	}
	for _, tag := range input.Abilities {
		if _, err := s.abilities.GetAbility(tag); err != nil {
			return nil, arenaerr.Wrapf(err, "fighter %s cannot equip %s", input.Name, tag)
		}
	}

	return &domain.Combatant{
		ID:         s.uuidGenerator.New(),
		PlayerID:   input.PlayerID,
		Name:       input.Name,
		Element:    input.Element,
		Stats:      st,
		HPCurrent:  input.HPMax,
		HPMax:      input.HPMax,
		Bond:       input.Bond,
		Exhaustion: input.Exhaustion,
		Abilities:  append([]domain.AbilityTag(nil), input.Abilities...),
		Effects:    map[domain.EffectTag]*domain.StatusEffect{},
		Cooldowns:  domain.Cooldowns{},
		Synergy:    input.Synergy,
	}, nil
}
