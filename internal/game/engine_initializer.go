package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/banqi/internal/game/core"
	"github.com/mitchelldurbincs/banqi/internal/game/events"
	"github.com/mitchelldurbincs/banqi/internal/game/states"
)

// GameConfig holds everything needed to start a game. Zero values are
// filled in by the initializer; a zero Logger discards output.
type GameConfig struct {
	// Rng deals the board. When nil one is created from Seed.
	Rng *rand.Rand
	// Seed seeds Rng when Rng is nil. Zero means time based.
	Seed     int64
	Logger   zerolog.Logger
	EventBus *events.EventBus
	GameID   string
	// Board replaces the random deal with a scripted layout.
	Board *core.Board
	// Turn is only honored together with Board.
	Turn states.TurnState
}

// EngineInitializer handles the initialization of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize creates a ready engine and publishes game.started
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled before the deal")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()

	board, turn := ei.dealBoard()
	engine := ei.createEngine(board, turn)

	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		ei.config.Seed,
		board.Occupied(),
		engine.hiddenCount(),
	))

	engine.logger.Info().
		Int64("seed", ei.config.Seed).
		Int("pieces", board.Occupied()).
		Bool("scripted", ei.config.Board != nil).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults sets up default values for missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rng == nil {
		if ei.config.Seed == 0 {
			ei.config.Seed = time.Now().UnixNano()
		}
		ei.logger.Debug().Int64("seed", ei.config.Seed).Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(ei.config.Seed))
	}

	if ei.config.GameID == "" {
		ei.config.GameID = uuid.NewString()
	}

	if ei.config.EventBus == nil {
		ei.config.EventBus = events.NewEventBusWithLogger(ei.logger)
	}
}

func (ei *EngineInitializer) dealBoard() (*core.Board, states.TurnState) {
	if ei.config.Board != nil {
		ei.logger.Debug().Int("pieces", ei.config.Board.Occupied()).Msg("Using scripted board")
		return ei.config.Board, ei.config.Turn
	}
	return core.NewBoard(ei.config.Rng), states.Undetermined()
}

func (ei *EngineInitializer) createEngine(board *core.Board, turn states.TurnState) *Engine {
	return &Engine{
		gameID:    ei.config.GameID,
		seed:      ei.config.Seed,
		board:     board,
		turn:      turn,
		selection: states.Empty(),
		logger:    ei.logger.With().Str("game_id", ei.config.GameID).Logger(),
		eventBus:  ei.config.EventBus,
	}
}
