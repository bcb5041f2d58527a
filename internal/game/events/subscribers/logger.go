package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/banqi/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool, len(eventTypes))
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables logging the full event as JSON
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	logEvent := eventLogger.WithLevel(ls.level())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int64("seed", e.Seed).
			Int("pieces", e.Pieces).
			Int("hidden", e.Hidden)

	case *events.PieceRevealedEvent:
		withMeta(logEvent, e.Metadata).
			Int("cell", e.Cell).
			Str("rank", e.Rank.String()).
			Str("color", e.Color.String())

	case *events.TurnDeterminedEvent:
		withMeta(logEvent, e.Metadata).
			Str("first_revealed", e.FirstRevealed.String()).
			Str("to_move", e.ToMove.String())

	case *events.TurnChangedEvent:
		withMeta(logEvent, e.Metadata).
			Str("to_move", e.ToMove.String())

	case *events.PieceSelectedEvent:
		withMeta(logEvent, e.Metadata).
			Int("cell", e.Cell).
			Str("rank", e.Rank.String()).
			Str("color", e.Color.String())

	case *events.SelectionClearedEvent:
		withMeta(logEvent, e.Metadata).
			Int("cell", e.Cell).
			Str("reason", e.Reason)

	case *events.PieceMovedEvent:
		withMeta(logEvent, e.Metadata).
			Int("from_row", e.From.Row).
			Int("from_col", e.From.Col).
			Int("to_row", e.To.Row).
			Int("to_col", e.To.Col).
			Str("rank", e.Rank.String()).
			Str("color", e.Color.String())

	case *events.PieceCapturedEvent:
		withMeta(logEvent, e.Metadata).
			Int("from_row", e.From.Row).
			Int("from_col", e.From.Col).
			Int("to_row", e.To.Row).
			Int("to_col", e.To.Col).
			Str("attacker", e.AttackerColor.String()+" "+e.AttackerRank.String()).
			Str("captured", e.CapturedColor.String()+" "+e.CapturedRank.String())

	case *events.CommandRejectedEvent:
		withMeta(logEvent, e.Metadata).
			Str("command", e.Command).
			Int("cell", e.Cell).
			Str("reason", e.Reason)

	case *events.ConfigReloadedEvent:
		logEvent.Str("path", e.Path)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}

// level maps the configured level onto the four levels the subscriber emits
func (ls *LoggerSubscriber) level() zerolog.Level {
	switch ls.logLevel {
	case zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel:
		return ls.logLevel
	default:
		return zerolog.InfoLevel
	}
}

func withMeta(e *zerolog.Event, meta events.EventMetadata) *zerolog.Event {
	return e.Int("sequence", meta.Sequence)
}
