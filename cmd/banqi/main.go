package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/banqi/internal/config"
	"github.com/mitchelldurbincs/banqi/internal/game"
	"github.com/mitchelldurbincs/banqi/internal/game/events"
	"github.com/mitchelldurbincs/banqi/internal/game/events/subscribers"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Int64("seed", 0, "Board seed (0 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	logFormat := flag.String("log-format", "", "Log format (console, json) (empty to use config default)")
	showHidden := flag.Bool("show-hidden", false, "Show the ranks of face down pieces")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("BANQI_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *seed == 0 {
		*seed = cfg.Game.Seed
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	if *logFormat == "" {
		*logFormat = cfg.Logging.Format
	}

	setupLogging(*logLevel, *logFormat)

	bus := events.NewEventBusWithLogger(log.Logger.With().Str("component", "EventBus").Logger())
	eventLogger := subscribers.NewLoggerSubscriber("event-logger", log.Logger, parseLevel(cfg.Events.LogLevel))
	eventLogger.SetEventFilter(cfg.Events.Filter)
	eventLogger.SetDevMode(cfg.Events.DevMode)
	bus.Subscribe(eventLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := game.NewEngine(ctx, game.GameConfig{
		Seed:     *seed,
		Logger:   log.Logger,
		EventBus: bus,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game engine")
	}

	log.Info().
		Str("game_id", engine.GameID()).
		Int64("seed", engine.Seed()).
		Str("config", config.ConfigFilePath()).
		Str("overlay", config.OverlayFilePath()).
		Msg("Starting banqi")

	sh := newShell(engine, displayOptions(cfg, *showHidden), os.Stdout, log.Logger)

	if config.ConfigFilePath() != "" {
		config.WatchConfig(func(path string) {
			next := *config.Get()
			reload := func(s *shell) {
				s.display = displayOptions(&next, *showHidden)
				eventLogger.SetEventFilter(next.Events.Filter)
				eventLogger.SetDevMode(next.Events.DevMode)
				bus.Publish(events.NewConfigReloadedEvent(engine.GameID(), path))
			}
			select {
			case sh.reloads <- reload:
			default:
				log.Warn().Str("path", path).Msg("Dropping config reload, shell is busy")
			}
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring config change")
		})
	}

	if err := sh.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("Shell failed")
	}

	stats := engine.Stats()
	log.Info().
		Int("commands", stats.Commands).
		Int("black_remaining", stats.Black.Remaining).
		Int("red_remaining", stats.Red.Remaining).
		Msg("Game closed")
}

func displayOptions(cfg *config.Config, showHidden bool) game.RenderOptions {
	return game.RenderOptions{
		Color:            cfg.Display.Color,
		ShowCoordinates:  cfg.Display.ShowCoordinates,
		ShowHidden:       cfg.Display.ShowHidden || showHidden,
		ShowLegalTargets: cfg.Display.ShowLegalTargets,
	}
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// setupLogging writes logs to stderr so the board on stdout stays readable
func setupLogging(level, format string) {
	zerolog.SetGlobalLevel(parseLevel(level))

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}
