package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/sandfox-dev/foxchat/internal/config"
	"github.com/sandfox-dev/foxchat/internal/core"
	"github.com/sandfox-dev/foxchat/internal/providers/gemini"
	"github.com/sandfox-dev/foxchat/internal/service/dispatch"
	"github.com/sandfox-dev/foxchat/internal/service/memory"
	"github.com/sandfox-dev/foxchat/internal/service/session"
	"github.com/sandfox-dev/foxchat/internal/storage/sqlite"
	"github.com/sandfox-dev/foxchat/internal/transport/tui"
	"github.com/sandfox-dev/foxchat/pkg/log"
	"github.com/sandfox-dev/foxchat/pkg/srv"
)

func NewServices(ctx context.Context, appCfg *config.AppConfig, stop context.CancelFunc) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, appCfg.GetEnvPath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	history := sqlite.NewHistory(db, appCfg.SearchLimit)
	facts := sqlite.NewFacts(db)

	// 2. AI provider; a missing or bad key degrades instead of failing
	var provider core.ChatProvider
	var gen core.Generator
	gemCfg := config.NewGeminiConfig(ctx)
	degraded := !gemCfg.IsConfigured()
	if !degraded {
		client, err := gemini.NewClient(ctx, gemCfg)
		if err != nil {
			logger.Warn().Err(err).Msg("gemini client unavailable, running without AI")
			degraded = true
		} else {
			provider = client
			gen = client
			services = append(services, srv.NewCleanup(client.Close))
		}
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, running without AI")
	}

	// 3. Session seeded from stored facts
	sess := session.NewManager(provider, memory.NewContextBuilder(facts))
	if err := sess.Open(ctx); err != nil {
		logger.Warn().Err(err).Msg("could not open the initial chat session")
	}
	services = append(services, srv.NewCleanup(sess.Close))

	// 4. Dispatcher and the terminal UI
	dispatcher := dispatch.New(history, facts, sess, gen)
	services = append(services, tui.NewTerminal(ctx, dispatcher, sess, degraded, stop))

	return services
}

func initEnv(ctx context.Context, envFile string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
