package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/saeidalz13/battleship-console/console"
	"github.com/saeidalz13/battleship-console/db"
	"github.com/saeidalz13/battleship-console/db/sqlc"
	"github.com/saeidalz13/battleship-console/internal/config"
	"github.com/saeidalz13/battleship-console/internal/logger"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logg, closer := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	defer closer.Close()
	log.Logger = logg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []console.Option{console.WithLogger(logg)}
	if cfg.AnalyticsEnabled() {
		conn := db.MustConnectToDb(cfg.PsqlUrl, cfg.MigrationDir)
		defer conn.Close()
		opts = append(opts, console.WithAnalytics(sqlc.NewAnalyticsManager(sqlc.New(conn))))
	}

	gameManager := mb.NewBattleshipGameManager(cfg.BoardOptions()...)
	processor, err := console.NewProcessor(gameManager, opts...)
	if err != nil {
		panic(err)
	}

	logg.Info().
		Str("stage", cfg.Stage).
		Str("orientation_mode", cfg.OrientationMode).
		Bool("analytics", cfg.AnalyticsEnabled()).
		Msg("starting console session")

	if err := processor.Run(ctx); err != nil && ctx.Err() == nil {
		logg.Error().Err(err).Msg("session ended with error")
		closer.Close()
		os.Exit(1)
	}
}
