package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hillclimb/internal/api"
	"hillclimb/internal/config"
	"hillclimb/internal/game"
	"hillclimb/internal/progress"
	"hillclimb/log"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the game engine with the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	cmd.Flags().StringVar(&config.Addr, "addr", ":8080",
		"Listen address for the HTTP API")
	cmd.Flags().IntVar(&config.Level, "level", 1,
		"Level to start on")
	cmd.Flags().Float64Var(&config.TickHz, "tick-hz", 60,
		"Simulation tick rate")
	return cmd
}

func serve() error {
	log.InitLoggerWithLevel(config.LogLevel)
	logger := log.Logger
	defer func() { _ = logger.Sync() }()

	store, err := progress.OpenStore(config.SaveDB)
	if err != nil {
		return err
	}
	defer store.Close()

	tracker := progress.NewTracker(store, logger.Named("progress"))

	eng := game.NewEngine(game.EngineConfig{
		TickHz:      config.TickHz,
		Level:       config.Level,
		Multipliers: tracker.Multipliers,
		Events:      tracker.HandleEvent,
		OnRunEnd:    tracker.HandleRunEnd,
		Logger:      logger.Named("engine"),
	})

	server := api.NewServer(eng, tracker)
	httpServer := &http.Server{
		Addr:              config.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := eng.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("engine stopped", zap.Error(err))
		}
	}()

	go func() {
		logger.Info("http api listening", zap.String("addr", config.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	cancel()

	logger.Info("shutdown complete")
	return nil
}
