package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"travelplanner/internal/app/server/api"
	"travelplanner/internal/infrastructure/migration"
	"travelplanner/internal/infrastructure/storage/postgres"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP сервер",
	Long:  `Применяет миграции, подключается к базе и слушает RUN_ADDRESS до SIGINT/SIGTERM.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := migration.NewMigration(cfg, nil, log).Up(); err != nil {
			return err
		}

		storage, err := postgres.New(ctx, cfg.DB.DatabaseURI, log)
		if err != nil {
			return err
		}
		defer storage.Close()

		srv := &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           api.New(storage, cfg, log),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("server started", "addr", srv.Addr, "env", cfg.Env)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		case <-ctx.Done():
		}

		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		log.Info("server stopped")
		return nil
	},
}
