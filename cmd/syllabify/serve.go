package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/syllabify/internal/config"
	"github.com/jonathan/syllabify/internal/db"
	"github.com/jonathan/syllabify/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort        int
	serveDatabaseURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing segmentation endpoints. With a database URL
the word bank endpoints are mounted too; admin writes additionally need
JWT_SECRET and ADMIN_PASSWORD_HASH.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := servePort
	if !cmd.Flags().Changed("port") {
		port = appConfig.Port
	}

	cfg := server.Config{
		Port:    port,
		Workers: appConfig.Workers,
		Logger:  logger,
	}

	databaseURL := stringOr(cmd, "db-url", serveDatabaseURL, appConfig.DatabaseURL)
	if databaseURL != "" {
		database, err := connectWordBank(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		cfg.Store = database

		cfg.JWT, cfg.Password = loadAdminAuth()
	} else {
		logger.Info("no database configured, word bank endpoints disabled")
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}

func connectWordBank(ctx context.Context, databaseURL string) (*db.DB, error) {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// loadAdminAuth returns nil configs, disabling admin routes, when JWT or
// password settings are missing or invalid.
func loadAdminAuth() (*config.JWTConfig, *config.PasswordConfig) {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		logger.Warn("admin routes disabled", zap.Error(err))
		return nil, nil
	}
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		logger.Warn("admin routes disabled", zap.Error(err))
		return nil, nil
	}
	if !passwordConfig.AdminEnabled() {
		logger.Warn("admin routes disabled: ADMIN_PASSWORD_HASH is not set")
		return nil, nil
	}
	return jwtConfig, passwordConfig
}
