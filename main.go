package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"footballfinder/internal/config"
	"footballfinder/internal/database"
	"footballfinder/internal/logging"
	"footballfinder/internal/models"
	"footballfinder/internal/server"
	"footballfinder/internal/services"
	"footballfinder/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// configFile is the optional --config flag shared by all subcommands.
var configFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "footballfinder",
		Short:        "Pickup football game finder API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe()
		},
	}
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate()
		},
	})
	return cmd
}

// bootstrap loads configuration, builds the logger and opens the migrated database.
func bootstrap() (*config.Config, *logrus.Logger, *gorm.DB, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.GeneratedSecret {
		log.Warn("JWT_SECRET not set; using a random development secret, tokens will not survive a restart")
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN, log)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("Creating tables if they don't exist...")
	if err := database.Migrate(db); err != nil {
		return nil, nil, nil, err
	}
	log.Info("Database tables ready")
	return cfg, log, db, nil
}

func runMigrate() error {
	_, _, db, err := bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	return nil
}

func runServe() error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "serve: %v\n", err)
		return err
	}

	// --- Optional RabbitMQ game announcements ---
	var publisher services.GameEventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			log.WithError(err).Error("failed to initialize RabbitMQ client")
			return err
		}
		defer mqClient.Close()
		publisher = mqClient

		err = mqClient.ConsumeGameEvents(func(event models.GameCreatedEvent) error {
			log.WithFields(logrus.Fields{
				"game_id":  event.GameID,
				"title":    event.Title,
				"location": event.Location,
				"date":     event.Date,
			}).Info("new game announced")
			return nil
		})
		if err != nil {
			log.WithError(err).Warn("failed to start game event consumer")
		}
	} else {
		log.Info("RABBITMQ_URL not set; game events disabled")
	}

	app := server.New(server.Deps{
		Config:    cfg,
		DB:        db,
		Log:       log,
		Publisher: publisher,
	})

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", cfg.AppPort)
		errc <- app.Fiber.Listen(cfg.AppPort)
	}()

	select {
	case err := <-errc:
		log.WithError(err).Error("server failed")
		return err
	case sig := <-quit:
		log.Infof("Shutting down server (%s)...", sig)
	}

	if err := app.Fiber.Shutdown(); err != nil {
		log.WithError(err).Error("error during Fiber shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("Server gracefully stopped")
	return nil
}
