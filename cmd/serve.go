package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hellenika/hellenika/api"
	"github.com/hellenika/hellenika/config"
	"github.com/hellenika/hellenika/database"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Hellenika server",
	Long:  `Start the Hellenika server to handle vocabulary submissions, moderation and translation requests.`,
	Example: `hellenika serve --config config.yml
hellenika serve -c /path/to/config.yml --log-level debug`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func startServer(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if rootCmdPersistentFlags.LogLevel == "" {
		setLogLevel(cfg.LogLevel)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close() //nolint:errcheck

	if err := db.EnsureAdmin(cfg.Auth); err != nil {
		log.Fatalf("failed to create default admin: %v", err)
	}

	server, err := api.New(cfg, db, log.GetLevel() == log.DebugLevel)
	if err != nil {
		log.Fatalf("failed to create API server: %v", err)
	}

	// Start the API server in a goroutine
	go func() {
		log.Info("starting API server", "listen", cfg.Listen)
		if err := server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	log.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("failed to shut down API server: %v", err)
	}
}
