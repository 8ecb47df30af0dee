package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/creational-arcade/internal/config"
	"github.com/vovakirdan/creational-arcade/internal/game"
	"github.com/vovakirdan/creational-arcade/internal/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade HTTP server",
	Long: `Start the HTTP API over the shared game state.

The configured theme is applied once at startup. Every request works on the
same configuration and engine.

Routes:
  GET  /state          - Current theme, level, background and enemies
  GET  /kinds          - Enemy kinds that can be spawned
  POST /set-theme      - Body {"theme": "fantasy"|"scifi"}
  POST /build-level    - Build the level for the current theme
  POST /spawn/{kind}   - Spawn an enemy
  POST /reset          - Remove all enemies

Examples:
  arcade serve                       # Listen on :8080
  arcade serve --addr 127.0.0.1:9000
  ARCADE_THEME=scifi arcade serve`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "HTTP listen address (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := newLogger("arcade-http")
	if err != nil {
		return err
	}

	cfg := server.Config{
		Address:         settings.Server.Address,
		ShutdownTimeout: settings.Server.ShutdownTimeout,
	}
	if flagAddr != "" {
		cfg.Address = flagAddr
	}

	svc := game.NewShared()
	applied := svc.ApplyTheme(string(config.Shared().Theme()))
	logger.Info("game ready",
		"theme", applied,
		"level", config.Shared().Level(),
		"max_enemies", config.Shared().MaxEnemies(),
	)

	return server.New(cfg, svc, logger).ListenAndServe()
}
