// arcade is a small game backend built around object creation patterns:
// themed resources, prototype enemies and level builders.
//
// Usage:
//
//	arcade serve             - Start the HTTP API
//	arcade kinds             - List enemy prototypes
//	arcade demo              - Run a scripted session and print the state
//
// Global flags:
//
//	--config <path>     - Path to config YAML (default search: ~/.arcade/configs, ./configs)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/creational-arcade/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Creational Arcade - themes, enemies and levels over HTTP",
	Long: `Creational Arcade is a toy game backend. It keeps one shared game
configuration and engine, builds themed resources, spawns enemies from
prototypes and assembles levels.

Available commands:
  serve    - Start the HTTP API
  kinds    - List enemy prototypes
  demo     - Run a scripted session locally

Examples:
  arcade serve --addr :8080
  arcade kinds
  arcade demo --theme scifi`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(demoCmd)
}

// loadSettings loads the configuration and applies the game section to the
// shared game configuration.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}
	config.Shared().Apply(settings.Game)
	return settings, nil
}

func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
