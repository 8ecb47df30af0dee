package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultSettings returns the hardcoded default configuration.
func DefaultSettings() Settings {
	return Settings{
		Game: GameSettings{
			Theme:      "fantasy",
			MaxEnemies: 5,
			Level:      1,
		},
		Server: ServerSettings{
			Address:         ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
