// Package config provides YAML-based configuration loading and the shared
// game configuration for the arcade backend.
package config

import (
	"sync"
	"time"

	"github.com/vovakirdan/creational-arcade/internal/theme"
)

// Settings is the on-disk configuration file layout.
type Settings struct {
	Game   GameSettings   `yaml:"game"`
	Server ServerSettings `yaml:"server"`
}

// GameSettings defines the initial values of the shared game configuration.
type GameSettings struct {
	Theme      string `yaml:"theme" env:"ARCADE_THEME"`
	MaxEnemies int    `yaml:"max_enemies" env:"ARCADE_MAX_ENEMIES"`
	Level      int    `yaml:"level" env:"ARCADE_LEVEL"`
}

// ServerSettings defines the HTTP server parameters.
type ServerSettings struct {
	Address         string        `yaml:"address" env:"ARCADE_ADDR"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"ARCADE_SHUTDOWN_TIMEOUT"`
}

// GameConfig is the mutable game configuration shared by every component.
// It is safe for concurrent use.
type GameConfig struct {
	mu         sync.RWMutex
	theme      theme.Name
	maxEnemies int
	level      int
}

// Default returns a GameConfig holding the default values.
func Default() *GameConfig {
	return New(DefaultSettings().Game)
}

// New creates a GameConfig from settings. Out of range values are replaced
// by their defaults.
func New(s GameSettings) *GameConfig {
	c := &GameConfig{}
	c.Apply(s)
	return c
}

var (
	shared     *GameConfig
	sharedOnce sync.Once
)

// Shared returns the process-wide configuration, creating it with default
// values on first use.
func Shared() *GameConfig {
	sharedOnce.Do(func() {
		shared = Default()
	})
	return shared
}

// Apply replaces every field with the values from s.
func (c *GameConfig) Apply(s GameSettings) {
	s = s.normalized()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.theme = theme.Name(s.Theme)
	c.maxEnemies = s.MaxEnemies
	c.level = s.Level
}

// Theme returns the active theme.
func (c *GameConfig) Theme() theme.Name {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.theme
}

// SetTheme stores the theme, falling back to fantasy for unknown names,
// and returns the stored value.
func (c *GameConfig) SetTheme(name string) theme.Name {
	n := theme.Normalize(name)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.theme = n
	return n
}

// MaxEnemies returns the enemy cap.
func (c *GameConfig) MaxEnemies() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxEnemies
}

// SetMaxEnemies sets the enemy cap. Values below 1 are ignored.
func (c *GameConfig) SetMaxEnemies(n int) {
	if n < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxEnemies = n
}

// Level returns the current level number.
func (c *GameConfig) Level() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

// SetLevel sets the current level number. Values below 1 are ignored.
func (c *GameConfig) SetLevel(n int) {
	if n < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = n
}

// Settings returns a snapshot of the current values.
func (c *GameConfig) Settings() GameSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return GameSettings{
		Theme:      string(c.theme),
		MaxEnemies: c.maxEnemies,
		Level:      c.level,
	}
}

func (s GameSettings) normalized() GameSettings {
	d := DefaultSettings().Game
	s.Theme = string(theme.Normalize(s.Theme))
	if s.MaxEnemies < 1 {
		s.MaxEnemies = d.MaxEnemies
	}
	if s.Level < 1 {
		s.Level = d.Level
	}
	return s
}
