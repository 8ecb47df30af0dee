// Package game exposes the operations the request layer performs on the
// shared game state: theming, level building, spawning and resetting.
package game

import (
	"errors"
	"sync"

	"github.com/vovakirdan/creational-arcade/internal/config"
	"github.com/vovakirdan/creational-arcade/internal/core"
	"github.com/vovakirdan/creational-arcade/internal/engine"
	"github.com/vovakirdan/creational-arcade/internal/factory"
	"github.com/vovakirdan/creational-arcade/internal/level"
	"github.com/vovakirdan/creational-arcade/internal/registry"
	"github.com/vovakirdan/creational-arcade/internal/theme"
)

// LevelGoal is the goal of every level built by the service.
const LevelGoal = "Elimina la oleada"

// ErrEnemyLimit is returned by SpawnEnemy when the engine already holds
// config.MaxEnemies enemies.
var ErrEnemyLimit = errors.New("game: enemy limit reached")

// State is the public view of the game.
type State struct {
	Theme      string       `json:"theme"`
	Level      int          `json:"level"`
	Background string       `json:"background"`
	Enemies    []core.Enemy `json:"enemies"`
}

// Service serialises every operation on one engine, so check-then-act
// sequences such as the enemy cap are atomic.
type Service struct {
	mu       sync.Mutex
	engine   *engine.Engine
	registry *registry.Registry
	enemies  *factory.EnemyFactory
}

// New creates a service operating on eng with prototypes from reg.
func New(eng *engine.Engine, reg *registry.Registry) *Service {
	return &Service{
		engine:   eng,
		registry: reg,
		enemies:  factory.New(reg, eng),
	}
}

// NewShared creates a service over the process-wide engine and registry.
func NewShared() *Service {
	return New(engine.Shared(), registry.Shared())
}

func (s *Service) config() *config.GameConfig {
	return s.engine.Config()
}

// ApplyTheme stores the theme and loads its background and palette into
// the engine. Unknown names fall back to fantasy. Returns the stored theme.
func (s *Service) ApplyTheme(name string) theme.Name {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.config().SetTheme(name)
	f := theme.ForTheme(name)
	s.engine.SetBackground(f.CreateBackground())
	s.engine.SetSkinPalette(f.CreateSkinPalette())
	return stored
}

// BuildLevel builds the level for the configured number and theme and makes
// its background the active one.
func (s *Service) BuildLevel() core.Level {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config()
	active := cfg.Theme()
	f := theme.ForTheme(string(active))

	b := level.NewBuilder().
		WithNumber(cfg.Level()).
		WithGoal(LevelGoal).
		WithBackground(f.CreateBackground())
	if active == theme.Fantasy {
		b.AddEnemy("orc").AddEnemy("goblin")
	} else {
		b.AddEnemy("drone").AddEnemy("android")
	}

	lvl := b.Build()
	s.engine.SetBackground(lvl.Background)
	return lvl
}

// SpawnEnemy creates an enemy of kind and adds it to the engine.
// Returns ErrEnemyLimit when the cap is reached and the registry error for
// unknown kinds; in both cases the engine is unchanged.
func (s *Service) SpawnEnemy(kind string) (core.Enemy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine.Len() >= s.config().MaxEnemies() {
		return core.Enemy{}, ErrEnemyLimit
	}

	enemy, err := s.enemies.Create(kind)
	if err != nil {
		return core.Enemy{}, err
	}
	s.engine.Append(enemy)
	return enemy, nil
}

// Reset clears the enemies. Theme and configuration are kept.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Reset()
}

// State returns a snapshot of the game.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config()
	return State{
		Theme:      string(cfg.Theme()),
		Level:      cfg.Level(),
		Background: s.engine.Background(),
		Enemies:    s.engine.Enemies(),
	}
}

// Kinds returns the enemy kinds that can be spawned.
func (s *Service) Kinds() []string {
	return s.registry.Kinds()
}
