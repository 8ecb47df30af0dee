// Package engine holds the runtime state of the running game: the enemies
// currently alive and the theme resources applied to the scene.
package engine

import (
	"maps"
	"slices"
	"sync"

	"github.com/vovakirdan/creational-arcade/internal/config"
	"github.com/vovakirdan/creational-arcade/internal/core"
)

// Engine is the shared mutable game state. It is safe for concurrent use,
// but it does not enforce the enemy cap: callers check Len against
// Config().MaxEnemies() before calling Append.
type Engine struct {
	mu          sync.RWMutex
	config      *config.GameConfig
	enemies     []core.Enemy
	background  string
	skinPalette map[string]string
}

// New creates an engine bound to cfg with no enemies and no theme applied.
func New(cfg *config.GameConfig) *Engine {
	return &Engine{
		config:      cfg,
		skinPalette: make(map[string]string),
	}
}

var (
	shared     *Engine
	sharedOnce sync.Once
)

// Shared returns the process-wide engine bound to config.Shared().
func Shared() *Engine {
	sharedOnce.Do(func() {
		shared = New(config.Shared())
	})
	return shared
}

// Config returns the configuration the engine was created with.
func (e *Engine) Config() *config.GameConfig {
	return e.config
}

// Reset removes every enemy. Background, palette and config are kept.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enemies = e.enemies[:0]
}

// Append adds an enemy after the ones already spawned.
func (e *Engine) Append(enemy core.Enemy) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enemies = append(e.enemies, enemy)
}

// Len returns the number of enemies currently alive.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.enemies)
}

// Enemies returns a copy of the enemies in spawn order. The result is never
// nil.
func (e *Engine) Enemies() []core.Enemy {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if len(e.enemies) == 0 {
		return []core.Enemy{}
	}
	return slices.Clone(e.enemies)
}

// Background returns the active background.
func (e *Engine) Background() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.background
}

// SetBackground replaces the active background.
func (e *Engine) SetBackground(bg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.background = bg
}

// SkinPalette returns a copy of the active kind -> skin table.
func (e *Engine) SkinPalette() map[string]string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.skinPalette)
}

// SetSkinPalette replaces the active palette with a copy of p.
func (e *Engine) SetSkinPalette(p map[string]string) {
	cp := maps.Clone(p)
	if cp == nil {
		cp = make(map[string]string)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.skinPalette = cp
}

// Skin returns the palette entry for kind.
func (e *Engine) Skin(kind string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.skinPalette[kind]
	return s, ok
}
