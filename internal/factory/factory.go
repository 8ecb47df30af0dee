// Package factory turns prototype clones into ready-to-use enemies.
package factory

import (
	"github.com/vovakirdan/creational-arcade/internal/core"
	"github.com/vovakirdan/creational-arcade/internal/engine"
	"github.com/vovakirdan/creational-arcade/internal/registry"
)

// DefaultSkin is used when the active palette has no entry for a kind.
const DefaultSkin = "color estándar"

// Prototypes is the source of enemy clones.
type Prototypes interface {
	Get(kind string) (core.Enemy, error)
}

// Palette resolves the skin for an enemy kind.
type Palette interface {
	Skin(kind string) (string, bool)
}

// EnemyFactory creates themed enemies from prototype clones.
type EnemyFactory struct {
	protos  Prototypes
	palette Palette
}

// New creates a factory drawing prototypes from protos and skins from palette.
func New(protos Prototypes, palette Palette) *EnemyFactory {
	return &EnemyFactory{protos: protos, palette: palette}
}

// Create clones the prototype for kind and applies the palette skin.
// Unknown kinds return the registry error unchanged.
// The enemy is not added to any engine.
func (f *EnemyFactory) Create(kind string) (core.Enemy, error) {
	enemy, err := f.protos.Get(kind)
	if err != nil {
		return core.Enemy{}, err
	}

	skin, ok := f.palette.Skin(kind)
	if !ok {
		skin = DefaultSkin
	}
	enemy.Skin = skin
	return enemy, nil
}

// Create builds an enemy using the shared registry and the shared engine palette.
func Create(kind string) (core.Enemy, error) {
	return New(registry.Shared(), engine.Shared()).Create(kind)
}
