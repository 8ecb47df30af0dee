// Package level assembles levels step by step.
package level

import (
	"slices"

	"github.com/vovakirdan/creational-arcade/internal/core"
)

// Builder defaults.
const (
	DefaultNumber     = 1
	DefaultGoal       = "Sobrevive"
	DefaultBackground = "Área de entrenamiento"
)

// Builder accumulates level parameters. Every setter returns the builder so
// calls can be chained.
//
// Build does not reset the builder: a second Build returns a level with
// every value set so far. Use a new Builder for an unrelated level.
type Builder struct {
	number     int
	goal       string
	background string
	wave       []string
}

// NewBuilder returns a builder holding the default values.
func NewBuilder() *Builder {
	return &Builder{
		number: DefaultNumber,
		goal:   DefaultGoal,
	}
}

// WithNumber sets the level number.
func (b *Builder) WithNumber(n int) *Builder {
	b.number = n
	return b
}

// WithGoal sets the level goal.
func (b *Builder) WithGoal(goal string) *Builder {
	b.goal = goal
	return b
}

// WithBackground sets the level background.
func (b *Builder) WithBackground(bg string) *Builder {
	b.background = bg
	return b
}

// AddEnemy appends kind to the enemy wave.
func (b *Builder) AddEnemy(kind string) *Builder {
	b.wave = append(b.wave, kind)
	return b
}

// Build returns the level. An unset background becomes DefaultBackground,
// and the builder keeps that value for later builds.
// The returned wave is a copy; later AddEnemy calls do not change it.
func (b *Builder) Build() core.Level {
	if b.background == "" {
		b.background = DefaultBackground
	}

	wave := slices.Clone(b.wave)
	if wave == nil {
		wave = []string{}
	}

	return core.Level{
		Number:     b.number,
		Goal:       b.goal,
		Background: b.background,
		EnemyWave:  wave,
	}
}
