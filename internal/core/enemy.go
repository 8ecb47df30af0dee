// Package core holds the value types shared by the arcade packages.
// Nothing in here performs I/O or keeps global state.
package core

// Enemy is a spawned creature. Enemies are produced by cloning a prototype
// and are never mutated once they have been handed to the engine.
type Enemy struct {
	Kind string `json:"kind"`
	HP   int    `json:"hp"`
	Atk  int    `json:"atk"`
	Skin string `json:"skin"`
}

// NewEnemy returns an enemy template with no skin assigned.
func NewEnemy(kind string, hp, atk int) Enemy {
	return Enemy{Kind: kind, HP: hp, Atk: atk}
}

// Clone returns an independent copy of e.
// Enemy has no reference fields, so a value copy shares nothing with e.
func (e Enemy) Clone() Enemy {
	return Enemy{
		Kind: e.Kind,
		HP:   e.HP,
		Atk:  e.Atk,
		Skin: e.Skin,
	}
}
