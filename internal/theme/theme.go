// Package theme provides the visual theme families. Each family produces a
// background and a skin palette that belong together.
package theme

// Name identifies a theme family.
type Name string

const (
	Fantasy Name = "fantasy"
	SciFi   Name = "scifi"
)

// Factory creates the resources of one theme family.
type Factory interface {
	// Name returns the theme this factory belongs to.
	Name() Name

	// CreateBackground returns the level background description.
	CreateBackground() string

	// CreateSkinPalette returns a fresh kind -> skin lookup table.
	CreateSkinPalette() map[string]string
}

// ForTheme returns the factory for the named theme.
// "scifi" selects the sci-fi family; every other value falls back to fantasy.
func ForTheme(name string) Factory {
	if Name(name) == SciFi {
		return SciFiFactory{}
	}
	return FantasyFactory{}
}

// Normalize maps any theme string to one of the supported theme names,
// using the same fallback as ForTheme.
func Normalize(name string) Name {
	return ForTheme(name).Name()
}

// Names returns the supported theme names.
func Names() []Name {
	return []Name{Fantasy, SciFi}
}

// FantasyFactory builds enchanted forest resources.
type FantasyFactory struct{}

func (FantasyFactory) Name() Name { return Fantasy }

func (FantasyFactory) CreateBackground() string {
	return "Bosque encantado con luciérnagas"
}

func (FantasyFactory) CreateSkinPalette() map[string]string {
	return map[string]string{
		"orc":    "verde musgo",
		"dragon": "escamas carmesí",
		"goblin": "verde limón",
	}
}

// SciFiFactory builds space station resources.
type SciFiFactory struct{}

func (SciFiFactory) Name() Name { return SciFi }

func (SciFiFactory) CreateBackground() string {
	return "Estación espacial con vista a nebulosas"
}

func (SciFiFactory) CreateSkinPalette() map[string]string {
	return map[string]string{
		"drone":   "metal pulido",
		"android": "cromo azul",
		"alien":   "púrpura biolum.",
	}
}
