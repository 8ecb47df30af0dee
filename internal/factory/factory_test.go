package factory

import (
	"errors"
	"testing"

	"github.com/vovakirdan/creational-arcade/internal/config"
	"github.com/vovakirdan/creational-arcade/internal/engine"
	"github.com/vovakirdan/creational-arcade/internal/registry"
	"github.com/vovakirdan/creational-arcade/internal/theme"
)

func newThemedEngine(name string) *engine.Engine {
	e := engine.New(config.Default())
	f := theme.ForTheme(name)
	e.SetBackground(f.CreateBackground())
	e.SetSkinPalette(f.CreateSkinPalette())
	return e
}

func TestCreateSkins(t *testing.T) {
	tests := []struct {
		name  string
		theme string
		kind  string
		skin  string
	}{
		{"dragon fantasy", "fantasy", "dragon", "escamas carmesí"},
		{"dragon scifi", "scifi", "dragon", "color estándar"},
		{"orc fantasy", "fantasy", "orc", "verde musgo"},
		{"alien scifi", "scifi", "alien", "púrpura biolum."},
		{"android fantasy", "fantasy", "android", "color estándar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(registry.NewDefault(), newThemedEngine(tt.theme))
			e, err := f.Create(tt.kind)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tt.kind, err)
			}
			if e.Skin != tt.skin {
				t.Errorf("Create(%q) skin = %q, want %q", tt.kind, e.Skin, tt.skin)
			}
			if e.Kind != tt.kind {
				t.Errorf("Create(%q) kind = %q", tt.kind, e.Kind)
			}
		})
	}
}

func TestCreateKeepsPrototypeStats(t *testing.T) {
	reg := registry.NewDefault()
	f := New(reg, newThemedEngine("fantasy"))

	e, err := f.Create("dragon")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if e.HP != 60 || e.Atk != 10 {
		t.Errorf("unexpected stats %+v", e)
	}

	proto, _ := reg.Get("dragon")
	if proto.Skin != "" {
		t.Errorf("skin leaked into template: %q", proto.Skin)
	}
}

func TestCreateDoesNotSpawn(t *testing.T) {
	eng := newThemedEngine("fantasy")
	if _, err := New(registry.NewDefault(), eng).Create("orc"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if eng.Len() != 0 {
		t.Errorf("Create must not append to the engine, got %d enemies", eng.Len())
	}
}

func TestCreateUnknownPropagates(t *testing.T) {
	f := New(registry.NewDefault(), newThemedEngine("fantasy"))

	_, err := f.Create("unknown-kind")
	if !errors.Is(err, registry.ErrUnknownPrototype) {
		t.Fatalf("expected ErrUnknownPrototype, got %v", err)
	}
	var upe *registry.UnknownPrototypeError
	if !errors.As(err, &upe) || upe.Kind != "unknown-kind" {
		t.Errorf("error not propagated unchanged: %v", err)
	}
}

func TestCreateShared(t *testing.T) {
	eng := engine.Shared()
	prev := eng.SkinPalette()
	defer eng.SetSkinPalette(prev)

	eng.SetSkinPalette(theme.ForTheme("fantasy").CreateSkinPalette())
	e, err := Create("goblin")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if e.Skin != "verde limón" {
		t.Errorf("expected skin from shared palette, got %q", e.Skin)
	}
}
