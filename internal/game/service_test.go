package game

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/vovakirdan/creational-arcade/internal/config"
	"github.com/vovakirdan/creational-arcade/internal/engine"
	"github.com/vovakirdan/creational-arcade/internal/registry"
	"github.com/vovakirdan/creational-arcade/internal/theme"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(engine.New(config.Default()), registry.NewDefault())
}

func TestApplyTheme(t *testing.T) {
	s := newTestService(t)

	if got := s.ApplyTheme("scifi"); got != theme.SciFi {
		t.Errorf("ApplyTheme(scifi) = %q", got)
	}
	st := s.State()
	if st.Theme != "scifi" {
		t.Errorf("expected theme scifi, got %q", st.Theme)
	}
	if st.Background != "Estación espacial con vista a nebulosas" {
		t.Errorf("unexpected background %q", st.Background)
	}

	if got := s.ApplyTheme("whatever"); got != theme.Fantasy {
		t.Errorf("ApplyTheme(whatever) = %q, want fantasy", got)
	}
	if s.State().Background != "Bosque encantado con luciérnagas" {
		t.Errorf("unexpected fallback background %q", s.State().Background)
	}
}

func TestBuildLevel(t *testing.T) {
	tests := []struct {
		theme      string
		wave       []string
		background string
	}{
		{"fantasy", []string{"orc", "goblin"}, "Bosque encantado con luciérnagas"},
		{"scifi", []string{"drone", "android"}, "Estación espacial con vista a nebulosas"},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			s := newTestService(t)
			s.ApplyTheme(tt.theme)
			s.engine.Config().SetLevel(4)
			s.engine.SetBackground("")

			lvl := s.BuildLevel()
			if lvl.Number != 4 {
				t.Errorf("expected level number 4, got %d", lvl.Number)
			}
			if lvl.Goal != LevelGoal {
				t.Errorf("expected goal %q, got %q", LevelGoal, lvl.Goal)
			}
			if !slices.Equal(lvl.EnemyWave, tt.wave) {
				t.Errorf("wave = %v, want %v", lvl.EnemyWave, tt.wave)
			}
			if lvl.Background != tt.background {
				t.Errorf("background = %q, want %q", lvl.Background, tt.background)
			}
			if s.State().Background != tt.background {
				t.Errorf("engine background not updated: %q", s.State().Background)
			}
		})
	}
}

func TestSpawnEnemy(t *testing.T) {
	s := newTestService(t)
	s.ApplyTheme("fantasy")

	e, err := s.SpawnEnemy("dragon")
	if err != nil {
		t.Fatalf("SpawnEnemy failed: %v", err)
	}
	if e.Skin != "escamas carmesí" || e.HP != 60 {
		t.Errorf("unexpected enemy %+v", e)
	}

	st := s.State()
	if len(st.Enemies) != 1 || st.Enemies[0] != e {
		t.Errorf("enemy not added to state: %+v", st.Enemies)
	}
}

func TestSpawnOrder(t *testing.T) {
	s := newTestService(t)
	kinds := []string{"goblin", "orc", "alien", "orc"}
	for _, k := range kinds {
		if _, err := s.SpawnEnemy(k); err != nil {
			t.Fatalf("SpawnEnemy(%q) failed: %v", k, err)
		}
	}

	for i, e := range s.State().Enemies {
		if e.Kind != kinds[i] {
			t.Errorf("enemies[%d] = %q, want %q", i, e.Kind, kinds[i])
		}
	}
}

func TestSpawnUnknown(t *testing.T) {
	s := newTestService(t)

	_, err := s.SpawnEnemy("unknown-kind")
	if !errors.Is(err, registry.ErrUnknownPrototype) {
		t.Fatalf("expected ErrUnknownPrototype, got %v", err)
	}
	if len(s.State().Enemies) != 0 {
		t.Error("failed spawn changed the engine")
	}
}

func TestSpawnLimit(t *testing.T) {
	s := newTestService(t)
	s.engine.Config().SetMaxEnemies(2)

	for i := 0; i < 2; i++ {
		if _, err := s.SpawnEnemy("orc"); err != nil {
			t.Fatalf("spawn %d failed: %v", i, err)
		}
	}

	_, err := s.SpawnEnemy("orc")
	if !errors.Is(err, ErrEnemyLimit) {
		t.Fatalf("expected ErrEnemyLimit, got %v", err)
	}
	if n := len(s.State().Enemies); n != 2 {
		t.Errorf("expected 2 enemies, got %d", n)
	}

	// The limit is checked before the kind is resolved
	if _, err := s.SpawnEnemy("unknown-kind"); !errors.Is(err, ErrEnemyLimit) {
		t.Errorf("expected ErrEnemyLimit for unknown kind at cap, got %v", err)
	}
}

func TestSpawnConcurrentRespectsLimit(t *testing.T) {
	s := newTestService(t)
	limit := s.engine.Config().MaxEnemies()

	var wg sync.WaitGroup
	var mu sync.Mutex
	spawned := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.SpawnEnemy("drone"); err == nil {
				mu.Lock()
				spawned++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if spawned != limit {
		t.Errorf("expected %d successful spawns, got %d", limit, spawned)
	}
	if n := len(s.State().Enemies); n != limit {
		t.Errorf("expected %d enemies, got %d", limit, n)
	}
}

func TestReset(t *testing.T) {
	s := newTestService(t)
	s.ApplyTheme("scifi")
	s.SpawnEnemy("drone")
	s.SpawnEnemy("alien")

	s.Reset()

	st := s.State()
	if len(st.Enemies) != 0 {
		t.Errorf("expected no enemies, got %d", len(st.Enemies))
	}
	if st.Theme != "scifi" || st.Background != "Estación espacial con vista a nebulosas" {
		t.Errorf("reset changed theme state: %+v", st)
	}

	// Palette survives the reset
	e, err := s.SpawnEnemy("android")
	if err != nil {
		t.Fatalf("SpawnEnemy failed: %v", err)
	}
	if e.Skin != "cromo azul" {
		t.Errorf("expected palette skin after reset, got %q", e.Skin)
	}
}

func TestStateIsSnapshot(t *testing.T) {
	s := newTestService(t)
	s.SpawnEnemy("orc")

	st := s.State()
	st.Enemies[0].HP = 0

	if s.State().Enemies[0].HP != 20 {
		t.Error("State() exposes engine storage")
	}
}

func TestKinds(t *testing.T) {
	s := newTestService(t)
	if len(s.Kinds()) != 6 {
		t.Errorf("expected 6 kinds, got %v", s.Kinds())
	}
}
