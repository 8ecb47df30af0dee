package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/vovakirdan/creational-arcade/internal/game"
	"github.com/vovakirdan/creational-arcade/internal/registry"
	"github.com/vovakirdan/creational-arcade/internal/theme"
)

// Response is the body of every mutating endpoint.
type Response struct {
	Message string     `json:"message"`
	State   game.State `json:"state"`
}

type setThemeRequest struct {
	Theme string `json:"theme"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.service.State())
}

func (s *Server) handleKinds(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"kinds": s.service.Kinds()})
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	// A missing or malformed body selects the default theme.
	var req setThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req.Theme = ""
	}
	if req.Theme == "" {
		req.Theme = string(theme.Fantasy)
	}

	stored := s.service.ApplyTheme(req.Theme)
	s.logger.Debug("theme applied", "requested", req.Theme, "theme", stored)
	s.reply(w, http.StatusOK, fmt.Sprintf("Tema cambiado a %s (Abstract Factory)", req.Theme))
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.service.Reset()
	s.reply(w, http.StatusOK, "Juego reiniciado (Singleton mantiene config)")
}

func (s *Server) handleBuildLevel(w http.ResponseWriter, _ *http.Request) {
	lvl := s.service.BuildLevel()
	s.logger.Debug("level built", "number", lvl.Number, "wave", lvl.EnemyWave)
	s.reply(w, http.StatusOK, fmt.Sprintf("Nivel %d construido (Builder)", lvl.Number))
}

func (s *Server) handleSpawn(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")

	_, err := s.service.SpawnEnemy(kind)
	switch {
	case errors.Is(err, game.ErrEnemyLimit):
		s.reply(w, http.StatusConflict, "No puedes crear más enemigos, límite alcanzado.")
	case errors.Is(err, registry.ErrUnknownPrototype):
		s.reply(w, http.StatusNotFound, fmt.Sprintf("No hay prototipo para %s", kind))
	case err != nil:
		s.logger.Error("spawn failed", "kind", kind, "error", err)
		s.reply(w, http.StatusInternalServerError, "Error interno")
	default:
		s.reply(w, http.StatusOK, fmt.Sprintf("Enemigo '%s' creado (Factory Method + Prototype)", kind))
	}
}

func (s *Server) reply(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Message: message, State: s.service.State()})
}

// writeJSON writes a JSON body with normalized headers and status.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
