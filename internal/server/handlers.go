package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sinjp/pokerd/internal/engine"
	"github.com/sinjp/pokerd/internal/gameid"
	"github.com/sinjp/pokerd/internal/randutil"
)

type createGameRequest struct {
	Players    []engine.Seat `json:"players"`
	SmallBlind int           `json:"smallBlind"`
	BigBlind   int           `json:"bigBlind"`
}

type actionRequest struct {
	PlayerID string `json:"playerId"`
	Action   string `json:"action"`
	Amount   int    `json:"amount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// writeEngineError maps the engine's error taxonomy onto HTTP statuses.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrGameNotFound):
		s.writeError(w, http.StatusNotFound, "Game not found")
	case errors.Is(err, engine.ErrPlayerNotFound):
		s.writeError(w, http.StatusNotFound, "Player not found")
	case errors.Is(err, engine.ErrInvalidState),
		errors.Is(err, engine.ErrInvalidArgument),
		errors.Is(err, engine.ErrInsufficientFunds):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("unexpected engine error", "error", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to perform action")
	}
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.SmallBlind == 0 {
		req.SmallBlind = s.cfg.Game.SmallBlind
	}
	if req.BigBlind == 0 {
		req.BigBlind = s.cfg.Game.BigBlind
	}
	for i := range req.Players {
		if req.Players[i].Chips == 0 {
			req.Players[i].Chips = s.cfg.Game.StartChips
		}
	}

	id := gameid.New()
	g, err := engine.NewGame(randutil.New(time.Now().UnixNano()), id, req.Players, req.SmallBlind, req.BigBlind)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	if err := s.store.Add(g); err != nil {
		s.writeEngineError(w, err)
		return
	}

	snap := g.Snapshot()
	s.logger.Info("game created", "game", id, "players", len(snap.Players))

	// The first seat to act may already be a bot.
	s.scheduler.GameChanged(id, snap)
	s.writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	action, err := engine.ParseAction(req.Action)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	snap, err := s.store.Update(id, func(g *engine.Game) error {
		return g.ApplyAction(req.PlayerID, action, req.Amount)
	})
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	s.logger.Info("action applied",
		"game", id,
		"player", req.PlayerID,
		"action", action.String(),
		"phase", snap.Phase,
		"pot", snap.Pot)

	s.hub.broadcast(id, snap)
	s.scheduler.GameChanged(id, snap)
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	snap, err := s.store.Get(id)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade watcher", "game", id, "error", err)
		return
	}

	watcher := s.hub.add(id, conn)
	if err := watcher.send(snap); err != nil {
		s.hub.remove(id, watcher)
		return
	}

	// Drain the read side so pings are answered and closes detected.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.hub.remove(id, watcher)
				return
			}
		}
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"games":  s.store.Len(),
	})
}
