package server

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/sinjp/pokerd/internal/engine"
)

// watcher is one WebSocket subscriber to a game's state feed. Writes are
// serialized per connection.
type watcher struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (w *watcher) send(snap *engine.Game) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(snap)
}

// hub fans a game's state snapshots out to its watchers.
type hub struct {
	logger   *log.Logger
	mu       sync.Mutex
	watchers map[string]map[*watcher]bool
}

func newHub(logger *log.Logger) *hub {
	return &hub{
		logger:   logger.WithPrefix("hub"),
		watchers: make(map[string]map[*watcher]bool),
	}
}

func (h *hub) add(gameID string, conn *websocket.Conn) *watcher {
	w := &watcher{conn: conn}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.watchers[gameID] == nil {
		h.watchers[gameID] = make(map[*watcher]bool)
	}
	h.watchers[gameID][w] = true
	return w
}

func (h *hub) remove(gameID string, w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.watchers[gameID]; ok {
		delete(set, w)
		if len(set) == 0 {
			delete(h.watchers, gameID)
		}
	}
	_ = w.conn.Close()
}

// broadcast pushes a snapshot to every watcher of the game, dropping
// connections that fail to accept the write.
func (h *hub) broadcast(gameID string, snap *engine.Game) {
	h.mu.Lock()
	targets := make([]*watcher, 0, len(h.watchers[gameID]))
	for w := range h.watchers[gameID] {
		targets = append(targets, w)
	}
	h.mu.Unlock()

	for _, w := range targets {
		if err := w.send(snap); err != nil {
			h.logger.Debug("dropping watcher", "game", gameID, "error", err)
			h.remove(gameID, w)
		}
	}
}
