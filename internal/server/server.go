package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/sinjp/pokerd/internal/engine"
	"github.com/sinjp/pokerd/internal/randutil"
	"github.com/sinjp/pokerd/internal/store"
)

// Server is the HTTP front of the poker engine: table creation, action
// submission and a WebSocket state feed per table.
type Server struct {
	cfg       *Config
	logger    *log.Logger
	store     *store.Store
	scheduler *scheduler
	hub       *hub
	upgrader  websocket.Upgrader
	httpSrv   *http.Server
}

// New wires a server from config. The clock is injectable so tests can
// drive the bot and settlement timers deterministically.
func New(cfg *Config, logger *log.Logger, clock quartz.Clock) *Server {
	st := store.New()
	h := newHub(logger)

	policy := engine.NewCoinFlipPolicy(randutil.New(time.Now().UnixNano()))
	sc := newScheduler(st, clock, policy, cfg.Game.BotThinkDelay(), cfg.Game.SettleDelay(), logger)
	sc.onChange = h.broadcast

	s := &Server{
		cfg:       cfg,
		logger:    logger.WithPrefix("server"),
		store:     st,
		scheduler: sc,
		hub:       h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	s.httpSrv = &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: s.Handler(),
	}
	return s
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/game", s.handleCreateGame)
	mux.HandleFunc("GET /api/game/{id}", s.handleGetGame)
	mux.HandleFunc("POST /api/game/{id}/action", s.handleAction)
	mux.HandleFunc("GET /api/game/{id}/watch", s.handleWatch)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// ListenAndServe blocks serving HTTP until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting server", "addr", s.cfg.Server.Addr)
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	return s.httpSrv.Shutdown(ctx)
}
