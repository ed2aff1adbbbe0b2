package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lemus-D/clashBot/domain/board"
)

// StateProvider is the read surface the server needs from the session.
type StateProvider interface {
	Status(now time.Time) string
	Summary() board.Summary
	BoardCells() ([board.HandSize]board.Cell, [board.ArenaHeight][board.ArenaWidth]board.Cell)
	FrameIndex() uint64
}

// Server exposes the reconstructed game state over HTTP for external
// consumers (annotation overlays, a future strategy layer). Read-only.
type Server struct {
	httpServer *http.Server
	state      StateProvider
	upgrader   websocket.Upgrader
	logger     *slog.Logger
	streamTick time.Duration
}

// New builds a server bound to addr. logger may be nil.
func New(addr string, state StateProvider, logger *slog.Logger) *Server {
	s := &Server{
		state:      state,
		logger:     logger,
		streamTick: 500 * time.Millisecond,
		upgrader:   websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
	}
	r := mux.NewRouter()
	r.HandleFunc("/board", s.handleBoard).Methods(http.MethodGet)
	r.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleStream)
	s.httpServer = &http.Server{Addr: addr, Handler: r}
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start serves in a background goroutine.
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Error("server stopped", "error", err)
			}
		}
	}()
	if s.logger != nil {
		s.logger.Info("debug server listening", "addr", s.httpServer.Addr)
	}
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Wire types for the JSON snapshot.
type cellJSON struct {
	Kind  string `json:"kind"`
	Name  string `json:"name,omitempty"`
	Owner string `json:"owner,omitempty"`
}

type boardJSON struct {
	Frame uint64       `json:"frame"`
	Hand  []cellJSON   `json:"hand"`
	Arena [][]cellJSON `json:"arena"`
}

func toCellJSON(c board.Cell) cellJSON {
	switch c.Kind {
	case board.CellCard:
		return cellJSON{Kind: "card", Name: c.Card.Name}
	case board.CellTroop:
		return cellJSON{Kind: "troop", Name: c.Troop.Name, Owner: c.Troop.Owner.String()}
	default:
		return cellJSON{Kind: "empty"}
	}
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	hand, arena := s.state.BoardCells()
	out := boardJSON{Frame: s.state.FrameIndex()}
	for _, c := range hand {
		out.Hand = append(out.Hand, toCellJSON(c))
	}
	for y := 0; y < board.ArenaHeight; y++ {
		row := make([]cellJSON, board.ArenaWidth)
		for x := 0; x < board.ArenaWidth; x++ {
			row[x] = toCellJSON(arena[y][x])
		}
		out.Arena = append(out.Arena, row)
	}
	writeJSON(w, out, s.logger)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.state.Summary(), s.logger)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.state.Status(time.Now()) + "\n"))
}

type streamEvent struct {
	Frame   uint64        `json:"frame"`
	Status  string        `json:"status"`
	Summary board.Summary `json:"summary"`
}

// handleStream pushes a summary event per tick until the peer goes away.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("websocket upgrade failed", "error", err)
		}
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(s.streamTick)
	defer ticker.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			ev := streamEvent{
				Frame:   s.state.FrameIndex(),
				Status:  s.state.Status(time.Now()),
				Summary: s.state.Summary(),
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, v interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil && logger != nil {
		logger.Error("encode response", "error", err)
	}
}
