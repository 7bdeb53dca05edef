// Package http exposes the game over a small JSON API. It is a thin
// collaborator: every rule lives in the core, the adapter only maps
// requests to transitions and snapshots to JSON.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fourline/fourline/pkg/domain"
	"github.com/fourline/fourline/pkg/ports"
	"github.com/fourline/fourline/pkg/store"
	"github.com/go-chi/chi/v5"
)

// Service defines the game surface the adapter serves. *fourline.Game
// satisfies it.
type Service interface {
	State() domain.BoardState
	Hover(column int)
	ClearHover(column int)
	Place(column int) domain.BoardState
	Restart()
	Store() *store.Store
}

// Server maps HTTP requests onto a Service.
type Server struct {
	service Service
	logger  *slog.Logger
	metrics http.Handler
}

// Option configures the handler.
type Option func(*Server)

// WithLogger configures request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics mounts a metrics handler (e.g. promhttp) at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler for a game.
func NewHandler(service Service, opts ...Option) http.Handler {
	server := &Server{
		service: service,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/state", server.getState)
	r.Post("/moves", server.postMove)
	r.Post("/preview", server.postPreview)
	r.Delete("/preview", server.deletePreview)
	r.Post("/reset", server.postReset)
	r.Get("/events", server.getEvents)
	if server.metrics != nil {
		r.Handle("/metrics", server.metrics)
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type moveRequest struct {
	Column int `json:"column"`
}

func (s *Server) decodeColumn(w http.ResponseWriter, r *http.Request) (int, bool) {
	var body moveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("invalid request body", "err", err)
		return 0, false
	}
	if !domain.ValidColumn(body.Column) {
		http.Error(w, fmt.Sprintf("Column out of range: %d", body.Column), http.StatusBadRequest)
		return 0, false
	}
	return body.Column, true
}

func (s *Server) writeState(w http.ResponseWriter, state domain.BoardState) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ports.FromBoard(state)); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

// getState handles GET /state.
func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.service.State())
}

// postMove handles POST /moves: place a token and pass the turn.
func (s *Server) postMove(w http.ResponseWriter, r *http.Request) {
	column, ok := s.decodeColumn(w, r)
	if !ok {
		return
	}
	s.writeState(w, s.service.Place(column))
}

// postPreview handles POST /preview.
func (s *Server) postPreview(w http.ResponseWriter, r *http.Request) {
	column, ok := s.decodeColumn(w, r)
	if !ok {
		return
	}
	s.service.Hover(column)
	s.writeState(w, s.service.State())
}

// deletePreview handles DELETE /preview.
func (s *Server) deletePreview(w http.ResponseWriter, r *http.Request) {
	column, ok := s.decodeColumn(w, r)
	if !ok {
		return
	}
	s.service.ClearHover(column)
	s.writeState(w, s.service.State())
}

// postReset handles POST /reset: start a new game.
func (s *Server) postReset(w http.ResponseWriter, r *http.Request) {
	s.service.Restart()
	s.writeState(w, s.service.State())
}

// getEvents handles GET /events: a server-sent-event stream of snapshots.
// The first event is the current snapshot; later events follow commits.
// Slow consumers skip intermediate snapshots rather than blocking the store.
func (s *Server) getEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// The subscription callback runs inside the store's critical section,
	// so it must never block: overflowing snapshots are dropped and the
	// client catches up on the next commit.
	updates := make(chan ports.Snapshot, 16)
	cancel := s.service.Store().Subscribe(func(state domain.BoardState) {
		select {
		case updates <- ports.FromBoard(state):
		default:
		}
	})
	defer cancel()

	writeEvent := func(snapshot ports.Snapshot) bool {
		payload, err := json.Marshal(snapshot)
		if err != nil {
			s.logger.Error("event encode failed", "err", err)
			return false
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	if !writeEvent(ports.FromBoard(s.service.State())) {
		return
	}
	for {
		select {
		case <-r.Context().Done():
			return
		case snapshot := <-updates:
			if !writeEvent(snapshot) {
				return
			}
		}
	}
}
