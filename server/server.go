// Package server exposes the game over a small JSON HTTP API, mirroring the
// routes the browser front end calls.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/etnz/legacyguard"
	"github.com/etnz/legacyguard/advisor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultSessionID serves callers that do not name a session, like the
// original single-player browser client.
const DefaultSessionID = "local_player"

// Server serves the game API.
type Server struct {
	game *legacyguard.Game
	mux  *http.ServeMux
}

// New returns a server for the given game.
func New(game *legacyguard.Game) *Server {
	s := &Server{game: game, mux: http.NewServeMux()}
	sessionCount = game.Sessions

	s.mux.HandleFunc("GET /api/game_state", s.handleGameState)
	s.mux.HandleFunc("POST /api/perform_action", s.handlePerformAction)
	s.mux.HandleFunc("POST /api/advance_level", s.handleAdvanceLevel)
	s.mux.HandleFunc("POST /api/reset", s.handleReset)
	s.mux.HandleFunc("POST /api/chat", s.handleChat)
	s.mux.Handle("GET /metrics", promhttp.Handler())
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

// ListenAndServe runs the server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("serving game-api addr=%q", addr)
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r.URL.Query().Get("session"))
	writeJSON(w, http.StatusOK, s.game.State(id))
}

func (s *Server) handlePerformAction(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := sessionID(stringField(fields, "session"))
	name := stringField(fields, "action")
	delete(fields, "session")
	delete(fields, "action")

	result := s.game.Perform(id, legacyguard.NewAction(name, fields))
	mtxActions.WithLabelValues(name, outcome(result.Success)).Inc()
	if !result.Success {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%s", result.Message))
		return
	}
	writeJSON(w, http.StatusOK, s.game.State(id))
}

func (s *Server) handleAdvanceLevel(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := sessionID(stringField(fields, "session"))

	result := s.game.AdvanceLevel(id)
	if !result.Success {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%s", result.Message))
		return
	}
	mtxAdvances.WithLabelValues(strconv.Itoa(result.NewLevel)).Inc()
	writeJSON(w, http.StatusOK, s.game.State(id))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := sessionID(stringField(fields, "session"))
	writeJSON(w, http.StatusOK, s.game.Reset(id))
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := sessionID(stringField(fields, "session"))
	question := stringField(fields, "message")

	answer := s.game.Advice(r.Context(), id, question)
	switch answer {
	case legacyguard.AdviceGateMessage:
		mtxChat.WithLabelValues("gated").Inc()
	case advisor.Apology:
		mtxChat.WithLabelValues("apologized").Inc()
	default:
		mtxChat.WithLabelValues("answered").Inc()
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

// sessionID falls back to the single-player default.
func sessionID(id string) string {
	if id == "" {
		return DefaultSessionID
	}
	return id
}

// decodeBody reads the JSON object body. An empty body is an empty object.
func decodeBody(r *http.Request) (map[string]any, error) {
	fields := make(map[string]any)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return fields, nil
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write-response err=%v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
