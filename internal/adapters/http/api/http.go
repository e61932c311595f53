// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"healthlog/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// HandleEvent processes one skill event synchronously.
	HandleEvent(ctx context.Context, ev model.Event) (model.Response, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	skillHandler  *SkillHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		skillHandler:  NewSkillHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/skill", MetricsMiddleware(s.skillHandler.HandlePostSkill, "skill"))
}

// skillRequest is the platform envelope for POST /skill.
type skillRequest struct {
	RequestID  string            `json:"request_id"`
	Type       string            `json:"type"`
	Intent     string            `json:"intent"`
	Slots      map[string]string `json:"slots"`
	UserID     string            `json:"user_id"`
	NewSession bool              `json:"new_session"`
}

func (r skillRequest) validate() error {
	switch r.Type {
	case model.TypeLaunch, model.TypeSessionEnded:
	case model.TypeIntent:
		if r.Intent == "" {
			return errors.New("missing intent")
		}
	default:
		return errors.New("invalid type; must be LaunchRequest, IntentRequest or SessionEndedRequest")
	}
	if r.UserID == "" {
		return errors.New("missing user_id")
	}
	return nil
}

// skillResponse mirrors the outbound response shape.
type skillResponse struct {
	Speech     string      `json:"speech"`
	Reprompt   string      `json:"reprompt,omitempty"`
	Card       *model.Card `json:"card,omitempty"`
	EndSession bool        `json:"end_session"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
