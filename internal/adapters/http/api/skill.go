// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"healthlog/internal/app"
	"healthlog/internal/domain/model"
	"healthlog/pkg/metrics"
)

// SkillHandler handles skill event requests.
type SkillHandler struct {
	deps Dependencies
}

// NewSkillHandler creates a new skill handler.
func NewSkillHandler(deps Dependencies) *SkillHandler {
	return &SkillHandler{deps: deps}
}

// HandlePostSkill handles POST /skill requests.
func (h *SkillHandler) HandlePostSkill(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_skill"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.NewSession {
		metrics.RecordSessionStarted()
	}

	resp, err := h.deps.HandleEvent(r.Context(), model.Event{
		RequestID:  req.RequestID,
		Type:       req.Type,
		Intent:     req.Intent,
		Slots:      req.Slots,
		Identity:   req.UserID,
		NewSession: req.NewSession,
	})
	if err != nil {
		// Unknown intents are a skill configuration defect on the caller
		// side of this boundary; everything else is an internal failure.
		if errors.Is(err, app.ErrUnknownIntent) || errors.Is(err, app.ErrUnknownRequestType) {
			writeError(w, http.StatusBadRequest, "unknown_intent", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	writeJSON(w, http.StatusOK, skillResponse{
		Speech:     resp.Speech,
		Reprompt:   resp.Reprompt,
		Card:       resp.Card,
		EndSession: resp.EndSession,
	})
}
