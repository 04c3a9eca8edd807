package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"quiz-legends-service/internal/app"
	"quiz-legends-service/internal/domain"
)

// APIHandler exposes the quiz use cases behind a single action-routed
// endpoint. Every request carries an action, a username, and an optional
// action-specific data payload.
type APIHandler struct {
	service *app.QuizService
}

func NewAPIHandler(service *app.QuizService) *APIHandler {
	return &APIHandler{service: service}
}

type apiRequest struct {
	Action   string          `json:"action"`
	Username string          `json:"username"`
	Data     json.RawMessage `json:"data,omitempty"`
}

type sessionPayload struct {
	Questions []json.RawMessage         `json:"questions"`
	Answers   []domain.AnswerSubmission `json:"answers"`
}

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ServeHTTP routes POST requests by action: dashboard, badges,
// evaluate_session. Anything else is reported as a structured failure.
func (h *APIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, apiResponse{Success: false, Error: "method not allowed"})
		return
	}

	var req apiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "invalid JSON body"})
		return
	}
	if req.Action == "" || req.Username == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "missing required fields: 'action' and 'username'"})
		return
	}

	switch req.Action {
	case "dashboard":
		dashboard, err := h.service.Dashboard(r.Context(), req.Username)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: dashboard})

	case "badges":
		report, err := h.service.AllBadges(r.Context(), req.Username)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: report})

	case "evaluate_session":
		if len(req.Data) == 0 {
			writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "missing 'data' field: expected session payload"})
			return
		}
		var payload sessionPayload
		if err := json.Unmarshal(req.Data, &payload); err != nil {
			writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "invalid session payload"})
			return
		}
		if len(payload.Questions) == 0 && len(payload.Answers) == 0 {
			writeError(w, domain.ErrEmptySession)
			return
		}
		result, err := h.service.EvaluateSession(r.Context(), req.Username, payload.Questions, payload.Answers)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: result})

	default:
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Error:   fmt.Sprintf("unknown action %q: valid actions are dashboard, badges, evaluate_session", req.Action),
		})
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrUsernameRequired) || errors.Is(err, domain.ErrEmptySession) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, apiResponse{Success: false, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
