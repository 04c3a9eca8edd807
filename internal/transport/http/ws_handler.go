package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"quiz-legends-service/internal/app"
)

// WSHandler serves the same quiz actions over a websocket, one request and
// one response per inbound message. Responses are written from the read loop
// only, so there are never concurrent writers on the connection.
type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and answers dashboard, badges, and
// evaluate_session messages for the username bound at connect time.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "missing username", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		var outbound outboundMessage
		switch inbound.Type {
		case "dashboard":
			dashboard, err := h.service.Dashboard(r.Context(), username)
			if err != nil {
				outbound = errorMessage(err)
				break
			}
			outbound = outboundMessage{Type: "dashboard", Payload: dashboard}

		case "badges":
			report, err := h.service.AllBadges(r.Context(), username)
			if err != nil {
				outbound = errorMessage(err)
				break
			}
			outbound = outboundMessage{Type: "badges", Payload: report}

		case "evaluate_session":
			var payload sessionPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				outbound = outboundMessage{Type: "error", Payload: errorPayload{Message: "invalid session payload"}}
				break
			}
			result, err := h.service.EvaluateSession(r.Context(), username, payload.Questions, payload.Answers)
			if err != nil {
				outbound = errorMessage(err)
				break
			}
			outbound = outboundMessage{Type: "sessionResult", Payload: result}

		default:
			outbound = outboundMessage{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}

		if err := conn.WriteJSON(outbound); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}

func errorMessage(err error) outboundMessage {
	return outboundMessage{Type: "error", Payload: errorPayload{Message: err.Error()}}
}
