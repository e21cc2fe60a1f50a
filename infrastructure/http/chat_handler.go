package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"rail-madad/services"
)

type ChatHandler struct {
	service  services.IChatService
	validate *validator.Validate
}

func NewChatHandler(service services.IChatService, validate *validator.Validate) *ChatHandler {
	return &ChatHandler{service: service, validate: validate}
}

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id"`
}

type ChatResponse struct {
	SessionID        string   `json:"session_id"`
	Response         string   `json:"response"`
	ResponseType     string   `json:"response_type"`
	SuggestedActions []string `json:"suggested_actions"`
	UrgencyLevel     string   `json:"urgency_level"`
	Confidence       float64  `json:"confidence"`
}

// Send handles POST /api/v1/chat/send
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	turn, err := h.service.Respond(r.Context(), services.ChatCommand{
		SessionID: req.SessionID,
		Message:   req.Message,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		SessionID:        turn.SessionID,
		Response:         turn.Reply.Response,
		ResponseType:     turn.Reply.ResponseType,
		SuggestedActions: turn.Reply.SuggestedActions,
		UrgencyLevel:     turn.Reply.UrgencyLevel,
		Confidence:       turn.Reply.Confidence,
	})
}

// Capabilities handles GET /api/v1/chat/capabilities
func (h *ChatHandler) Capabilities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Capabilities())
}
