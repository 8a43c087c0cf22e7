package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tabletalk-ai/tabletalk/internal/core"
	"github.com/tabletalk-ai/tabletalk/internal/store"
)

type APIHandler struct {
	chatService *core.ChatService
	logger      *zap.Logger
}

func NewAPIHandler(cs *core.ChatService, logger *zap.Logger) *APIHandler {
	return &APIHandler{chatService: cs, logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

type newSessionResponse struct {
	SessionID string    `json:"sessionId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *APIHandler) NewSessionHandler(w http.ResponseWriter, r *http.Request) {
	sess := h.chatService.NewSession()
	writeJSON(w, http.StatusOK, newSessionResponse{
		SessionID: sess.ID,
		Title:     sess.Title,
		CreatedAt: sess.CreatedAt,
	})
}

type listSessionsResponse struct {
	Sessions []store.Session `json:"sessions"`
}

func (h *APIHandler) ListSessionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listSessionsResponse{Sessions: h.chatService.ListSessions()})
}

func (h *APIHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, err := h.chatService.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

type messagesResponse struct {
	SessionID string          `json:"sessionId"`
	Messages  []store.Message `json:"messages"`
}

func (h *APIHandler) GetMessagesHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.chatService.GetMessages(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, http.StatusOK, messagesResponse{SessionID: sessionID, Messages: messages})
}

type askRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message"`
}

type askResponse struct {
	SessionID string        `json:"sessionId"`
	Message   store.Message `json:"message"`
}

func (h *APIHandler) AskHandler(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sessionID, assistantMsg, err := h.chatService.Ask(req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, core.ErrEmptyMessage) {
			writeError(w, http.StatusBadRequest, "Message is required")
			return
		}
		h.logger.Error("ask failed",
			zap.String("session_id", req.SessionID),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to process message")
		return
	}
	writeJSON(w, http.StatusOK, askResponse{SessionID: sessionID, Message: assistantMsg})
}

type feedbackRequest struct {
	Feedback string `json:"feedback"`
}

type feedbackResponse struct {
	Success   bool           `json:"success"`
	MessageID string         `json:"messageId"`
	Feedback  store.Feedback `json:"feedback"`
}

func (h *APIHandler) MessageFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	fb, err := h.chatService.SetFeedback(messageID, req.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidFeedback):
			writeError(w, http.StatusBadRequest, "Invalid feedback")
		case errors.Is(err, store.ErrMessageNotFound):
			writeError(w, http.StatusNotFound, "Message not found")
		default:
			h.logger.Error("failed to set feedback",
				zap.String("message_id", messageID),
				zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to set feedback")
		}
		return
	}
	writeJSON(w, http.StatusOK, feedbackResponse{Success: true, MessageID: messageID, Feedback: fb})
}

type deleteSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
}

func (h *APIHandler) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.chatService.DeleteSession(sessionID); err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, http.StatusOK, deleteSessionResponse{Success: true, SessionID: sessionID})
}

type healthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Sessions      int       `json:"sessions"`
	TotalMessages int       `json:"totalMessages"`
}

func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	status := h.chatService.Health()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Timestamp:     status.Timestamp,
		Sessions:      status.Sessions,
		TotalMessages: status.TotalMessages,
	})
}
