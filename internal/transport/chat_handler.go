package transport

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"techmart-assistant/internal/domain"
	"techmart-assistant/internal/middleware"
	"techmart-assistant/internal/service"
)

// Uploads larger than this are rejected before reading into memory.
const maxUploadBytes = 10 << 20

// ChatRequest represents the chat message payload
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message" validate:"required"`
}

// ChatResponse represents the assistant reply payload
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	UserID   string `json:"user_id"`
}

// HealthStatus reports which external services are configured
type HealthStatus struct {
	Status             string          `json:"status"`
	BotReady           bool            `json:"bot_ready"`
	Environment        string          `json:"environment"`
	ServicesConfigured ServicesSummary `json:"services_configured"`
}

// ServicesSummary lists per-capability configuration flags
type ServicesSummary struct {
	OpenAI bool `json:"openai"`
	Speech bool `json:"speech"`
	Vision bool `json:"vision"`
}

// ChatHandler handles HTTP requests for the conversational assistant
type ChatHandler struct {
	dialog service.DialogService
	status HealthStatus
	logger *zap.Logger
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(dialog service.DialogService, status HealthStatus, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		dialog: dialog,
		status: status,
		logger: logger,
	}
}

// RegisterRoutes registers all assistant routes
func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Post("/chat", h.Chat)
		r.Post("/image", h.Image)
		r.Post("/voice", h.Voice)
	})
}

// Health reports service readiness and which capabilities are configured
func (h *ChatHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.status)
}

// Chat handles text messages
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Chat validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = domain.AnonymousUserID
	}

	response := h.dialog.HandleMessage(r.Context(), userID, req.Message)

	middleware.RespondWithJSON(w, http.StatusOK, ChatResponse{
		Success:  true,
		Response: response,
		UserID:   userID,
	})
}

// Image handles image uploads
func (h *ChatHandler) Image(w http.ResponseWriter, r *http.Request) {
	userID, data, ok := h.readUpload(w, r, "image")
	if !ok {
		return
	}

	response := h.dialog.DescribeImage(r.Context(), userID, data)

	middleware.RespondWithJSON(w, http.StatusOK, ChatResponse{
		Success:  true,
		Response: response,
		UserID:   userID,
	})
}

// Voice handles audio uploads
func (h *ChatHandler) Voice(w http.ResponseWriter, r *http.Request) {
	userID, data, ok := h.readUpload(w, r, "audio")
	if !ok {
		return
	}

	response := h.dialog.DescribeAudio(r.Context(), userID, data)

	middleware.RespondWithJSON(w, http.StatusOK, ChatResponse{
		Success:  true,
		Response: response,
		UserID:   userID,
	})
}

// readUpload extracts a multipart file field and the optional user_id form
// value. It writes the error response itself when the upload is invalid.
func (h *ChatHandler) readUpload(w http.ResponseWriter, r *http.Request, field string) (string, []byte, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Debug("Multipart parse failed", zap.String("field", field), zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid multipart request")
		return "", nil, false
	}

	file, _, err := r.FormFile(field)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "no "+field+" provided")
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		h.logger.Error("Failed to read upload", zap.String("field", field), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to read "+field)
		return "", nil, false
	}

	userID := r.FormValue("user_id")
	if userID == "" {
		userID = domain.AnonymousUserID
	}

	return userID, data, true
}
