package chat

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mentor-backend/internal/shared/server/respond"
)

// Handler wires the chat generation endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

type generateRequest struct {
	// Prompt is decoded loosely: a missing, blank or non-string value is a
	// client error, not a bind failure.
	Prompt  any     `json:"prompt"`
	Model   string  `json:"model"`
	Options Options `json:"options"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "INVALID_PROMPT",
			`Trường "prompt" là bắt buộc và phải là chuỗi không rỗng.`, nil)
		return
	}

	prompt, ok := req.Prompt.(string)
	if !ok || strings.TrimSpace(prompt) == "" {
		respond.Error(c, http.StatusBadRequest, "INVALID_PROMPT",
			`Trường "prompt" là bắt buộc và phải là chuỗi không rỗng.`, nil)
		return
	}

	// The provider call is deliberately detached from the request context: a
	// client disconnect does not cancel an in-flight generation.
	result, err := h.Svc.Generate(context.Background(), prompt, req.Model, req.Options)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Có lỗi xảy ra khi gọi Gemini API.", map[string]any{"detail": err.Error()})
		return
	}

	respond.OK(c, gin.H{
		"model":  result.Model,
		"prompt": result.Prompt,
		"text":   result.Text,
	})
}
