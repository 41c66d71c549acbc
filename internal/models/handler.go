package models

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mentor-backend/internal/llm"
	"mentor-backend/internal/shared/server/respond"
)

// Handler serves the provider model listing endpoint.
type Handler struct {
	LLM llm.Client
}

// NewHandler constructs a Handler.
func NewHandler(client llm.Client) *Handler {
	return &Handler{LLM: client}
}

// RegisterRoutes attaches model routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/models", h.list)
}

func (h *Handler) list(c *gin.Context) {
	infos, err := h.LLM.ListModels(context.Background())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Có lỗi xảy ra khi lấy danh sách models.", map[string]any{"detail": err.Error()})
		return
	}

	if infos == nil {
		infos = []llm.ModelInfo{}
	}
	respond.OK(c, gin.H{
		"total":  len(infos),
		"models": infos,
	})
}
