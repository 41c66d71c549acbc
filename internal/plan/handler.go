package plan

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mentor-backend/internal/evaluation"
	"mentor-backend/internal/shared/server/respond"
)

// Handler wires the development-plan endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches plan routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/development-plan", h.generate)
}

type generateRequest struct {
	InterviewHistory []evaluation.Item `json:"interviewHistory"`
	Domain           any               `json:"domain"`
	Model            string            `json:"model"`
	Options          map[string]any    `json:"options"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, evaluation.KindInvalidInterviewHistory,
			`Trường "interviewHistory" là bắt buộc và phải là một mảng không rỗng.`, nil)
		return
	}

	// Detached from the request context on purpose: a client disconnect does
	// not cancel an in-flight generation.
	result, err := h.Svc.Generate(context.Background(), req.InterviewHistory, req.Domain, req.Model)
	if err != nil {
		var verr *evaluation.ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, verr.Kind, verr.Message, verr.Fields)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Có lỗi xảy ra khi tạo lộ trình phát triển.", map[string]any{"detail": err.Error()})
		return
	}

	var domain any
	if result.Domain != nil {
		domain = gin.H{
			"name":        result.Domain.Name,
			"description": result.Domain.Description,
		}
	}

	respond.OK(c, gin.H{
		"domain":          domain,
		"model":           result.Model,
		"developmentPlan": result.Plan,
	})
}
