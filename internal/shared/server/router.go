package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentor-backend/internal/chat"
	"mentor-backend/internal/models"
	"mentor-backend/internal/plan"
	"mentor-backend/internal/refdata"
	"mentor-backend/internal/shared/config"
	"mentor-backend/internal/shared/server/middleware"
	"mentor-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config         config.Config
	ChatHandler    *chat.Handler
	PlanHandler    *plan.Handler
	RefDataHandler *refdata.Handler
	ModelsHandler  *models.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", health)

	api := r.Group("/api/ai")
	api.GET("/health", health)
	deps.ChatHandler.RegisterRoutes(api)
	deps.PlanHandler.RegisterRoutes(api)
	deps.RefDataHandler.RegisterRoutes(api)
	deps.ModelsHandler.RegisterRoutes(api)

	return r
}

func health(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{
		"status":  "ok",
		"message": "AI API is running",
	})
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
