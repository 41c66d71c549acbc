package bootstrap

import (
	"context"

	"github.com/gin-gonic/gin"

	"mentor-backend/internal/chat"
	"mentor-backend/internal/llm"
	"mentor-backend/internal/llm/gemini"
	"mentor-backend/internal/models"
	"mentor-backend/internal/plan"
	"mentor-backend/internal/refdata"
	"mentor-backend/internal/shared/config"
	"mentor-backend/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	Tables *refdata.Tables
	LLM    llm.Client

	ChatService *chat.Service
	PlanService *plan.Service

	ChatHandler    *chat.Handler
	PlanHandler    *plan.Handler
	RefDataHandler *refdata.Handler
	ModelsHandler  *models.Handler
}

// Build prepares shared dependencies and wires the router. Construction fails
// when the provider credential is missing — no endpoint can function without it.
func Build(cfg config.Config) (*App, error) {
	client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	return BuildWithClient(cfg, client), nil
}

// BuildWithClient wires the application around the given provider client.
// Tests use it to substitute a fake for the real Gemini client.
func BuildWithClient(cfg config.Config, client llm.Client) *App {
	tables := refdata.NewTables()

	chatSvc := &chat.Service{LLM: client, DefaultModel: cfg.GeminiModel}
	planSvc := &plan.Service{LLM: client, Tables: tables, DefaultModel: cfg.GeminiModel}

	app := &App{
		Config:         cfg,
		Tables:         tables,
		LLM:            client,
		ChatService:    chatSvc,
		PlanService:    planSvc,
		ChatHandler:    chat.NewHandler(chatSvc),
		PlanHandler:    plan.NewHandler(planSvc),
		RefDataHandler: refdata.NewHandler(tables),
		ModelsHandler:  models.NewHandler(client),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		ChatHandler:    app.ChatHandler,
		PlanHandler:    app.PlanHandler,
		RefDataHandler: app.RefDataHandler,
		ModelsHandler:  app.ModelsHandler,
	})

	return app
}
