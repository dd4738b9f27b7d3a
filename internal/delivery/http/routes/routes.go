package routes

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"jobpulse/internal/dataset"
	"jobpulse/internal/delivery/http/handler"
	"jobpulse/internal/usecase"
)

// Registry wires usecases into handlers and handlers into the app.
type Registry struct {
	health    *handler.HealthHandler
	dashboard *handler.DashboardHandler
	postings  *handler.PostingsHandler
}

// NewRegistry builds the handler set for a loaded table. A nil table means
// the dataset failed to load; the API then answers 503 on every data route.
func NewRegistry(table *dataset.Table, logger *zap.Logger) *Registry {
	dashboardUC := usecase.NewDashboardUsecase(table, logger)
	postingsUC := usecase.NewPostingsUsecase(table, logger)

	return &Registry{
		health:    handler.NewHealthHandler(table.Len(), table != nil),
		dashboard: handler.NewDashboardHandler(dashboardUC),
		postings:  handler.NewPostingsHandler(postingsUC),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	r.dashboard.RegisterRoutes(v1)
	r.postings.RegisterRoutes(v1)
}
