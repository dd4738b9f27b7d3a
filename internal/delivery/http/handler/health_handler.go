package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobpulse/internal/delivery/http/response"
)

type HealthHandler struct {
	datasetRows int
	datasetOK   bool
}

func NewHealthHandler(datasetRows int, datasetOK bool) *HealthHandler {
	return &HealthHandler{datasetRows: datasetRows, datasetOK: datasetOK}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	status := "ok"
	if !h.datasetOK {
		status = "degraded"
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"status":       status,
		"dataset_rows": h.datasetRows,
		"dataset_ok":   h.datasetOK,
	})
}
