package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"jobpulse/internal/analytics"
	"jobpulse/internal/delivery/http/dto"
	"jobpulse/internal/delivery/http/middleware"
	"jobpulse/internal/delivery/http/response"
	"jobpulse/internal/usecase"
)

type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dashboard", h.HandleDashboard)
	r.Get("/filters", h.HandleFilterOptions)
}

func (h *DashboardHandler) HandleDashboard(c fiber.Ctx) error {
	sel := selectionFromQuery(c)

	view, err := h.uc.BuildDashboard(c.Context(), sel)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.DashboardResponse{
		Summary: dto.SummaryResponse{
			TotalPostings:   view.Summary.TotalPostings,
			UniqueCompanies: view.Summary.UniqueCompanies,
			UniqueSkills:    view.Summary.UniqueSkills,
			RemotePercent:   view.Summary.RemotePercent,
			SalaryPercent:   view.Summary.SalaryPercent,
		},
		Charts: dto.ChartsResponse{
			TopSkills:       view.Charts.TopSkills,
			WorkSplit:       view.Charts.WorkSplit,
			TopCompanies:    view.Charts.TopCompanies,
			Categories:      view.Charts.Categories,
			OnsiteLocations: view.Charts.OnsiteLocations,
		},
		SkillPairs: view.SkillPairs,
		Insights:   make([]dto.InsightResponse, 0, len(view.Insights)),
		Sample:     postingResponses(view.Sample),
	}
	for _, in := range view.Insights {
		out.Insights = append(out.Insights, dto.InsightResponse{Title: in.Title, Detail: in.Detail})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *DashboardHandler) HandleFilterOptions(c fiber.Ctx) error {
	opts, err := h.uc.FilterOptions(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FilterOptionsResponse{
		Categories: opts.Categories,
		Locations:  opts.Locations,
		Skills:     opts.Skills,
		WorkTypes:  []string{string(analytics.WorkRemote), string(analytics.WorkOnsite)},
	})
}

// selectionFromQuery builds the complete FilterSelection for this request.
// Unknown work-type values normalize to "no constraint" rather than failing.
func selectionFromQuery(c fiber.Ctx) analytics.FilterSelection {
	return analytics.FilterSelection{
		Location: c.Query("location"),
		Category: c.Query("category"),
		Skill:    c.Query("skill"),
		Work:     analytics.ParseWorkType(c.Query("work")),
	}
}

func postingResponses(items []usecase.PostingItem) []dto.PostingResponse {
	out := make([]dto.PostingResponse, 0, len(items))
	for _, it := range items {
		posted := ""
		if !it.PostedDate.IsZero() {
			posted = it.PostedDate.UTC().Format(time.RFC3339)
		}
		out = append(out, dto.PostingResponse{
			Title:      it.Title,
			Company:    it.Company,
			Category:   it.Category,
			Location:   it.Location,
			Remote:     it.Remote,
			Skills:     it.Skills,
			HasSalary:  it.HasSalary,
			PostedDate: posted,
			SourceURL:  it.SourceURL,
		})
	}
	return out
}

func mapUsecaseError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrDatasetUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "dataset failed to load", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
