package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"jobpulse/internal/delivery/http/dto"
	"jobpulse/internal/delivery/http/middleware"
	"jobpulse/internal/delivery/http/response"
	"jobpulse/internal/usecase"
)

type PostingsHandler struct {
	uc usecase.PostingsUsecase
}

func NewPostingsHandler(uc usecase.PostingsUsecase) *PostingsHandler {
	return &PostingsHandler{uc: uc}
}

func (h *PostingsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/postings", h.HandleListPostings)
}

func (h *PostingsHandler) HandleListPostings(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	items, total, err := h.uc.ListPostings(c.Context(), usecase.PostingListParams{
		Selection: selectionFromQuery(c),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PostingListResponse{
		Total:    total,
		Postings: postingResponses(items),
	})
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
