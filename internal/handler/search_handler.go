package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitgauge/internal/service"
	"github.com/mansoorceksport/fitgauge/internal/telemetry"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchFoods handles GET /v1/foods/search?q=&limit=
func (h *SearchHandler) SearchFoods(c *fiber.Ctx) error {
	query := c.Query("q")
	telemetry.SetSpanAttribute(c, "search.query", query)

	results, err := h.searchService.SearchFoods(c.UserContext(), query, c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, results)
}

// SearchExercises handles GET /v1/exercises/search?q=&limit=
func (h *SearchHandler) SearchExercises(c *fiber.Ctx) error {
	query := c.Query("q")
	telemetry.SetSpanAttribute(c, "search.query", query)

	results, err := h.searchService.SearchExercises(c.UserContext(), query, c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, results)
}

// ListExercises handles GET /v1/exercises?muscle_group=
func (h *SearchHandler) ListExercises(c *fiber.Ctx) error {
	exercises, err := h.searchService.ListExercises(c.UserContext(), c.Query("muscle_group"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, exercises)
}
