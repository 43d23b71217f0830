package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/service"
)

// CatalogHandler serves admin writes to foods and exercises
type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateFood handles POST /v1/admin/foods
func (h *CatalogHandler) CreateFood(c *fiber.Ctx) error {
	var food domain.FoodItem
	if err := c.BodyParser(&food); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.catalogService.CreateFood(c.UserContext(), &food); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, food)
}

// CreateExercise handles POST /v1/admin/exercises
func (h *CatalogHandler) CreateExercise(c *fiber.Ctx) error {
	var ex domain.Exercise
	if err := c.BodyParser(&ex); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.catalogService.CreateExercise(c.UserContext(), &ex); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, ex)
}

// UpdateExercise handles PUT /v1/admin/exercises/:id
func (h *CatalogHandler) UpdateExercise(c *fiber.Ctx) error {
	var ex domain.Exercise
	if err := c.BodyParser(&ex); err != nil {
		return badRequest(c, "Invalid request body")
	}
	ex.ID = c.Params("id")
	if err := h.catalogService.UpdateExercise(c.UserContext(), &ex); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, ex)
}

// DeleteExercise handles DELETE /v1/admin/exercises/:id
func (h *CatalogHandler) DeleteExercise(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteExercise(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
