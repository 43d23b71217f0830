package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/middleware"
	"github.com/mansoorceksport/fitgauge/internal/service"
	"github.com/mansoorceksport/fitgauge/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// ProgressHandler serves goal progress evaluation and the member's goals
type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

type evaluateRequest struct {
	Current *float64 `json:"current"`
	Target  *float64 `json:"target"`
}

// Evaluate handles POST /v1/progress/evaluate
func (h *ProgressHandler) Evaluate(c *fiber.Ctx) error {
	var req evaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Current == nil || req.Target == nil {
		return badRequest(c, "current and target are required")
	}

	result := h.progressService.Evaluate(c.UserContext(), domain.MetricGoal{Current: *req.Current, Target: *req.Target})
	if result.Degenerate {
		telemetry.AddSpanEvent(c, "progress.degenerate_target",
			attribute.Float64("progress.target", *req.Target),
			attribute.String("progress.band", string(result.Band)),
		)
	}
	return ok(c, fiber.StatusOK, result)
}

// ListProgress handles GET /v1/me/goals/progress
func (h *ProgressHandler) ListProgress(c *fiber.Ctx) error {
	progress, err := h.progressService.ListProgress(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, progress)
}

// ListGoals handles GET /v1/me/goals
func (h *ProgressHandler) ListGoals(c *fiber.Ctx) error {
	goals, err := h.progressService.ListGoals(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, goals)
}

// CreateGoal handles POST /v1/me/goals
func (h *ProgressHandler) CreateGoal(c *fiber.Ctx) error {
	var goal domain.Goal
	if err := c.BodyParser(&goal); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.progressService.CreateGoal(c.UserContext(), middleware.UserID(c), &goal); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, goal)
}

// UpdateGoal handles PUT /v1/me/goals/:id
func (h *ProgressHandler) UpdateGoal(c *fiber.Ctx) error {
	var goal domain.Goal
	if err := c.BodyParser(&goal); err != nil {
		return badRequest(c, "Invalid request body")
	}
	goal.ID = c.Params("id")
	if err := h.progressService.UpdateGoal(c.UserContext(), middleware.UserID(c), &goal); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, goal)
}

// DeleteGoal handles DELETE /v1/me/goals/:id
func (h *ProgressHandler) DeleteGoal(c *fiber.Ctx) error {
	if err := h.progressService.DeleteGoal(c.UserContext(), middleware.UserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
