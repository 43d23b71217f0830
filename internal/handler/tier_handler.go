package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/middleware"
	"github.com/mansoorceksport/fitgauge/internal/service"
	"github.com/mansoorceksport/fitgauge/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

type TierHandler struct {
	tierService *service.TierService
}

func NewTierHandler(tierService *service.TierService) *TierHandler {
	return &TierHandler{tierService: tierService}
}

// ListTiers handles GET /v1/tiers
func (h *TierHandler) ListTiers(c *fiber.Ctx) error {
	tiers, err := h.tierService.ListTiers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, tiers)
}

// GetMyTiers handles GET /v1/me/tiers
func (h *TierHandler) GetMyTiers(c *fiber.Ctx) error {
	eval, err := h.tierService.EvaluateMember(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}

	unlocked, current := 0, 0
	for _, st := range eval.Tiers {
		if st.Unlocked {
			unlocked++
		}
	}
	if eval.CurrentTier != nil {
		current = eval.CurrentTier.Tier.Level
	}
	telemetry.AddSpanEvent(c, "tiers.evaluated",
		attribute.Int("tiers.unlocked", unlocked),
		attribute.Int("tiers.current_level", current),
		attribute.Int("tiers.earned_xp", eval.EarnedXP),
	)
	return ok(c, fiber.StatusOK, eval)
}

// CreateTier handles POST /v1/admin/tiers
func (h *TierHandler) CreateTier(c *fiber.Ctx) error {
	var tier domain.Tier
	if err := c.BodyParser(&tier); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.tierService.CreateTier(c.UserContext(), &tier); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, tier)
}

// UpdateTier handles PUT /v1/admin/tiers/:id
func (h *TierHandler) UpdateTier(c *fiber.Ctx) error {
	var tier domain.Tier
	if err := c.BodyParser(&tier); err != nil {
		return badRequest(c, "Invalid request body")
	}
	tier.ID = c.Params("id")
	if err := h.tierService.UpdateTier(c.UserContext(), &tier); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, tier)
}

// DeleteTier handles DELETE /v1/admin/tiers/:id
func (h *TierHandler) DeleteTier(c *fiber.Ctx) error {
	if err := h.tierService.DeleteTier(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
