package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/middleware"
	"github.com/mansoorceksport/fitgauge/internal/service"
)

// RecordHandler serves the member's lift log and personal records
type RecordHandler struct {
	recordService *service.RecordService
}

func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// LogLift handles POST /v1/me/lifts.
// The X-Correlation-ID header doubles as the lift's client id when the body has none.
func (h *RecordHandler) LogLift(c *fiber.Ctx) error {
	var lift domain.LiftLog
	if err := c.BodyParser(&lift); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if lift.ClientID == "" {
		lift.ClientID = c.Get(middleware.CorrelationIDHeader)
	}

	result, err := h.recordService.LogLift(c.UserContext(), middleware.UserID(c), &lift)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, result)
}

// ListLifts handles GET /v1/me/lifts
func (h *RecordHandler) ListLifts(c *fiber.Ctx) error {
	lifts, err := h.recordService.ListLifts(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, lifts)
}

// DeleteLift handles DELETE /v1/me/lifts/:id
func (h *RecordHandler) DeleteLift(c *fiber.Ctx) error {
	if err := h.recordService.DeleteLift(c.UserContext(), middleware.UserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListRecords handles GET /v1/me/records
func (h *RecordHandler) ListRecords(c *fiber.Ctx) error {
	records, err := h.recordService.ListRecords(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, records)
}
