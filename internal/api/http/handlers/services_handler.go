package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/session"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// ServicesHandler records the service picked before checkout.
type ServicesHandler struct {
	sessions *session.Manager
}

// NewServicesHandler constructs handler.
func NewServicesHandler(sessions *session.Manager) *ServicesHandler {
	return &ServicesHandler{sessions: sessions}
}

// Select handles POST /services/select.
func (h *ServicesHandler) Select(c *fiber.Ctx) error {
	var req dto.SelectServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Service == "" {
		return apperrors.NewValidationError("service required", nil)
	}

	if err := h.sessions.SelectService(c.Context(), req.Service); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"service": req.Service}})
}
