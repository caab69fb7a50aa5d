package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/ledger"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// OrdersHandler exposes the order history view.
type OrdersHandler struct {
	ledger *ledger.Ledger
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(led *ledger.Ledger) *OrdersHandler {
	return &OrdersHandler{ledger: led}
}

// History handles GET /orders/history. The ledger keeps insertion order;
// the response lists most-recent-first.
func (h *OrdersHandler) History(c *fiber.Ctx) error {
	email, ok := auth.EmailFromContext(c)
	if !ok {
		return apperrors.NewNotLoggedIn()
	}

	orders, err := h.ledger.ListFor(c.Context(), email)
	if err != nil {
		return err
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		items = append(items, orderResponse(orders[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
