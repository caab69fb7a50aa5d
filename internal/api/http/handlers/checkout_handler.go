package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/checkout"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/notify"
	"github.com/spec-kit/storefront-service/internal/session"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// CheckoutHandler exposes checkout pre-fill and submission.
type CheckoutHandler struct {
	intake         *checkout.Intake
	sessions       *session.Manager
	whatsappNumber string
}

// NewCheckoutHandler constructs handler.
func NewCheckoutHandler(intake *checkout.Intake, sessions *session.Manager, whatsappNumber string) *CheckoutHandler {
	return &CheckoutHandler{intake: intake, sessions: sessions, whatsappNumber: whatsappNumber}
}

// Prefill handles GET /checkout/prefill.
func (h *CheckoutHandler) Prefill(c *fiber.Ctx) error {
	email, ok := auth.EmailFromContext(c)
	if !ok {
		return apperrors.NewNotLoggedIn()
	}
	selected, err := h.sessions.SelectedService(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.PrefillResponse{Email: email, OrderName: selected}})
}

// Submit handles POST /checkout.
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	email, ok := auth.EmailFromContext(c)
	if !ok {
		return apperrors.NewNotLoggedIn()
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CustomerName == "" || req.Email == "" || req.OrderName == "" || req.Amount == "" {
		return apperrors.NewValidationError("customer_name, email, order_name, amount required", nil)
	}

	order, receipt, err := h.intake.Submit(c.Context(), email, checkout.FormFields{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Password:     req.Password,
		FFID:         req.FFID,
		OrderName:    req.OrderName,
		Phone:        req.Phone,
		Amount:       req.Amount,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.CheckoutResponse{
			Order:       orderResponse(*order),
			Receipt:     receipt,
			WhatsAppURL: notify.ClickToChatURL(h.whatsappNumber, receipt),
		},
	})
}

func orderResponse(order domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		CustomerName:    order.CustomerName,
		Email:           order.Email,
		FFID:            order.FFID,
		OrderName:       order.OrderName,
		Phone:           order.Phone,
		Amount:          order.Amount,
		AmountFormatted: checkout.FormatAmountLKR(order.Amount),
		Date:            order.Date,
	}
}
