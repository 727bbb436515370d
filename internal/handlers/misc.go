package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/xoibasu/internal/models"
	"github.com/example/xoibasu/internal/services"
)

// MiscHandler serves health and diagnostic endpoints.
type MiscHandler struct {
	email *services.EmailService
}

// NewMiscHandler constructs MiscHandler.
func NewMiscHandler(email *services.EmailService) *MiscHandler {
	return &MiscHandler{email: email}
}

// Ping reports liveness.
func (h *MiscHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "ts": time.Now().UnixMilli()})
}

// TestEmail pushes a fixed sample order through the email adapter so SMTP
// settings can be verified from a browser.
func (h *MiscHandler) TestEmail(c *fiber.Ctx) error {
	sample := &models.Order{
		ID:              999,
		Status:          models.StatusNew,
		CustomerName:    "Test User",
		CustomerPhone:   "0123456789",
		CustomerAddress: "Test Address",
		ShippingMethod:  "delivery",
		PaymentMethod:   "cod",
		PaymentStatus:   "unpaid",
		Subtotal:        100000,
		ShippingFee:     20000,
		Total:           120000,
		Items: []models.OrderItem{
			{ProductName: "Test Item", Quantity: 1, UnitPrice: 100000},
		},
	}

	result := h.email.SendOrderEmail(sample)
	message := "Email sent successfully"
	if !result.OK {
		message = result.Why()
	}
	return c.JSON(fiber.Map{"ok": result.OK, "message": message})
}
