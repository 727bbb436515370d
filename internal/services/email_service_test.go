package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/example/xoibasu/internal/models"
)

func testOrder() *models.Order {
	return &models.Order{
		ID:              7,
		Status:          models.StatusNew,
		CustomerName:    "Nguyen Van A",
		CustomerPhone:   "0900000000",
		CustomerAddress: "12 Phố Huế",
		ShippingMethod:  "delivery",
		PaymentMethod:   "cod",
		PaymentStatus:   "unpaid",
		Subtotal:        50000,
		ShippingFee:     10000,
		Total:           60000,
		Items: []models.OrderItem{
			{ProductName: "Xôi gà", Quantity: 2, UnitPrice: 25000},
		},
	}
}

func TestEmailMissingSMTPConfig(t *testing.T) {
	svc := NewEmailService("", 0, "", "", "staff@example.com", "")
	result := svc.SendOrderEmail(testOrder())
	assert.False(t, result.OK)
	assert.Equal(t, "Missing SMTP config", result.Reason)
}

func TestEmailMissingRecipients(t *testing.T) {
	svc := NewEmailService("smtp.example.com", 587, "user", "pass", " , ", "")
	result := svc.SendOrderEmail(testOrder())
	assert.False(t, result.OK)
	assert.Equal(t, "Missing ORDER_EMAIL_TO", result.Reason)
}

func TestEmailSendsOnceToJoinedRecipients(t *testing.T) {
	var sent *gomail.Message
	svc := NewEmailService("smtp.example.com", 587, "user", "pass", "a@example.com, b@example.com", "")
	svc.send = func(m *gomail.Message) error {
		sent = m
		return nil
	}

	result := svc.SendOrderEmail(testOrder())
	assert.True(t, result.OK)
	require.NotNil(t, sent)

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"[Xôi Bà Su] Đơn mới #7 từ Nguyen Van A"}, sent.GetHeader("Subject"))
	assert.Contains(t, sent.GetHeader("From")[0], "user")
}

func TestEmailTextBody(t *testing.T) {
	body := buildTextBody(testOrder())
	assert.Contains(t, body, "Đơn mới #7")
	assert.Contains(t, body, "Hình thức: Giao tận nơi")
	assert.Contains(t, body, "Địa chỉ: 12 Phố Huế")
	assert.Contains(t, body, "- Xôi gà x2 (25.000₫)")
	assert.Contains(t, body, "Tổng: 60.000₫")
	assert.NotContains(t, body, "Giảm giá", "no discount row for a zero discount")

	discounted := testOrder()
	discounted.DiscountValue = 5000
	assert.Contains(t, buildTextBody(discounted), "Giảm giá: -5.000₫")
}

func TestEmailHTMLBodyEscapes(t *testing.T) {
	o := testOrder()
	o.CustomerName = `<b>xss</b>`
	body := buildHTMLBody(o)
	assert.Contains(t, body, "&lt;b&gt;xss&lt;/b&gt;")
	assert.NotContains(t, body, "<b>xss</b>")
	assert.Contains(t, body, "Đơn mới #7")
	assert.Contains(t, body, "Xôi gà")
}
