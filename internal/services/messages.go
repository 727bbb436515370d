package services

import (
	"fmt"
	"strings"

	"github.com/example/xoibasu/internal/models"
	"github.com/example/xoibasu/internal/utils"
)

// NewOrderMessage renders the chat notification for a freshly placed order.
func NewOrderMessage(o *models.Order) string {
	address := "Nhận tại quán"
	if o.ShippingMethod == "delivery" {
		address = o.CustomerAddress
		if address == "" {
			address = "(chưa nhập)"
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📝 Đơn hàng mới #%d\n", o.ID)
	fmt.Fprintf(&b, "Khách: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "SĐT: %s\n", o.CustomerPhone)
	fmt.Fprintf(&b, "Địa chỉ: %s", address)
	if o.Preorder.Enabled {
		fmt.Fprintf(&b, "\n⏰ Nhận: %s %s", o.Preorder.Date, o.Preorder.Time)
	}
	if o.PaymentStatus == "paid" {
		b.WriteString("\n💳 Thanh toán: ĐÃ THANH TOÁN (QR)")
	} else {
		b.WriteString("\n💳 Thanh toán: Chưa thanh toán")
	}
	b.WriteString("\n-------------------------\n")
	for i, item := range o.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		lineTotal := item.UnitPrice * int64(item.Quantity)
		fmt.Fprintf(&b, "- %s x%d = %s", item.ProductName, item.Quantity, utils.FormatVND(lineTotal))
	}
	b.WriteString("\n-------------------------\n")
	fmt.Fprintf(&b, "Tạm tính: %s\n", utils.FormatVND(o.Subtotal))
	fmt.Fprintf(&b, "Phí giao: %s\n", utils.FormatVND(o.ShippingFee))
	fmt.Fprintf(&b, "Tổng cộng: %s\n", utils.FormatVND(o.Total))
	fmt.Fprintf(&b, "Trạng thái: %s", strings.ToUpper(o.Status))
	return b.String()
}

// StatusUpdateMessage renders the chat notification for a status change.
func StatusUpdateMessage(id int64, status string) string {
	return fmt.Sprintf("⚠️ Cập nhật trạng thái đơn #%d: %s", id, strings.ToUpper(status))
}
