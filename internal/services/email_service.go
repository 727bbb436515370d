package services

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/example/xoibasu/internal/models"
	"github.com/example/xoibasu/internal/utils"
)

// EmailService sends order summaries over SMTP with a plain-text body and an
// HTML alternative.
type EmailService struct {
	host string
	port int
	user string
	pass string
	to   string
	from string

	// send can be swapped in tests; nil means dial the configured SMTP host.
	send func(m *gomail.Message) error
}

// NewEmailService creates a new EmailService. to may list several
// comma-separated recipients; the message is sent once to all of them.
func NewEmailService(host string, port int, user, pass, to, from string) *EmailService {
	return &EmailService{
		host: host,
		port: port,
		user: user,
		pass: pass,
		to:   to,
		from: from,
	}
}

// SendOrderEmail renders and sends the summary for one order. Missing SMTP
// credentials or an empty recipient list fail fast with no network call.
func (s *EmailService) SendOrderEmail(order *models.Order) Result {
	if s.host == "" || s.port == 0 || s.user == "" || s.pass == "" {
		return Result{OK: false, Reason: "Missing SMTP config"}
	}
	recipients := splitRecipients(s.to)
	if len(recipients) == 0 {
		return Result{OK: false, Reason: "Missing ORDER_EMAIL_TO"}
	}

	from := s.from
	if from == "" {
		from = fmt.Sprintf("\"Xôi Bà Su\" <%s>", s.user)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", fmt.Sprintf("[Xôi Bà Su] Đơn mới #%d từ %s", order.ID, order.CustomerName))
	m.SetBody("text/plain", buildTextBody(order))
	m.AddAlternative("text/html", buildHTMLBody(order))

	sender := s.send
	if sender == nil {
		dialer := gomail.NewDialer(s.host, s.port, s.user, s.pass)
		dialer.SSL = s.port == 465
		sender = func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		}
	}

	if err := sender(m); err != nil {
		return Result{OK: false, Error: err.Error()}
	}
	return Result{OK: true}
}

func buildTextBody(o *models.Order) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Đơn mới #%d", o.ID))
	lines = append(lines, fmt.Sprintf("Khách: %s", o.CustomerName))
	lines = append(lines, fmt.Sprintf("SĐT: %s", o.CustomerPhone))
	if o.ShippingMethod == "delivery" {
		lines = append(lines, "Hình thức: Giao tận nơi")
	} else {
		lines = append(lines, "Hình thức: Nhận tại quán")
	}
	if o.CustomerAddress != "" {
		lines = append(lines, fmt.Sprintf("Địa chỉ: %s", o.CustomerAddress))
	}
	if o.Preorder.Enabled {
		lines = append(lines, fmt.Sprintf("Đặt trước: %s %s", o.Preorder.Date, o.Preorder.Time))
	}
	if o.PaymentMethod == "qr" {
		lines = append(lines, fmt.Sprintf("Thanh toán: QR (đã giảm 10%%) - Trạng thái %s", o.PaymentStatus))
	} else {
		lines = append(lines, "Thanh toán: Khi nhận hàng")
	}
	lines = append(lines, "--- Món ---")
	for _, item := range o.Items {
		lines = append(lines, fmt.Sprintf("- %s x%d (%s)", item.ProductName, item.Quantity, utils.FormatVND(item.UnitPrice)))
	}
	lines = append(lines, "------------")
	lines = append(lines, fmt.Sprintf("Tạm tính: %s", utils.FormatVND(o.Subtotal)))
	lines = append(lines, fmt.Sprintf("Ship: %s", utils.FormatVND(o.ShippingFee)))
	if o.DiscountValue > 0 {
		lines = append(lines, fmt.Sprintf("Giảm giá: -%s", utils.FormatVND(o.DiscountValue)))
	}
	lines = append(lines, fmt.Sprintf("Tổng: %s", utils.FormatVND(o.Total)))
	return strings.Join(lines, "\n")
}

func buildHTMLBody(o *models.Order) string {
	esc := html.EscapeString

	shipping := "Nhận tại quán"
	if o.ShippingMethod == "delivery" {
		shipping = "Giao tận nơi"
	}
	payment := "Thanh toán khi nhận"
	if o.PaymentMethod == "qr" {
		payment = "Chuyển khoản QR (giảm 10%)"
	}

	var items strings.Builder
	for _, item := range o.Items {
		fmt.Fprintf(&items, "<li><strong>%s</strong> x%d – %s</li>",
			esc(item.ProductName), item.Quantity, utils.FormatVND(item.UnitPrice))
	}
	if items.Len() == 0 {
		items.WriteString("<li>(Không có món)</li>")
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family: 'Inter', system-ui, sans-serif; line-height: 1.5; color: #111827;">`)
	fmt.Fprintf(&b, `<h2 style="margin:0 0 8px;">Đơn mới #%d</h2>`, o.ID)
	fmt.Fprintf(&b, `<p style="margin:0 0 4px;">Khách: <strong>%s</strong></p>`, esc(o.CustomerName))
	fmt.Fprintf(&b, `<p style="margin:0 0 4px;">SĐT: <a href="tel:%s">%s</a></p>`, esc(o.CustomerPhone), esc(o.CustomerPhone))
	fmt.Fprintf(&b, `<p style="margin:0 0 4px;">Hình thức: <strong>%s</strong></p>`, shipping)
	if o.CustomerAddress != "" {
		fmt.Fprintf(&b, `<p style="margin:0 0 4px;">Địa chỉ: %s</p>`, esc(o.CustomerAddress))
	}
	if o.Preorder.Enabled {
		fmt.Fprintf(&b, `<p style="margin:0 0 4px;">Đặt trước: %s %s</p>`, esc(o.Preorder.Date), esc(o.Preorder.Time))
	}
	fmt.Fprintf(&b, `<p style="margin:0 0 12px;">Thanh toán: <strong>%s</strong> • Trạng thái: %s</p>`, payment, esc(o.PaymentStatus))
	fmt.Fprintf(&b, `<h3 style="margin:12px 0 6px;">Món đặt</h3><ul style="padding-left:18px; margin:0 0 12px;">%s</ul>`, items.String())
	b.WriteString(`<table style="width:100%; border-collapse:collapse;">`)
	fmt.Fprintf(&b, `<tr><td style="padding:4px 0;">Tạm tính</td><td style="text-align:right; font-weight:600;">%s</td></tr>`, utils.FormatVND(o.Subtotal))
	fmt.Fprintf(&b, `<tr><td style="padding:4px 0;">Phí giao</td><td style="text-align:right; font-weight:600;">%s</td></tr>`, utils.FormatVND(o.ShippingFee))
	if o.DiscountValue > 0 {
		fmt.Fprintf(&b, `<tr><td style="padding:4px 0;">Giảm giá</td><td style="text-align:right; font-weight:600;">- %s</td></tr>`, utils.FormatVND(o.DiscountValue))
	}
	fmt.Fprintf(&b, `<tr><td style="padding:8px 0; font-size:16px; font-weight:700;">Tổng</td><td style="text-align:right; font-size:16px; font-weight:700;">%s</td></tr>`, utils.FormatVND(o.Total))
	b.WriteString(`</table></div>`)
	return b.String()
}
