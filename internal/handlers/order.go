package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/xoibasu/internal/database"
	"github.com/example/xoibasu/internal/models"
	"github.com/example/xoibasu/internal/realtime"
	"github.com/example/xoibasu/internal/services"
	"github.com/example/xoibasu/internal/utils"
)

// orderStore is the slice of the database the order endpoints use.
type orderStore interface {
	InsertOrder(order models.Order) (int64, error)
	UpdateOrderStatus(id int64, status string) error
	GetOrderByID(id int64) (*models.Order, error)
	ListOrders(q database.ListQuery) (database.ListResult, error)
}

type chatSender interface {
	SendMessage(text string) services.Result
}

type textSender interface {
	SendText(text string) services.Result
}

type orderMailer interface {
	SendOrderEmail(order *models.Order) services.Result
}

// OrderHandler manages order endpoints.
type OrderHandler struct {
	store    orderStore
	telegram chatSender
	zalo     textSender
	email    orderMailer
	hub      *realtime.Hub
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(store *database.Store, telegram *services.TelegramService, zalo *services.ZaloService, email *services.EmailService, hub *realtime.Hub) *OrderHandler {
	return &OrderHandler{store: store, telegram: telegram, zalo: zalo, email: email, hub: hub}
}

type orderItemRequest struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

type customerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type totalsRequest struct {
	Subtotal        float64 `json:"subtotal"`
	Shipping        float64 `json:"shipping"`
	Total           float64 `json:"total"`
	Discount        float64 `json:"discount"`
	VoucherDiscount float64 `json:"voucherDiscount"`
	PaymentDiscount float64 `json:"paymentDiscount"`
}

type preorderRequest struct {
	Enabled bool   `json:"enabled"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

type paymentRequest struct {
	Method string `json:"method"`
}

type createOrderRequest struct {
	Customer customerRequest    `json:"customer"`
	Items    []orderItemRequest `json:"items"`
	Shipping string             `json:"shipping"`
	Totals   totalsRequest      `json:"totals"`
	Preorder *preorderRequest   `json:"preorder"`
	Payment  *paymentRequest    `json:"payment"`
}

func clampVND(v float64) int64 {
	if v < 0 {
		return 0
	}
	return int64(v)
}

// CreateOrder validates and stores a storefront order, then notifies staff
// and the live dashboards without blocking the response.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if strings.TrimSpace(req.Customer.Name) == "" || strings.TrimSpace(req.Customer.Phone) == "" || len(req.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	shippingMethod := "pickup"
	if req.Shipping == "delivery" {
		shippingMethod = "delivery"
	}
	paymentMethod := "cod"
	paymentStatus := "unpaid"
	if req.Payment != nil && req.Payment.Method == "qr" {
		paymentMethod = "qr"
		paymentStatus = "paid"
	}

	isPreorder := req.Preorder != nil && req.Preorder.Enabled && req.Preorder.Date != ""
	status := models.StatusNew
	preorder := models.Preorder{}
	if isPreorder {
		status = models.StatusScheduled
		preorder = models.Preorder{Enabled: true, Date: req.Preorder.Date, Time: req.Preorder.Time}
	}

	order := models.Order{
		Status:          status,
		CustomerName:    strings.TrimSpace(req.Customer.Name),
		CustomerPhone:   strings.TrimSpace(req.Customer.Phone),
		CustomerAddress: req.Customer.Address,
		ShippingMethod:  shippingMethod,
		Subtotal:        clampVND(req.Totals.Subtotal),
		ShippingFee:     clampVND(req.Totals.Shipping),
		Total:           clampVND(req.Totals.Total),
		DiscountValue:   clampVND(req.Totals.Discount),
		VoucherDiscount: clampVND(req.Totals.VoucherDiscount),
		PaymentDiscount: clampVND(req.Totals.PaymentDiscount),
		PaymentMethod:   paymentMethod,
		PaymentStatus:   paymentStatus,
		Preorder:        preorder,
		PreorderDate:    preorder.Date,
		PreorderTime:    preorder.Time,
		Items:           make([]models.OrderItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   item.ID,
			ProductName: item.Name,
			UnitPrice:   int64(item.Price),
			Quantity:    item.Qty,
		})
	}

	id, err := h.store.InsertOrder(order)
	if err != nil {
		return err
	}

	// Chat notices are built from the order we just inserted, so they go out
	// even if a racing rewrite makes the reload below come back empty.
	order.ID = id
	text := services.NewOrderMessage(&order)
	dispatch("Telegram", func() {
		if res := h.telegram.SendMessage(text); !res.OK {
			log.Printf("[Telegram] new-order notification failed: %s", res.Why())
		}
	})
	dispatch("Zalo", func() {
		if res := h.zalo.SendText(text); !res.OK {
			log.Printf("[Zalo] new-order notification failed: %s", res.Why())
		}
	})

	saved, err := h.store.GetOrderByID(id)
	if err != nil {
		log.Printf("[Order] reload order %d: %v", id, err)
	}
	if saved != nil {
		dispatch("Email", func() {
			if res := h.email.SendOrderEmail(saved); !res.OK {
				log.Printf("[Email] Failed to send order email: %s", res.Why())
			}
		})
		dispatch("WS", func() { h.hub.Broadcast("order:new", saved) })
	}

	return c.JSON(fiber.Map{"id": id})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus sets the status of an order. An unknown id still answers
// ok:true — the store treats it as a no-op.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, _ := strconv.ParseInt(c.Params("id"), 10, 64)

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}
	if !models.AllowedStatuses[req.Status] {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}

	if err := h.store.UpdateOrderStatus(id, req.Status); err != nil {
		return err
	}

	text := services.StatusUpdateMessage(id, req.Status)
	dispatch("Telegram", func() { h.telegram.SendMessage(text) })
	dispatch("Zalo", func() { h.zalo.SendText(text) })

	saved, err := h.store.GetOrderByID(id)
	if err != nil {
		log.Printf("[Order] reload order %d: %v", id, err)
	}
	if saved != nil {
		dispatch("WS", func() { h.hub.Broadcast("order:update", saved) })
	}

	return c.JSON(fiber.Map{"ok": true})
}

// ListOrders returns a filtered, newest-first page of orders.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c, 50, 200)

	result, err := h.store.ListOrders(database.ListQuery{
		Filter: database.Filter{
			Start:  c.Query("start"),
			End:    c.Query("end"),
			Status: c.Query("status"),
		},
		Limit: pg.Limit,
		Page:  pg.Page,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"items": result.Items,
		"total": result.Total,
		"page":  result.Page,
		"pages": result.Pages,
		"limit": pg.Limit,
	})
}
