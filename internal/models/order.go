package models

// Order statuses.
const (
	StatusNew        = "new"
	StatusScheduled  = "scheduled"
	StatusConfirmed  = "confirmed"
	StatusPreparing  = "preparing"
	StatusDelivering = "delivering"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// AllowedStatuses is the full set of statuses an order may hold. Transitions
// are unrestricted: any allowed value may be set directly.
var AllowedStatuses = map[string]bool{
	StatusNew:        true,
	StatusScheduled:  true,
	StatusConfirmed:  true,
	StatusPreparing:  true,
	StatusDelivering: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

// Preorder marks an order scheduled for future pickup or delivery.
type Preorder struct {
	Enabled bool   `json:"enabled"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// OrderItem is a single line item on an order.
type OrderItem struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

// Order is the persisted order record. Monetary fields are whole VND.
type Order struct {
	ID              int64       `json:"id"`
	CreatedAt       string      `json:"created_at"`
	Status          string      `json:"status"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	ShippingMethod  string      `json:"shipping_method"`
	Subtotal        int64       `json:"subtotal"`
	ShippingFee     int64       `json:"shipping_fee"`
	Total           int64       `json:"total"`
	DiscountValue   int64       `json:"discount_value"`
	VoucherDiscount int64       `json:"voucher_discount"`
	PaymentDiscount int64       `json:"payment_discount"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentStatus   string      `json:"payment_status"`
	Preorder        Preorder    `json:"preorder"`
	PreorderDate    string      `json:"preorder_date"`
	PreorderTime    string      `json:"preorder_time"`
	Items           []OrderItem `json:"items"`
}
