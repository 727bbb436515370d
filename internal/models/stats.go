package models

// StatusCount is the number of orders holding one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DayRevenue is the revenue summed over one calendar day.
type DayRevenue struct {
	Day     string `json:"day"`
	Revenue int64  `json:"revenue"`
}

// ProductQty is the aggregated quantity ordered for one product.
type ProductQty struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// StatsTotals holds overall counts for the selected range.
type StatsTotals struct {
	Orders  int   `json:"orders"`
	Revenue int64 `json:"revenue"`
}

// Stats is the dashboard aggregate over a filtered set of orders.
type Stats struct {
	ByStatus     []StatusCount `json:"byStatus"`
	RevenueByDay []DayRevenue  `json:"revenueByDay"`
	TopProducts  []ProductQty  `json:"topProducts"`
	Totals       StatsTotals   `json:"totals"`
}
