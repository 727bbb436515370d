package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/xoibasu/internal/database"
	"github.com/example/xoibasu/internal/models"
	"github.com/example/xoibasu/internal/utils"
)

var exportHeader = []string{
	"id", "created_at", "status", "customer_name", "customer_phone",
	"customer_address", "shipping_method", "subtotal", "shipping_fee",
	"total", "items",
}

// ExportOrders streams the filtered orders as a CSV attachment.
func (h *OrderHandler) ExportOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c, 10000, 10000)

	result, err := h.store.ListOrders(database.ListQuery{
		Filter: database.Filter{
			Start:  c.Query("start"),
			End:    c.Query("end"),
			Status: c.Query("status"),
		},
		Limit: pg.Limit,
		Page:  1,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return err
	}
	for _, o := range result.Items {
		if err := w.Write(exportRow(o)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	return c.Send(buf.Bytes())
}

func exportRow(o models.Order) []string {
	lines := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, fmt.Sprintf("%s x%d @%d", item.ProductName, item.Quantity, item.UnitPrice))
	}

	return []string{
		strconv.FormatInt(o.ID, 10),
		o.CreatedAt,
		o.Status,
		o.CustomerName,
		o.CustomerPhone,
		o.CustomerAddress,
		o.ShippingMethod,
		strconv.FormatInt(o.Subtotal, 10),
		strconv.FormatInt(o.ShippingFee, 10),
		strconv.FormatInt(o.Total, 10),
		strings.Join(lines, " | "),
	}
}
