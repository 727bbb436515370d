package database

import (
	"sort"

	"github.com/example/xoibasu/internal/models"
)

// GetStats aggregates the filtered orders for the dashboard: order counts per
// status, revenue per calendar day (ascending), overall totals and the top 5
// products by quantity. Ties in topProducts keep first-encounter order.
func (s *Store) GetStats(f Filter) (models.Stats, error) {
	matched, err := s.filtered(f)
	if err != nil {
		return models.Stats{}, err
	}

	statusCounts := map[string]int{}
	var statusOrder []string
	dayRevenue := map[string]int64{}
	var days []string
	productQty := map[string]int{}
	var productOrder []string
	var revenue int64

	for _, o := range matched {
		if _, seen := statusCounts[o.Status]; !seen {
			statusOrder = append(statusOrder, o.Status)
		}
		statusCounts[o.Status]++

		day := o.CreatedAt
		if len(day) > 10 {
			day = day[:10]
		}
		if _, seen := dayRevenue[day]; !seen {
			days = append(days, day)
		}
		dayRevenue[day] += o.Total
		revenue += o.Total

		for _, item := range o.Items {
			if _, seen := productQty[item.ProductName]; !seen {
				productOrder = append(productOrder, item.ProductName)
			}
			productQty[item.ProductName] += item.Quantity
		}
	}

	stats := models.Stats{
		ByStatus:     make([]models.StatusCount, 0, len(statusOrder)),
		RevenueByDay: make([]models.DayRevenue, 0, len(days)),
		TopProducts:  make([]models.ProductQty, 0, len(productOrder)),
		Totals:       models.StatsTotals{Orders: len(matched), Revenue: revenue},
	}

	for _, status := range statusOrder {
		stats.ByStatus = append(stats.ByStatus, models.StatusCount{Status: status, Count: statusCounts[status]})
	}

	sort.Strings(days)
	for _, day := range days {
		stats.RevenueByDay = append(stats.RevenueByDay, models.DayRevenue{Day: day, Revenue: dayRevenue[day]})
	}

	for _, name := range productOrder {
		stats.TopProducts = append(stats.TopProducts, models.ProductQty{Name: name, Qty: productQty[name]})
	}
	sort.SliceStable(stats.TopProducts, func(i, j int) bool {
		return stats.TopProducts[i].Qty > stats.TopProducts[j].Qty
	})
	if len(stats.TopProducts) > 5 {
		stats.TopProducts = stats.TopProducts[:5]
	}

	return stats, nil
}
