package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/xoibasu/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return store
}

func sampleOrder(name string) models.Order {
	return models.Order{
		Status:         models.StatusNew,
		CustomerName:   name,
		CustomerPhone:  "0900000000",
		ShippingMethod: "pickup",
		Subtotal:       50000,
		ShippingFee:    10000,
		Total:          60000,
		PaymentMethod:  "cod",
		PaymentStatus:  "unpaid",
		Items: []models.OrderItem{
			{ProductID: 1, ProductName: "Xôi gà", UnitPrice: 25000, Quantity: 2},
		},
	}
}

func TestOpenInitializesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	store, err := Open(path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"nextOrderId": 1`)

	result, err := store.ListOrders(ListQuery{Limit: 50, Page: 1})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.Pages)
}

func TestOpenRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestInsertOrderAssignsIncreasingIDs(t *testing.T) {
	store := newTestStore(t)

	for want := int64(1); want <= 3; want++ {
		id, err := store.InsertOrder(sampleOrder("A"))
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}

	got, err := store.GetOrderByID(2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(60000), got.Total)
	assert.NotEmpty(t, got.CreatedAt)
	_, err = time.Parse(time.RFC3339, got.CreatedAt)
	assert.NoError(t, err)
}

func TestGetOrderByIDUnknown(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetOrderByID(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateOrderStatus(t *testing.T) {
	store := newTestStore(t)
	id, err := store.InsertOrder(sampleOrder("A"))
	require.NoError(t, err)

	require.NoError(t, store.UpdateOrderStatus(id, models.StatusConfirmed))

	got, err := store.GetOrderByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, got.Status)
}

func TestUpdateOrderStatusUnknownIDIsNoOp(t *testing.T) {
	store := newTestStore(t)
	_, err := store.InsertOrder(sampleOrder("A"))
	require.NoError(t, err)

	require.NoError(t, store.UpdateOrderStatus(999, models.StatusCancelled))

	got, err := store.GetOrderByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNew, got.Status)
}

func TestListOrdersPagination(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		store.now = func() time.Time { return at }
		_, err := store.InsertOrder(sampleOrder("A"))
		require.NoError(t, err)
	}

	result, err := store.ListOrders(ListQuery{Limit: 3, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 7, result.Total)
	assert.Equal(t, 3, result.Pages)
	require.Len(t, result.Items, 3)
	// Newest first: the last inserted order leads the first page.
	assert.Equal(t, int64(7), result.Items[0].ID)
	assert.Equal(t, int64(5), result.Items[2].ID)

	last, err := store.ListOrders(ListQuery{Limit: 3, Page: 3})
	require.NoError(t, err)
	require.Len(t, last.Items, 1)
	assert.Equal(t, int64(1), last.Items[0].ID)

	// Pages past the end are clamped to the last page.
	clamped, err := store.ListOrders(ListQuery{Limit: 3, Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 3, clamped.Page)
	assert.Equal(t, last.Items, clamped.Items)
}

func TestListOrdersStatusFilter(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 3; i++ {
		_, err := store.InsertOrder(sampleOrder("A"))
		require.NoError(t, err)
	}
	require.NoError(t, store.UpdateOrderStatus(2, models.StatusCompleted))

	completed, err := store.ListOrders(ListQuery{Filter: Filter{Status: models.StatusCompleted}, Limit: 50, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, completed.Total)

	all, err := store.ListOrders(ListQuery{Filter: Filter{Status: "all"}, Limit: 50, Page: 1})
	require.NoError(t, err)
	unfiltered, err := store.ListOrders(ListQuery{Limit: 50, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, unfiltered.Total, all.Total)
}

func TestListOrdersDateRange(t *testing.T) {
	store := newTestStore(t)
	days := []time.Time{
		time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		store.now = func() time.Time { return day }
		_, err := store.InsertOrder(sampleOrder("A"))
		require.NoError(t, err)
	}

	result, err := store.ListOrders(ListQuery{
		Filter: Filter{Start: "2026-08-12", End: "2026-08-18"},
		Limit:  50, Page: 1,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(2), result.Items[0].ID)

	// Unparseable bounds are ignored rather than excluding everything.
	loose, err := store.ListOrders(ListQuery{
		Filter: Filter{Start: "not-a-date", End: "also-not"},
		Limit:  50, Page: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, loose.Total)
}
