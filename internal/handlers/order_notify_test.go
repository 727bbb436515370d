package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/xoibasu/internal/database"
	"github.com/example/xoibasu/internal/models"
	"github.com/example/xoibasu/internal/realtime"
	"github.com/example/xoibasu/internal/services"
)

// racedStore accepts inserts but loses them before the handler can reload,
// like a concurrent full-document rewrite would.
type racedStore struct {
	insertID int64
}

func (s *racedStore) InsertOrder(order models.Order) (int64, error) {
	return s.insertID, nil
}

func (s *racedStore) UpdateOrderStatus(id int64, status string) error { return nil }

func (s *racedStore) GetOrderByID(id int64) (*models.Order, error) { return nil, nil }

func (s *racedStore) ListOrders(q database.ListQuery) (database.ListResult, error) {
	return database.ListResult{Page: 1, Pages: 1}, nil
}

type recordingChat struct{ texts chan string }

func (r *recordingChat) SendMessage(text string) services.Result {
	r.texts <- text
	return services.Result{OK: true}
}

type recordingText struct{ texts chan string }

func (r *recordingText) SendText(text string) services.Result {
	r.texts <- text
	return services.Result{OK: true}
}

type recordingMailer struct{ orders chan *models.Order }

func (r *recordingMailer) SendOrderEmail(order *models.Order) services.Result {
	r.orders <- order
	return services.Result{OK: true}
}

func receive(t *testing.T, ch chan string) string {
	t.Helper()
	select {
	case text := <-ch:
		return text
	case <-time.After(time.Second):
		t.Fatal("expected a notification")
		return ""
	}
}

func TestCreateOrderChatNoticeSurvivesLostReload(t *testing.T) {
	telegram := &recordingChat{texts: make(chan string, 1)}
	zalo := &recordingText{texts: make(chan string, 1)}
	mailer := &recordingMailer{orders: make(chan *models.Order, 1)}

	h := &OrderHandler{
		store:    &racedStore{insertID: 5},
		telegram: telegram,
		zalo:     zalo,
		email:    mailer,
		hub:      realtime.NewHub(),
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/api/orders", h.CreateOrder)

	body := `{
		"customer": {"name": "Nguyen Van A", "phone": "0900000000"},
		"items": [{"id": 1, "name": "Xôi gà", "price": 25000, "qty": 2}],
		"totals": {"subtotal": 50000, "shipping": 10000, "total": 60000}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Both chat adapters get the notice built from the inserted order, with
	// its assigned id, even though the reload found nothing.
	assert.Contains(t, receive(t, telegram.texts), "Đơn hàng mới #5")
	assert.Contains(t, receive(t, zalo.texts), "Đơn hàng mới #5")

	// Email stays gated on the reloaded record.
	select {
	case <-mailer.orders:
		t.Fatal("email must not be sent when the saved order is gone")
	case <-time.After(50 * time.Millisecond):
	}
}
