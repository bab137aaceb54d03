package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/orders"
)

type mockPlacer struct {
	id      int64
	err     error
	lastReq orders.PlaceOrderRequest
	called  bool
}

func (m *mockPlacer) Place(_ context.Context, req orders.PlaceOrderRequest) (int64, error) {
	m.called = true
	m.lastReq = req
	return m.id, m.err
}

type mockCartStore struct {
	cleared []string
}

func (m *mockCartStore) Load(context.Context, string) (*models.Cart, error) {
	return &models.Cart{}, nil
}

func (m *mockCartStore) Save(context.Context, string, *models.Cart) error {
	return nil
}

func (m *mockCartStore) Clear(_ context.Context, sessionID string) error {
	m.cleared = append(m.cleared, sessionID)
	return nil
}

func newOrderRouter(svc OrderPlacer, store *mockCartStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/orders", CreateOrder(svc, store))
	return r
}

func postOrder(r *gin.Engine, body string, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validOrderBody = `{
	"customer_name": "Asha Rao",
	"customer_email": "asha@example.com",
	"total_amount": 1900,
	"items": [{"id": 2, "name": "85% Dark Intense", "price": 450, "quantity": 4}]
}`

func TestCreateOrderSuccess(t *testing.T) {
	svc := &mockPlacer{id: 12}
	store := &mockCartStore{}
	r := newOrderRouter(svc, store)

	w := postOrder(r, validOrderBody, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"success"`)
	assert.Contains(t, w.Body.String(), `"id":12`)

	require.True(t, svc.called)
	assert.Equal(t, "Asha Rao", svc.lastReq.CustomerName)
	require.Len(t, svc.lastReq.Items, 1)
	assert.Equal(t, int64(2), svc.lastReq.Items[0].ProductID)
	assert.Equal(t, 4, svc.lastReq.Items[0].Quantity)
}

func TestCreateOrderClearsSessionCartAfterSuccess(t *testing.T) {
	svc := &mockPlacer{id: 3}
	store := &mockCartStore{}
	r := newOrderRouter(svc, store)

	w := postOrder(r, validOrderBody, "session-xyz")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"session-xyz"}, store.cleared)
}

func TestCreateOrderDoesNotClearCartOnFailure(t *testing.T) {
	svc := &mockPlacer{err: &orders.ValidationError{Reason: "at least one item is required"}}
	store := &mockCartStore{}
	r := newOrderRouter(svc, store)

	w := postOrder(r, validOrderBody, "session-xyz")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.cleared)
}

func TestCreateOrderMissingRequiredFields(t *testing.T) {
	svc := &mockPlacer{}
	r := newOrderRouter(svc, &mockCartStore{})

	bodies := []string{
		`{}`,
		`{"customer_name": "Asha Rao"}`,
		`{"customer_name": "Asha Rao", "customer_email": "a@b.c", "items": []}`,
		`not json`,
	}
	for _, body := range bodies {
		w := postOrder(r, body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
	assert.False(t, svc.called)
}

func TestCreateOrderStorageFailure(t *testing.T) {
	svc := &mockPlacer{err: assert.AnError}
	r := newOrderRouter(svc, &mockCartStore{})

	w := postOrder(r, validOrderBody, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
