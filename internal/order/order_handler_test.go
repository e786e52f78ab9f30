package order_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nuriddinovv/furniAsia/internal/order"
	"github.com/nuriddinovv/furniAsia/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE SERVICE ====================

type fakeOrderService struct {
	CheckoutFn func(ctx context.Context, cardCode, phone string, req order.CheckoutRequest) (order.OrderResponse, error)
	ListFn     func(ctx context.Context, cardCode string, activeOnly bool) ([]order.OrderResponse, error)
	DetailFn   func(ctx context.Context, docEntry int) (order.OrderResponse, error)
}

func (f *fakeOrderService) Checkout(ctx context.Context, cardCode, phone string, req order.CheckoutRequest) (order.OrderResponse, error) {
	return f.CheckoutFn(ctx, cardCode, phone, req)
}
func (f *fakeOrderService) List(ctx context.Context, cardCode string, activeOnly bool) ([]order.OrderResponse, error) {
	return f.ListFn(ctx, cardCode, activeOnly)
}
func (f *fakeOrderService) Detail(ctx context.Context, docEntry int) (order.OrderResponse, error) {
	return f.DetailFn(ctx, docEntry)
}

// ==================== HELPER FUNCTIONS ====================

func newTestContext(w *httptest.ResponseRecorder, req *http.Request) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("card_code_validated", cardCode)
	c.Set("phone", phone)
	return c
}

// ==================== TEST CASES ====================

func TestOrderHandler_Checkout(t *testing.T) {
	t.Run("success_returns_201", func(t *testing.T) {
		svc := &fakeOrderService{
			CheckoutFn: func(ctx context.Context, code, ph string, req order.CheckoutRequest) (order.OrderResponse, error) {
				assert.Equal(t, cardCode, code)
				assert.Equal(t, phone, ph)
				assert.Equal(t, order.DeliveryMethodPickup, req.DeliveryMethod)
				return order.OrderResponse{DocEntry: 42}, nil
			},
		}

		handler := order.NewHandler(svc)
		w := httptest.NewRecorder()
		body := `{"deliveryMethod":"pickup","shopCode":"SHP-01"}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		handler.Checkout(newTestContext(w, req))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("empty_cart_maps_to_400", func(t *testing.T) {
		svc := &fakeOrderService{
			CheckoutFn: func(ctx context.Context, code, ph string, req order.CheckoutRequest) (order.OrderResponse, error) {
				return order.OrderResponse{}, order.ErrCartEmpty
			},
		}

		handler := order.NewHandler(svc)
		w := httptest.NewRecorder()
		body := `{"deliveryMethod":"pickup","shopCode":"SHP-01"}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		handler.Checkout(newTestContext(w, req))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res response.APIResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.False(t, res.Success)
		assert.Equal(t, order.ErrCartEmpty.Code, res.Error.Code)
	})

	t.Run("missing_body_returns_400", func(t *testing.T) {
		handler := order.NewHandler(&fakeOrderService{})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", nil)

		handler.Checkout(newTestContext(w, req))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandler_Detail(t *testing.T) {
	t.Run("non_numeric_id_rejected", func(t *testing.T) {
		handler := order.NewHandler(&fakeOrderService{})
		w := httptest.NewRecorder()
		c := newTestContext(w, httptest.NewRequest(http.MethodGet, "/orders/abc", nil))
		c.Params = gin.Params{{Key: "docEntry", Value: "abc"}}

		handler.Detail(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeOrderService{
			DetailFn: func(ctx context.Context, docEntry int) (order.OrderResponse, error) {
				assert.Equal(t, 42, docEntry)
				return order.OrderResponse{DocEntry: 42}, nil
			},
		}

		handler := order.NewHandler(svc)
		w := httptest.NewRecorder()
		c := newTestContext(w, httptest.NewRequest(http.MethodGet, "/orders/42", nil))
		c.Params = gin.Params{{Key: "docEntry", Value: "42"}}

		handler.Detail(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
