package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loja_xpto/internal/adapter/http/handlers/mocks"
	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"grand_total":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrOrderAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"id":"order-1","grand_total":27.44,"customer_name":"José da Silva","customer_email":"jose@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		now := time.Now().UTC()
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.BillingAddress == nil || o.BillingAddress.Street1 != "Rua Vergueiro" {
					t.Fatalf("expected the billing address to reach the usecase: %+v", o)
				}
				o.Status = entities.OrderStatusPendente
				o.CreatedAt = now
				o.UpdatedAt = now
				return o, nil
			},
		)

		payload := `{
			"id": "order-1",
			"grand_total": 27.44,
			"customer_name": "José da Silva",
			"customer_email": "jose@example.com",
			"billing_address": {
				"street_1": "Rua Vergueiro",
				"street_2": "1421",
				"city": "São Paulo",
				"region": "SP",
				"postcode": "01504-001",
				"country": "BR",
				"telephone": "(11) 98765-4321"
			}
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %s)", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed decoding body: %v", err)
		}
		if body["id"] != "order-1" || body["has_billing_info"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), "order-9").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{
			ID:            "order-1",
			GrandTotal:    27.44,
			CustomerName:  "José da Silva",
			CustomerEmail: "jose@example.com",
			Status:        entities.OrderStatusPendente,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed decoding body: %v", err)
		}
		if body["id"] != "order-1" || body["status"] != "pendente" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
