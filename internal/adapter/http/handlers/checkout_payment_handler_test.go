package handlers

import (
	"bytes"
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

func TestCheckoutPaymentHandler_AuthorizePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payment/authorize", h.AuthorizePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payment/authorize", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid installments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payment/authorize", h.AuthorizePayment)

		uc.EXPECT().Authorize(gomock.Any(), "order-1", "hash-abc", 15).Return(entities.Transaction{}, usecase.ErrInstallmentsAboveHardCap)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payment/authorize", bytes.NewBufferString(`{"card_hash":"hash-abc","installments":15}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed decoding body: %v", err)
		}
		if body["code"] != "INVALID_INSTALLMENTS" {
			t.Fatalf("unexpected error code: %v", body)
		}
		if body["message"] != usecase.ErrInstallmentsAboveHardCap.Error() {
			t.Fatalf("expected the validation message to pass through, got %q", body["message"])
		}
	})

	t.Run("gateway refusal maps to 422 with joined message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payment/authorize", h.AuthorizePayment)

		uc.EXPECT().Authorize(gomock.Any(), "order-1", "hash-abc", 2).Return(entities.Transaction{}, &entities.GatewayError{
			StatusCode: http.StatusBadRequest,
			Errors: []entities.GatewayErrorItem{
				{Message: "cartão recusado"},
				{Message: "saldo insuficiente"},
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payment/authorize", bytes.NewBufferString(`{"card_hash":"hash-abc","installments":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed decoding body: %v", err)
		}
		if body["message"] != "cartão recusado\nsaldo insuficiente" {
			t.Fatalf("unexpected message: %q", body["message"])
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payment/authorize", h.AuthorizePayment)

		uc.EXPECT().Authorize(gomock.Any(), "order-9", "hash-abc", 1).Return(entities.Transaction{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-9/payment/authorize", bytes.NewBufferString(`{"card_hash":"hash-abc","installments":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("record failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payment/authorize", h.AuthorizePayment)

		uc.EXPECT().Authorize(gomock.Any(), "order-1", "hash-abc", 1).Return(entities.Transaction{}, usecase.ErrTransactionNotRecorded)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payment/authorize", bytes.NewBufferString(`{"card_hash":"hash-abc","installments":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payment/authorize", h.AuthorizePayment)

		now := time.Now().UTC()
		uc.EXPECT().Authorize(gomock.Any(), "order-1", "hash-abc", 3).Return(entities.Transaction{
			ID:           "184220",
			OrderID:      "order-1",
			Amount:       2744,
			Installments: 3,
			Status:       entities.TransactionStatusAuthorized,
			Date:         now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payment/authorize", bytes.NewBufferString(`{"card_hash":"hash-abc","installments":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed decoding body: %v", err)
		}
		if body["transaction_id"] != "184220" || body["status"] != "authorized" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCheckoutPaymentHandler_CapturePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not authorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payment/capture", h.CapturePayment)

		uc.EXPECT().Capture(gomock.Any(), "order-1").Return(entities.Transaction{}, usecase.ErrTransactionNotAuthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payment/capture", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("no transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payment/capture", h.CapturePayment)

		uc.EXPECT().Capture(gomock.Any(), "order-1").Return(entities.Transaction{}, usecase.ErrTransactionNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payment/capture", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payment/capture", h.CapturePayment)

		uc.EXPECT().Capture(gomock.Any(), "order-1").Return(entities.Transaction{
			ID:      "184220",
			OrderID: "order-1",
			Status:  entities.TransactionStatusPaid,
			Date:    time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payment/capture", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed decoding body: %v", err)
		}
		if body["status"] != "paid" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCheckoutPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id/payment", h.GetPayment)

		uc.EXPECT().LatestTransaction(gomock.Any(), "order-1").Return(entities.Transaction{}, usecase.ErrTransactionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/payment", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id/payment", h.GetPayment)

		uc.EXPECT().LatestTransaction(gomock.Any(), "order-1").Return(entities.Transaction{
			ID:      "184220",
			OrderID: "order-1",
			Status:  entities.TransactionStatusAuthorized,
			Date:    time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/payment", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCheckoutPaymentHandler_GetPaymentMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payment-method", h.GetPaymentMethod)

		uc.EXPECT().IsAvailable().Return(false)

		req := httptest.NewRequest(http.MethodGet, "/v1/payment-method", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditCardPaymentUseCase(ctrl)
		h := NewCheckoutPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payment-method", h.GetPaymentMethod)

		uc.EXPECT().IsAvailable().Return(true)
		uc.EXPECT().Title().Return("Cartão de Crédito")
		uc.EXPECT().MaxInstallments().Return(10)

		req := httptest.NewRequest(http.MethodGet, "/v1/payment-method", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed decoding body: %v", err)
		}
		if body["code"] != "pagarme_creditcard" || body["max_installments"].(float64) != 10 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
