package handlers

import (
	"errors"
	"log"
	"net/http"

	request "loja_xpto/internal/adapter/http/dto/request"
	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase"
	"loja_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// paymentMethodCode identifies this payment method to the storefront.
const paymentMethodCode = "pagarme_creditcard"

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// CheckoutPaymentHandler handles the two host call sites of the payment
// pipeline (authorize at order placement, capture at invoicing) plus the
// payment method lookup the storefront renders from.

type CheckoutPaymentHandler struct {
	usecase usecase.ICreditCardPaymentUseCase
}

func NewCheckoutPaymentHandler(uc usecase.ICreditCardPaymentUseCase) *CheckoutPaymentHandler {
	return &CheckoutPaymentHandler{usecase: uc}
}

// AuthorizePayment runs the authorization pipeline for an order.
func (h *CheckoutPaymentHandler) AuthorizePayment(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] authorize start order_id=%s", orderID)

	var payload request.PaymentAuthorizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	txn, err := h.usecase.Authorize(c.Request.Context(), orderID, payload.CardHash, payload.Installments)
	if err != nil {
		log.Printf("[payment][handler] authorize failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] authorize success order_id=%s transaction_id=%s", orderID, txn.ID)

	c.JSON(http.StatusOK, response.FromTransaction(txn))
}

// CapturePayment finalizes the authorized transaction of an order.
func (h *CheckoutPaymentHandler) CapturePayment(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] capture start order_id=%s", orderID)

	txn, err := h.usecase.Capture(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] capture failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] capture success order_id=%s transaction_id=%s status=%s", orderID, txn.ID, txn.Status)

	c.JSON(http.StatusOK, response.FromTransaction(txn))
}

// GetPayment returns the latest transaction recorded for an order.
func (h *CheckoutPaymentHandler) GetPayment(c *gin.Context) {
	orderID := c.Param("order_id")

	txn, err := h.usecase.LatestTransaction(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(txn))
}

// GetPaymentMethod describes the credit card method for the storefront.
// A disabled method answers 404 so the storefront simply hides it.
func (h *CheckoutPaymentHandler) GetPaymentMethod(c *gin.Context) {
	if !h.usecase.IsAvailable() {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_METHOD_UNAVAILABLE", "Credit card payment is not available", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PaymentMethodResponse{
		Code:            paymentMethodCode,
		Title:           h.usecase.Title(),
		MaxInstallments: h.usecase.MaxInstallments(),
		Available:       true,
	})
}

func mapPaymentError(err error) *pkg.AppError {
	var gwErr *entities.GatewayError
	if errors.As(err, &gwErr) {
		// The joined gateway message is meant for direct display.
		return pkg.NewDomainError("GATEWAY_REFUSED", gwErr.Error(), err, http.StatusUnprocessableEntity)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrMissingCardHash):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInstallmentsTooLow),
		errors.Is(err, usecase.ErrInstallmentsAboveHardCap),
		errors.Is(err, usecase.ErrInstallmentsAboveStoreMax):
		return pkg.NewDomainError("INVALID_INSTALLMENTS", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentMethodUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_UNAVAILABLE", "Credit card payment is not available", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingBillingAddress):
		return pkg.NewDomainErrorSimple("MISSING_BILLING_ADDRESS", "Order has no billing address", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotAuthorized):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_AUTHORIZED", "Transaction is not authorized for capture", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransactionNotRecorded):
		return pkg.NewDomainError("TRANSACTION_NOT_RECORDED", "Transaction accepted but not recorded", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
