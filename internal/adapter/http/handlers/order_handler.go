package handlers

import (
	"errors"
	"log"
	"net/http"

	request "loja_xpto/internal/adapter/http/dto/request"
	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/usecase"
	"loja_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for the order intake side of the
// checkout.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder registers the order/quote snapshot the payment step will
// charge against.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Register(c.Request.Context(), payload.ToOrder())
	if err != nil {
		log.Printf("[order][handler] create failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success order_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// GetOrder returns one order by id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	o, err := h.usecase.GetByID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderTotal), errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "Order already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
