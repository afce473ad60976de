package routes

import (
	"loja_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders        = "/orders"
	PathPaymentMethod = "/payment-method"
)

func addCheckoutRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.CheckoutPaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)

		// Host checkout call sites: authorize at placement, capture at
		// invoicing.
		orders.POST("/:order_id/payment/authorize", paymentHandler.AuthorizePayment)
		orders.POST("/:order_id/payment/capture", paymentHandler.CapturePayment)
		orders.GET("/:order_id/payment", paymentHandler.GetPayment)
	}

	rg.GET(PathPaymentMethod, paymentHandler.GetPaymentMethod)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
