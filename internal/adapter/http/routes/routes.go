package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "loja_xpto/docs" // This will be auto-generated
	"loja_xpto/internal/adapter/http/handlers"
	repository2 "loja_xpto/internal/adapter/persistence/repository"
	"loja_xpto/internal/infrastructure/database"
	"loja_xpto/internal/infrastructure/payments"
	"loja_xpto/internal/usecase"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	txnRepo := repository2.NewTransactionDynamoRepository(ddb)

	orderUseCase := usecase.NewOrderUseCase(orderRepo)

	var gateway interfaces.IPaymentGateway
	pg, err := payments.NewPagarmeGateway(payments.Config{
		APIKey:  os.Getenv("PAGARME_API_KEY"),
		BaseURL: os.Getenv("PAGARME_BASE_URL"),
	})
	if err != nil {
		log.Printf("PagarMe gateway not configured: %v", err)
	} else {
		gateway = pg
	}

	paymentUseCase := usecase.NewCreditCardPaymentUseCase(txnRepo, orderRepo, gateway, paymentConfigFromEnv())

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	paymentHandler := handlers.NewCheckoutPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, orderHandler, paymentHandler)
}

// paymentConfigFromEnv assembles the store-level payment settings once,
// at the composition root. The usecase only ever sees the resulting
// value.
func paymentConfigFromEnv() usecase.PaymentConfig {
	maxInstallments := 12
	if v, err := strconv.Atoi(os.Getenv("CREDITCARD_MAX_INSTALLMENTS")); err == nil && v > 0 {
		maxInstallments = v
	}

	title := os.Getenv("CREDITCARD_TITLE")
	if title == "" {
		title = "Cartão de Crédito"
	}

	transparentActive := true
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TRANSPARENT_ACTIVE"))) {
	case "0", "false", "no", "off":
		transparentActive = false
	}

	return usecase.PaymentConfig{
		MaxInstallments:   maxInstallments,
		Title:             title,
		TransparentActive: transparentActive,
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
