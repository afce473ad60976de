package main

import (
	_ "loja_xpto/docs"
	"loja_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Checkout Payments API
// @version         1.0
// @description     Credit card checkout (orders + authorize/capture) backed by DynamoDB and PagarMe.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
