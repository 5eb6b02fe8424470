package main

import (
	_ "grafica_xpto/docs"
	"grafica_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Grafica XPTO Workflow API
// @version         1.0
// @description     Orcamento and pedido workflow engine (conversao + faturamento) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Identity
// @in header
// @name X-User-Id
// @description Identity headers set by the upstream gateway (X-User-Id, X-User-Email, X-User-Role).

func main() {
	routes.Run()
}
