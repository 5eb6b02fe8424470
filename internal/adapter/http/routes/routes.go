package routes

import (
	"log"
	"os"
	"strconv"

	_ "grafica_xpto/docs" // swag-generated documentation
	"grafica_xpto/internal/adapter/http/handlers"
	"grafica_xpto/internal/adapter/http/middleware"
	"grafica_xpto/internal/adapter/persistence/repository"
	"grafica_xpto/internal/domain/workflow"
	"grafica_xpto/internal/infrastructure/database"
	"grafica_xpto/internal/infrastructure/payments"
	"grafica_xpto/internal/usecase"
	"grafica_xpto/internal/usecase/interfaces"

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
	ddb := database.Connect()

	budgetRepo := repository.NewBudgetDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	conversionRepo := repository.NewConversionDynamoRepository(ddb)
	faturaRepo := repository.NewFaturaDynamoRepository(ddb)
	ids := repository.NewSequenceDynamoRepository(ddb)

	budgetGuard := workflow.NewGuard(workflow.NewBudgetTransitionTable())
	orderGuard := workflow.NewGuard(workflow.NewOrderTransitionTable())

	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, ids, budgetGuard)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, ids, orderGuard)
	conversionUseCase := usecase.NewConversionUseCase(budgetRepo, conversionRepo, ids)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	faturaUseCase := usecase.NewFaturaUseCase(faturaRepo, orderRepo, paymentGateway)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase, conversionUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	faturaHandler := handlers.NewFaturaHandler(faturaUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas (identidade via headers do gateway)
	authed := v1.Group("")
	authed.Use(middleware.Principal())
	addWorkflowRoutes(authed, budgetHandler, orderHandler, faturaHandler)
}

func setMiddlewares() {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
