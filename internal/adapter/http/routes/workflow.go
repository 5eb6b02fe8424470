package routes

import (
	"grafica_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrcamentos = "/orcamentos"
	PathPedidos    = "/pedidos"
	PathFaturas    = "/faturas"
)

func addWorkflowRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler, orderHandler *handlers.OrderHandler, faturaHandler *handlers.FaturaHandler) {
	orcamentos := rg.Group(PathOrcamentos)
	{
		orcamentos.POST("", budgetHandler.CreateBudget)
		orcamentos.GET("/:id", budgetHandler.GetBudget)
		orcamentos.PUT("/:id", budgetHandler.UpdateBudget)
		orcamentos.PATCH("/:id/status", budgetHandler.ChangeBudgetStatus)
		orcamentos.GET("/:id/transicoes", budgetHandler.GetBudgetTransitions)
		orcamentos.POST("/:id/converter", budgetHandler.ConvertBudget)
	}

	pedidos := rg.Group(PathPedidos)
	{
		pedidos.POST("", orderHandler.CreateOrder)
		pedidos.GET("/:id", orderHandler.GetOrder)
		pedidos.PUT("/:id", orderHandler.UpdateOrder)
		pedidos.PATCH("/:id/status", orderHandler.ChangeOrderStatus)
		pedidos.GET("/:id/transicoes", orderHandler.GetOrderTransitions)
	}

	faturas := rg.Group(PathFaturas)
	{
		faturas.POST("/:pedido_id", faturaHandler.CreateFatura)
		faturas.GET("/:pedido_id", faturaHandler.GetLatestFatura)
	}
}
