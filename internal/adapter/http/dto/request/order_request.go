package request

import (
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase"
)

// CreateOrderRequest is the payload for "cria pedido direto". `order_type`
// defaults to DIRECT_ORDER; BUDGET_DERIVED is rejected because derived orders
// only exist through the conversion route.

type CreateOrderRequest struct {
	OrderType     string         `json:"order_type"`
	Cliente       ClienteRequest `json:"cliente" binding:"required"`
	Centro        CentroRequest  `json:"centro" binding:"required"`
	Titulo        string         `json:"titulo" binding:"required"`
	Tiragem       int            `json:"tiragem" binding:"required"`
	Formato       string         `json:"formato" binding:"required"`
	TotalPgs      int            `json:"total_pgs"`
	PgsColors     int            `json:"pgs_colors"`
	ValorUnitario float64        `json:"valor_unitario" binding:"required"`
	ValorTotal    *float64       `json:"valor_total"`
	PrazoEntrega  time.Time      `json:"prazo_entrega" binding:"required"`
	NotasProducao string         `json:"notas_producao"`
}

func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	return usecase.CreateOrderCommand{
		OrderType:     r.OrderType,
		Cliente:       entities.Cliente(r.Cliente),
		Centro:        entities.CentroProducao(r.Centro),
		Titulo:        r.Titulo,
		Tiragem:       r.Tiragem,
		Formato:       r.Formato,
		TotalPgs:      r.TotalPgs,
		PgsColors:     r.PgsColors,
		ValorUnitario: r.ValorUnitario,
		ValorTotal:    r.ValorTotal,
		PrazoEntrega:  r.PrazoEntrega,
		NotasProducao: r.NotasProducao,
	}
}

// UpdateOrderRequest is the payload for "edita pedido". `status`,
// `order_type` and `orcamento_id` are write-once fields; they are bound here
// so a differing value can be refused instead of silently dropped.

type UpdateOrderRequest struct {
	Titulo        *string    `json:"titulo"`
	Tiragem       *int       `json:"tiragem"`
	Formato       *string    `json:"formato"`
	TotalPgs      *int       `json:"total_pgs"`
	PgsColors     *int       `json:"pgs_colors"`
	ValorUnitario *float64   `json:"valor_unitario"`
	ValorTotal    *float64   `json:"valor_total"`
	PrazoEntrega  *time.Time `json:"prazo_entrega"`
	Status        *string    `json:"status"`
	OrderType     *string    `json:"order_type"`
	OrcamentoID   *int64     `json:"orcamento_id"`
}

func (r UpdateOrderRequest) ToCommand() usecase.UpdateOrderCommand {
	return usecase.UpdateOrderCommand{
		Titulo:        r.Titulo,
		Tiragem:       r.Tiragem,
		Formato:       r.Formato,
		TotalPgs:      r.TotalPgs,
		PgsColors:     r.PgsColors,
		ValorUnitario: r.ValorUnitario,
		ValorTotal:    r.ValorTotal,
		PrazoEntrega:  r.PrazoEntrega,
		Status:        r.Status,
		OrderType:     r.OrderType,
		OrcamentoID:   r.OrcamentoID,
	}
}
