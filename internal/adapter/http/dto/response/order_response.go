package response

import (
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/domain/workflow"
)

// OrderResponse is the wire shape of a pedido. Same monetary redaction rules
// as BudgetResponse: USER callers get no valor_* keys at all.

type OrderResponse struct {
	ID            int64         `json:"id"`
	Status        string        `json:"status"`
	OrderType     string        `json:"order_type"`
	OrcamentoID   *int64        `json:"orcamento_id,omitempty"`
	Cliente       ClienteResumo `json:"cliente"`
	Centro        CentroResumo  `json:"centro"`
	Titulo        string        `json:"titulo"`
	Tiragem       int           `json:"tiragem"`
	Formato       string        `json:"formato"`
	TotalPgs      int           `json:"total_pgs"`
	PgsColors     int           `json:"pgs_colors"`
	ValorUnitario *float64      `json:"valor_unitario,omitempty"`
	ValorTotal    *float64      `json:"valor_total,omitempty"`
	PrazoEntrega  time.Time     `json:"prazo_entrega"`
	NotasProducao string        `json:"notas_producao"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// FromOrder projects an order for the given caller role.
func FromOrder(o entities.Order, role entities.Role) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID,
		Status:        string(o.Status),
		OrderType:     string(o.OrderType),
		OrcamentoID:   o.OrcamentoID,
		Cliente:       clienteResumo(o.Cliente, role),
		Centro:        centroResumo(o.Centro, role),
		Titulo:        o.Titulo,
		Tiragem:       o.Tiragem,
		Formato:       o.Formato,
		TotalPgs:      o.TotalPgs,
		PgsColors:     o.PgsColors,
		PrazoEntrega:  o.PrazoEntrega,
		NotasProducao: o.NotasProducao,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if role.AtLeast(entities.RoleModerator) {
		vu, vt := o.ValorUnitario, o.ValorTotal
		resp.ValorUnitario = &vu
		resp.ValorTotal = &vt
	}
	return resp
}

type OrderTransitionResponse struct {
	Pedido       OrderResponse    `json:"pedido"`
	StatusChange workflow.Receipt `json:"status_change"`
}

func FromOrderTransition(o entities.Order, receipt workflow.Receipt, role entities.Role) OrderTransitionResponse {
	return OrderTransitionResponse{
		Pedido:       FromOrder(o, role),
		StatusChange: receipt,
	}
}

// ConversionResponse returns both sides of a budget conversion: the budget
// frozen in CONVERTED and the pending order derived from it.

type ConversionResponse struct {
	Orcamento BudgetResponse `json:"orcamento"`
	Pedido    OrderResponse  `json:"pedido"`
}

func FromConversion(b entities.Budget, o entities.Order, role entities.Role) ConversionResponse {
	return ConversionResponse{
		Orcamento: FromBudget(b, role),
		Pedido:    FromOrder(o, role),
	}
}
