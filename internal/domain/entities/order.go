package entities

import "time"

// OrderStatus represents the production lifecycle of a committed print job
// (pedido).

type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "PENDING"
	OrderStatusInProduction OrderStatus = "IN_PRODUCTION"
	OrderStatusCompleted    OrderStatus = "COMPLETED"
	OrderStatusDelivered    OrderStatus = "DELIVERED"
	OrderStatusOnHold       OrderStatus = "ON_HOLD"
	OrderStatusCancelled    OrderStatus = "CANCELLED"
)

// OrderType says how the order came into existence. Immutable after creation.

type OrderType string

const (
	OrderTypeBudgetDerived OrderType = "BUDGET_DERIVED"
	OrderTypeDirect        OrderType = "DIRECT_ORDER"
	OrderTypeRush          OrderType = "RUSH_ORDER"
)

// Order is the committed print job persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//
// OrcamentoID is present iff the order was derived from a budget
// (OrderType == BUDGET_DERIVED); both fields are write-once.
//
// NotasProducao carries the append-only production audit trail.
type Order struct {
	ID          int64       `json:"id"`
	Status      OrderStatus `json:"status"`
	OrderType   OrderType   `json:"order_type"`
	OrcamentoID *int64      `json:"orcamento_id,omitempty"`

	Cliente       Cliente        `json:"cliente"`
	Centro        CentroProducao `json:"centro"`
	Titulo        string         `json:"titulo"`
	Tiragem       int            `json:"tiragem"`
	Formato       string         `json:"formato"`
	TotalPgs      int            `json:"total_pgs"`
	PgsColors     int            `json:"pgs_colors"`
	ValorUnitario float64        `json:"valor_unitario"`
	ValorTotal    float64        `json:"valor_total"`
	PrazoEntrega  time.Time      `json:"prazo_entrega"`
	NotasProducao string         `json:"notas_producao"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
