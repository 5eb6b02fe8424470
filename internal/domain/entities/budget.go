package entities

import "time"

// BudgetStatus represents the lifecycle of a print-job budget (orçamento).
//
// Domain notes:
//   - Transitions are applied exclusively by the workflow usecases; a generic
//     field update never touches the status.
//   - CONVERTED is reached only through the conversion operation, which also
//     creates the derived Order.
//   - CANCELLED exists in the enum but has no inbound edge in the current
//     transition table.

type BudgetStatus string

const (
	BudgetStatusDraft     BudgetStatus = "DRAFT"
	BudgetStatusSubmitted BudgetStatus = "SUBMITTED"
	BudgetStatusApproved  BudgetStatus = "APPROVED"
	BudgetStatusRejected  BudgetStatus = "REJECTED"
	BudgetStatusConverted BudgetStatus = "CONVERTED"
	BudgetStatusCancelled BudgetStatus = "CANCELLED"
)

// PriceTolerance is the accepted drift between preco_total and
// tiragem*preco_unitario.
const PriceTolerance = 0.01

// Budget is the quoted, not-yet-committed print job persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//
// The Cliente/Centro structs are denormalized snapshots stored on the item;
// client and production-center CRUD live in another service.
//
// Notas doubles as the append-only audit trail: every status change appends a
// timestamped line and never rewrites prior content.
type Budget struct {
	ID            int64          `json:"id"`
	Status        BudgetStatus   `json:"status"`
	Cliente       Cliente        `json:"cliente"`
	Centro        CentroProducao `json:"centro"`
	Titulo        string         `json:"titulo"`
	Tiragem       int            `json:"tiragem"`
	Formato       string         `json:"formato"`
	TotalPgs      int            `json:"total_pgs"`
	PgsColors     int            `json:"pgs_colors"`
	PrecoUnitario float64        `json:"preco_unitario"`
	PrecoTotal    float64        `json:"preco_total"`
	PrazoProducao time.Time      `json:"prazo_producao"`
	Notas         string         `json:"notas"`

	// PedidoID points at the Order this budget was converted into.
	// Set exactly once, by the conversion workflow.
	PedidoID *int64 `json:"pedido_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContentMutable reports whether the budget's core content fields may still
// be edited.
func (b Budget) ContentMutable() bool {
	return b.Status == BudgetStatusDraft || b.Status == BudgetStatusRejected
}
