package entities

import (
	"encoding/json"
	"time"
)

// FaturaStatus represents the charge processing outcome.

type FaturaStatus string

const (
	FaturaStatusPendente FaturaStatus = "pendente"
	FaturaStatusAprovada FaturaStatus = "aprovada"
	FaturaStatusNegada   FaturaStatus = "negada"
)

// Fatura is the charge raised against a finished order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (pedido_id-index): pedido_id
//
// Mercado Pago payload:
//   - MPPayloadRaw keeps the original provider body (JSON) for audit.
//   - MPPayload is the parsed representation, useful for debugging.
type Fatura struct {
	ID       string       `json:"id"`
	PedidoID int64        `json:"pedido_id"`
	Date     time.Time    `json:"date"`
	Status   FaturaStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
