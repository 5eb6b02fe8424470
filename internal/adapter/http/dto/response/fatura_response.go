package response

import (
	"time"

	"grafica_xpto/internal/domain/entities"
)

type FaturaResponse struct {
	ID       string                 `json:"id"`
	PedidoID int64                  `json:"pedido_id"`
	Date     time.Time              `json:"date"`
	Status   string                 `json:"status"`
	MP       map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromFatura(f entities.Fatura) FaturaResponse {
	return FaturaResponse{
		ID:       f.ID,
		PedidoID: f.PedidoID,
		Date:     f.Date,
		Status:   string(f.Status),
		MP:       f.MPPayload,
	}
}
