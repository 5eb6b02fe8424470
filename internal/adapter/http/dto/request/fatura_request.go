package request

import "encoding/json"

// FaturaCreateRequest is the payload for "fatura pedido".
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas; the server fills amount and reference fields from the order.

type FaturaCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
