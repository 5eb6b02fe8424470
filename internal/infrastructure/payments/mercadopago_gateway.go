package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrNotConfigured      = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges orders through the Mercado Pago payments API.
//
// With MERCADOPAGO_MOCK enabled the gateway approves every charge locally
// without touching the provider, which keeps the invoicing flow testable in
// environments without credentials.

type MercadoPagoGateway struct {
	client payment.Client
	mock   bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if mockEnabled() {
		log.Printf("[fatura][gateway] mock mode enabled")
		return &MercadoPagoGateway{mock: true}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[fatura][gateway] sdk config failed err=%v", err)
		return nil, err
	}
	log.Printf("[fatura][gateway] mercado pago client ready")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mock {
		return g.mockPayment(requestPayload)
	}
	if g == nil || g.client == nil {
		return "", "", nil, ErrNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[fatura][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[fatura][gateway] create failed err=%v", err)
		return "", "", nil, err
	}

	body, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[fatura][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return strconv.Itoa(resp.ID), resp.Status, body, nil
}

func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		_ = json.Unmarshal(requestPayload, &resp)
	}
	if resp == nil {
		resp = map[string]any{}
	}

	now := time.Now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)

	body, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[fatura][gateway] mock create success provider_payment_id=%s", id)
	return id, "approved", body, nil
}

func mockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
