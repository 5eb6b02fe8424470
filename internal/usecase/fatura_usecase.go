package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/domain/workflow"
	"grafica_xpto/internal/usecase/interfaces"
)

var (
	ErrFaturaNotFound             = errors.New("fatura not found")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

var faturaRoles = []entities.Role{entities.RoleModerator, entities.RoleAdmin}

// IFaturaUseCase charges a finished order through the payment provider and
// records the resulting fatura.

type IFaturaUseCase interface {
	CreateForOrder(ctx context.Context, pedidoID int64, mpPayload json.RawMessage, p entities.Principal) (entities.Fatura, error)
	ListByPedidoID(ctx context.Context, pedidoID int64) ([]entities.Fatura, error)
}

type FaturaUseCase struct {
	repo    interfaces.IFaturaRepository
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
}

var _ IFaturaUseCase = (*FaturaUseCase)(nil)

func NewFaturaUseCase(repo interfaces.IFaturaRepository, orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *FaturaUseCase {
	return &FaturaUseCase{repo: repo, orders: orders, gateway: gateway}
}

func (u *FaturaUseCase) CreateForOrder(ctx context.Context, pedidoID int64, mpPayload json.RawMessage, p entities.Principal) (entities.Fatura, error) {
	log.Printf("[fatura][usecase] create start pedido_id=%d payload_len=%d", pedidoID, len(mpPayload))
	if pedidoID <= 0 {
		return entities.Fatura{}, &workflow.ValidationError{Field: "pedido_id", Reason: "must be a positive integer"}
	}
	if !p.Role.AtLeast(entities.RoleModerator) {
		return entities.Fatura{}, &workflow.PermissionError{Role: p.Role, Target: "charge order", Required: faturaRoles}
	}
	if len(mpPayload) == 0 {
		mpPayload = json.RawMessage("{}")
	}
	if !json.Valid(mpPayload) {
		log.Printf("[fatura][usecase] invalid payload pedido_id=%d", pedidoID)
		return entities.Fatura{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		return entities.Fatura{}, errors.New("payment gateway not configured")
	}

	o, err := u.orders.GetByID(ctx, pedidoID)
	if err != nil {
		return entities.Fatura{}, err
	}
	if o.ID == 0 {
		return entities.Fatura{}, ErrOrderNotFound
	}
	if o.Status != entities.OrderStatusCompleted && o.Status != entities.OrderStatusDelivered {
		log.Printf("[fatura][usecase] order not billable pedido_id=%d status=%s", pedidoID, o.Status)
		return entities.Fatura{}, &workflow.InvalidStateError{
			Operation: "charge",
			Expected:  "COMPLETED or DELIVERED",
			Actual:    string(o.Status),
		}
	}

	// The source of truth for the amount is the order in DB; linkage via
	// external_reference helps Mercado Pago event reconciliation.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if reqMap == nil {
			reqMap = map[string]any{}
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = formatID(o.ID)
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Pedido %d - %s", o.ID, o.Titulo)
		}
		reqMap["transaction_amount"] = o.ValorTotal
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[fatura][usecase] gateway failed pedido_id=%d err=%v", pedidoID, err)
		if isGatewayUnauthorized(err) {
			return entities.Fatura{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Fatura{}, ErrPaymentGatewayBadRequest
		}
		return entities.Fatura{}, err
	}
	log.Printf("[fatura][usecase] gateway success pedido_id=%d provider_payment_id=%s provider_status=%s", pedidoID, providerID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[fatura][usecase] provider response unmarshal failed pedido_id=%d err=%v", pedidoID, err)
	}

	f := entities.Fatura{
		ID:           providerID,
		PedidoID:     o.ID,
		Date:         time.Now().UTC(),
		Status:       faturaStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, f)
	if err != nil {
		log.Printf("[fatura][usecase] repository create failed pedido_id=%d fatura_id=%s err=%v", pedidoID, f.ID, err)
		return entities.Fatura{}, err
	}
	log.Printf("[fatura][usecase] create success pedido_id=%d fatura_id=%s status=%s", pedidoID, created.ID, created.Status)
	return created, nil
}

func (u *FaturaUseCase) ListByPedidoID(ctx context.Context, pedidoID int64) ([]entities.Fatura, error) {
	if pedidoID <= 0 {
		return nil, &workflow.ValidationError{Field: "pedido_id", Reason: "must be a positive integer"}
	}
	return u.repo.ListByPedidoID(ctx, pedidoID)
}

func faturaStatusFromProvider(providerStatus string) entities.FaturaStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.FaturaStatusAprovada
	case "rejected", "cancelled":
		return entities.FaturaStatusNegada
	default:
		return entities.FaturaStatusPendente
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
