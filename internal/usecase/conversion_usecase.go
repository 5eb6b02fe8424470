package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/domain/workflow"
	"grafica_xpto/internal/usecase/interfaces"
)

var conversionRoles = []entities.Role{entities.RoleModerator, entities.RoleAdmin}

// IConversionUseCase turns an APPROVED budget into a PENDING order.
//
// The two writes (budget -> CONVERTED, new order) commit together or not at
// all; a rejected or draft budget must never reach an order.

type IConversionUseCase interface {
	Convert(ctx context.Context, budgetID int64, p entities.Principal) (entities.Budget, entities.Order, error)
}

type ConversionUseCase struct {
	budgets interfaces.IBudgetRepository
	conv    interfaces.IConversionRepository
	ids     interfaces.IIDAllocator
	now     func() time.Time
}

var _ IConversionUseCase = (*ConversionUseCase)(nil)

func NewConversionUseCase(budgets interfaces.IBudgetRepository, conv interfaces.IConversionRepository, ids interfaces.IIDAllocator) *ConversionUseCase {
	return &ConversionUseCase{budgets: budgets, conv: conv, ids: ids, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ConversionUseCase) Convert(ctx context.Context, budgetID int64, p entities.Principal) (entities.Budget, entities.Order, error) {
	if budgetID <= 0 {
		return entities.Budget{}, entities.Order{}, &workflow.ValidationError{Field: "id", Reason: "must be a positive integer"}
	}

	b, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, entities.Order{}, err
	}
	if b.ID == 0 {
		return entities.Budget{}, entities.Order{}, ErrBudgetNotFound
	}
	if b.Status != entities.BudgetStatusApproved {
		return entities.Budget{}, entities.Order{}, &workflow.InvalidStateError{
			Operation: "conversion",
			Expected:  string(entities.BudgetStatusApproved),
			Actual:    string(b.Status),
		}
	}
	if !p.Role.AtLeast(entities.RoleModerator) {
		return entities.Budget{}, entities.Order{}, &workflow.PermissionError{
			Role:     p.Role,
			Target:   string(entities.BudgetStatusConverted),
			Required: conversionRoles,
		}
	}

	orderID, err := u.ids.NextID(ctx, orderSequence)
	if err != nil {
		return entities.Budget{}, entities.Order{}, err
	}

	now := u.now()
	line := workflow.AuditLine(now, string(b.Status), string(entities.BudgetStatusConverted), p.Email, nil)
	notas := workflow.AppendAudit(b.Notas, line)

	// Budget notes are carried over as the order's initial production notes.
	orderNotas := workflow.AppendAudit(b.Notas,
		fmt.Sprintf("[%s] Order created from budget %d by %s", now.Format(time.RFC3339), b.ID, p.Email))

	order := entities.Order{
		ID:            orderID,
		Status:        entities.OrderStatusPending,
		OrderType:     entities.OrderTypeBudgetDerived,
		OrcamentoID:   &b.ID,
		Cliente:       b.Cliente,
		Centro:        b.Centro,
		Titulo:        b.Titulo,
		Tiragem:       b.Tiragem,
		Formato:       b.Formato,
		TotalPgs:      b.TotalPgs,
		PgsColors:     b.PgsColors,
		ValorUnitario: b.PrecoUnitario,
		ValorTotal:    b.PrecoTotal,
		PrazoEntrega:  b.PrazoProducao,
		NotasProducao: orderNotas,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	log.Printf("[conversion][usecase] converting budget_id=%d order_id=%d by=%s", b.ID, orderID, p.Email)
	budget, created, err := u.conv.Convert(ctx, b.ID, entities.BudgetStatusApproved, notas, order)
	if errors.Is(err, interfaces.ErrStatusConflict) {
		return entities.Budget{}, entities.Order{}, &workflow.ConflictError{Expected: string(entities.BudgetStatusApproved)}
	}
	if err != nil {
		log.Printf("[conversion][usecase] transaction failed budget_id=%d err=%v", b.ID, err)
		return entities.Budget{}, entities.Order{}, err
	}
	log.Printf("[conversion][usecase] converted budget_id=%d order_id=%d", budget.ID, created.ID)
	return budget, created, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
