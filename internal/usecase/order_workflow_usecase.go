package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/domain/workflow"
	"grafica_xpto/internal/usecase/interfaces"
)

const orderSequence = "pedidos"

var directOrderRoles = []entities.Role{entities.RoleModerator, entities.RoleAdmin}

// CreateOrderCommand carries the content of a directly created order.
// OrderType may be DIRECT_ORDER (default) or RUSH_ORDER; BUDGET_DERIVED is
// reserved for the conversion workflow.
type CreateOrderCommand struct {
	OrderType     string
	Cliente       entities.Cliente
	Centro        entities.CentroProducao
	Titulo        string
	Tiragem       int
	Formato       string
	TotalPgs      int
	PgsColors     int
	ValorUnitario float64
	ValorTotal    *float64
	PrazoEntrega  time.Time
	NotasProducao string
}

// UpdateOrderCommand carries a content edit. Status, OrderType and
// OrcamentoID are write-once; a differing non-nil value is rejected.
type UpdateOrderCommand struct {
	Titulo        *string
	Tiragem       *int
	Formato       *string
	TotalPgs      *int
	PgsColors     *int
	ValorUnitario *float64
	ValorTotal    *float64
	PrazoEntrega  *time.Time
	Status        *string
	OrderType     *string
	OrcamentoID   *int64
}

// IOrderUseCase exposes the order side of the workflow engine.

type IOrderUseCase interface {
	CreateDirect(ctx context.Context, cmd CreateOrderCommand, p entities.Principal) (entities.Order, error)
	GetByID(ctx context.Context, id int64) (entities.Order, error)
	UpdateContent(ctx context.Context, id int64, cmd UpdateOrderCommand, p entities.Principal) (entities.Order, error)
	Transition(ctx context.Context, id int64, target string, p entities.Principal, reason *string) (entities.Order, workflow.Receipt, error)
	AvailableTransitions(ctx context.Context, id int64, p entities.Principal) (TransitionOptions, error)
}

type OrderUseCase struct {
	repo  interfaces.IOrderRepository
	ids   interfaces.IIDAllocator
	guard *workflow.Guard
	now   func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, ids interfaces.IIDAllocator, guard *workflow.Guard) *OrderUseCase {
	return &OrderUseCase{repo: repo, ids: ids, guard: guard, now: func() time.Time { return time.Now().UTC() }}
}

func (u *OrderUseCase) CreateDirect(ctx context.Context, cmd CreateOrderCommand, p entities.Principal) (entities.Order, error) {
	if !p.Role.AtLeast(entities.RoleModerator) {
		return entities.Order{}, &workflow.PermissionError{
			Role:     p.Role,
			Target:   "direct order creation",
			Required: directOrderRoles,
		}
	}

	orderType := entities.OrderTypeDirect
	switch strings.TrimSpace(cmd.OrderType) {
	case "", string(entities.OrderTypeDirect):
	case string(entities.OrderTypeRush):
		orderType = entities.OrderTypeRush
	default:
		return entities.Order{}, &workflow.ValidationError{Field: "order_type", Reason: "must be DIRECT_ORDER or RUSH_ORDER"}
	}

	if strings.TrimSpace(cmd.Titulo) == "" {
		return entities.Order{}, &workflow.ValidationError{Field: "titulo", Reason: "must not be empty"}
	}
	if cmd.Tiragem <= 0 {
		return entities.Order{}, &workflow.ValidationError{Field: "tiragem", Reason: "must be positive"}
	}
	if cmd.ValorUnitario <= 0 {
		return entities.Order{}, &workflow.ValidationError{Field: "valor_unitario", Reason: "must be positive"}
	}
	if cmd.TotalPgs <= 0 {
		return entities.Order{}, &workflow.ValidationError{Field: "total_pgs", Reason: "must be positive"}
	}
	if cmd.PgsColors < 0 || cmd.PgsColors > cmd.TotalPgs {
		return entities.Order{}, &workflow.ValidationError{Field: "pgs_colors", Reason: "must be between 0 and total_pgs"}
	}

	total := float64(cmd.Tiragem) * cmd.ValorUnitario
	if cmd.ValorTotal != nil {
		if math.Abs(*cmd.ValorTotal-total) > entities.PriceTolerance {
			return entities.Order{}, &workflow.ValidationError{Field: "valor_total", Reason: "does not match tiragem * valor_unitario"}
		}
		total = *cmd.ValorTotal
	}

	id, err := u.ids.NextID(ctx, orderSequence)
	if err != nil {
		return entities.Order{}, err
	}

	now := u.now()
	o := entities.Order{
		ID:            id,
		Status:        entities.OrderStatusPending,
		OrderType:     orderType,
		Cliente:       cmd.Cliente,
		Centro:        cmd.Centro,
		Titulo:        strings.TrimSpace(cmd.Titulo),
		Tiragem:       cmd.Tiragem,
		Formato:       cmd.Formato,
		TotalPgs:      cmd.TotalPgs,
		PgsColors:     cmd.PgsColors,
		ValorUnitario: cmd.ValorUnitario,
		ValorTotal:    total,
		PrazoEntrega:  cmd.PrazoEntrega,
		NotasProducao: cmd.NotasProducao,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, o)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id int64) (entities.Order, error) {
	if id <= 0 {
		return entities.Order{}, &workflow.ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) UpdateContent(ctx context.Context, id int64, cmd UpdateOrderCommand, p entities.Principal) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	if err := checkImmutableOrderFields(o, cmd); err != nil {
		return entities.Order{}, err
	}

	expected := o.Status
	if cmd.Titulo != nil {
		if strings.TrimSpace(*cmd.Titulo) == "" {
			return entities.Order{}, &workflow.ValidationError{Field: "titulo", Reason: "must not be empty"}
		}
		o.Titulo = strings.TrimSpace(*cmd.Titulo)
	}
	if cmd.Tiragem != nil {
		if *cmd.Tiragem <= 0 {
			return entities.Order{}, &workflow.ValidationError{Field: "tiragem", Reason: "must be positive"}
		}
		o.Tiragem = *cmd.Tiragem
	}
	if cmd.Formato != nil {
		o.Formato = *cmd.Formato
	}
	if cmd.TotalPgs != nil {
		o.TotalPgs = *cmd.TotalPgs
	}
	if cmd.PgsColors != nil {
		o.PgsColors = *cmd.PgsColors
	}
	if o.TotalPgs <= 0 {
		return entities.Order{}, &workflow.ValidationError{Field: "total_pgs", Reason: "must be positive"}
	}
	if o.PgsColors < 0 || o.PgsColors > o.TotalPgs {
		return entities.Order{}, &workflow.ValidationError{Field: "pgs_colors", Reason: "must be between 0 and total_pgs"}
	}
	if cmd.ValorUnitario != nil {
		if *cmd.ValorUnitario <= 0 {
			return entities.Order{}, &workflow.ValidationError{Field: "valor_unitario", Reason: "must be positive"}
		}
		o.ValorUnitario = *cmd.ValorUnitario
	}
	o.ValorTotal = float64(o.Tiragem) * o.ValorUnitario
	if cmd.ValorTotal != nil {
		if math.Abs(*cmd.ValorTotal-o.ValorTotal) > entities.PriceTolerance {
			return entities.Order{}, &workflow.ValidationError{Field: "valor_total", Reason: "does not match tiragem * valor_unitario"}
		}
		o.ValorTotal = *cmd.ValorTotal
	}
	if cmd.PrazoEntrega != nil {
		o.PrazoEntrega = *cmd.PrazoEntrega
	}
	o.UpdatedAt = u.now()

	updated, err := u.repo.UpdateContent(ctx, o, expected)
	if errors.Is(err, interfaces.ErrStatusConflict) {
		return entities.Order{}, &workflow.ConflictError{Expected: string(expected)}
	}
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

func checkImmutableOrderFields(o entities.Order, cmd UpdateOrderCommand) error {
	if cmd.Status != nil && *cmd.Status != string(o.Status) {
		return &workflow.ImmutableFieldError{Field: "status", Current: string(o.Status), Attempted: *cmd.Status}
	}
	if cmd.OrderType != nil && *cmd.OrderType != string(o.OrderType) {
		return &workflow.ImmutableFieldError{Field: "order_type", Current: string(o.OrderType), Attempted: *cmd.OrderType}
	}
	if cmd.OrcamentoID != nil {
		current := "null"
		if o.OrcamentoID != nil {
			current = formatID(*o.OrcamentoID)
		}
		if o.OrcamentoID == nil || *cmd.OrcamentoID != *o.OrcamentoID {
			return &workflow.ImmutableFieldError{Field: "orcamento_id", Current: current, Attempted: formatID(*cmd.OrcamentoID)}
		}
	}
	return nil
}

func (u *OrderUseCase) Transition(ctx context.Context, id int64, target string, p entities.Principal, reason *string) (entities.Order, workflow.Receipt, error) {
	target = strings.TrimSpace(target)
	if !u.guard.Table().KnownStatus(target) {
		return entities.Order{}, workflow.Receipt{}, &workflow.ValidationError{Field: "status", Reason: "unknown status " + target}
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, workflow.Receipt{}, err
	}
	if err := u.guard.Check(string(o.Status), target, p.Role); err != nil {
		return entities.Order{}, workflow.Receipt{}, err
	}

	now := u.now()
	line := workflow.AuditLine(now, string(o.Status), target, p.Email, reason)
	notas := workflow.AppendAudit(o.NotasProducao, line)

	updated, err := u.repo.UpdateStatus(ctx, id, o.Status, entities.OrderStatus(target), notas)
	if errors.Is(err, interfaces.ErrStatusConflict) {
		return entities.Order{}, workflow.Receipt{}, &workflow.ConflictError{Expected: string(o.Status)}
	}
	if err != nil {
		return entities.Order{}, workflow.Receipt{}, err
	}

	receipt := workflow.Receipt{
		From:      string(o.Status),
		To:        target,
		ChangedBy: p.Email,
		ChangedAt: now,
		Reason:    reason,
	}
	return updated, receipt, nil
}

func (u *OrderUseCase) AvailableTransitions(ctx context.Context, id int64, p entities.Principal) (TransitionOptions, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return TransitionOptions{}, err
	}
	all, filtered := u.guard.Available(string(o.Status), p.Role)
	return TransitionOptions{
		CurrentStatus:        string(o.Status),
		AllowedTransitions:   all,
		AvailableTransitions: filtered,
	}, nil
}
