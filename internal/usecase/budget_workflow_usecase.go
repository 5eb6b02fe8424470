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

var (
	ErrBudgetNotFound = errors.New("budget not found")
	ErrOrderNotFound  = errors.New("order not found")
)

const budgetSequence = "orcamentos"

// CreateBudgetCommand carries the content of a new budget. PrecoTotal is
// optional: when omitted the server computes tiragem * preco_unitario, when
// present it must match within the tolerance.
type CreateBudgetCommand struct {
	Cliente       entities.Cliente
	Centro        entities.CentroProducao
	Titulo        string
	Tiragem       int
	Formato       string
	TotalPgs      int
	PgsColors     int
	PrecoUnitario float64
	PrecoTotal    *float64
	PrazoProducao time.Time
	Notas         string
}

// UpdateBudgetCommand carries a content edit. A non-nil Status is an attempt
// to smuggle a transition through a generic update and is rejected.
type UpdateBudgetCommand struct {
	Titulo        *string
	Tiragem       *int
	Formato       *string
	TotalPgs      *int
	PgsColors     *int
	PrecoUnitario *float64
	PrecoTotal    *float64
	PrazoProducao *time.Time
	Status        *string
}

// TransitionOptions is the availability listing for one entity: the
// graph-valid targets and the subset the caller's role may actually set.
type TransitionOptions struct {
	CurrentStatus        string   `json:"current_status"`
	AllowedTransitions   []string `json:"allowed_transitions"`
	AvailableTransitions []string `json:"available_transitions"`
}

// IBudgetUseCase exposes the budget side of the workflow engine.

type IBudgetUseCase interface {
	Create(ctx context.Context, cmd CreateBudgetCommand, p entities.Principal) (entities.Budget, error)
	GetByID(ctx context.Context, id int64) (entities.Budget, error)
	UpdateContent(ctx context.Context, id int64, cmd UpdateBudgetCommand, p entities.Principal) (entities.Budget, error)
	Transition(ctx context.Context, id int64, target string, p entities.Principal, reason *string) (entities.Budget, workflow.Receipt, error)
	AvailableTransitions(ctx context.Context, id int64, p entities.Principal) (TransitionOptions, error)
}

type BudgetUseCase struct {
	repo  interfaces.IBudgetRepository
	ids   interfaces.IIDAllocator
	guard *workflow.Guard
	now   func() time.Time
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, ids interfaces.IIDAllocator, guard *workflow.Guard) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, ids: ids, guard: guard, now: func() time.Time { return time.Now().UTC() }}
}

func (u *BudgetUseCase) Create(ctx context.Context, cmd CreateBudgetCommand, p entities.Principal) (entities.Budget, error) {
	if strings.TrimSpace(cmd.Titulo) == "" {
		return entities.Budget{}, &workflow.ValidationError{Field: "titulo", Reason: "must not be empty"}
	}
	if cmd.Tiragem <= 0 {
		return entities.Budget{}, &workflow.ValidationError{Field: "tiragem", Reason: "must be positive"}
	}
	if cmd.PrecoUnitario <= 0 {
		return entities.Budget{}, &workflow.ValidationError{Field: "preco_unitario", Reason: "must be positive"}
	}
	if cmd.TotalPgs <= 0 {
		return entities.Budget{}, &workflow.ValidationError{Field: "total_pgs", Reason: "must be positive"}
	}
	if cmd.PgsColors < 0 || cmd.PgsColors > cmd.TotalPgs {
		return entities.Budget{}, &workflow.ValidationError{Field: "pgs_colors", Reason: "must be between 0 and total_pgs"}
	}

	total := float64(cmd.Tiragem) * cmd.PrecoUnitario
	if cmd.PrecoTotal != nil {
		if math.Abs(*cmd.PrecoTotal-total) > entities.PriceTolerance {
			return entities.Budget{}, &workflow.ValidationError{Field: "preco_total", Reason: "does not match tiragem * preco_unitario"}
		}
		total = *cmd.PrecoTotal
	}

	id, err := u.ids.NextID(ctx, budgetSequence)
	if err != nil {
		return entities.Budget{}, err
	}

	now := u.now()
	b := entities.Budget{
		ID:            id,
		Status:        entities.BudgetStatusDraft,
		Cliente:       cmd.Cliente,
		Centro:        cmd.Centro,
		Titulo:        strings.TrimSpace(cmd.Titulo),
		Tiragem:       cmd.Tiragem,
		Formato:       cmd.Formato,
		TotalPgs:      cmd.TotalPgs,
		PgsColors:     cmd.PgsColors,
		PrecoUnitario: cmd.PrecoUnitario,
		PrecoTotal:    total,
		PrazoProducao: cmd.PrazoProducao,
		Notas:         cmd.Notas,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, b)
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id int64) (entities.Budget, error) {
	if id <= 0 {
		return entities.Budget{}, &workflow.ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == 0 {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) UpdateContent(ctx context.Context, id int64, cmd UpdateBudgetCommand, p entities.Principal) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}

	// Status never moves through a generic field update.
	if cmd.Status != nil && *cmd.Status != string(b.Status) {
		return entities.Budget{}, &workflow.ImmutableFieldError{
			Field:     "status",
			Current:   string(b.Status),
			Attempted: *cmd.Status,
		}
	}
	if !b.ContentMutable() {
		return entities.Budget{}, &workflow.InvalidStateError{
			Operation: "content update",
			Expected:  "DRAFT or REJECTED",
			Actual:    string(b.Status),
		}
	}

	expected := b.Status
	if cmd.Titulo != nil {
		if strings.TrimSpace(*cmd.Titulo) == "" {
			return entities.Budget{}, &workflow.ValidationError{Field: "titulo", Reason: "must not be empty"}
		}
		b.Titulo = strings.TrimSpace(*cmd.Titulo)
	}
	if cmd.Tiragem != nil {
		if *cmd.Tiragem <= 0 {
			return entities.Budget{}, &workflow.ValidationError{Field: "tiragem", Reason: "must be positive"}
		}
		b.Tiragem = *cmd.Tiragem
	}
	if cmd.Formato != nil {
		b.Formato = *cmd.Formato
	}
	if cmd.TotalPgs != nil {
		b.TotalPgs = *cmd.TotalPgs
	}
	if cmd.PgsColors != nil {
		b.PgsColors = *cmd.PgsColors
	}
	if b.TotalPgs <= 0 {
		return entities.Budget{}, &workflow.ValidationError{Field: "total_pgs", Reason: "must be positive"}
	}
	if b.PgsColors < 0 || b.PgsColors > b.TotalPgs {
		return entities.Budget{}, &workflow.ValidationError{Field: "pgs_colors", Reason: "must be between 0 and total_pgs"}
	}
	if cmd.PrecoUnitario != nil {
		if *cmd.PrecoUnitario <= 0 {
			return entities.Budget{}, &workflow.ValidationError{Field: "preco_unitario", Reason: "must be positive"}
		}
		b.PrecoUnitario = *cmd.PrecoUnitario
	}
	b.PrecoTotal = float64(b.Tiragem) * b.PrecoUnitario
	if cmd.PrecoTotal != nil {
		if math.Abs(*cmd.PrecoTotal-b.PrecoTotal) > entities.PriceTolerance {
			return entities.Budget{}, &workflow.ValidationError{Field: "preco_total", Reason: "does not match tiragem * preco_unitario"}
		}
		b.PrecoTotal = *cmd.PrecoTotal
	}
	if cmd.PrazoProducao != nil {
		b.PrazoProducao = *cmd.PrazoProducao
	}
	b.UpdatedAt = u.now()

	updated, err := u.repo.UpdateContent(ctx, b, expected)
	if errors.Is(err, interfaces.ErrStatusConflict) {
		return entities.Budget{}, &workflow.ConflictError{Expected: string(expected)}
	}
	if err != nil {
		return entities.Budget{}, err
	}
	return updated, nil
}

func (u *BudgetUseCase) Transition(ctx context.Context, id int64, target string, p entities.Principal, reason *string) (entities.Budget, workflow.Receipt, error) {
	target = strings.TrimSpace(target)
	if !u.guard.Table().KnownStatus(target) {
		return entities.Budget{}, workflow.Receipt{}, &workflow.ValidationError{Field: "status", Reason: "unknown status " + target}
	}
	// CONVERTED is reachable only through the conversion operation; setting it
	// here would leave a converted budget with no order.
	if target == string(entities.BudgetStatusConverted) {
		return entities.Budget{}, workflow.Receipt{}, &workflow.ValidationError{Field: "status", Reason: "CONVERTED is set by the conversion operation"}
	}

	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, workflow.Receipt{}, err
	}
	if err := u.guard.Check(string(b.Status), target, p.Role); err != nil {
		return entities.Budget{}, workflow.Receipt{}, err
	}

	now := u.now()
	line := workflow.AuditLine(now, string(b.Status), target, p.Email, reason)
	notas := workflow.AppendAudit(b.Notas, line)

	updated, err := u.repo.UpdateStatus(ctx, id, b.Status, entities.BudgetStatus(target), notas)
	if errors.Is(err, interfaces.ErrStatusConflict) {
		return entities.Budget{}, workflow.Receipt{}, &workflow.ConflictError{Expected: string(b.Status)}
	}
	if err != nil {
		return entities.Budget{}, workflow.Receipt{}, err
	}

	receipt := workflow.Receipt{
		From:      string(b.Status),
		To:        target,
		ChangedBy: p.Email,
		ChangedAt: now,
		Reason:    reason,
	}
	return updated, receipt, nil
}

func (u *BudgetUseCase) AvailableTransitions(ctx context.Context, id int64, p entities.Principal) (TransitionOptions, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return TransitionOptions{}, err
	}
	all, filtered := u.guard.Available(string(b.Status), p.Role)
	return TransitionOptions{
		CurrentStatus:        string(b.Status),
		AllowedTransitions:   all,
		AvailableTransitions: filtered,
	}, nil
}
