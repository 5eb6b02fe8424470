package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/domain/workflow"
	"grafica_xpto/internal/usecase/interfaces"
	mock_interfaces "grafica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	moderator = entities.Principal{ID: 2, Email: "mod@grafica.com", Role: entities.RoleModerator}
	regular   = entities.Principal{ID: 3, Email: "user@grafica.com", Role: entities.RoleUser}
)

func newBudgetUseCase(t *testing.T) (*BudgetUseCase, *mock_interfaces.MockIBudgetRepository, *mock_interfaces.MockIIDAllocator) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
	ids := mock_interfaces.NewMockIIDAllocator(ctrl)
	uc := NewBudgetUseCase(repo, ids, workflow.NewGuard(workflow.NewBudgetTransitionTable()))
	return uc, repo, ids
}

func validCreateCmd() CreateBudgetCommand {
	return CreateBudgetCommand{
		Cliente:       entities.Cliente{ID: 7, Nome: "Editora Aurora"},
		Centro:        entities.CentroProducao{ID: 1, Nome: "Centro SP"},
		Titulo:        "Catalogo primavera",
		Tiragem:       1000,
		Formato:       "A4",
		TotalPgs:      48,
		PgsColors:     16,
		PrecoUnitario: 5.50,
		PrazoProducao: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("computes total from tiragem and unit price", func(t *testing.T) {
		uc, repo, ids := newBudgetUseCase(t)
		ids.EXPECT().NextID(gomock.Any(), "orcamentos").Return(int64(41), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID != 41 || b.Status != entities.BudgetStatusDraft {
					t.Fatalf("unexpected budget: %+v", b)
				}
				if b.PrecoTotal != 5500.00 {
					t.Fatalf("expected preco_total 5500.00, got %v", b.PrecoTotal)
				}
				if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return b, nil
			},
		)

		res, err := uc.Create(context.Background(), validCreateCmd(), regular)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PrecoTotal != 5500.00 {
			t.Fatalf("unexpected total: %v", res.PrecoTotal)
		}
	})

	t.Run("accepts explicit total within tolerance", func(t *testing.T) {
		uc, repo, ids := newBudgetUseCase(t)
		ids.EXPECT().NextID(gomock.Any(), "orcamentos").Return(int64(42), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil },
		)

		cmd := validCreateCmd()
		total := 5500.005
		cmd.PrecoTotal = &total
		if _, err := uc.Create(context.Background(), cmd, regular); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects total outside tolerance", func(t *testing.T) {
		uc, _, _ := newBudgetUseCase(t)
		cmd := validCreateCmd()
		total := 5501.00
		cmd.PrecoTotal = &total

		_, err := uc.Create(context.Background(), cmd, regular)
		var ve *workflow.ValidationError
		if !errors.As(err, &ve) || ve.Field != "preco_total" {
			t.Fatalf("expected preco_total ValidationError, got %v", err)
		}
	})

	t.Run("rejects colored pages above total", func(t *testing.T) {
		uc, _, _ := newBudgetUseCase(t)
		cmd := validCreateCmd()
		cmd.PgsColors = cmd.TotalPgs + 1

		_, err := uc.Create(context.Background(), cmd, regular)
		var ve *workflow.ValidationError
		if !errors.As(err, &ve) || ve.Field != "pgs_colors" {
			t.Fatalf("expected pgs_colors ValidationError, got %v", err)
		}
	})

	t.Run("rejects non positive tiragem", func(t *testing.T) {
		uc, _, _ := newBudgetUseCase(t)
		cmd := validCreateCmd()
		cmd.Tiragem = 0

		_, err := uc.Create(context.Background(), cmd, regular)
		var ve *workflow.ValidationError
		if !errors.As(err, &ve) || ve.Field != "tiragem" {
			t.Fatalf("expected tiragem ValidationError, got %v", err)
		}
	})
}

func TestBudgetUseCase_Transition(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newBudgetUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Budget{}, nil)

		_, _, err := uc.Transition(context.Background(), 9, "SUBMITTED", regular, nil)
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc, _, _ := newBudgetUseCase(t)
		_, _, err := uc.Transition(context.Background(), 9, "SHIPPED", regular, nil)
		var ve *workflow.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("converted target refused", func(t *testing.T) {
		uc, _, _ := newBudgetUseCase(t)
		_, _, err := uc.Transition(context.Background(), 9, "CONVERTED", moderator, nil)
		var ve *workflow.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("same state rejected before permission", func(t *testing.T) {
		uc, repo, _ := newBudgetUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Budget{ID: 9, Status: entities.BudgetStatusSubmitted}, nil)

		_, _, err := uc.Transition(context.Background(), 9, "SUBMITTED", regular, nil)
		var same *workflow.SameStateError
		if !errors.As(err, &same) {
			t.Fatalf("expected SameStateError, got %v", err)
		}
	})

	t.Run("user may not approve", func(t *testing.T) {
		uc, repo, _ := newBudgetUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Budget{ID: 9, Status: entities.BudgetStatusSubmitted}, nil)

		_, _, err := uc.Transition(context.Background(), 9, "APPROVED", regular, nil)
		var perm *workflow.PermissionError
		if !errors.As(err, &perm) {
			t.Fatalf("expected PermissionError, got %v", err)
		}
	})

	t.Run("stale write surfaces as conflict", func(t *testing.T) {
		uc, repo, _ := newBudgetUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Budget{ID: 9, Status: entities.BudgetStatusSubmitted}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(9), entities.BudgetStatusSubmitted, entities.BudgetStatusApproved, gomock.Any()).
			Return(entities.Budget{}, interfaces.ErrStatusConflict)

		_, _, err := uc.Transition(context.Background(), 9, "APPROVED", moderator, nil)
		var conflict *workflow.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("approve appends audit line and returns receipt", func(t *testing.T) {
		uc, repo, _ := newBudgetUseCase(t)
		fixed := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		b := entities.Budget{ID: 9, Status: entities.BudgetStatusSubmitted, Notas: "linha antiga"}
		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(b, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(9), entities.BudgetStatusSubmitted, entities.BudgetStatusApproved, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, _, next entities.BudgetStatus, notas string) (entities.Budget, error) {
				if !strings.HasPrefix(notas, "linha antiga\n") {
					t.Fatalf("prior notes not preserved: %q", notas)
				}
				if !strings.Contains(notas, "Status changed from SUBMITTED to APPROVED by mod@grafica.com") {
					t.Fatalf("audit line missing: %q", notas)
				}
				b.Status = next
				b.Notas = notas
				return b, nil
			},
		)

		updated, receipt, err := uc.Transition(context.Background(), 9, "APPROVED", moderator, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.BudgetStatusApproved {
			t.Fatalf("unexpected status: %s", updated.Status)
		}
		if receipt.From != "SUBMITTED" || receipt.To != "APPROVED" || receipt.ChangedBy != "mod@grafica.com" {
			t.Fatalf("unexpected receipt: %+v", receipt)
		}
		if !receipt.ChangedAt.Equal(fixed) || receipt.Reason != nil {
			t.Fatalf("unexpected receipt: %+v", receipt)
		}
	})

	t.Run("reject carries reason into notes", func(t *testing.T) {
		uc, repo, _ := newBudgetUseCase(t)
		reason := "needs revision"
		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Budget{ID: 9, Status: entities.BudgetStatusSubmitted}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(9), entities.BudgetStatusSubmitted, entities.BudgetStatusRejected, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, _, _ entities.BudgetStatus, notas string) (entities.Budget, error) {
				if !strings.Contains(notas, "Reason: needs revision") {
					t.Fatalf("reason missing from notes: %q", notas)
				}
				return entities.Budget{ID: 9, Status: entities.BudgetStatusRejected, Notas: notas}, nil
			},
		)

		_, receipt, err := uc.Transition(context.Background(), 9, "REJECTED", moderator, &reason)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if receipt.Reason == nil || *receipt.Reason != reason {
			t.Fatalf("unexpected receipt reason: %+v", receipt)
		}
	})
}

func TestBudgetUseCase_UpdateContent(t *testing.T) {
	t.Run("status through generic update rejected", func(t *testing.T) {
		uc, repo, _ := newBudgetUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entities.Budget{ID: 4, Status: entities.BudgetStatusDraft}, nil)

		status := "APPROVED"
		_, err := uc.UpdateContent(context.Background(), 4, UpdateBudgetCommand{Status: &status}, regular)
		var imm *workflow.ImmutableFieldError
		if !errors.As(err, &imm) {
			t.Fatalf("expected ImmutableFieldError, got %v", err)
		}
		if imm.Field != "status" || imm.Current != "DRAFT" || imm.Attempted != "APPROVED" {
			t.Fatalf("unexpected error payload: %+v", imm)
		}
	})

	t.Run("submitted budget content frozen", func(t *testing.T) {
		uc, repo, _ := newBudgetUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entities.Budget{ID: 4, Status: entities.BudgetStatusSubmitted}, nil)

		titulo := "novo titulo"
		_, err := uc.UpdateContent(context.Background(), 4, UpdateBudgetCommand{Titulo: &titulo}, regular)
		var inv *workflow.InvalidStateError
		if !errors.As(err, &inv) {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})

	t.Run("rejected budget is editable and total recomputed", func(t *testing.T) {
		uc, repo, _ := newBudgetUseCase(t)
		b := entities.Budget{ID: 4, Status: entities.BudgetStatusRejected, Titulo: "t", Tiragem: 100, TotalPgs: 10, PrecoUnitario: 2}
		repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(b, nil)
		repo.EXPECT().UpdateContent(gomock.Any(), gomock.Any(), entities.BudgetStatusRejected).DoAndReturn(
			func(_ context.Context, updated entities.Budget, _ entities.BudgetStatus) (entities.Budget, error) {
				if updated.Tiragem != 500 || updated.PrecoTotal != 1000 {
					t.Fatalf("expected recomputed total, got %+v", updated)
				}
				return updated, nil
			},
		)

		tiragem := 500
		res, err := uc.UpdateContent(context.Background(), 4, UpdateBudgetCommand{Tiragem: &tiragem}, regular)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PrecoTotal != 1000 {
			t.Fatalf("unexpected total: %v", res.PrecoTotal)
		}
	})
}

func TestBudgetUseCase_AvailableTransitions(t *testing.T) {
	uc, repo, _ := newBudgetUseCase(t)
	repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entities.Budget{ID: 4, Status: entities.BudgetStatusSubmitted}, nil).Times(2)

	opts, err := uc.AvailableTransitions(context.Background(), 4, regular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.CurrentStatus != "SUBMITTED" || len(opts.AllowedTransitions) != 2 {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if len(opts.AvailableTransitions) != 0 {
		t.Fatalf("USER should have no available transitions from SUBMITTED: %+v", opts)
	}

	opts, err = uc.AvailableTransitions(context.Background(), 4, moderator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts.AvailableTransitions) != 2 {
		t.Fatalf("unexpected moderator options: %+v", opts)
	}
}
