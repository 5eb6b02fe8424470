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

func newOrderUseCase(t *testing.T) (*OrderUseCase, *mock_interfaces.MockIOrderRepository, *mock_interfaces.MockIIDAllocator) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	ids := mock_interfaces.NewMockIIDAllocator(ctrl)
	uc := NewOrderUseCase(repo, ids, workflow.NewGuard(workflow.NewOrderTransitionTable()))
	return uc, repo, ids
}

func validOrderCmd() CreateOrderCommand {
	return CreateOrderCommand{
		Cliente:       entities.Cliente{ID: 7, Nome: "Editora Aurora"},
		Centro:        entities.CentroProducao{ID: 1, Nome: "Centro SP"},
		Titulo:        "Flyer festival",
		Tiragem:       2000,
		Formato:       "A5",
		TotalPgs:      2,
		PgsColors:     2,
		ValorUnitario: 0.80,
		PrazoEntrega:  time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestOrderUseCase_CreateDirect(t *testing.T) {
	t.Run("user rejected", func(t *testing.T) {
		uc, _, _ := newOrderUseCase(t)
		_, err := uc.CreateDirect(context.Background(), validOrderCmd(), regular)
		var perm *workflow.PermissionError
		if !errors.As(err, &perm) {
			t.Fatalf("expected PermissionError, got %v", err)
		}
		if len(perm.Required) != 2 {
			t.Fatalf("unexpected required roles: %+v", perm)
		}
	})

	t.Run("budget derived type refused", func(t *testing.T) {
		uc, _, _ := newOrderUseCase(t)
		cmd := validOrderCmd()
		cmd.OrderType = "BUDGET_DERIVED"

		_, err := uc.CreateDirect(context.Background(), cmd, moderator)
		var ve *workflow.ValidationError
		if !errors.As(err, &ve) || ve.Field != "order_type" {
			t.Fatalf("expected order_type ValidationError, got %v", err)
		}
	})

	t.Run("moderator creates pending direct order", func(t *testing.T) {
		uc, repo, ids := newOrderUseCase(t)
		ids.EXPECT().NextID(gomock.Any(), "pedidos").Return(int64(70), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID != 70 || o.Status != entities.OrderStatusPending || o.OrderType != entities.OrderTypeDirect {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.OrcamentoID != nil {
					t.Fatalf("direct order must not reference a budget: %+v", o)
				}
				if o.ValorTotal != 1600.00 {
					t.Fatalf("unexpected total: %v", o.ValorTotal)
				}
				return o, nil
			},
		)

		if _, err := uc.CreateDirect(context.Background(), validOrderCmd(), moderator); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rush order allowed", func(t *testing.T) {
		uc, repo, ids := newOrderUseCase(t)
		ids.EXPECT().NextID(gomock.Any(), "pedidos").Return(int64(71), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.OrderType != entities.OrderTypeRush {
					t.Fatalf("unexpected type: %s", o.OrderType)
				}
				return o, nil
			},
		)

		cmd := validOrderCmd()
		cmd.OrderType = "RUSH_ORDER"
		if _, err := uc.CreateDirect(context.Background(), cmd, moderator); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_Transition(t *testing.T) {
	t.Run("full production flow", func(t *testing.T) {
		uc, repo, _ := newOrderUseCase(t)
		steps := []struct {
			from entities.OrderStatus
			to   string
		}{
			{entities.OrderStatusPending, "IN_PRODUCTION"},
			{entities.OrderStatusInProduction, "COMPLETED"},
			{entities.OrderStatusCompleted, "DELIVERED"},
		}
		notas := ""
		for _, s := range steps {
			from := s.from
			repo.EXPECT().GetByID(gomock.Any(), int64(70)).Return(entities.Order{ID: 70, Status: from, NotasProducao: notas}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), int64(70), from, entities.OrderStatus(s.to), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ int64, _, next entities.OrderStatus, updated string) (entities.Order, error) {
					notas = updated
					return entities.Order{ID: 70, Status: next, NotasProducao: updated}, nil
				},
			)

			o, receipt, err := uc.Transition(context.Background(), 70, s.to, moderator, nil)
			if err != nil {
				t.Fatalf("transition %s -> %s failed: %v", s.from, s.to, err)
			}
			if string(o.Status) != s.to || receipt.To != s.to {
				t.Fatalf("unexpected result: %+v %+v", o, receipt)
			}
		}

		// Three transitions leave three chronological audit entries.
		lines := strings.Split(notas, "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 audit lines, got %d: %q", len(lines), notas)
		}
		for i, s := range steps {
			if !strings.Contains(lines[i], "from "+string(s.from)+" to "+s.to) {
				t.Fatalf("line %d mismatch: %q", i, lines[i])
			}
		}
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		uc, repo, _ := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(70)).Return(entities.Order{ID: 70, Status: entities.OrderStatusDelivered}, nil)

		_, _, err := uc.Transition(context.Background(), 70, "PENDING", moderator, nil)
		var inv *workflow.InvalidTransitionError
		if !errors.As(err, &inv) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if len(inv.Allowed) != 0 {
			t.Fatalf("unexpected allowed set: %+v", inv)
		}
	})

	t.Run("user may hold but not start production", func(t *testing.T) {
		uc, repo, _ := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(70)).Return(entities.Order{ID: 70, Status: entities.OrderStatusPending}, nil).Times(2)

		_, _, err := uc.Transition(context.Background(), 70, "IN_PRODUCTION", regular, nil)
		var perm *workflow.PermissionError
		if !errors.As(err, &perm) {
			t.Fatalf("expected PermissionError, got %v", err)
		}

		repo.EXPECT().UpdateStatus(gomock.Any(), int64(70), entities.OrderStatusPending, entities.OrderStatusOnHold, gomock.Any()).
			Return(entities.Order{ID: 70, Status: entities.OrderStatusOnHold}, nil)
		if _, _, err := uc.Transition(context.Background(), 70, "ON_HOLD", regular, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stale write surfaces as conflict", func(t *testing.T) {
		uc, repo, _ := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(70)).Return(entities.Order{ID: 70, Status: entities.OrderStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(70), entities.OrderStatusPending, entities.OrderStatusInProduction, gomock.Any()).
			Return(entities.Order{}, interfaces.ErrStatusConflict)

		_, _, err := uc.Transition(context.Background(), 70, "IN_PRODUCTION", moderator, nil)
		var conflict *workflow.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateContent_ImmutableFields(t *testing.T) {
	orcID := int64(9)
	existing := entities.Order{ID: 70, Status: entities.OrderStatusPending, OrderType: entities.OrderTypeBudgetDerived, OrcamentoID: &orcID, Titulo: "t", Tiragem: 10, TotalPgs: 4, ValorUnitario: 1}

	cases := []struct {
		name  string
		cmd   UpdateOrderCommand
		field string
	}{
		{name: "order_type", cmd: UpdateOrderCommand{OrderType: strPtr("DIRECT_ORDER")}, field: "order_type"},
		{name: "status", cmd: UpdateOrderCommand{Status: strPtr("CANCELLED")}, field: "status"},
		{name: "orcamento_id", cmd: UpdateOrderCommand{OrcamentoID: int64Ptr(12)}, field: "orcamento_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo, _ := newOrderUseCase(t)
			repo.EXPECT().GetByID(gomock.Any(), int64(70)).Return(existing, nil)

			_, err := uc.UpdateContent(context.Background(), 70, tc.cmd, moderator)
			var imm *workflow.ImmutableFieldError
			if !errors.As(err, &imm) {
				t.Fatalf("expected ImmutableFieldError, got %v", err)
			}
			if imm.Field != tc.field {
				t.Fatalf("expected field %s, got %+v", tc.field, imm)
			}
		})
	}

	t.Run("same values pass through", func(t *testing.T) {
		uc, repo, _ := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(70)).Return(existing, nil)
		repo.EXPECT().UpdateContent(gomock.Any(), gomock.Any(), entities.OrderStatusPending).DoAndReturn(
			func(_ context.Context, o entities.Order, _ entities.OrderStatus) (entities.Order, error) { return o, nil },
		)

		cmd := UpdateOrderCommand{OrderType: strPtr("BUDGET_DERIVED"), Titulo: strPtr("novo nome")}
		res, err := uc.UpdateContent(context.Background(), 70, cmd, moderator)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Titulo != "novo nome" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
