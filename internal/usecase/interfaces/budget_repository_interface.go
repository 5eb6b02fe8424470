package interfaces

import (
	"context"

	"grafica_xpto/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Status writes are compare-and-swap: the stored status must still equal the
// one the caller validated against, otherwise ErrStatusConflict is returned.
// A zero-ID entity from GetByID means not found.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id int64) (entities.Budget, error)
	UpdateStatus(ctx context.Context, id int64, expected, next entities.BudgetStatus, notas string) (entities.Budget, error)
	UpdateContent(ctx context.Context, b entities.Budget, expected entities.BudgetStatus) (entities.Budget, error)
}
