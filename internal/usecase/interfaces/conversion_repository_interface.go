package interfaces

import (
	"context"
	"errors"

	"grafica_xpto/internal/domain/entities"
)

// ErrStatusConflict reports a compare-and-swap failure: the stored status no
// longer matched the expected one at write time.
var ErrStatusConflict = errors.New("stored status did not match expected status")

// IConversionRepository executes the one cross-entity write: mark the budget
// CONVERTED and create the derived order in a single transaction. Either both
// writes commit or neither does.
//
// The budget leg is conditional on the stored status still being `expected`;
// a failed condition surfaces as ErrStatusConflict.

type IConversionRepository interface {
	Convert(ctx context.Context, budgetID int64, expected entities.BudgetStatus, notas string, order entities.Order) (entities.Budget, entities.Order, error)
}
