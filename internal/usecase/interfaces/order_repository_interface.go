package interfaces

import (
	"context"

	"grafica_xpto/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Same CAS discipline as IBudgetRepository: status writes carry the expected
// prior status and fail with ErrStatusConflict when it no longer matches.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id int64) (entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, expected, next entities.OrderStatus, notas string) (entities.Order, error)
	UpdateContent(ctx context.Context, o entities.Order, expected entities.OrderStatus) (entities.Order, error)
}
