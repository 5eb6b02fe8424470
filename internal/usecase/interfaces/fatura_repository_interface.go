package interfaces

import (
	"context"

	"grafica_xpto/internal/domain/entities"
)

// IFaturaRepository abstracts DynamoDB persistence for Fatura.

type IFaturaRepository interface {
	Create(ctx context.Context, f entities.Fatura) (entities.Fatura, error)
	GetByID(ctx context.Context, id string) (entities.Fatura, error)
	ListByPedidoID(ctx context.Context, pedidoID int64) ([]entities.Fatura, error)
}
