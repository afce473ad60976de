package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The payment pipeline only uses GetByID; Create belongs to the order
// intake endpoints. Repositories signal "not found" with a zero-value
// entity and a nil error.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}
