package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
//
// The checkout must be able to:
//   - record a freshly authorized transaction against its order
//   - find the transactions of an order (capture, status lookups)
//   - update the status after a capture

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.TransactionStatus) (entities.Transaction, error)
}
