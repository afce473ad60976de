package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (PagarMe).
//
// Failure contract: when the provider rejects a call with a structured
// error body, implementations return *entities.GatewayError; any other
// failure (network, unparseable payload) comes back as a plain error and
// is treated as a defect, not a shopper-facing rejection.
type IPaymentGateway interface {
	// CreateCardFromToken exchanges a client-side card hash for a
	// chargeable card handle. The hash is single-use.
	CreateCardFromToken(ctx context.Context, cardHash string) (entities.Card, error)

	// ChargeCreditCard submits one charge. With req.Capture false the
	// transaction is only authorized; funds move on a later capture.
	ChargeCreditCard(ctx context.Context, req entities.ChargeRequest) (entities.Transaction, error)

	// CaptureTransaction finalizes a previously authorized transaction.
	// The returned transaction keeps the same id with an updated status.
	CaptureTransaction(ctx context.Context, transactionID string) (entities.Transaction, error)
}
