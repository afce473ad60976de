package entities

import (
	"encoding/json"
	"time"
)

// TransactionStatus mirrors the gateway-side transaction lifecycle.
//
// The checkout only drives two transitions: a charge with capture=false
// lands on "authorized", and a later capture call moves the same
// transaction to "paid". The remaining statuses can still show up in
// gateway responses and are persisted as-is.

type TransactionStatus string

const (
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusAuthorized TransactionStatus = "authorized"
	TransactionStatusPaid       TransactionStatus = "paid"
	TransactionStatusRefused    TransactionStatus = "refused"
	TransactionStatusRefunded   TransactionStatus = "refunded"
)

// Card is the gateway-issued handle for a chargeable card. It only lives
// for the duration of one authorization attempt and is never persisted.
type Card struct {
	ID         string `json:"id"`
	Brand      string `json:"brand"`
	LastDigits string `json:"last_digits"`
	HolderName string `json:"holder_name"`
}

// ChargeRequest is the payload for one credit card charge. Built once,
// sent once; Amount is in minor currency units (centavos).
type ChargeRequest struct {
	Amount       int64           `json:"amount"`
	Card         Card            `json:"card"`
	Customer     CustomerProfile `json:"customer"`
	Installments int             `json:"installments"`
	Capture      bool            `json:"capture"`
}

// Transaction is the payment transaction persisted by the checkout.
//
// Storage model (DynamoDB):
//   - PK: id (the gateway-assigned transaction id)
//   - GSI1 (order_id-index): order_id
//
// Gateway payload:
//   - GatewayPayloadRaw keeps the original response body (JSON) for
//     traceability/audit.
type Transaction struct {
	ID           string            `json:"id"`
	OrderID      string            `json:"order_id"`
	Amount       int64             `json:"amount"`
	Installments int               `json:"installments"`
	Status       TransactionStatus `json:"status"`
	Date         time.Time         `json:"date"`

	GatewayPayloadRaw json.RawMessage `json:"gateway_payload_raw,omitempty"`
}
