package request

// PaymentAuthorizeRequest is the payload for the authorize route. The
// card hash comes from the client-side tokenization step and is consumed
// exactly once.
type PaymentAuthorizeRequest struct {
	CardHash     string `json:"card_hash" binding:"required"`
	Installments int    `json:"installments" binding:"required"`
}
