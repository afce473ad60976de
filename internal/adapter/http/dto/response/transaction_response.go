package response

import (
	"time"

	"loja_xpto/internal/domain/entities"
)

type TransactionResponse struct {
	TransactionID string    `json:"transaction_id"`
	OrderID       string    `json:"order_id"`
	Amount        int64     `json:"amount"`
	Installments  int       `json:"installments"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.ID,
		OrderID:       t.OrderID,
		Amount:        t.Amount,
		Installments:  t.Installments,
		Status:        string(t.Status),
		Date:          t.Date,
	}
}
