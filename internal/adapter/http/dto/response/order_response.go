package response

import (
	"time"

	"loja_xpto/internal/domain/entities"
)

type OrderResponse struct {
	ID             string    `json:"id"`
	GrandTotal     float64   `json:"grand_total"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email"`
	Status         string    `json:"status"`
	HasBillingInfo bool      `json:"has_billing_info"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		GrandTotal:     o.GrandTotal,
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		Status:         string(o.Status),
		HasBillingInfo: o.BillingAddress != nil,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}
