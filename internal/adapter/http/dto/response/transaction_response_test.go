package response

import (
	"testing"
	"time"

	"loja_xpto/internal/domain/entities"
)

func TestFromTransaction(t *testing.T) {
	now := time.Now().UTC()
	txn := entities.Transaction{
		ID:           "184220",
		OrderID:      "order-1",
		Amount:       2744,
		Installments: 3,
		Status:       entities.TransactionStatusAuthorized,
		Date:         now,
	}

	res := FromTransaction(txn)
	if res.TransactionID != "184220" || res.OrderID != "order-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != 2744 || res.Installments != 3 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Status != "authorized" || !res.Date.Equal(now) {
		t.Fatalf("unexpected status or date: %+v", res)
	}
}

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:            "order-1",
		GrandTotal:    27.44,
		CustomerName:  "José da Silva",
		CustomerEmail: "jose@example.com",
		Status:        entities.OrderStatusPendente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res := FromOrder(o)
	if res.ID != "order-1" || res.Status != "pendente" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.HasBillingInfo {
		t.Fatalf("order without billing address must report has_billing_info=false")
	}

	o.BillingAddress = &entities.BillingAddress{Street1: "Rua Vergueiro"}
	if !FromOrder(o).HasBillingInfo {
		t.Fatalf("order with billing address must report has_billing_info=true")
	}
}
