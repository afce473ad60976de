package entities

import "time"

// OrderStatus represents the lifecycle of an order from the checkout's
// point of view.
//
// Domain notes:
//   - Orders are created by the storefront before the payment step.
//   - The payment pipeline only reads orders; it never mutates them.

type OrderStatus string

const (
	OrderStatusPendente  OrderStatus = "pendente"
	OrderStatusCancelado OrderStatus = "cancelado"
)

// BillingAddress carries the billing fields the payment gateway needs.
//
// Street lines follow the storefront convention: line 1 is the street name,
// line 2 the number, line 3 the complement and line 4 the neighborhood.
type BillingAddress struct {
	Street1   string `json:"street_1"`
	Street2   string `json:"street_2"`
	Street3   string `json:"street_3"`
	Street4   string `json:"street_4"`
	City      string `json:"city"`
	Region    string `json:"region"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Telephone string `json:"telephone"`
}

// Order is the order/quote snapshot persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - GrandTotal is the decimal order total as quoted by the storefront.
//     The payment pipeline converts it to minor currency units (centavos)
//     right before submitting a charge.
type Order struct {
	ID             string          `json:"id"`
	GrandTotal     float64         `json:"grand_total"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email"`
	CustomerTaxvat string          `json:"customer_taxvat"`
	CustomerDob    string          `json:"customer_dob"`
	CustomerGender string          `json:"customer_gender"`
	BillingAddress *BillingAddress `json:"billing_address,omitempty"`
	Status         OrderStatus     `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
