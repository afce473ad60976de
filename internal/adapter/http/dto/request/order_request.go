package request

import (
	"strings"

	"loja_xpto/internal/domain/entities"
)

type BillingAddressRequest struct {
	Street1   string `json:"street_1" binding:"required"`
	Street2   string `json:"street_2"`
	Street3   string `json:"street_3"`
	Street4   string `json:"street_4"`
	City      string `json:"city" binding:"required"`
	Region    string `json:"region"`
	Postcode  string `json:"postcode" binding:"required"`
	Country   string `json:"country" binding:"required"`
	Telephone string `json:"telephone"`
}

// OrderCreateRequest is the storefront payload that registers an order
// before the payment step. The billing address is optional here; an order
// without one is registrable but will be refused at authorization time.
type OrderCreateRequest struct {
	ID             string                 `json:"id"`
	GrandTotal     float64                `json:"grand_total" binding:"required"`
	CustomerName   string                 `json:"customer_name" binding:"required"`
	CustomerEmail  string                 `json:"customer_email" binding:"required"`
	CustomerTaxvat string                 `json:"customer_taxvat"`
	CustomerDob    string                 `json:"customer_dob"`
	CustomerGender string                 `json:"customer_gender"`
	BillingAddress *BillingAddressRequest `json:"billing_address"`
}

func (r OrderCreateRequest) ToOrder() entities.Order {
	o := entities.Order{
		ID:             strings.TrimSpace(r.ID),
		GrandTotal:     r.GrandTotal,
		CustomerName:   strings.TrimSpace(r.CustomerName),
		CustomerEmail:  strings.TrimSpace(r.CustomerEmail),
		CustomerTaxvat: strings.TrimSpace(r.CustomerTaxvat),
		CustomerDob:    strings.TrimSpace(r.CustomerDob),
		CustomerGender: strings.TrimSpace(r.CustomerGender),
	}
	if r.BillingAddress != nil {
		o.BillingAddress = &entities.BillingAddress{
			Street1:   r.BillingAddress.Street1,
			Street2:   r.BillingAddress.Street2,
			Street3:   r.BillingAddress.Street3,
			Street4:   r.BillingAddress.Street4,
			City:      r.BillingAddress.City,
			Region:    r.BillingAddress.Region,
			Postcode:  r.BillingAddress.Postcode,
			Country:   r.BillingAddress.Country,
			Telephone: r.BillingAddress.Telephone,
		}
	}
	return o
}
