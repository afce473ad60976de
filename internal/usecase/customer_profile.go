package usecase

import (
	"errors"
	"strings"

	"loja_xpto/internal/domain/entities"
)

var ErrMissingBillingAddress = errors.New("order has no billing address")

const (
	cpfDigits  = 11
	cnpjDigits = 14
)

// buildCustomerProfile maps order fields into the customer record the
// gateway expects. Pure transformation; it only fails when the order
// carries no billing address, which is a shopper-visible condition (the
// order cannot be charged), not a defect.
func buildCustomerProfile(order entities.Order) (entities.CustomerProfile, error) {
	addr := order.BillingAddress
	if addr == nil {
		return entities.CustomerProfile{}, ErrMissingBillingAddress
	}

	ddd, number := splitPhoneNumber(addr.Telephone)

	return entities.CustomerProfile{
		Name:           order.CustomerName,
		Email:          order.CustomerEmail,
		DocumentNumber: order.CustomerTaxvat,
		DocumentType:   documentTypeFromTaxvat(order.CustomerTaxvat),
		BornAt:         order.CustomerDob,
		Gender:         order.CustomerGender,
		Address: entities.CustomerAddress{
			Street1: addr.Street1,
			Street2: addr.Street2,
			Street3: addr.Street3,
			Street4: addr.Street4,
			City:    addr.City,
			State:   addr.Region,
			Zipcode: addr.Postcode,
			Country: addr.Country,
		},
		Phone: entities.CustomerPhone{
			Ddd:    ddd,
			Number: number,
		},
	}, nil
}

// documentTypeFromTaxvat maps the free-text tax id into the gateway's
// enumerated document types by digit count: 11 digits is a CPF, 14 a
// CNPJ. Anything else defaults to CPF and the gateway does the final
// validation.
func documentTypeFromTaxvat(taxvat string) entities.DocumentType {
	if len(onlyDigits(taxvat)) == cnpjDigits {
		return entities.DocumentTypeCNPJ
	}
	return entities.DocumentTypeCPF
}

// splitPhoneNumber breaks a storefront telephone field into DDD (the two
// leading digits) and the subscriber number.
func splitPhoneNumber(telephone string) (ddd, number string) {
	digits := onlyDigits(telephone)
	if len(digits) <= 2 {
		return "", digits
	}
	return digits[:2], digits[2:]
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
