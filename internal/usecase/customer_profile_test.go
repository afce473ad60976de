package usecase

import (
	"errors"
	"testing"

	"loja_xpto/internal/domain/entities"
)

func completeOrder() entities.Order {
	return entities.Order{
		ID:             "order-1",
		GrandTotal:     27.44,
		CustomerName:   "José da Silva",
		CustomerEmail:  "jose@example.com",
		CustomerTaxvat: "12345678909",
		CustomerDob:    "1990-03-15",
		CustomerGender: "M",
		BillingAddress: &entities.BillingAddress{
			Street1:   "Rua Vergueiro",
			Street2:   "1421",
			Street3:   "Apto 42",
			Street4:   "Vila Mariana",
			City:      "São Paulo",
			Region:    "SP",
			Postcode:  "04101-000",
			Country:   "BR",
			Telephone: "(11) 98765-4321",
		},
	}
}

func TestBuildCustomerProfile_MissingBillingAddress(t *testing.T) {
	o := completeOrder()
	o.BillingAddress = nil

	_, err := buildCustomerProfile(o)
	if !errors.Is(err, ErrMissingBillingAddress) {
		t.Fatalf("expected ErrMissingBillingAddress, got %v", err)
	}
}

func TestBuildCustomerProfile_FullMapping(t *testing.T) {
	p, err := buildCustomerProfile(completeOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Name != "José da Silva" || p.Email != "jose@example.com" {
		t.Fatalf("unexpected identity fields: %+v", p)
	}
	if p.DocumentNumber != "12345678909" || p.DocumentType != entities.DocumentTypeCPF {
		t.Fatalf("unexpected document fields: %+v", p)
	}
	if p.BornAt != "1990-03-15" || p.Gender != "M" {
		t.Fatalf("unexpected born_at/gender: %+v", p)
	}

	addr := p.Address
	if addr.Street1 != "Rua Vergueiro" || addr.Street2 != "1421" || addr.Street3 != "Apto 42" || addr.Street4 != "Vila Mariana" {
		t.Fatalf("unexpected street lines: %+v", addr)
	}
	if addr.City != "São Paulo" || addr.State != "SP" || addr.Zipcode != "04101-000" || addr.Country != "BR" {
		t.Fatalf("unexpected address fields: %+v", addr)
	}

	if p.Phone.Ddd != "11" || p.Phone.Number != "987654321" {
		t.Fatalf("unexpected phone split: %+v", p.Phone)
	}
}

func TestDocumentTypeFromTaxvat(t *testing.T) {
	cases := []struct {
		taxvat string
		want   entities.DocumentType
	}{
		{"12345678909", entities.DocumentTypeCPF},
		{"123.456.789-09", entities.DocumentTypeCPF},
		{"12345678000195", entities.DocumentTypeCNPJ},
		{"12.345.678/0001-95", entities.DocumentTypeCNPJ},
		{"", entities.DocumentTypeCPF},
	}
	for _, tc := range cases {
		if got := documentTypeFromTaxvat(tc.taxvat); got != tc.want {
			t.Fatalf("documentTypeFromTaxvat(%q) = %s, want %s", tc.taxvat, got, tc.want)
		}
	}
}

func TestSplitPhoneNumber(t *testing.T) {
	ddd, number := splitPhoneNumber("(11) 98765-4321")
	if ddd != "11" || number != "987654321" {
		t.Fatalf("unexpected split: ddd=%q number=%q", ddd, number)
	}

	ddd, number = splitPhoneNumber("11")
	if ddd != "" || number != "11" {
		t.Fatalf("short numbers keep no ddd: ddd=%q number=%q", ddd, number)
	}

	ddd, number = splitPhoneNumber("")
	if ddd != "" || number != "" {
		t.Fatalf("empty telephone: ddd=%q number=%q", ddd, number)
	}
}
