package entities

// DocumentType enumerates the fiscal document kinds accepted by the
// gateway. The storefront stores the document as free text (taxvat); the
// profile builder maps it here by digit count.

type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "cpf"
	DocumentTypeCNPJ DocumentType = "cnpj"
)

// CustomerPhone is a Brazilian phone number split the way the gateway
// expects it: DDD (area code) apart from the subscriber number.
type CustomerPhone struct {
	Ddd    string `json:"ddd"`
	Number string `json:"number"`
}

type CustomerAddress struct {
	Street1 string `json:"street_1"`
	Street2 string `json:"street_2"`
	Street3 string `json:"street_3"`
	Street4 string `json:"street_4"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
	Country string `json:"country"`
}

// CustomerProfile is the customer record submitted with a charge,
// derived field-by-field from the order. Immutable once built; it has no
// lifecycle outside a single authorization attempt.
type CustomerProfile struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	DocumentNumber string          `json:"document_number"`
	DocumentType   DocumentType    `json:"document_type"`
	BornAt         string          `json:"born_at"`
	Gender         string          `json:"gender"`
	Address        CustomerAddress `json:"address"`
	Phone          CustomerPhone   `json:"phone"`
}
