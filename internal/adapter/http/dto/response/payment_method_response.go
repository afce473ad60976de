package response

// PaymentMethodResponse describes the credit card payment method as the
// storefront should render it.
type PaymentMethodResponse struct {
	Code            string `json:"code"`
	Title           string `json:"title"`
	MaxInstallments int    `json:"max_installments"`
	Available       bool   `json:"available"`
}
