package entities

import "strings"

// GatewayErrorItem is one code/message pair reported by the payment
// gateway.
type GatewayErrorItem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GatewayError is the structured failure returned by the payment gateway
// client. It always carries at least one item; the joined message is
// meant for direct display to the shopper.
type GatewayError struct {
	StatusCode int
	Errors     []GatewayErrorItem
}

// Error joins the gateway-reported messages with newlines, preserving the
// order the gateway returned them in.
func (e *GatewayError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		msgs = append(msgs, item.Message)
	}
	return strings.Join(msgs, "\n")
}
