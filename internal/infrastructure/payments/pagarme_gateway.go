package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

var ErrMissingPagarmeAPIKey = errors.New("missing PAGARME_API_KEY")

const (
	defaultBaseURL = "https://api.pagar.me/1"
	defaultTimeout = 30 * time.Second
)

// Config carries the PagarMe client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// PagarmeGateway talks to the PagarMe REST API. Stateless apart from the
// shared http.Client, so it is safe for concurrent attempts.
type PagarmeGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.IPaymentGateway = (*PagarmeGateway)(nil)

func NewPagarmeGateway(cfg Config) (*PagarmeGateway, error) {
	if cfg.APIKey == "" {
		log.Printf("[payment][gateway] missing PAGARME_API_KEY")
		return nil, ErrMissingPagarmeAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log.Printf("[payment][gateway] PagarMe client initialized base_url=%s", baseURL)

	return &PagarmeGateway{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type cardResponse struct {
	ID         string `json:"id"`
	Brand      string `json:"brand"`
	LastDigits string `json:"last_digits"`
	HolderName string `json:"holder_name"`
}

type transactionResponse struct {
	ID           int64  `json:"id"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Installments int    `json:"installments"`
}

// customerPayload is the wire shape PagarMe expects for the customer
// block of a transaction.
type customerPayload struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	DocumentNumber string `json:"document_number"`
	DocumentType   string `json:"document_type"`
	BornAt         string `json:"born_at,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Address        struct {
		Street        string `json:"street"`
		StreetNumber  string `json:"street_number"`
		Complementary string `json:"complementary,omitempty"`
		Neighborhood  string `json:"neighborhood,omitempty"`
		City          string `json:"city"`
		State         string `json:"state"`
		Zipcode       string `json:"zipcode"`
		Country       string `json:"country"`
	} `json:"address"`
	Phone struct {
		Ddd    string `json:"ddd"`
		Number string `json:"number"`
	} `json:"phone"`
}

func (g *PagarmeGateway) CreateCardFromToken(ctx context.Context, cardHash string) (entities.Card, error) {
	log.Printf("[payment][gateway] card create start")

	body := map[string]string{
		"api_key":   g.apiKey,
		"card_hash": cardHash,
	}

	var resp cardResponse
	if err := g.post(ctx, "/cards", body, &resp); err != nil {
		return entities.Card{}, err
	}

	log.Printf("[payment][gateway] card create success card_id=%s brand=%s", resp.ID, resp.Brand)
	return entities.Card{
		ID:         resp.ID,
		Brand:      resp.Brand,
		LastDigits: resp.LastDigits,
		HolderName: resp.HolderName,
	}, nil
}

func (g *PagarmeGateway) ChargeCreditCard(ctx context.Context, req entities.ChargeRequest) (entities.Transaction, error) {
	log.Printf("[payment][gateway] charge start amount=%d installments=%d capture=%t", req.Amount, req.Installments, req.Capture)

	body := map[string]any{
		"api_key":        g.apiKey,
		"payment_method": "credit_card",
		"amount":         req.Amount,
		"card_id":        req.Card.ID,
		"installments":   req.Installments,
		"capture":        req.Capture,
		"customer":       toCustomerPayload(req.Customer),
	}

	raw, resp, err := g.postRaw(ctx, "/transactions", body)
	if err != nil {
		return entities.Transaction{}, err
	}

	log.Printf("[payment][gateway] charge success transaction_id=%d status=%s", resp.ID, resp.Status)
	return fromTransactionResponse(resp, raw), nil
}

func (g *PagarmeGateway) CaptureTransaction(ctx context.Context, transactionID string) (entities.Transaction, error) {
	log.Printf("[payment][gateway] capture start transaction_id=%s", transactionID)

	body := map[string]string{"api_key": g.apiKey}

	raw, resp, err := g.postRaw(ctx, "/transactions/"+transactionID+"/capture", body)
	if err != nil {
		return entities.Transaction{}, err
	}

	log.Printf("[payment][gateway] capture success transaction_id=%d status=%s", resp.ID, resp.Status)
	return fromTransactionResponse(resp, raw), nil
}

func (g *PagarmeGateway) post(ctx context.Context, path string, body any, out any) error {
	raw, err := g.do(ctx, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("pagarme: failed to decode response from %s: %w", path, err)
	}
	return nil
}

func (g *PagarmeGateway) postRaw(ctx context.Context, path string, body any) (json.RawMessage, transactionResponse, error) {
	raw, err := g.do(ctx, path, body)
	if err != nil {
		return nil, transactionResponse{}, err
	}
	var resp transactionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, transactionResponse{}, fmt.Errorf("pagarme: failed to decode response from %s: %w", path, err)
	}
	return raw, resp, nil
}

// do posts the JSON body and returns the raw response payload. Non-2xx
// responses become *entities.GatewayError when the body carries the
// structured errors list; anything else is reported as a defect with the
// HTTP status attached, never parsed around.
func (g *PagarmeGateway) do(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("pagarme: failed to encode request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("pagarme: failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pagarme: request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pagarme: failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, g.decodeError(path, resp.StatusCode, raw)
	}
	return raw, nil
}

func (g *PagarmeGateway) decodeError(path string, statusCode int, raw []byte) error {
	var body struct {
		Errors []entities.GatewayErrorItem `json:"errors"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Errors) == 0 {
		log.Printf("[payment][gateway] unparseable error payload path=%s status=%d", path, statusCode)
		return fmt.Errorf("pagarme: unexpected error payload from %s (status %d)", path, statusCode)
	}
	return &entities.GatewayError{StatusCode: statusCode, Errors: body.Errors}
}

func toCustomerPayload(c entities.CustomerProfile) customerPayload {
	p := customerPayload{
		Name:           c.Name,
		Email:          c.Email,
		DocumentNumber: c.DocumentNumber,
		DocumentType:   string(c.DocumentType),
		BornAt:         c.BornAt,
		Gender:         c.Gender,
	}
	p.Address.Street = c.Address.Street1
	p.Address.StreetNumber = c.Address.Street2
	p.Address.Complementary = c.Address.Street3
	p.Address.Neighborhood = c.Address.Street4
	p.Address.City = c.Address.City
	p.Address.State = c.Address.State
	p.Address.Zipcode = c.Address.Zipcode
	p.Address.Country = c.Address.Country
	p.Phone.Ddd = c.Phone.Ddd
	p.Phone.Number = c.Phone.Number
	return p
}

func fromTransactionResponse(resp transactionResponse, raw json.RawMessage) entities.Transaction {
	return entities.Transaction{
		ID:                strconv.FormatInt(resp.ID, 10),
		Amount:            resp.Amount,
		Installments:      resp.Installments,
		Status:            entities.TransactionStatus(resp.Status),
		Date:              time.Now().UTC(),
		GatewayPayloadRaw: raw,
	}
}
