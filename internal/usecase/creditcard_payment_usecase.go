package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

var (
	ErrPaymentMethodUnavailable = errors.New("credit card payment method is not available")
	ErrMissingCardHash          = errors.New("missing card hash")
	ErrTransactionNotFound      = errors.New("transaction not found for order")
	ErrTransactionNotAuthorized = errors.New("transaction is not in an authorizable state for capture")
	ErrTransactionNotRecorded   = errors.New("transaction accepted by the gateway but not recorded")
)

// PaymentConfig carries the store-level settings the payment pipeline
// needs. It is built once at the composition root and passed in here, so
// the usecase never reaches for ambient configuration.
type PaymentConfig struct {
	MaxInstallments   int
	Title             string
	TransparentActive bool
}

// ICreditCardPaymentUseCase encapsulates the credit card authorize/capture
// workflow.
//
// Authorize runs the whole pipeline for one attempt: installment
// validation, card hash exchange, customer profile assembly, the gateway
// charge (capture=false) and the durable record. Capture is the later,
// host-driven step that finalizes an authorized transaction (e.g. at
// invoicing time).

type ICreditCardPaymentUseCase interface {
	Authorize(ctx context.Context, orderID, cardHash string, installments int) (entities.Transaction, error)
	Capture(ctx context.Context, orderID string) (entities.Transaction, error)
	LatestTransaction(ctx context.Context, orderID string) (entities.Transaction, error)
	IsAvailable() bool
	Title() string
	MaxInstallments() int
}

type CreditCardPaymentUseCase struct {
	txnRepo   interfaces.ITransactionRepository
	orderRepo interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
	cfg       PaymentConfig
}

var _ ICreditCardPaymentUseCase = (*CreditCardPaymentUseCase)(nil)

func NewCreditCardPaymentUseCase(
	txnRepo interfaces.ITransactionRepository,
	orderRepo interfaces.IOrderRepository,
	gateway interfaces.IPaymentGateway,
	cfg PaymentConfig,
) *CreditCardPaymentUseCase {
	return &CreditCardPaymentUseCase{txnRepo: txnRepo, orderRepo: orderRepo, gateway: gateway, cfg: cfg}
}

func (u *CreditCardPaymentUseCase) Authorize(ctx context.Context, orderID, cardHash string, installments int) (entities.Transaction, error) {
	log.Printf("[payment][usecase] authorize start order_id=%q installments=%d", orderID, installments)

	if !u.cfg.TransparentActive {
		log.Printf("[payment][usecase] payment method disabled order_id=%s", orderID)
		return entities.Transaction{}, ErrPaymentMethodUnavailable
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Transaction{}, ErrInvalidOrderID
	}
	cardHash = strings.TrimSpace(cardHash)
	if cardHash == "" {
		return entities.Transaction{}, ErrMissingCardHash
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured order_id=%s", orderID)
		return entities.Transaction{}, errors.New("payment gateway not configured")
	}
	if u.orderRepo == nil {
		log.Printf("[payment][usecase] order repository not configured order_id=%s", orderID)
		return entities.Transaction{}, errors.New("order repository not configured")
	}
	if u.txnRepo == nil {
		log.Printf("[payment][usecase] transaction repository not configured order_id=%s", orderID)
		return entities.Transaction{}, errors.New("transaction repository not configured")
	}

	if err := validateInstallments(installments, u.cfg.MaxInstallments); err != nil {
		log.Printf("[payment][usecase] invalid installments order_id=%s installments=%d err=%v", orderID, installments, err)
		return entities.Transaction{}, err
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.Transaction{}, err
	}
	if order.ID == "" {
		log.Printf("[payment][usecase] order not found order_id=%s", orderID)
		return entities.Transaction{}, ErrOrderNotFound
	}

	card, err := u.gateway.CreateCardFromToken(ctx, cardHash)
	if err != nil {
		log.Printf("[payment][usecase] card hash exchange failed order_id=%s err=%v", orderID, err)
		return entities.Transaction{}, err
	}

	profile, err := buildCustomerProfile(order)
	if err != nil {
		log.Printf("[payment][usecase] profile build failed order_id=%s err=%v", orderID, err)
		return entities.Transaction{}, err
	}

	amount := parseAmountToMinorUnits(order.GrandTotal)
	log.Printf("[payment][usecase] charging order_id=%s amount=%d installments=%d", orderID, amount, installments)

	// The charge is always submitted with capture off; funds only move on
	// the explicit Capture call at invoicing time.
	txn, err := u.gateway.ChargeCreditCard(ctx, entities.ChargeRequest{
		Amount:       amount,
		Card:         card,
		Customer:     profile,
		Installments: installments,
		Capture:      false,
	})
	if err != nil {
		log.Printf("[payment][usecase] charge refused order_id=%s err=%v", orderID, err)
		return entities.Transaction{}, err
	}

	txn.OrderID = order.ID
	if txn.Date.IsZero() {
		txn.Date = time.Now().UTC()
	}

	created, err := u.txnRepo.Create(ctx, txn)
	if err != nil {
		// An authorized-but-unrecorded transaction is a reconciliation
		// gap; surface it instead of pretending the attempt succeeded.
		log.Printf("[payment][usecase] transaction record failed order_id=%s transaction_id=%s err=%v", orderID, txn.ID, err)
		return entities.Transaction{}, fmt.Errorf("%w: %v", ErrTransactionNotRecorded, err)
	}

	log.Printf("[payment][usecase] authorize success order_id=%s transaction_id=%s status=%s", orderID, created.ID, created.Status)
	return created, nil
}

func (u *CreditCardPaymentUseCase) Capture(ctx context.Context, orderID string) (entities.Transaction, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Transaction{}, ErrInvalidOrderID
	}
	if u.gateway == nil {
		return entities.Transaction{}, errors.New("payment gateway not configured")
	}
	if u.txnRepo == nil {
		return entities.Transaction{}, errors.New("transaction repository not configured")
	}
	log.Printf("[payment][usecase] capture start order_id=%s", orderID)

	pending, err := u.LatestTransaction(ctx, orderID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if pending.Status != entities.TransactionStatusAuthorized {
		log.Printf("[payment][usecase] capture rejected order_id=%s transaction_id=%s status=%s", orderID, pending.ID, pending.Status)
		return entities.Transaction{}, ErrTransactionNotAuthorized
	}

	captured, err := u.gateway.CaptureTransaction(ctx, pending.ID)
	if err != nil {
		log.Printf("[payment][usecase] capture failed order_id=%s transaction_id=%s err=%v", orderID, pending.ID, err)
		return entities.Transaction{}, err
	}

	updated, err := u.txnRepo.UpdateStatusByID(ctx, pending.ID, captured.Status)
	if err != nil {
		log.Printf("[payment][usecase] capture record failed order_id=%s transaction_id=%s err=%v", orderID, pending.ID, err)
		return entities.Transaction{}, fmt.Errorf("%w: %v", ErrTransactionNotRecorded, err)
	}
	if updated.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}

	log.Printf("[payment][usecase] capture success order_id=%s transaction_id=%s status=%s", orderID, updated.ID, updated.Status)
	return updated, nil
}

// LatestTransaction returns the most recent transaction recorded for an
// order.
func (u *CreditCardPaymentUseCase) LatestTransaction(ctx context.Context, orderID string) (entities.Transaction, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Transaction{}, ErrInvalidOrderID
	}
	if u.txnRepo == nil {
		return entities.Transaction{}, errors.New("transaction repository not configured")
	}

	txns, err := u.txnRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(txns) == 0 {
		return entities.Transaction{}, ErrTransactionNotFound
	}

	latest := txns[0]
	for _, t := range txns[1:] {
		if t.Date.After(latest.Date) {
			latest = t
		}
	}
	return latest, nil
}

func (u *CreditCardPaymentUseCase) IsAvailable() bool {
	return u.cfg.TransparentActive
}

func (u *CreditCardPaymentUseCase) Title() string {
	return u.cfg.Title
}

func (u *CreditCardPaymentUseCase) MaxInstallments() int {
	return u.cfg.MaxInstallments
}

// parseAmountToMinorUnits converts a decimal grand total into whole
// centavos, matching the gateway's integer unit convention. Rounds to the
// nearest cent; no further rounding happens downstream.
func parseAmountToMinorUnits(total float64) int64 {
	return int64(math.Round(total * 100))
}
