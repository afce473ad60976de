package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderTotal  = errors.New("invalid order grand total")
	ErrInvalidCustomer    = errors.New("invalid customer data")
)

// IOrderUseCase exposes the order intake operations the storefront calls
// before the payment step.

type IOrderUseCase interface {
	Register(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) Register(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.GrandTotal <= 0 {
		return entities.Order{}, ErrInvalidOrderTotal
	}
	if strings.TrimSpace(o.CustomerName) == "" || strings.TrimSpace(o.CustomerEmail) == "" {
		return entities.Order{}, ErrInvalidCustomer
	}

	o.ID = strings.TrimSpace(o.ID)
	if o.ID == "" {
		o.ID = uuid.NewString()
	} else {
		// Enforce: 1 order per external id.
		if existing, err := u.repo.GetByID(ctx, o.ID); err != nil {
			return entities.Order{}, err
		} else if existing.ID != "" {
			return entities.Order{}, ErrOrderAlreadyExists
		}
	}

	now := time.Now().UTC()
	o.Status = entities.OrderStatusPendente
	o.CreatedAt = now
	o.UpdatedAt = now

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed order_id=%s err=%v", o.ID, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] create success order_id=%s total=%.2f", created.ID, created.GrandTotal)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
