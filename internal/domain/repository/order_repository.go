package repository

import (
	"context"

	"reptileshop/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Delete(ctx context.Context, id string) error
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error)

	// SetPaid flips the paid flag exactly once. The returned bool reports
	// whether the order was already paid; in that case the stored order is
	// returned unchanged and no write happens.
	SetPaid(ctx context.Context, id string, result *entity.PaymentResult) (*entity.Order, bool, error)

	// SetDelivered flips the delivered flag exactly once. Fails on an unpaid
	// order. The returned bool reports an already-delivered no-op.
	SetDelivered(ctx context.Context, id string) (*entity.Order, bool, error)

	// Summary scans orders for the admin dashboard counters.
	Summary(ctx context.Context) (*entity.OrderSummary, error)
}
