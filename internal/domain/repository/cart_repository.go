package repository

import (
	"context"

	"reptileshop/internal/domain/entity"
)

type CartRepository interface {
	// Get returns nil without error when the user has no cart.
	Get(ctx context.Context, userID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, userID string) error
}
