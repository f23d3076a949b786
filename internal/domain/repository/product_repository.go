package repository

import (
	"context"

	"reptileshop/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error)

	// Mutate runs fn inside an aggregate-scoped read-modify-write. fn reports
	// whether the product should be written back; returning an error aborts
	// without writing. Concurrent Mutate calls on the same product id are
	// serialized by the store.
	Mutate(ctx context.Context, id string, fn func(*entity.Product) (bool, error)) (*entity.Product, error)
}
