package repository

import (
	"context"

	"reptileshop/internal/domain/entity"
)

type ForumRepository interface {
	Create(ctx context.Context, post *entity.ForumPost) error
	GetByID(ctx context.Context, id string) (*entity.ForumPost, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.ForumPost, int64, error)

	// Mutate runs fn inside an aggregate-scoped read-modify-write, same
	// contract as ProductRepository.Mutate.
	Mutate(ctx context.Context, id string, fn func(*entity.ForumPost) (bool, error)) (*entity.ForumPost, error)
}
