package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"reptileshop/internal/domain/entity"
	"reptileshop/internal/domain/repository"
	"reptileshop/pkg/errors"
)

type redisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartRepository(client *redis.Client, ttl time.Duration) repository.CartRepository {
	return &redisCartRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisCartRepository) key(userID string) string {
	return fmt.Sprintf("cart:user:%s", userID)
}

func (r *redisCartRepository) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	data, err := r.client.Get(ctx, r.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to load cart", err)
	}

	var cart entity.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, errors.Internal("Failed to parse cart data", err)
	}
	return &cart, nil
}

func (r *redisCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Internal("Failed to encode cart", err)
	}

	if err := r.client.Set(ctx, r.key(cart.UserID), data, r.ttl).Err(); err != nil {
		return errors.Internal("Failed to save cart", err)
	}
	return nil
}

func (r *redisCartRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, r.key(userID)).Err(); err != nil {
		return errors.Internal("Failed to delete cart", err)
	}
	return nil
}
