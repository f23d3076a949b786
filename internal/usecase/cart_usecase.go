package usecase

import (
	"context"

	"reptileshop/internal/domain/entity"
	"reptileshop/internal/domain/repository"
	"reptileshop/pkg/errors"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := uc.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &entity.Cart{UserID: userID, Items: []entity.CartItem{}}
	}
	return cart, nil
}

// SetItem adds or replaces one line in the cart; quantity zero removes it.
// Name, price and image come from the catalog, not from the client.
func (uc *CartUseCase) SetItem(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error) {
	if quantity < 0 {
		return nil, errors.BadRequest("Quantity must be non-negative", nil)
	}

	cart, err := uc.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			idx = i
			break
		}
	}

	if quantity == 0 {
		if idx >= 0 {
			cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
		}
	} else {
		product, err := uc.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if quantity > product.CountInStock {
			return nil, errors.BadRequest("Not enough stock for this product", nil)
		}

		item := entity.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
			Image:     product.Image,
		}
		if idx >= 0 {
			cart.Items[idx] = item
		} else {
			cart.Items = append(cart.Items, item)
		}
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (uc *CartUseCase) ClearCart(ctx context.Context, userID string) error {
	return uc.cartRepo.Delete(ctx, userID)
}
