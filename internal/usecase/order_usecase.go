package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"reptileshop/internal/domain/entity"
	"reptileshop/internal/domain/repository"
	"reptileshop/pkg/errors"
	"reptileshop/pkg/logger"
	"reptileshop/pkg/mailer"
	"reptileshop/pkg/utils"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	cartRepo    repository.CartRepository
	notifier    Notifier
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	notifier Notifier,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		cartRepo:    cartRepo,
		notifier:    notifier,
	}
}

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	Items           []OrderItemInput
	ShippingAddress entity.ShippingAddress
	PaymentMethod   string
	ShippingPrice   float64
	TaxPrice        float64
}

// CreateOrder validates the requested items against the catalog and builds the
// order with authoritative catalog names and prices. The price breakdown is
// re-derived here; a client-supplied total is never trusted.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, userID string, input CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.BadRequest("Order must contain at least one item", nil)
	}
	if input.ShippingPrice < 0 || input.TaxPrice < 0 {
		return nil, errors.BadRequest("Prices must be non-negative", nil)
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, errors.BadRequest("Item quantity must be positive", nil)
		}
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	orderItems := make([]entity.OrderItem, 0, len(input.Items))
	itemsPrice := decimal.Zero
	for _, item := range input.Items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		orderItems = append(orderItems, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Image:     product.Image,
		})

		line := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		itemsPrice = itemsPrice.Add(line)
	}

	shipping := decimal.NewFromFloat(input.ShippingPrice)
	tax := decimal.NewFromFloat(input.TaxPrice)
	total := itemsPrice.Add(shipping).Add(tax)

	order := &entity.Order{
		UserID:          userID,
		UserName:        user.Name,
		OrderItems:      orderItems,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		ItemsPrice:      itemsPrice.Round(2).InexactFloat64(),
		ShippingPrice:   shipping.Round(2).InexactFloat64(),
		TaxPrice:        tax.Round(2).InexactFloat64(),
		TotalPrice:      total.Round(2).InexactFloat64(),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Checkout consumes the working cart; a failure here is not worth
	// failing the order over.
	if uc.cartRepo != nil {
		if err := uc.cartRepo.Delete(ctx, userID); err != nil {
			logger.Warn("Failed to clear cart for user %s after order %s: %v", userID, order.ID, err)
		}
	}

	return order, nil
}

// MarkPaid flips the paid flag exactly once and applies the inventory deltas.
// The flag flip is the idempotency gate: a repeated pay request returns the
// stored order without touching inventory again.
func (uc *OrderUseCase) MarkPaid(ctx context.Context, orderID string, result *entity.PaymentResult) (*entity.Order, error) {
	order, alreadyPaid, err := uc.orderRepo.SetPaid(ctx, orderID, result)
	if err != nil {
		return nil, err
	}
	if alreadyPaid {
		return order, nil
	}

	for _, item := range order.OrderItems {
		qty := item.Quantity
		productID := item.ProductID
		_, err := uc.productRepo.Mutate(ctx, productID, func(p *entity.Product) (bool, error) {
			if p.CountInStock < qty {
				logger.LogInventoryMismatch(productID, order.ID, qty, p.CountInStock)
				p.CountInStock = 0
			} else {
				p.CountInStock -= qty
			}
			p.Sold += qty
			return true, nil
		})
		if err != nil {
			// The paid gate already flipped; log and keep going so the
			// remaining products are still adjusted.
			logger.Error("Failed to adjust inventory for product %s on order %s: %v", productID, order.ID, err)
		}
	}

	uc.notify(order.UserID, order, mailer.PayOrderEmail)

	return order, nil
}

// MarkDelivered flips the delivered flag exactly once. Delivering an unpaid
// order is rejected.
func (uc *OrderUseCase) MarkDelivered(ctx context.Context, orderID string) (*entity.Order, error) {
	order, alreadyDelivered, err := uc.orderRepo.SetDelivered(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if alreadyDelivered {
		return order, nil
	}

	uc.notify(order.UserID, order, mailer.DeliverOrderEmail)

	return order, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, userID string, isAdmin bool, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID && !isAdmin {
		return nil, errors.Forbidden("You don't have permission to view this order", nil)
	}

	return order, nil
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, userID string, page, limit int) ([]*entity.Order, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.orderRepo.ListByUserID(ctx, userID, pagination.PageSize, pagination.Offset)
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, page, limit int) ([]*entity.Order, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.orderRepo.List(ctx, pagination.PageSize, pagination.Offset)
}

func (uc *OrderUseCase) DeleteOrder(ctx context.Context, orderID string) error {
	return uc.orderRepo.Delete(ctx, orderID)
}

// Summary aggregates order, user and catalog counters for the admin dashboard.
func (uc *OrderUseCase) Summary(ctx context.Context) (*entity.OrderSummary, error) {
	summary, err := uc.orderRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}

	numUsers, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	summary.NumUsers = numUsers

	products, _, err := uc.productRepo.List(ctx, nil, 0, 0)
	if err != nil {
		return nil, err
	}

	categories := make(map[string]int64)
	for _, p := range products {
		categories[p.Category]++
		if p.Sold > 0 {
			summary.ProductsSold = append(summary.ProductsSold, entity.ProductSold{
				ProductID: p.ID,
				Name:      p.Name,
				Image:     p.Image,
				Sold:      p.Sold,
			})
		}
	}
	for category, count := range categories {
		summary.ProductCategories = append(summary.ProductCategories, entity.CategoryCount{
			Category: category,
			Count:    count,
		})
	}

	return summary, nil
}

// notify looks up the order's owner and sends the templated email without
// blocking the caller. Failures are logged, never propagated.
func (uc *OrderUseCase) notify(userID string, order *entity.Order, build func(*entity.User, *entity.Order) mailer.EmailJob) {
	if uc.notifier == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			logger.Error("Failed to load user %s for order email %s: %v", userID, order.ID, err)
			return
		}

		if err := uc.notifier.Send(ctx, build(user, order)); err != nil {
			logger.Error("Failed to send order email for order %s: %v", order.ID, err)
		}
	}()
}
