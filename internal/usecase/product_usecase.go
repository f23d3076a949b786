package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"reptileshop/internal/domain/entity"
	"reptileshop/internal/domain/repository"
	"reptileshop/pkg/errors"
	"reptileshop/pkg/utils"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

type ProductInput struct {
	Name         string
	Slug         string
	Image        string
	Images       []string
	Country      string
	Category     string
	Description  string
	Price        float64
	CountInStock int
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must be non-negative", nil)
	}
	if input.CountInStock < 0 {
		return nil, errors.BadRequest("Stock must be non-negative", nil)
	}

	if existing, err := uc.productRepo.GetBySlug(ctx, input.Slug); err == nil && existing != nil {
		return nil, errors.AlreadyExists("A product with this slug already exists")
	}

	product := &entity.Product{
		Name:         input.Name,
		Slug:         input.Slug,
		Image:        input.Image,
		Images:       input.Images,
		Country:      input.Country,
		Category:     input.Category,
		Description:  input.Description,
		Price:        input.Price,
		CountInStock: input.CountInStock,
		Reviews:      []entity.Review{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must be non-negative", nil)
	}
	if input.CountInStock < 0 {
		return nil, errors.BadRequest("Stock must be non-negative", nil)
	}

	if existing, err := uc.productRepo.GetBySlug(ctx, input.Slug); err == nil && existing != nil && existing.ID != id {
		return nil, errors.AlreadyExists("A product with this slug already exists")
	}

	return uc.productRepo.Mutate(ctx, id, func(p *entity.Product) (bool, error) {
		p.Name = input.Name
		p.Slug = input.Slug
		p.Image = input.Image
		p.Images = input.Images
		p.Country = input.Country
		p.Category = input.Category
		p.Description = input.Description
		p.Price = input.Price
		p.CountInStock = input.CountInStock
		return true, nil
	})
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.productRepo.Delete(ctx, id)
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return uc.productRepo.GetBySlug(ctx, slug)
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, category, country string, page, limit int) ([]*entity.Product, int64, error) {
	filter := make(map[string]interface{})
	if category != "" {
		filter["category"] = category
	}
	if country != "" {
		filter["country"] = country
	}

	pagination := utils.NewPaginationParams(page, limit)
	return uc.productRepo.List(ctx, filter, pagination.PageSize, pagination.Offset)
}

// ListCategories returns the distinct category values across the catalog,
// sorted, for the storefront filter menus.
func (uc *ProductUseCase) ListCategories(ctx context.Context) ([]string, error) {
	return uc.distinctField(ctx, func(p *entity.Product) string { return p.Category })
}

// ListCountries returns the distinct country-of-origin values across the
// catalog, sorted.
func (uc *ProductUseCase) ListCountries(ctx context.Context) ([]string, error) {
	return uc.distinctField(ctx, func(p *entity.Product) string { return p.Country })
}

func (uc *ProductUseCase) distinctField(ctx context.Context, field func(*entity.Product) string) ([]string, error) {
	products, _, err := uc.productRepo.List(ctx, nil, 0, 0)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, p := range products {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)

	return values, nil
}

// RelatedProducts returns up to three other products from the same category.
func (uc *ProductUseCase) RelatedProducts(ctx context.Context, id string) ([]*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	candidates, _, err := uc.productRepo.List(ctx, map[string]interface{}{"category": product.Category}, 0, 0)
	if err != nil {
		return nil, err
	}

	related := make([]*entity.Product, 0, 3)
	for _, p := range candidates {
		if p.ID == product.ID {
			continue
		}
		related = append(related, p)
		if len(related) == 3 {
			break
		}
	}

	return related, nil
}

type ReviewInput struct {
	Rating  int
	Comment string
}

// AddReview appends a review and recomputes the derived rating fields. A user
// gets one review per product.
func (uc *ProductUseCase) AddReview(ctx context.Context, user *entity.User, productID string, input ReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	var created entity.Review
	_, err := uc.productRepo.Mutate(ctx, productID, func(p *entity.Product) (bool, error) {
		if p.ReviewByUser(user.ID) != nil {
			return false, errors.AlreadyExists("You already submitted a review for this product")
		}

		now := time.Now()
		created = entity.Review{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			Name:      user.Name,
			Avatar:    user.Avatar,
			Rating:    input.Rating,
			Comment:   input.Comment,
			CreatedAt: now,
			UpdatedAt: now,
		}
		p.Reviews = append(p.Reviews, created)
		recalcRating(p)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (uc *ProductUseCase) EditReview(ctx context.Context, userID string, isAdmin bool, productID, reviewID string, input ReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	var updated entity.Review
	_, err := uc.productRepo.Mutate(ctx, productID, func(p *entity.Product) (bool, error) {
		review := p.ReviewByID(reviewID)
		if review == nil {
			return false, errors.NotFound("Review", nil)
		}
		if review.UserID != userID && !isAdmin {
			return false, errors.Forbidden("You are not authorized to edit this review", nil)
		}

		review.Rating = input.Rating
		review.Comment = input.Comment
		review.UpdatedAt = time.Now()
		updated = *review
		recalcRating(p)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (uc *ProductUseCase) DeleteReview(ctx context.Context, userID string, isAdmin bool, productID, reviewID string) (*entity.Product, error) {
	return uc.productRepo.Mutate(ctx, productID, func(p *entity.Product) (bool, error) {
		idx := -1
		for i := range p.Reviews {
			if p.Reviews[i].ID == reviewID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return false, errors.NotFound("Review", nil)
		}
		if p.Reviews[idx].UserID != userID && !isAdmin {
			return false, errors.Forbidden("You are not authorized to delete this review", nil)
		}

		p.Reviews = append(p.Reviews[:idx], p.Reviews[idx+1:]...)
		recalcRating(p)
		return true, nil
	})
}

// recalcRating rederives NumReviews and Rating from the embedded review set.
// The mean is rounded half away from zero to one decimal.
func recalcRating(p *entity.Product) {
	p.NumReviews = len(p.Reviews)
	if p.NumReviews == 0 {
		p.Rating = 0
		return
	}

	sum := 0
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(p.NumReviews)
	p.Rating = math.Round(mean*10) / 10
}
