package handler

import (
	"github.com/labstack/echo/v4"

	"reptileshop/internal/usecase"
	"reptileshop/pkg/response"
	"reptileshop/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	userUseCase    *usecase.UserUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, userUseCase *usecase.UserUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		userUseCase:    userUseCase,
	}
}

type productRequest struct {
	Name         string   `json:"name" validate:"required,min=2"`
	Slug         string   `json:"slug" validate:"required,min=2"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	Country      string   `json:"country"`
	Category     string   `json:"category" validate:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" validate:"gte=0"`
	CountInStock int      `json:"count_in_stock" validate:"gte=0"`
}

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), usecase.ProductInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Image:        req.Image,
		Images:       req.Images,
		Country:      req.Country,
		Category:     req.Category,
		Description:  req.Description,
		Price:        req.Price,
		CountInStock: req.CountInStock,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), usecase.ProductInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Image:        req.Image,
		Images:       req.Images,
		Country:      req.Country,
		Category:     req.Category,
		Description:  req.Description,
		Price:        req.Price,
		CountInStock: req.CountInStock,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted",
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) GetProductBySlug(c echo.Context) error {
	product, err := h.productUseCase.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListProducts(
		c.Request().Context(),
		c.QueryParam("category"),
		c.QueryParam("country"),
		params.Page,
		params.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, params.Page, params.PageSize)
}

func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.productUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}

func (h *ProductHandler) ListCountries(c echo.Context) error {
	countries, err := h.productUseCase.ListCountries(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, countries)
}

func (h *ProductHandler) RelatedProducts(c echo.Context) error {
	products, err := h.productUseCase.RelatedProducts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) AddReview(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	review, err := h.productUseCase.AddReview(c.Request().Context(), user, c.Param("id"), usecase.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ProductHandler) EditReview(c echo.Context) error {
	uid := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.productUseCase.EditReview(c.Request().Context(), uid, isAdmin, c.Param("id"), c.Param("reviewId"), usecase.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ProductHandler) DeleteReview(c echo.Context) error {
	uid := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	product, err := h.productUseCase.DeleteReview(c.Request().Context(), uid, isAdmin, c.Param("id"), c.Param("reviewId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
