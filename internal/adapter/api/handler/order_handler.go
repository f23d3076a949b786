package handler

import (
	"github.com/labstack/echo/v4"

	"reptileshop/internal/domain/entity"
	"reptileshop/internal/usecase"
	"reptileshop/pkg/response"
	"reptileshop/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type orderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type shippingAddressRequest struct {
	FullName   string `json:"full_name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

type createOrderRequest struct {
	Items           []orderItemRequest     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress shippingAddressRequest `json:"shipping_address" validate:"required"`
	PaymentMethod   string                 `json:"payment_method" validate:"required"`
	ShippingPrice   float64                `json:"shipping_price" validate:"gte=0"`
	TaxPrice        float64                `json:"tax_price" validate:"gte=0"`
}

type payOrderRequest struct {
	ID           string `json:"id" validate:"required"`
	Status       string `json:"status" validate:"required"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address" validate:"omitempty,email"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.CreateOrderInput{
		ShippingAddress: entity.ShippingAddress{
			FullName:   req.ShippingAddress.FullName,
			Address:    req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		PaymentMethod: req.PaymentMethod,
		ShippingPrice: req.ShippingPrice,
		TaxPrice:      req.TaxPrice,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	uid := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), uid, isAdmin, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListMyOrders(c.Request().Context(), uid, params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, params.Page, params.PageSize)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListOrders(c.Request().Context(), params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, params.Page, params.PageSize)
}

func (h *OrderHandler) PayOrder(c echo.Context) error {
	var req payOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.MarkPaid(c.Request().Context(), c.Param("id"), &entity.PaymentResult{
		ID:           req.ID,
		Status:       req.Status,
		UpdateTime:   req.UpdateTime,
		EmailAddress: req.EmailAddress,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) DeliverOrder(c echo.Context) error {
	order, err := h.orderUseCase.MarkDelivered(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	if err := h.orderUseCase.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Order deleted",
	})
}

func (h *OrderHandler) Summary(c echo.Context) error {
	summary, err := h.orderUseCase.Summary(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}
