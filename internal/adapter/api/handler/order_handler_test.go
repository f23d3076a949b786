package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reptileshop/internal/adapter/api"
	"reptileshop/internal/domain/entity"
	"reptileshop/internal/domain/repository"
	"reptileshop/internal/usecase"
)

type stubOrderRepo struct {
	repository.OrderRepository
	created *entity.Order
}

func (s *stubOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	order.ID = "order-1"
	s.created = order
	return nil
}

type stubUserRepo struct {
	repository.UserRepository
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return &entity.User{ID: id, Name: "Jane", Email: "jane@example.com"}, nil
}

type stubProductRepo struct {
	repository.ProductRepository
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return &entity.Product{ID: id, Name: "Leopard Gecko", Price: 149.99, CountInStock: 5}, nil
}

func newCreateOrderContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "user-1")

	return c, rec
}

func TestCreateOrderMapsShippingAddress(t *testing.T) {
	orderRepo := &stubOrderRepo{}
	uc := usecase.NewOrderUseCase(orderRepo, &stubProductRepo{}, &stubUserRepo{}, nil, nil)
	h := NewOrderHandler(uc)

	c, rec := newCreateOrderContext(t, `{
		"items": [{"product_id": "gecko-1", "quantity": 1}],
		"shipping_address": {
			"full_name": "Jane Doe",
			"address": "12 Vivarium Lane",
			"city": "Austin",
			"postal_code": "73301",
			"country": "USA"
		},
		"payment_method": "PayPal"
	}`)

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, orderRepo.created)
	addr := orderRepo.created.ShippingAddress
	assert.Equal(t, "Jane Doe", addr.FullName)
	assert.Equal(t, "12 Vivarium Lane", addr.Address)
	assert.Equal(t, "Austin", addr.City)
	assert.Equal(t, "73301", addr.PostalCode)
	assert.Equal(t, "USA", addr.Country)
}

func TestCreateOrderRequiresFullName(t *testing.T) {
	orderRepo := &stubOrderRepo{}
	uc := usecase.NewOrderUseCase(orderRepo, &stubProductRepo{}, &stubUserRepo{}, nil, nil)
	h := NewOrderHandler(uc)

	c, rec := newCreateOrderContext(t, `{
		"items": [{"product_id": "gecko-1", "quantity": 1}],
		"shipping_address": {
			"address": "12 Vivarium Lane",
			"city": "Austin",
			"postal_code": "73301",
			"country": "USA"
		},
		"payment_method": "PayPal"
	}`)

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, orderRepo.created)
}
