package handler

import (
	"reptileshop/internal/usecase"
)

var (
	authHandler    *AuthHandler
	userHandler    *UserHandler
	productHandler *ProductHandler
	orderHandler   *OrderHandler
	forumHandler   *ForumHandler
	cartHandler    *CartHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
	forumUseCase *usecase.ForumUseCase,
	cartUseCase *usecase.CartUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(productUseCase, userUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	forumHandler = NewForumHandler(forumUseCase, userUseCase)
	cartHandler = NewCartHandler(cartUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetForumHandler() *ForumHandler {
	return forumHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}
