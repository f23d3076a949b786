package router

import (
	"reptileshop/internal/adapter/api/handler"
	"reptileshop/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)
	cart.GET("", cartHandler.GetCart)
	cart.PUT("/items", cartHandler.SetItem)
	cart.DELETE("", cartHandler.ClearCart)
}
