package router

import (
	"reptileshop/internal/adapter/api/handler"
	"reptileshop/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("", orderHandler.CreateOrder)
	orders.GET("/mine", orderHandler.ListMyOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.PUT("/:id/pay", orderHandler.PayOrder)

	admin := e.Group("/v1/admin/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", orderHandler.ListOrders)
	admin.GET("/summary", orderHandler.Summary)
	admin.PUT("/:id/deliver", orderHandler.DeliverOrder)
	admin.DELETE("/:id", orderHandler.DeleteOrder)
}
