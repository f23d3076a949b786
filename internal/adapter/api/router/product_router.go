package router

import (
	"reptileshop/internal/adapter/api/handler"
	"reptileshop/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/categories", productHandler.ListCategories)
	products.GET("/countries", productHandler.ListCountries)
	products.GET("/:id", productHandler.GetProduct)
	products.GET("/:id/related", productHandler.RelatedProducts)
	products.GET("/slug/:slug", productHandler.GetProductBySlug)

	reviews := e.Group("/v1/products/:id/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.POST("", productHandler.AddReview)
	reviews.PUT("/:reviewId", productHandler.EditReview)
	reviews.DELETE("/:reviewId", productHandler.DeleteReview)

	admin := e.Group("/v1/admin/products")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", productHandler.CreateProduct)
	admin.PUT("/:id", productHandler.UpdateProduct)
	admin.DELETE("/:id", productHandler.DeleteProduct)
}
