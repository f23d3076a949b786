package router

import (
	"reptileshop/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	e.POST("/v1/auth/signup", authHandler.SignUp)
	e.POST("/v1/auth/signin", authHandler.SignIn)
	e.POST("/v1/auth/forget-password", authHandler.ForgetPassword)
	e.POST("/v1/auth/reset-password/:token", authHandler.ResetPassword)
}
