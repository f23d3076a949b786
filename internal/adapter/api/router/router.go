package router

import (
	"reptileshop/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupOrderRouter(e, authMiddleware, adminMiddleware)
	SetupForumRouter(e, authMiddleware, adminMiddleware)
	SetupCartRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
