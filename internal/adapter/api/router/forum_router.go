package router

import (
	"reptileshop/internal/adapter/api/handler"
	"reptileshop/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupForumRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	forumHandler := handler.GetForumHandler()

	forum := e.Group("/v1/forum/posts")
	forum.GET("", forumHandler.ListPosts)
	forum.GET("/:id", forumHandler.GetPost)

	protected := e.Group("/v1/forum/posts")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("", forumHandler.CreatePost)
	protected.PUT("/:id", forumHandler.UpdatePost)
	protected.DELETE("/:id", forumHandler.DeletePost)
	protected.POST("/:id/comments", forumHandler.AddComment)
	protected.PUT("/:id/comments/:commentId", forumHandler.EditComment)
	protected.DELETE("/:id/comments/:commentId", forumHandler.DeleteComment)
	protected.PUT("/:id/like", forumHandler.ToggleLike)
	protected.PUT("/:id/dislike", forumHandler.ToggleDislike)
}
