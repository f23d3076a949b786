package handler

import (
	"github.com/labstack/echo/v4"

	"reptileshop/internal/usecase"
	"reptileshop/pkg/response"
	"reptileshop/pkg/utils"
)

type ForumHandler struct {
	forumUseCase *usecase.ForumUseCase
	userUseCase  *usecase.UserUseCase
}

func NewForumHandler(forumUseCase *usecase.ForumUseCase, userUseCase *usecase.UserUseCase) *ForumHandler {
	return &ForumHandler{
		forumUseCase: forumUseCase,
		userUseCase:  userUseCase,
	}
}

type postRequest struct {
	Title  string   `json:"title" validate:"required,min=2"`
	Text   string   `json:"text" validate:"required"`
	Image  string   `json:"image"`
	Images []string `json:"images"`
}

type commentRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *ForumHandler) CreatePost(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.forumUseCase.CreatePost(c.Request().Context(), uid, usecase.PostInput{
		Title:  req.Title,
		Text:   req.Text,
		Image:  req.Image,
		Images: req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *ForumHandler) GetPost(c echo.Context) error {
	post, err := h.forumUseCase.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *ForumHandler) ListPosts(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	posts, total, err := h.forumUseCase.ListPosts(c.Request().Context(), params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, posts, total, params.Page, params.PageSize)
}

func (h *ForumHandler) UpdatePost(c echo.Context) error {
	uid := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.forumUseCase.UpdatePost(c.Request().Context(), uid, isAdmin, c.Param("id"), usecase.PostInput{
		Title:  req.Title,
		Text:   req.Text,
		Image:  req.Image,
		Images: req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *ForumHandler) DeletePost(c echo.Context) error {
	uid := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	if err := h.forumUseCase.DeletePost(c.Request().Context(), uid, isAdmin, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Post deleted",
	})
}

func (h *ForumHandler) AddComment(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req commentRequest
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

	comment, err := h.forumUseCase.AddComment(c.Request().Context(), user, c.Param("id"), req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, comment)
}

func (h *ForumHandler) EditComment(c echo.Context) error {
	uid := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	comment, err := h.forumUseCase.EditComment(c.Request().Context(), uid, isAdmin, c.Param("id"), c.Param("commentId"), req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, comment)
}

func (h *ForumHandler) DeleteComment(c echo.Context) error {
	uid := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	if err := h.forumUseCase.DeleteComment(c.Request().Context(), uid, isAdmin, c.Param("id"), c.Param("commentId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Comment deleted",
	})
}

func (h *ForumHandler) ToggleLike(c echo.Context) error {
	uid := c.Get("uid").(string)

	post, err := h.forumUseCase.ToggleLike(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *ForumHandler) ToggleDislike(c echo.Context) error {
	uid := c.Get("uid").(string)

	post, err := h.forumUseCase.ToggleDislike(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}
