package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"reptileshop/internal/domain/entity"
	"reptileshop/internal/domain/repository"
	"reptileshop/pkg/errors"
	"reptileshop/pkg/utils"
)

type ForumUseCase struct {
	forumRepo repository.ForumRepository
}

func NewForumUseCase(forumRepo repository.ForumRepository) *ForumUseCase {
	return &ForumUseCase{
		forumRepo: forumRepo,
	}
}

type PostInput struct {
	Title  string
	Text   string
	Image  string
	Images []string
}

func (uc *ForumUseCase) CreatePost(ctx context.Context, userID string, input PostInput) (*entity.ForumPost, error) {
	post := &entity.ForumPost{
		UserID:    userID,
		Title:     input.Title,
		Text:      input.Text,
		Image:     input.Image,
		Images:    input.Images,
		Comments:  []entity.Comment{},
		Likes:     []string{},
		Dislikes:  []string{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.forumRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (uc *ForumUseCase) GetPost(ctx context.Context, id string) (*entity.ForumPost, error) {
	return uc.forumRepo.GetByID(ctx, id)
}

func (uc *ForumUseCase) ListPosts(ctx context.Context, page, limit int) ([]*entity.ForumPost, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.forumRepo.List(ctx, pagination.PageSize, pagination.Offset)
}

func (uc *ForumUseCase) UpdatePost(ctx context.Context, userID string, isAdmin bool, postID string, input PostInput) (*entity.ForumPost, error) {
	return uc.forumRepo.Mutate(ctx, postID, func(p *entity.ForumPost) (bool, error) {
		if p.UserID != userID && !isAdmin {
			return false, errors.Forbidden("You are not authorized to edit this post", nil)
		}

		if input.Title != "" {
			p.Title = input.Title
		}
		if input.Text != "" {
			p.Text = input.Text
		}
		if input.Image != "" {
			p.Image = input.Image
		}
		if input.Images != nil {
			p.Images = input.Images
		}
		return true, nil
	})
}

func (uc *ForumUseCase) DeletePost(ctx context.Context, userID string, isAdmin bool, postID string) error {
	post, err := uc.forumRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID && !isAdmin {
		return errors.Forbidden("You are not authorized to delete this post", nil)
	}

	return uc.forumRepo.Delete(ctx, postID)
}

func (uc *ForumUseCase) AddComment(ctx context.Context, user *entity.User, postID, text string) (*entity.Comment, error) {
	if text == "" {
		return nil, errors.BadRequest("Comment text is required", nil)
	}

	var created entity.Comment
	_, err := uc.forumRepo.Mutate(ctx, postID, func(p *entity.ForumPost) (bool, error) {
		now := time.Now()
		created = entity.Comment{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			Name:      user.Name,
			Avatar:    user.Avatar,
			Text:      text,
			CreatedAt: now,
			UpdatedAt: now,
		}
		p.Comments = append(p.Comments, created)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (uc *ForumUseCase) EditComment(ctx context.Context, userID string, isAdmin bool, postID, commentID, text string) (*entity.Comment, error) {
	if text == "" {
		return nil, errors.BadRequest("Comment text is required", nil)
	}

	var updated entity.Comment
	_, err := uc.forumRepo.Mutate(ctx, postID, func(p *entity.ForumPost) (bool, error) {
		comment := p.CommentByID(commentID)
		if comment == nil {
			return false, errors.NotFound("Comment", nil)
		}
		if comment.UserID != userID && !isAdmin {
			return false, errors.Forbidden("You are not authorized to edit this comment", nil)
		}

		comment.Text = text
		comment.UpdatedAt = time.Now()
		updated = *comment
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (uc *ForumUseCase) DeleteComment(ctx context.Context, userID string, isAdmin bool, postID, commentID string) error {
	_, err := uc.forumRepo.Mutate(ctx, postID, func(p *entity.ForumPost) (bool, error) {
		idx := -1
		for i := range p.Comments {
			if p.Comments[i].ID == commentID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return false, errors.NotFound("Comment", nil)
		}
		if p.Comments[idx].UserID != userID && !isAdmin {
			return false, errors.Forbidden("You are not authorized to delete this comment", nil)
		}

		p.Comments = append(p.Comments[:idx], p.Comments[idx+1:]...)
		return true, nil
	})
	return err
}

// ToggleLike adds or removes the user from the like set. A like replaces any
// standing dislike; toggling an existing like just removes it.
func (uc *ForumUseCase) ToggleLike(ctx context.Context, userID, postID string) (*entity.ForumPost, error) {
	return uc.forumRepo.Mutate(ctx, postID, func(p *entity.ForumPost) (bool, error) {
		if contains(p.Likes, userID) {
			p.Likes = remove(p.Likes, userID)
		} else {
			p.Likes = append(p.Likes, userID)
			p.Dislikes = remove(p.Dislikes, userID)
		}
		recalcVotes(p)
		return true, nil
	})
}

// ToggleDislike mirrors ToggleLike for the dislike set.
func (uc *ForumUseCase) ToggleDislike(ctx context.Context, userID, postID string) (*entity.ForumPost, error) {
	return uc.forumRepo.Mutate(ctx, postID, func(p *entity.ForumPost) (bool, error) {
		if contains(p.Dislikes, userID) {
			p.Dislikes = remove(p.Dislikes, userID)
		} else {
			p.Dislikes = append(p.Dislikes, userID)
			p.Likes = remove(p.Likes, userID)
		}
		recalcVotes(p)
		return true, nil
	})
}

// recalcVotes rederives the vote counters from the sets; they are never
// incremented independently.
func recalcVotes(p *entity.ForumPost) {
	p.LikesCount = len(p.Likes)
	p.DislikesCount = len(p.Dislikes)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
