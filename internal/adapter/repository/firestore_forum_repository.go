package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"reptileshop/internal/domain/entity"
	"reptileshop/internal/domain/repository"
	"reptileshop/pkg/errors"
)

type firestoreForumRepository struct {
	client *firestore.Client
}

func NewFirestoreForumRepository(client *firestore.Client) repository.ForumRepository {
	return &firestoreForumRepository{
		client: client,
	}
}

func (r *firestoreForumRepository) Create(ctx context.Context, post *entity.ForumPost) error {
	if post.ID == "" {
		doc := r.client.Collection("forum_posts").NewDoc()
		post.ID = doc.ID
	}

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	_, err := r.client.Collection("forum_posts").Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to create post", err)
	}

	return nil
}

func (r *firestoreForumRepository) GetByID(ctx context.Context, id string) (*entity.ForumPost, error) {
	doc, err := r.client.Collection("forum_posts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Post", err)
		}
		return nil, errors.Internal("Failed to get post", err)
	}

	var post entity.ForumPost
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse post data", err)
	}

	return &post, nil
}

func (r *firestoreForumRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("forum_posts").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete post", err)
	}

	return nil
}

func (r *firestoreForumRepository) List(ctx context.Context, limit, offset int) ([]*entity.ForumPost, int64, error) {
	query := r.client.Collection("forum_posts").Query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count posts", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var posts []*entity.ForumPost

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate posts", err)
		}
		var post entity.ForumPost
		if err := doc.DataTo(&post); err != nil {
			return nil, 0, errors.Internal("Failed to parse post data", err)
		}
		posts = append(posts, &post)
	}

	return posts, total, nil
}

func (r *firestoreForumRepository) Mutate(ctx context.Context, id string, fn func(*entity.ForumPost) (bool, error)) (*entity.ForumPost, error) {
	var result entity.ForumPost

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("forum_posts").Doc(id)
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Post", err)
			}
			return err
		}

		var post entity.ForumPost
		if err := doc.DataTo(&post); err != nil {
			return err
		}

		write, err := fn(&post)
		if err != nil {
			return err
		}

		result = post
		if !write {
			return nil
		}

		post.UpdatedAt = time.Now()
		result = post
		return tx.Set(docRef, &post)
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		if status.Code(err) == codes.Aborted {
			return nil, errors.Conflict("Post was modified concurrently")
		}
		return nil, errors.Internal("Failed to update post", err)
	}

	return &result, nil
}
