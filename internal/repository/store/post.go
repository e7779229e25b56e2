package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/imageshare/imageshare-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

// postFilterKeys is the allow-list of queryable post columns.
var postFilterKeys = []string{"id", "user_id", "caption", "url", "timestamp"}

// PostRepository persists posts.
type PostRepository struct {
	db *Connection
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts one post after verifying the author exists. The author
// check and the insert share one transaction.
func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	if post.UserID == 0 {
		return model.Post{}, fmt.Errorf("%w: missing required field user_id", model.ErrValidation)
	}
	if post.Caption == "" {
		return model.Post{}, fmt.Errorf("%w: missing required field caption", model.ErrValidation)
	}
	if post.URL == "" {
		return model.Post{}, fmt.Errorf("%w: missing required field url", model.ErrValidation)
	}

	err := r.db.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var author model.User
		if err := tx.First(&author, "id = ?", post.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: post references unknown user %d", model.ErrValidation, post.UserID)
			}
			return err
		}
		return tx.Create(&post).Error
	})
	if err != nil {
		return model.Post{}, wrapError(err)
	}
	return post, nil
}

// GetByID returns the post with the given id or ErrNotFound.
func (r *PostRepository) GetByID(ctx context.Context, id uint) (model.Post, error) {
	var post model.Post
	if err := r.db.DB().WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return model.Post{}, wrapError(err)
	}
	return post, nil
}

// First returns the first post matching the allow-listed filter, or
// ErrNotFound when nothing matches.
func (r *PostRepository) First(ctx context.Context, filter map[string]any) (model.Post, error) {
	var post model.Post
	query := r.db.DB().WithContext(ctx)
	if sanitized := sanitizeFilter(postFilterKeys, filter); len(sanitized) > 0 {
		query = query.Where(sanitized)
	}
	if err := query.Order("id ASC").First(&post).Error; err != nil {
		return model.Post{}, wrapError(err)
	}
	return post, nil
}
