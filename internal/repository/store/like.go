package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/imageshare/imageshare-server/internal/model"
)

var _ model.LikeStore = (*LikeRepository)(nil)

// LikeRepository persists like history for (user, post) pairs with the
// same latest-row-wins semantics as FollowRepository.
type LikeRepository struct {
	db *Connection
}

// NewLikeRepository creates a new LikeRepository.
func NewLikeRepository(db *Connection) *LikeRepository {
	return &LikeRepository{db: db}
}

func latestLike(tx *gorm.DB, userID, postID uint) (model.Like, error) {
	var l model.Like
	err := tx.
		Where("user_id = ? AND post_id = ?", userID, postID).
		Order("id DESC").
		First(&l).Error
	return l, err
}

// Like inserts a new active row for the pair within one transaction.
// Fails with ErrAlreadyActive when the latest row is still liked.
func (r *LikeRepository) Like(ctx context.Context, userID, postID uint) (model.Like, error) {
	var created model.Like
	err := r.db.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		last, err := latestLike(tx, userID, postID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && last.StillLiked {
			return model.ErrAlreadyActive
		}

		created = model.Like{UserID: userID, PostID: postID, StillLiked: true}
		return tx.Create(&created).Error
	})
	if err != nil {
		return model.Like{}, wrapError(err)
	}
	return created, nil
}

// Unlike closes the currently liked row, preserving it as history. Fails
// with ErrNotActive when the latest row is missing or already closed.
func (r *LikeRepository) Unlike(ctx context.Context, userID, postID uint) (model.Like, error) {
	var closed model.Like
	err := r.db.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		last, err := latestLike(tx, userID, postID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrNotActive
		}
		if err != nil {
			return err
		}
		if !last.StillLiked {
			return model.ErrNotActive
		}

		now := time.Now()
		err = tx.Model(&model.Like{}).
			Where("id = ?", last.ID).
			Updates(map[string]any{"still_liked": false, "unliked_at": now}).Error
		if err != nil {
			return err
		}

		closed = last
		closed.StillLiked = false
		closed.UnlikedAt = &now
		return nil
	})
	if err != nil {
		return model.Like{}, wrapError(err)
	}
	return closed, nil
}

// Latest returns the most recent row for the pair, or ErrNotFound when the
// pair has no history at all.
func (r *LikeRepository) Latest(ctx context.Context, userID, postID uint) (model.Like, error) {
	l, err := latestLike(r.db.DB().WithContext(ctx), userID, postID)
	if err != nil {
		return model.Like{}, wrapError(err)
	}
	return l, nil
}
