package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/imageshare/imageshare-server/internal/model"
)

var _ model.FollowStore = (*FollowRepository)(nil)

// FollowRepository persists follow history. Current state of a pair is the
// row with the greatest id; the autoincrement column is the explicit
// ordering, so two rows created within clock resolution stay ordered.
type FollowRepository struct {
	db *Connection
}

// NewFollowRepository creates a new FollowRepository.
func NewFollowRepository(db *Connection) *FollowRepository {
	return &FollowRepository{db: db}
}

func latestFollow(tx *gorm.DB, follower, follows uint) (model.Follow, error) {
	var f model.Follow
	err := tx.
		Where("follower = ? AND follows = ?", follower, follows).
		Order("id DESC").
		First(&f).Error
	return f, err
}

// Follow inserts a new active row for the pair. The state check and the
// insert share one transaction so a concurrent reader never observes a
// half-applied transition. Fails with ErrAlreadyActive when the latest
// row is still active.
func (r *FollowRepository) Follow(ctx context.Context, follower, follows uint) (model.Follow, error) {
	var created model.Follow
	err := r.db.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		last, err := latestFollow(tx, follower, follows)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && last.IsActive {
			return model.ErrAlreadyActive
		}

		created = model.Follow{Follower: follower, Follows: follows, IsActive: true}
		return tx.Create(&created).Error
	})
	if err != nil {
		return model.Follow{}, wrapError(err)
	}
	return created, nil
}

// Unfollow closes the currently active row: is_active is cleared and
// unfollowed_at stamped. The row itself is preserved as history. Fails
// with ErrNotActive when no active row exists. Should more than one row
// be active, the most recent one is closed.
func (r *FollowRepository) Unfollow(ctx context.Context, follower, follows uint) (model.Follow, error) {
	var closed model.Follow
	err := r.db.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		last, err := latestFollow(tx, follower, follows)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrNotActive
		}
		if err != nil {
			return err
		}
		if !last.IsActive {
			return model.ErrNotActive
		}

		now := time.Now()
		err = tx.Model(&model.Follow{}).
			Where("id = ?", last.ID).
			Updates(map[string]any{"is_active": false, "unfollowed_at": now}).Error
		if err != nil {
			return err
		}

		closed = last
		closed.IsActive = false
		closed.UnfollowedAt = &now
		return nil
	})
	if err != nil {
		return model.Follow{}, wrapError(err)
	}
	return closed, nil
}

// Latest returns the most recent row for the pair, or ErrNotFound when the
// pair has no history at all.
func (r *FollowRepository) Latest(ctx context.Context, follower, follows uint) (model.Follow, error) {
	f, err := latestFollow(r.db.DB().WithContext(ctx), follower, follows)
	if err != nil {
		return model.Follow{}, wrapError(err)
	}
	return f, nil
}

// ActiveFollowerIDs returns the ids of users actively following userID,
// ordered ascending. Only the latest row per pair counts.
func (r *FollowRepository) ActiveFollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	latest := r.db.DB().Model(&model.Follow{}).
		Select("MAX(id)").
		Where("follows = ?", userID).
		Group("follower")

	ids := make([]uint, 0)
	err := r.db.DB().WithContext(ctx).Model(&model.Follow{}).
		Where("id IN (?)", latest).
		Where("is_active = ?", true).
		Order("follower ASC").
		Pluck("follower", &ids).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return ids, nil
}

// ActiveFolloweeIDs returns the ids of users userID actively follows,
// ordered ascending.
func (r *FollowRepository) ActiveFolloweeIDs(ctx context.Context, userID uint) ([]uint, error) {
	latest := r.db.DB().Model(&model.Follow{}).
		Select("MAX(id)").
		Where("follower = ?", userID).
		Group("follows")

	ids := make([]uint, 0)
	err := r.db.DB().WithContext(ctx).Model(&model.Follow{}).
		Where("id IN (?)", latest).
		Where("is_active = ?", true).
		Order("follows ASC").
		Pluck("follows", &ids).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return ids, nil
}
