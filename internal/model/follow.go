package model

import (
	"context"
	"time"
)

// FollowStore defines persistence operations for follow relationships.
// Rows are never deleted: unfollowing closes the latest row, and the
// current state of a (follower, follows) pair is decided by its most
// recent row alone.
type FollowStore interface {
	Follow(ctx context.Context, follower, follows uint) (Follow, error)
	Unfollow(ctx context.Context, follower, follows uint) (Follow, error)
	Latest(ctx context.Context, follower, follows uint) (Follow, error)
	ActiveFollowerIDs(ctx context.Context, userID uint) ([]uint, error)
	ActiveFolloweeIDs(ctx context.Context, userID uint) ([]uint, error)
}

// Follow is one row of follow history. Follower follows Follows.
type Follow struct {
	ID           uint      `gorm:"primaryKey"`
	Follower     uint      `gorm:"not null;index:idx_follow_pair"`
	Follows      uint      `gorm:"not null;index:idx_follow_pair"`
	FollowedAt   time.Time `gorm:"autoCreateTime"`
	IsActive     bool      `gorm:"not null;default:true"`
	UnfollowedAt *time.Time
}

// TableName specifies the table name for Follow.
func (Follow) TableName() string { return "follows" }
