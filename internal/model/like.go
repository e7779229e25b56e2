package model

import (
	"context"
	"time"
)

// LikeStore defines persistence operations for post likes. Same
// history-preserving pattern as FollowStore.
type LikeStore interface {
	Like(ctx context.Context, userID, postID uint) (Like, error)
	Unlike(ctx context.Context, userID, postID uint) (Like, error)
	Latest(ctx context.Context, userID, postID uint) (Like, error)
}

// Like is one row of like history for a (user, post) pair.
type Like struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index:idx_like_pair"`
	PostID     uint      `gorm:"not null;index:idx_like_pair"`
	LikedAt    time.Time `gorm:"autoCreateTime"`
	StillLiked bool      `gorm:"not null;default:true"`
	UnlikedAt  *time.Time
}

// TableName specifies the table name for Like.
func (Like) TableName() string { return "liked_posts" }
