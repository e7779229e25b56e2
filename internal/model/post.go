package model

import (
	"context"
	"time"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id uint) (Post, error)
	First(ctx context.Context, filter map[string]any) (Post, error)
}

// Post represents an image post. UserID references the owning author.
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Caption   string    `gorm:"size:100;not null"`
	URL       string    `gorm:"size:2048;not null"`
	Timestamp time.Time `gorm:"autoCreateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Post.
func (Post) TableName() string { return "posts" }

// RankedPost is a post joined with its live like-count.
type RankedPost struct {
	Post      Post  `gorm:"embedded"`
	LikeCount int64 `gorm:"column:like_count"`
}
