package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uint) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]User, error)
	First(ctx context.Context, filter map[string]any) (User, error)
}

// User represents a registered account. PasswordHash is an opaque digest
// and never leaves the service layer.
type User struct {
	ID            uint      `gorm:"primaryKey"`
	Username      string    `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash  string    `gorm:"size:100;not null"`
	FirstName     string    `gorm:"size:100;not null"`
	LastName      string    `gorm:"size:100;not null"`
	Avatar        string    `gorm:"size:100"`
	IsAgeMajority bool      `gorm:"not null;default:false"`
	Bio           string    `gorm:"size:200"`
	Mobile        string    `gorm:"size:20"`
	Email         string    `gorm:"size:320"`
	City          string    `gorm:"size:100;not null"`
	Country       string    `gorm:"size:56;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for User.
func (User) TableName() string { return "users" }

// AgeOfMajority is a reference row mapping a country to its age of majority.
type AgeOfMajority struct {
	ID      uint   `gorm:"primaryKey"`
	Country string `gorm:"size:56;uniqueIndex;not null"`
	Age     int    `gorm:"not null"`
}

// TableName specifies the table name for AgeOfMajority.
func (AgeOfMajority) TableName() string { return "age_of_majority" }
