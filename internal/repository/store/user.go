package store

import (
	"context"
	"fmt"

	"github.com/imageshare/imageshare-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// userFilterKeys is the allow-list of queryable user columns.
var userFilterKeys = []string{"id", "username", "first_name", "last_name", "city", "country", "email"}

// UserRepository persists users.
type UserRepository struct {
	db *Connection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts one user. The store assigns id and timestamps. A
// duplicate username fails with ErrValidation.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	for _, req := range []struct{ name, value string }{
		{"username", user.Username},
		{"password_hash", user.PasswordHash},
		{"first_name", user.FirstName},
		{"last_name", user.LastName},
		{"city", user.City},
		{"country", user.Country},
	} {
		if req.value == "" {
			return model.User{}, fmt.Errorf("%w: missing required field %s", model.ErrValidation, req.name)
		}
	}

	if err := r.db.DB().WithContext(ctx).Create(&user).Error; err != nil {
		return model.User{}, wrapError(err)
	}
	return user, nil
}

// GetByID returns the user with the given id or ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id uint) (model.User, error) {
	var user model.User
	if err := r.db.DB().WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return model.User{}, wrapError(err)
	}
	return user, nil
}

// GetByUsername returns the user with the given username or ErrNotFound.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	if err := r.db.DB().WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return model.User{}, wrapError(err)
	}
	return user, nil
}

// GetByIDs returns the users with the given ids ordered by id ascending.
// Missing ids are skipped, not errors.
func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]model.User, error) {
	users := make([]model.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	err := r.db.DB().WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&users).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return users, nil
}

// First returns the first user matching the allow-listed filter, or
// ErrNotFound when nothing matches.
func (r *UserRepository) First(ctx context.Context, filter map[string]any) (model.User, error) {
	var user model.User
	query := r.db.DB().WithContext(ctx)
	if sanitized := sanitizeFilter(userFilterKeys, filter); len(sanitized) > 0 {
		query = query.Where(sanitized)
	}
	if err := query.Order("id ASC").First(&user).Error; err != nil {
		return model.User{}, wrapError(err)
	}
	return user, nil
}
