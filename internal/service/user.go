package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/imageshare/imageshare-server/internal/logger"
	"github.com/imageshare/imageshare-server/internal/model"
)

// RegisterParams contains the fields accepted at registration. Password is
// hashed before it reaches the store.
type RegisterParams struct {
	Username      string
	Password      string
	FirstName     string
	LastName      string
	City          string
	Country       string
	Avatar        string
	Bio           string
	Mobile        string
	Email         string
	IsAgeMajority bool
}

// User implements registration, profile lookup and authentication.
type User struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewUser creates a new User service.
func NewUser(userStore model.UserStore, tokenManager model.TokenManager, logger *logger.Logger) *User {
	return &User{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register validates the parameters, hashes the password and creates the
// user. A taken username surfaces as ErrValidation from the store.
func (s *User) Register(ctx context.Context, params RegisterParams) (model.User, error) {
	for _, req := range []struct{ name, value string }{
		{"username", params.Username},
		{"password", params.Password},
		{"first_name", params.FirstName},
		{"last_name", params.LastName},
		{"city", params.City},
		{"country", params.Country},
	} {
		if req.value == "" {
			return model.User{}, fmt.Errorf("%w: missing required field %s", model.ErrValidation, req.name)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("User service: failed to hash password",
			"username", params.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userStore.Create(ctx, model.User{
		Username:      params.Username,
		PasswordHash:  string(hash),
		FirstName:     params.FirstName,
		LastName:      params.LastName,
		City:          params.City,
		Country:       params.Country,
		Avatar:        params.Avatar,
		Bio:           params.Bio,
		Mobile:        params.Mobile,
		Email:         params.Email,
		IsAgeMajority: params.IsAgeMajority,
	})
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"username", params.Username,
			"error", err.Error())
		return model.User{}, err
	}

	s.logger.Info("User service: user registered",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// GetByID returns the user with the given id.
func (s *User) GetByID(ctx context.Context, id uint) (model.User, error) {
	if id == 0 {
		return model.User{}, fmt.Errorf("%w: user id must be positive", model.ErrInvalidArgument)
	}
	return s.userStore.GetByID(ctx, id)
}

// Authenticate verifies the credentials and issues an access token. Both a
// missing user and a wrong password fail with ErrAuth so callers cannot
// tell the two apart.
func (s *User) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", fmt.Errorf("%w: unknown credentials", model.ErrAuth)
		}
		s.logger.Error("User service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("%w: unknown credentials", model.ErrAuth)
	}

	tokenString, err := s.tokenManager.Generate(user.ID)
	if err != nil {
		s.logger.Error("User service: failed to generate token",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User service: user authenticated", "user_id", user.ID)

	return tokenString, nil
}
