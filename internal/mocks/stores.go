// Package mocks provides testify mocks for the store and token interfaces
// defined in the model package.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/imageshare/imageshare-server/internal/model"
)

type UserStore struct {
	mock.Mock
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uint) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByIDs(ctx context.Context, ids []uint) ([]model.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserStore) First(ctx context.Context, filter map[string]any) (model.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(model.User), args.Error(1)
}

type PostStore struct {
	mock.Mock
}

func (m *PostStore) Create(ctx context.Context, post model.Post) (model.Post, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *PostStore) GetByID(ctx context.Context, id uint) (model.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *PostStore) First(ctx context.Context, filter map[string]any) (model.Post, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(model.Post), args.Error(1)
}

type FollowStore struct {
	mock.Mock
}

func (m *FollowStore) Follow(ctx context.Context, follower, follows uint) (model.Follow, error) {
	args := m.Called(ctx, follower, follows)
	return args.Get(0).(model.Follow), args.Error(1)
}

func (m *FollowStore) Unfollow(ctx context.Context, follower, follows uint) (model.Follow, error) {
	args := m.Called(ctx, follower, follows)
	return args.Get(0).(model.Follow), args.Error(1)
}

func (m *FollowStore) Latest(ctx context.Context, follower, follows uint) (model.Follow, error) {
	args := m.Called(ctx, follower, follows)
	return args.Get(0).(model.Follow), args.Error(1)
}

func (m *FollowStore) ActiveFollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *FollowStore) ActiveFolloweeIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

type LikeStore struct {
	mock.Mock
}

func (m *LikeStore) Like(ctx context.Context, userID, postID uint) (model.Like, error) {
	args := m.Called(ctx, userID, postID)
	return args.Get(0).(model.Like), args.Error(1)
}

func (m *LikeStore) Unlike(ctx context.Context, userID, postID uint) (model.Like, error) {
	args := m.Called(ctx, userID, postID)
	return args.Get(0).(model.Like), args.Error(1)
}

func (m *LikeStore) Latest(ctx context.Context, userID, postID uint) (model.Like, error) {
	args := m.Called(ctx, userID, postID)
	return args.Get(0).(model.Like), args.Error(1)
}

type GraphStore struct {
	mock.Mock
}

func (m *GraphStore) PostsByAuthors(ctx context.Context, authorIDs []uint, limit, skip int) ([]model.Post, error) {
	args := m.Called(ctx, authorIDs, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *GraphStore) PostsRanked(ctx context.Context, limit, skip int) ([]model.RankedPost, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RankedPost), args.Error(1)
}

type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Generate(userID uint) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Parse(token string) (uint, error) {
	args := m.Called(token)
	return args.Get(0).(uint), args.Error(1)
}
