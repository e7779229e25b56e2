package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imageshare/imageshare-server/internal/logger"
	"github.com/imageshare/imageshare-server/internal/mocks"
	"github.com/imageshare/imageshare-server/internal/model"
)

func newGraph(userStore *mocks.UserStore, followStore *mocks.FollowStore, graphStore *mocks.GraphStore) *Graph {
	return NewGraph(userStore, followStore, graphStore, logger.New(0))
}

func knownUsers(userStore *mocks.UserStore, ids ...uint) {
	for _, id := range ids {
		userStore.On("GetByID", mock.Anything, id).Return(model.User{ID: id}, nil)
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a    []uint
		b    []uint
		want []uint
	}{
		{name: "overlap", a: []uint{1, 3, 5, 7}, b: []uint{3, 4, 5}, want: []uint{3, 5}},
		{name: "disjoint", a: []uint{1, 2}, b: []uint{3, 4}, want: []uint{}},
		{name: "identical", a: []uint{2, 4}, b: []uint{2, 4}, want: []uint{2, 4}},
		{name: "empty left", a: []uint{}, b: []uint{1}, want: []uint{}},
		{name: "empty right", a: []uint{1}, b: []uint{}, want: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intersect(tt.a, tt.b))
		})
	}
}

func TestDifference(t *testing.T) {
	tests := []struct {
		name string
		a    []uint
		b    []uint
		want []uint
	}{
		{name: "removes common", a: []uint{1, 2, 3, 4}, b: []uint{2, 4}, want: []uint{1, 3}},
		{name: "nothing removed", a: []uint{1, 2}, b: []uint{5}, want: []uint{1, 2}},
		{name: "all removed", a: []uint{1, 2}, b: []uint{1, 2, 3}, want: []uint{}},
		{name: "empty", a: []uint{}, b: []uint{1}, want: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, difference(tt.a, tt.b))
		})
	}
}

func TestGraph_MutualFollowers(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	followStore := &mocks.FollowStore{}

	knownUsers(userStore, 1, 2)
	followStore.On("ActiveFollowerIDs", mock.Anything, uint(1)).Return([]uint{3, 4, 5}, nil)
	followStore.On("ActiveFollowerIDs", mock.Anything, uint(2)).Return([]uint{3, 5, 6}, nil)
	userStore.On("GetByIDs", mock.Anything, []uint{3, 5}).
		Return([]model.User{{ID: 3}, {ID: 5}}, nil)

	s := newGraph(userStore, followStore, &mocks.GraphStore{})

	users, err := s.MutualFollowers(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, uint(3), users[0].ID)
	assert.Equal(t, uint(5), users[1].ID)
}

func TestGraph_MutualFollowers_Symmetric(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	followStore := &mocks.FollowStore{}

	// Asymmetric follower sets: only the intersection is shared.
	knownUsers(userStore, 1, 2)
	followStore.On("ActiveFollowerIDs", mock.Anything, uint(1)).Return([]uint{3, 4, 6}, nil)
	followStore.On("ActiveFollowerIDs", mock.Anything, uint(2)).Return([]uint{4, 5, 6, 7}, nil)
	userStore.On("GetByIDs", mock.Anything, []uint{4, 6}).
		Return([]model.User{{ID: 4}, {ID: 6}}, nil)

	s := newGraph(userStore, followStore, &mocks.GraphStore{})

	ab, err := s.MutualFollowers(ctx, 1, 2)
	require.NoError(t, err)
	ba, err := s.MutualFollowers(ctx, 2, 1)
	require.NoError(t, err)

	// Argument order does not matter.
	assert.Equal(t, ab, ba)

	// Reading again returns the same result; the query mutates nothing.
	again, err := s.MutualFollowers(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, ab, again)
}

func TestGraph_MutualFollowers_NoOverlap(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	followStore := &mocks.FollowStore{}

	knownUsers(userStore, 1, 2)
	followStore.On("ActiveFollowerIDs", mock.Anything, uint(1)).Return([]uint{3}, nil)
	followStore.On("ActiveFollowerIDs", mock.Anything, uint(2)).Return([]uint{4}, nil)

	s := newGraph(userStore, followStore, &mocks.GraphStore{})

	users, err := s.MutualFollowers(ctx, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, users)
	userStore.AssertNotCalled(t, "GetByIDs")
}

func TestGraph_MutualFollowers_UnknownUser(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	userStore.On("GetByID", mock.Anything, uint(1)).Return(model.User{ID: 1}, nil)
	userStore.On("GetByID", mock.Anything, uint(99)).Return(model.User{}, model.ErrNotFound)

	s := newGraph(userStore, &mocks.FollowStore{}, &mocks.GraphStore{})

	_, err := s.MutualFollowers(ctx, 1, 99)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestGraph_SuggestFollowers(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	followStore := &mocks.FollowStore{}

	knownUsers(userStore, 1, 2)
	// Followers of the target. 1 is the viewer, 4 is already followed.
	followStore.On("ActiveFollowerIDs", mock.Anything, uint(2)).Return([]uint{1, 3, 4, 5}, nil)
	followStore.On("ActiveFolloweeIDs", mock.Anything, uint(1)).Return([]uint{2, 4}, nil)
	userStore.On("GetByIDs", mock.Anything, []uint{3, 5}).
		Return([]model.User{{ID: 3}, {ID: 5}}, nil)

	s := newGraph(userStore, followStore, &mocks.GraphStore{})

	users, err := s.SuggestFollowers(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, uint(3), users[0].ID)
	assert.Equal(t, uint(5), users[1].ID)
}

func TestGraph_SuggestFollowers_NothingLeft(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	followStore := &mocks.FollowStore{}

	knownUsers(userStore, 1, 2)
	followStore.On("ActiveFollowerIDs", mock.Anything, uint(2)).Return([]uint{1}, nil)
	followStore.On("ActiveFolloweeIDs", mock.Anything, uint(1)).Return([]uint{2}, nil)

	s := newGraph(userStore, followStore, &mocks.GraphStore{})

	users, err := s.SuggestFollowers(ctx, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, users)
	userStore.AssertNotCalled(t, "GetByIDs")
}

func TestGraph_PostsByFollowed(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	followStore := &mocks.FollowStore{}
	graphStore := &mocks.GraphStore{}

	knownUsers(userStore, 1)
	followStore.On("ActiveFolloweeIDs", mock.Anything, uint(1)).Return([]uint{2, 3}, nil)
	graphStore.On("PostsByAuthors", mock.Anything, []uint{2, 3}, 10, 0).
		Return([]model.Post{{ID: 9, UserID: 3}, {ID: 8, UserID: 2}}, nil)

	s := newGraph(userStore, followStore, graphStore)

	posts, err := s.PostsByFollowed(ctx, 1, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, uint(9), posts[0].ID)
}

func TestGraph_PostsByFollowed_BadPage(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	knownUsers(userStore, 1)

	s := newGraph(userStore, &mocks.FollowStore{}, &mocks.GraphStore{})

	_, err := s.PostsByFollowed(ctx, 1, -1, 0)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	_, err = s.PostsByFollowed(ctx, 1, 10, -2)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestGraph_PostsRanked(t *testing.T) {
	ctx := context.Background()
	graphStore := &mocks.GraphStore{}

	graphStore.On("PostsRanked", mock.Anything, 5, 0).
		Return([]model.RankedPost{
			{Post: model.Post{ID: 2}, LikeCount: 2},
			{Post: model.Post{ID: 1}, LikeCount: 0},
		}, nil)

	s := newGraph(&mocks.UserStore{}, &mocks.FollowStore{}, graphStore)

	ranked, err := s.PostsRanked(ctx, 5, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, int64(2), ranked[0].LikeCount)
	assert.Equal(t, int64(0), ranked[1].LikeCount)

	_, err = s.PostsRanked(ctx, -1, 0)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}
