package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/imageshare/imageshare-server/internal/logger"
	"github.com/imageshare/imageshare-server/internal/model"
)

// Graph answers derived queries over the follow and like graphs. All
// methods are read-only and observe only the current state of each
// relationship pair.
type Graph struct {
	userStore   model.UserStore
	followStore model.FollowStore
	graphStore  model.GraphStore
	logger      *logger.Logger
}

// NewGraph creates a new Graph service.
func NewGraph(
	userStore model.UserStore,
	followStore model.FollowStore,
	graphStore model.GraphStore,
	logger *logger.Logger,
) *Graph {
	return &Graph{
		userStore:   userStore,
		followStore: followStore,
		graphStore:  graphStore,
		logger:      logger,
	}
}

func validatePage(limit, skip int) error {
	if limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", model.ErrInvalidArgument)
	}
	if skip < 0 {
		return fmt.Errorf("%w: skip must not be negative", model.ErrInvalidArgument)
	}
	return nil
}

func (s *Graph) ensureUser(ctx context.Context, id uint) error {
	if id == 0 {
		return fmt.Errorf("%w: user id must be positive", model.ErrInvalidArgument)
	}
	if _, err := s.userStore.GetByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("%w: unknown user %d", model.ErrInvalidArgument, id)
		}
		return err
	}
	return nil
}

// intersect returns the values present in both sorted slices, keeping the
// ascending order.
func intersect(a, b []uint) []uint {
	out := make([]uint, 0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// difference returns the values of a absent from b, both sorted ascending.
func difference(a, b []uint) []uint {
	out := make([]uint, 0)
	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && b[j] < a[i] {
			j++
		}
		if j < len(b) && b[j] == a[i] {
			i++
			continue
		}
		out = append(out, a[i])
		i++
	}
	return out
}

// MutualFollowers returns the users actively following both a and b,
// ordered by id ascending.
func (s *Graph) MutualFollowers(ctx context.Context, a, b uint) ([]model.User, error) {
	if err := s.ensureUser(ctx, a); err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, b); err != nil {
		return nil, err
	}

	followersA, err := s.followStore.ActiveFollowerIDs(ctx, a)
	if err != nil {
		return nil, err
	}
	followersB, err := s.followStore.ActiveFollowerIDs(ctx, b)
	if err != nil {
		return nil, err
	}

	mutual := intersect(followersA, followersB)
	if len(mutual) == 0 {
		return []model.User{}, nil
	}
	return s.userStore.GetByIDs(ctx, mutual)
}

// SuggestFollowers returns the users actively following target that the
// viewer does not already follow, excluding the viewer. Ordered by id
// ascending.
func (s *Graph) SuggestFollowers(ctx context.Context, viewer, target uint) ([]model.User, error) {
	if err := s.ensureUser(ctx, viewer); err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, target); err != nil {
		return nil, err
	}

	candidates, err := s.followStore.ActiveFollowerIDs(ctx, target)
	if err != nil {
		return nil, err
	}
	followed, err := s.followStore.ActiveFolloweeIDs(ctx, viewer)
	if err != nil {
		return nil, err
	}

	suggested := difference(candidates, followed)
	filtered := suggested[:0]
	for _, id := range suggested {
		if id != viewer {
			filtered = append(filtered, id)
		}
	}
	if len(filtered) == 0 {
		return []model.User{}, nil
	}
	return s.userStore.GetByIDs(ctx, filtered)
}

// PostsByFollowed returns posts authored by the users userID actively
// follows, newest first.
func (s *Graph) PostsByFollowed(ctx context.Context, userID uint, limit, skip int) ([]model.Post, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := validatePage(limit, skip); err != nil {
		return nil, err
	}

	authors, err := s.followStore.ActiveFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.graphStore.PostsByAuthors(ctx, authors, limit, skip)
}

// PostsRanked returns every post ordered by live like-count descending.
// Posts nobody liked rank last with a count of zero.
func (s *Graph) PostsRanked(ctx context.Context, limit, skip int) ([]model.RankedPost, error) {
	if err := validatePage(limit, skip); err != nil {
		return nil, err
	}
	return s.graphStore.PostsRanked(ctx, limit, skip)
}
