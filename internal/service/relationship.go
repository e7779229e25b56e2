package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/imageshare/imageshare-server/internal/logger"
	"github.com/imageshare/imageshare-server/internal/model"
)

// Relationship implements the follow and like lifecycles. It validates the
// endpoints of a relationship before delegating the state transition to the
// stores, which enforce latest-row-wins semantics.
type Relationship struct {
	userStore   model.UserStore
	postStore   model.PostStore
	followStore model.FollowStore
	likeStore   model.LikeStore
	logger      *logger.Logger
}

// NewRelationship creates a new Relationship service.
func NewRelationship(
	userStore model.UserStore,
	postStore model.PostStore,
	followStore model.FollowStore,
	likeStore model.LikeStore,
	logger *logger.Logger,
) *Relationship {
	return &Relationship{
		userStore:   userStore,
		postStore:   postStore,
		followStore: followStore,
		likeStore:   likeStore,
		logger:      logger,
	}
}

func (s *Relationship) validateFollowPair(ctx context.Context, follower, follows uint) error {
	if follower == 0 || follows == 0 {
		return fmt.Errorf("%w: user ids must be positive", model.ErrInvalidArgument)
	}
	if follower == follows {
		return fmt.Errorf("%w: user %d cannot follow themselves", model.ErrInvalidArgument, follower)
	}

	for _, id := range []uint{follower, follows} {
		if _, err := s.userStore.GetByID(ctx, id); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return fmt.Errorf("%w: unknown user %d", model.ErrValidation, id)
			}
			return err
		}
	}
	return nil
}

func (s *Relationship) validateLikePair(ctx context.Context, userID, postID uint) error {
	if userID == 0 || postID == 0 {
		return fmt.Errorf("%w: ids must be positive", model.ErrInvalidArgument)
	}

	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("%w: unknown user %d", model.ErrValidation, userID)
		}
		return err
	}
	if _, err := s.postStore.GetByID(ctx, postID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("%w: unknown post %d", model.ErrValidation, postID)
		}
		return err
	}
	return nil
}

// Follow makes follower an active follower of follows. Fails with
// ErrAlreadyActive when the relationship is already active.
func (s *Relationship) Follow(ctx context.Context, follower, follows uint) (model.Follow, error) {
	if err := s.validateFollowPair(ctx, follower, follows); err != nil {
		return model.Follow{}, err
	}

	f, err := s.followStore.Follow(ctx, follower, follows)
	if err != nil {
		return model.Follow{}, err
	}

	s.logger.Info("Relationship service: follow created",
		"follower", follower,
		"follows", follows)

	return f, nil
}

// Unfollow ends the active relationship, keeping the row as history. Fails
// with ErrNotActive when there is no active relationship to end.
func (s *Relationship) Unfollow(ctx context.Context, follower, follows uint) (model.Follow, error) {
	if err := s.validateFollowPair(ctx, follower, follows); err != nil {
		return model.Follow{}, err
	}

	f, err := s.followStore.Unfollow(ctx, follower, follows)
	if err != nil {
		return model.Follow{}, err
	}

	s.logger.Info("Relationship service: follow ended",
		"follower", follower,
		"follows", follows)

	return f, nil
}

// IsFollowing reports whether follower currently follows follows. A pair
// with no history is simply not following.
func (s *Relationship) IsFollowing(ctx context.Context, follower, follows uint) (bool, error) {
	if follower == 0 || follows == 0 {
		return false, fmt.Errorf("%w: user ids must be positive", model.ErrInvalidArgument)
	}

	f, err := s.followStore.Latest(ctx, follower, follows)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return f.IsActive, nil
}

// Like records that userID likes postID. Liking your own post is allowed,
// a like references a post rather than another user. Fails with
// ErrAlreadyActive when the like is already active.
func (s *Relationship) Like(ctx context.Context, userID, postID uint) (model.Like, error) {
	if err := s.validateLikePair(ctx, userID, postID); err != nil {
		return model.Like{}, err
	}

	l, err := s.likeStore.Like(ctx, userID, postID)
	if err != nil {
		return model.Like{}, err
	}

	s.logger.Info("Relationship service: like created",
		"user_id", userID,
		"post_id", postID)

	return l, nil
}

// Unlike ends the active like, keeping the row as history. Fails with
// ErrNotActive when there is no active like to end.
func (s *Relationship) Unlike(ctx context.Context, userID, postID uint) (model.Like, error) {
	if err := s.validateLikePair(ctx, userID, postID); err != nil {
		return model.Like{}, err
	}

	l, err := s.likeStore.Unlike(ctx, userID, postID)
	if err != nil {
		return model.Like{}, err
	}

	s.logger.Info("Relationship service: like ended",
		"user_id", userID,
		"post_id", postID)

	return l, nil
}

// IsLiked reports whether userID currently likes postID.
func (s *Relationship) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	if userID == 0 || postID == 0 {
		return false, fmt.Errorf("%w: ids must be positive", model.ErrInvalidArgument)
	}

	l, err := s.likeStore.Latest(ctx, userID, postID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return l.StillLiked, nil
}

// CreatePost stores a new post for the given author.
func (s *Relationship) CreatePost(ctx context.Context, userID uint, caption, url string) (model.Post, error) {
	if userID == 0 {
		return model.Post{}, fmt.Errorf("%w: user id must be positive", model.ErrInvalidArgument)
	}

	post, err := s.postStore.Create(ctx, model.Post{
		UserID:  userID,
		Caption: caption,
		URL:     url,
	})
	if err != nil {
		return model.Post{}, err
	}

	s.logger.Info("Relationship service: post created",
		"post_id", post.ID,
		"user_id", userID)

	return post, nil
}

// GetPost returns the post with the given id.
func (s *Relationship) GetPost(ctx context.Context, id uint) (model.Post, error) {
	if id == 0 {
		return model.Post{}, fmt.Errorf("%w: post id must be positive", model.ErrInvalidArgument)
	}
	return s.postStore.GetByID(ctx, id)
}
