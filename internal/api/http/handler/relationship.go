package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/imageshare/imageshare-server/internal/logger"
	"github.com/imageshare/imageshare-server/internal/model"
	"github.com/imageshare/imageshare-server/internal/service"
)

type followRequest struct {
	UserID uint `json:"user_id"`
}

type likeRequest struct {
	PostID uint `json:"post_id"`
}

type createPostRequest struct {
	Caption string `json:"caption"`
	URL     string `json:"url"`
}

type followResponse struct {
	Follower     uint       `json:"follower"`
	Follows      uint       `json:"follows"`
	IsActive     bool       `json:"is_active"`
	FollowedAt   time.Time  `json:"followed_at"`
	UnfollowedAt *time.Time `json:"unfollowed_at,omitempty"`
}

type likeResponse struct {
	UserID     uint       `json:"user_id"`
	PostID     uint       `json:"post_id"`
	StillLiked bool       `json:"still_liked"`
	LikedAt    time.Time  `json:"liked_at"`
	UnlikedAt  *time.Time `json:"unliked_at,omitempty"`
}

type postResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Caption   string    `json:"caption"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
}

func toPostResponse(p model.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Caption:   p.Caption,
		URL:       p.URL,
		Timestamp: p.Timestamp,
	}
}

func toPostResponses(posts []model.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}

// actorID extracts the authenticated user id from the request context.
func actorID(c *gin.Context, contextManager model.ContextManager) (uint, bool) {
	userID, ok := contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return 0, false
	}
	return userID, true
}

// Relationship serves the follow and like lifecycle plus post creation.
// The acting user always comes from the access token, never from the
// request body.
type Relationship struct {
	relationshipService *service.Relationship
	contextManager      model.ContextManager
	logger              *logger.Logger
}

// NewRelationship creates a new Relationship handler.
func NewRelationship(relationshipService *service.Relationship, contextManager model.ContextManager, logger *logger.Logger) *Relationship {
	return &Relationship{
		relationshipService: relationshipService,
		contextManager:      contextManager,
		logger:              logger,
	}
}

// Follow makes the acting user follow the user named in the body.
func (h *Relationship) Follow(c *gin.Context) {
	actor, ok := actorID(c, h.contextManager)
	if !ok {
		return
	}

	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	f, err := h.relationshipService.Follow(c.Request.Context(), actor, req.UserID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, followResponse{
		Follower:   f.Follower,
		Follows:    f.Follows,
		IsActive:   f.IsActive,
		FollowedAt: f.FollowedAt,
	})
}

// Unfollow ends the acting user's follow of the user named in the body.
func (h *Relationship) Unfollow(c *gin.Context) {
	actor, ok := actorID(c, h.contextManager)
	if !ok {
		return
	}

	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	f, err := h.relationshipService.Unfollow(c.Request.Context(), actor, req.UserID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, followResponse{
		Follower:     f.Follower,
		Follows:      f.Follows,
		IsActive:     f.IsActive,
		FollowedAt:   f.FollowedAt,
		UnfollowedAt: f.UnfollowedAt,
	})
}

// Like records the acting user's like of the post named in the body.
func (h *Relationship) Like(c *gin.Context) {
	actor, ok := actorID(c, h.contextManager)
	if !ok {
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	l, err := h.relationshipService.Like(c.Request.Context(), actor, req.PostID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, likeResponse{
		UserID:     l.UserID,
		PostID:     l.PostID,
		StillLiked: l.StillLiked,
		LikedAt:    l.LikedAt,
	})
}

// Unlike ends the acting user's like of the post named in the body.
func (h *Relationship) Unlike(c *gin.Context) {
	actor, ok := actorID(c, h.contextManager)
	if !ok {
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	l, err := h.relationshipService.Unlike(c.Request.Context(), actor, req.PostID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, likeResponse{
		UserID:     l.UserID,
		PostID:     l.PostID,
		StillLiked: l.StillLiked,
		LikedAt:    l.LikedAt,
		UnlikedAt:  l.UnlikedAt,
	})
}

// CreatePost stores a new post authored by the acting user.
func (h *Relationship) CreatePost(c *gin.Context) {
	actor, ok := actorID(c, h.contextManager)
	if !ok {
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.relationshipService.CreatePost(c.Request.Context(), actor, req.Caption, req.URL)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPostResponse(post))
}

// GetPost returns the post identified by the id path parameter.
func (h *Relationship) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.relationshipService.GetPost(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post))
}

// IsFollowing reports whether the acting user follows the user in the
// path.
func (h *Relationship) IsFollowing(c *gin.Context) {
	actor, ok := actorID(c, h.contextManager)
	if !ok {
		return
	}
	other, ok := pathID(c, "id")
	if !ok {
		return
	}

	following, err := h.relationshipService.IsFollowing(c.Request.Context(), actor, other)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}

// IsLiked reports whether the acting user likes the post in the path.
func (h *Relationship) IsLiked(c *gin.Context) {
	actor, ok := actorID(c, h.contextManager)
	if !ok {
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	liked, err := h.relationshipService.IsLiked(c.Request.Context(), actor, postID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
