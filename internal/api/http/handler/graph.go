package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imageshare/imageshare-server/internal/logger"
	"github.com/imageshare/imageshare-server/internal/model"
	"github.com/imageshare/imageshare-server/internal/service"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type rankedPostResponse struct {
	postResponse
	LikeCount int64 `json:"like_count"`
}

// pageParams parses limit and skip query parameters with defaults. The
// limit is capped so a single request cannot drain the table.
func pageParams(c *gin.Context) (limit, skip int, ok bool) {
	limit = defaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return 0, 0, false
		}
		limit = v
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip"})
			return 0, 0, false
		}
		skip = v
	}

	return limit, skip, true
}

// Graph serves the derived queries over the follow and like graphs.
type Graph struct {
	graphService   *service.Graph
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewGraph creates a new Graph handler.
func NewGraph(graphService *service.Graph, contextManager model.ContextManager, logger *logger.Logger) *Graph {
	return &Graph{
		graphService:   graphService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Feed returns posts authored by the users the acting user follows,
// newest first.
func (h *Graph) Feed(c *gin.Context) {
	actor, ok := actorID(c, h.contextManager)
	if !ok {
		return
	}
	limit, skip, ok := pageParams(c)
	if !ok {
		return
	}

	posts, err := h.graphService.PostsByFollowed(c.Request.Context(), actor, limit, skip)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": toPostResponses(posts)})
}

// Ranked returns all posts ordered by live like-count descending.
func (h *Graph) Ranked(c *gin.Context) {
	limit, skip, ok := pageParams(c)
	if !ok {
		return
	}

	ranked, err := h.graphService.PostsRanked(c.Request.Context(), limit, skip)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]rankedPostResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, rankedPostResponse{
			postResponse: toPostResponse(r.Post),
			LikeCount:    r.LikeCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{"posts": out})
}

// MutualFollowers returns users following both the user in the path and
// the user in the other path parameter.
func (h *Graph) MutualFollowers(c *gin.Context) {
	a, ok := pathID(c, "id")
	if !ok {
		return
	}
	b, ok := pathID(c, "other")
	if !ok {
		return
	}

	users, err := h.graphService.MutualFollowers(c.Request.Context(), a, b)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": toUserResponses(users)})
}

// SuggestedFollowers returns followers of the user in the path that the
// acting user does not already follow.
func (h *Graph) SuggestedFollowers(c *gin.Context) {
	viewer, ok := actorID(c, h.contextManager)
	if !ok {
		return
	}
	target, ok := pathID(c, "id")
	if !ok {
		return
	}

	users, err := h.graphService.SuggestFollowers(c.Request.Context(), viewer, target)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": toUserResponses(users)})
}
