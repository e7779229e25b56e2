// Package router assembles the HTTP routes and middleware.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imageshare/imageshare-server/internal/api/http/handler"
	"github.com/imageshare/imageshare-server/internal/api/http/middleware"
	"github.com/imageshare/imageshare-server/internal/logger"
	"github.com/imageshare/imageshare-server/internal/model"
	"github.com/imageshare/imageshare-server/internal/service"
)

// Router wires services, middleware and handlers into a gin engine.
type Router struct {
	userService         *service.User
	relationshipService *service.Relationship
	graphService        *service.Graph
	tokenManager        model.TokenManager
	contextManager      model.ContextManager
	logger              *logger.Logger
}

// New creates a new Router instance.
func New(
	userService *service.User,
	relationshipService *service.Relationship,
	graphService *service.Graph,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService:         userService,
		relationshipService: relationshipService,
		graphService:        graphService,
		tokenManager:        tokenManager,
		contextManager:      contextManager,
		logger:              logger,
	}
}

// Register builds the gin engine with all routes and middleware. Auth
// routes are public, everything else requires a bearer token.
func (r *Router) Register() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(middleware.NewLogging(r.logger).Handle, gin.Recovery())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuth(r.userService, r.logger)
	userHandler := handler.NewUser(r.userService, r.logger)
	relationshipHandler := handler.NewRelationship(r.relationshipService, r.contextManager, r.logger)
	graphHandler := handler.NewGraph(r.graphService, r.contextManager, r.logger)

	api := engine.Group("/api/v1")

	public := api.Group("/auth")
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)

	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)
	protected := api.Group("")
	protected.Use(authenticate.Handle)

	protected.GET("/users/:id", userHandler.GetByID)
	protected.GET("/users/:id/mutual-followers/:other", graphHandler.MutualFollowers)
	protected.GET("/users/:id/suggested-followers", graphHandler.SuggestedFollowers)
	protected.GET("/users/:id/following", relationshipHandler.IsFollowing)

	protected.POST("/follow", relationshipHandler.Follow)
	protected.POST("/unfollow", relationshipHandler.Unfollow)

	protected.POST("/posts", relationshipHandler.CreatePost)
	protected.GET("/posts/:id", relationshipHandler.GetPost)
	protected.GET("/posts/:id/liked", relationshipHandler.IsLiked)
	protected.POST("/posts/like", relationshipHandler.Like)
	protected.POST("/posts/unlike", relationshipHandler.Unlike)

	protected.GET("/feed", graphHandler.Feed)
	protected.GET("/posts-ranked", graphHandler.Ranked)

	return engine
}
