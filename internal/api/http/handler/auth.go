package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imageshare/imageshare-server/internal/logger"
	"github.com/imageshare/imageshare-server/internal/service"
)

// Auth serves registration and login.
type Auth struct {
	userService *service.User
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(userService *service.User, logger *logger.Logger) *Auth {
	return &Auth{userService: userService, logger: logger}
}

type registerRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Avatar        string `json:"avatar"`
	Bio           string `json:"bio"`
	Mobile        string `json:"mobile"`
	Email         string `json:"email"`
	IsAgeMajority bool   `json:"is_age_majority"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user account.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), service.RegisterParams{
		Username:      req.Username,
		Password:      req.Password,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		City:          req.City,
		Country:       req.Country,
		Avatar:        req.Avatar,
		Bio:           req.Bio,
		Mobile:        req.Mobile,
		Email:         req.Email,
		IsAgeMajority: req.IsAgeMajority,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login verifies credentials and returns an access token.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}
