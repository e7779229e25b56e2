package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imageshare/imageshare-server/internal/logger"
	"github.com/imageshare/imageshare-server/internal/model"
	"github.com/imageshare/imageshare-server/internal/service"
)

// userResponse is the public view of a user. The password hash never
// leaves the server.
type userResponse struct {
	ID            uint   `json:"id"`
	Username      string `json:"username"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Avatar        string `json:"avatar,omitempty"`
	Bio           string `json:"bio,omitempty"`
	Mobile        string `json:"mobile,omitempty"`
	Email         string `json:"email,omitempty"`
	IsAgeMajority bool   `json:"is_age_majority"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{
		ID:            u.ID,
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		City:          u.City,
		Country:       u.Country,
		Avatar:        u.Avatar,
		Bio:           u.Bio,
		Mobile:        u.Mobile,
		Email:         u.Email,
		IsAgeMajority: u.IsAgeMajority,
	}
}

func toUserResponses(users []model.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

// pathID parses a positive integer path parameter. The bit size tracks
// the platform's uint so the conversion below never truncates.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// User serves user profile lookups.
type User struct {
	userService *service.User
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService *service.User, logger *logger.Logger) *User {
	return &User{userService: userService, logger: logger}
}

// GetByID returns the user identified by the id path parameter.
func (h *User) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
