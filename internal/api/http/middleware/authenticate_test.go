package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontext "github.com/imageshare/imageshare-server/internal/api/http/context"
	"github.com/imageshare/imageshare-server/internal/mocks"
	"github.com/imageshare/imageshare-server/internal/model"
	"github.com/imageshare/imageshare-server/internal/testutil"
)

func authTestEngine(tokenManager model.TokenManager) (*gin.Engine, *uint) {
	gin.SetMode(gin.TestMode)

	contextManager := apicontext.NewManager()
	authenticate := NewAuthenticate(tokenManager, contextManager, testutil.MakeNoopLogger())

	var seenUserID uint
	engine := gin.New()
	engine.GET("/protected", authenticate.Handle, func(c *gin.Context) {
		userID, _ := contextManager.GetUserIDFromContext(c.Request.Context())
		seenUserID = userID
		c.Status(http.StatusOK)
	})
	return engine, &seenUserID
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	engine, _ := authTestEngine(&mocks.TokenManager{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	engine, _ := authTestEngine(&mocks.TokenManager{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenManager := &mocks.TokenManager{}
	tokenManager.On("Parse", "bad-token").Return(uint(0), model.ErrAuth)

	engine, _ := authTestEngine(tokenManager)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenManager := &mocks.TokenManager{}
	tokenManager.On("Parse", "good-token").Return(uint(7), nil)

	engine, seenUserID := authTestEngine(tokenManager)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), *seenUserID)
}
