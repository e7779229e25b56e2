package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/imageshare/imageshare-server/internal/model"
)

// Claims represents JWT claims with the authenticated user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint `json:"user_id"`
}

// JWT implements TokenManager backed by symmetric HMAC. Secret, signing
// algorithm and token lifetime come from the credential resolver.
type JWT struct {
	secretKey string
	method    jwt.SigningMethod
	expiry    time.Duration
}

// NewJWT creates a JWT token manager. Only HMAC algorithms are supported;
// an unknown or non-HMAC algorithm and an empty secret fail with ErrAuth.
func NewJWT(secretKey, algorithm string, expiryMinutes int) (*JWT, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("%w: empty signing secret", model.ErrAuth)
	}

	method := jwt.GetSigningMethod(strings.ToUpper(algorithm))
	if method == nil {
		return nil, fmt.Errorf("%w: unknown signing algorithm %q", model.ErrAuth, algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("%w: unsupported signing algorithm %q", model.ErrAuth, algorithm)
	}

	if expiryMinutes <= 0 {
		return nil, fmt.Errorf("%w: token expiry must be positive", model.ErrAuth)
	}

	return &JWT{
		secretKey: secretKey,
		method:    method,
		expiry:    time.Duration(expiryMinutes) * time.Minute,
	}, nil
}

// Generate creates a signed access token for the user.
func (j *JWT) Generate(userID uint) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(j.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Parse validates a token and extracts the user ID.
func (j *JWT) Parse(tokenString string) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrAuth, err)
	}
	if !token.Valid {
		return 0, fmt.Errorf("%w: token is invalid", model.ErrAuth)
	}
	if claims.UserID == 0 {
		return 0, fmt.Errorf("%w: token carries no user id", model.ErrAuth)
	}
	return claims.UserID, nil
}

var _ model.TokenManager = (*JWT)(nil)
