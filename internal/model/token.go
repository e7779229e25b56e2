package model

// TokenManager issues and validates opaque access tokens for users.
type TokenManager interface {
	Generate(userID uint) (string, error)
	Parse(token string) (uint, error)
}
