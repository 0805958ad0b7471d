package utils

import (
	"context"
)

type contextKey string

const (
	TokenKey contextKey = "token"
)

// SetTokenContext stores the admin session token on the request context.
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

// GetTokenFromContext reads the admin session token from the context.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}
