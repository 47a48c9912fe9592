package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrMissingToken is returned when the Authorization header carries no bearer token.
var ErrMissingToken = errors.New("missing bearer token")

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrMissingToken
	}

	return strings.TrimSpace(parts[1]), nil
}

// Define Context Key for storing the Payload struct, preventing key collisions with other packages.
type contextKey string

const contextPayloadKey contextKey = "auth_payload"

// WithPayload returns a copy of ctx carrying the verified payload.
func WithPayload(ctx context.Context, payload *Payload) context.Context {
	return context.WithValue(ctx, contextPayloadKey, payload)
}

// PayloadFromContext returns the verified payload, or nil for anonymous requests.
func PayloadFromContext(ctx context.Context) *Payload {
	payload, ok := ctx.Value(contextPayloadKey).(*Payload)
	if !ok {
		return nil
	}
	return payload
}
