package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"frenchreborn/internal/pkg/randx"
)

const (
	// TokenIssuer identifies the issuer of the token.
	TokenIssuer = "FrenchReborn-Server"
)

// ErrInvalidToken is returned for any token that fails parsing or validation.
var ErrInvalidToken = errors.New("invalid or expired token")

// Issuer signs and verifies HS256 tokens with a process-wide secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates an Issuer. The secret is read-only for the life of the process.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// GenerateToken fills the standard claims of payload, signs it and returns
// the token string with its expiry.
func (i *Issuer) GenerateToken(payload *Payload) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)

	payload.StandardClaims = jwt.StandardClaims{
		Id:        randx.TokenID(),
		ExpiresAt: expiresAt.Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, time.Unix(expiresAt.Unix(), 0), nil
}

// ParseToken verifies the signature, the algorithm and the time claims of tokenString.
func (i *Issuer) ParseToken(tokenString string) (*Payload, error) {
	claims := &Payload{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Id == "" || claims.UserID <= 0 || claims.ExpiresAt == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
