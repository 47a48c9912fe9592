package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the claims carried by a French Reborn access token.
//
// Username, Role and RoomID are informational snapshots taken at issue time.
// Authorization always reloads the account by UserID, so a token can never
// grant more than the stored role.
type Payload struct {
	// StandardClaims carries jti (Id), iat, exp and iss.
	jwt.StandardClaims

	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	RoomID   *int64 `json:"roomId,omitempty"`
}
