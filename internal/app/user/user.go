/*
Package user contains the identity model of a French Reborn citizen and the
Credential Store that persists it.

It defines the User struct, the closed set of roles and the username and
password rules applied before anything reaches the store.
*/
package user

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgtype"

	dbc "frenchreborn/internal/app/db/sqlc"
	"frenchreborn/internal/pkg/errs"
)

// Role is the stable code of a named role.
type Role string

const (
	// RoleCitizen is granted to every registered account.
	RoleCitizen Role = "citizen"

	// RoleOwner is reserved for the bootstrap account.
	RoleOwner Role = "owner"
)

var roleNames = map[Role]string{
	RoleCitizen: "Citoyen",
	RoleOwner:   "Propriétaire",
}

// DisplayName returns the French label shown to players.
func (r Role) DisplayName() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return string(r)
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

const (
	MinPasswordLength = 6
	MaxPasswordLength = 50

	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

var usernameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{4,22}$`)

// User represents an account. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	RoomID       *int64    `json:"roomId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsOwner reports whether the user holds the Owner role.
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// InRoom reports whether the user currently belongs to roomID.
func (u *User) InRoom(roomID int64) bool {
	return u.RoomID != nil && *u.RoomID == roomID
}

// View is the public JSON representation of a user.
type View struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	RoleName string `json:"roleName"`
	RoomID   *int64 `json:"roomId"`
}

// View builds the public representation.
func (u *User) View() View {
	return View{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		RoleName: u.Role.DisplayName(),
		RoomID:   u.RoomID,
	}
}

// ValidateUsername checks the 5-23 character naming rule.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return errs.NewError(errs.ErrInvalidUsername)
	}
	return nil
}

// ValidatePassword checks the password length rules.
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < MinPasswordLength || n > MaxPasswordLength || len(password) > maxPasswordBytes {
		return errs.NewError(errs.ErrInvalidPassword)
	}
	return nil
}

func fromRow(row dbc.User) *User {
	return &User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		Role:         Role(row.Role),
		RoomID:       int8Ptr(row.RoomID),
		CreatedAt:    row.CreatedAt.Time,
	}
}

func int8Ptr(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
