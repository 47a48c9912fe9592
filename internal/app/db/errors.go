package db

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names referenced by the domain layer when translating violations.
const (
	ConstraintUsernameKey   = "users_username_key"
	ConstraintRoomNameKey   = "rooms_name_key"
	ConstraintMessageRoomFK = "messages_room_id_fkey"
	ConstraintMessageUserFK = "messages_user_id_fkey"
	ConstraintUserRoomFK    = "users_room_id_fkey"
)

// IsUniqueViolation checks if the error is a PostgreSQL unique constraint violation (code 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

// IsForeignKeyViolation reports whether err is a foreign key violation (code 23503).
// When constraint is non-empty the violated constraint must match it.
func IsForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation &&
			(constraint == "" || pgErr.ConstraintName == constraint)
	}
	return false
}

// IsNotFound reports whether err means a single-row query matched nothing.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
