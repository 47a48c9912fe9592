package user

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"frenchreborn/internal/app/db"
	dbc "frenchreborn/internal/app/db/sqlc"
	"frenchreborn/internal/pkg/errs"
)

// Store is the Credential Store. Uniqueness is enforced by the database index,
// so concurrent registrations of one name can never both succeed.
type Store struct {
	q dbc.Querier
}

// NewStore creates a Credential Store over q.
func NewStore(q dbc.Querier) *Store {
	return &Store{q: q}
}

// Create inserts a user. A taken username yields ErrUserAlreadyExists.
func (s *Store) Create(ctx context.Context, username, passwordHash string, role Role) (*User, error) {
	if !role.Valid() {
		role = RoleCitizen
	}

	row, err := s.q.CreateUser(ctx, dbc.CreateUserParams{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         string(role),
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, errs.Wrap(errs.ErrUserAlreadyExists, err)
		}
		return nil, errs.Wrap(errs.ErrUnknown, err)
	}

	return fromRow(row), nil
}

// FindByUsername returns the user or nil when no account has that name.
func (s *Store) FindByUsername(ctx context.Context, username string) (*User, error) {
	row, err := s.q.GetUserByUsername(ctx, username)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, errs.Wrap(errs.ErrUnknown, err)
	}
	return fromRow(row), nil
}

// FindByID returns the user or nil when the id is unknown.
func (s *Store) FindByID(ctx context.Context, id int64) (*User, error) {
	row, err := s.q.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, errs.Wrap(errs.ErrUnknown, err)
	}
	return fromRow(row), nil
}

// UpdateRoom moves the user into roomID, or out of any room when roomID is nil.
func (s *Store) UpdateRoom(ctx context.Context, userID int64, roomID *int64) (*User, error) {
	arg := dbc.UpdateUserRoomParams{ID: userID}
	if roomID != nil {
		arg.RoomID = pgtype.Int8{Int64: *roomID, Valid: true}
	}

	row, err := s.q.UpdateUserRoom(ctx, arg)
	if err != nil {
		switch {
		case db.IsNotFound(err):
			return nil, errs.Wrap(errs.ErrUserNotFound, err)
		case db.IsForeignKeyViolation(err, db.ConstraintUserRoomFK):
			return nil, errs.Wrap(errs.ErrRoomNotFound, err)
		default:
			return nil, errs.Wrap(errs.ErrUnknown, err)
		}
	}
	return fromRow(row), nil
}

// Mute silences a user. Muting twice is a no-op.
func (s *Store) Mute(ctx context.Context, userID, mutedBy int64) error {
	err := s.q.MuteUser(ctx, dbc.MuteUserParams{
		UserID:  userID,
		MutedBy: pgtype.Int8{Int64: mutedBy, Valid: true},
	})
	if err != nil {
		if db.IsForeignKeyViolation(err, "") {
			return errs.Wrap(errs.ErrUserNotFound, err)
		}
		return errs.Wrap(errs.ErrUnknown, err)
	}
	return nil
}

// Unmute lifts a mute and reports whether one existed.
func (s *Store) Unmute(ctx context.Context, userID int64) (bool, error) {
	n, err := s.q.UnmuteUser(ctx, userID)
	if err != nil {
		return false, errs.Wrap(errs.ErrUnknown, err)
	}
	return n > 0, nil
}

// IsMuted reports whether the user is currently muted.
func (s *Store) IsMuted(ctx context.Context, userID int64) (bool, error) {
	muted, err := s.q.IsUserMuted(ctx, userID)
	if err != nil {
		return false, errs.Wrap(errs.ErrUnknown, err)
	}
	return muted, nil
}
