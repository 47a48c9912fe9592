package auth

import (
	"frenchreborn/internal/app/user"
	"frenchreborn/internal/pkg/errs"
)

// Capability names a privileged action.
type Capability string

const (
	CapCreateRoom Capability = "create_room"
	CapLockRoom   Capability = "lock_room"
	CapMuteUser   Capability = "mute_user"
)

var grants = map[user.Role]map[Capability]bool{
	user.RoleOwner: {
		CapCreateRoom: true,
		CapLockRoom:   true,
		CapMuteUser:   true,
	},
	user.RoleCitizen: {},
}

// Require fails with ErrForbidden unless u's role grants capability.
// It never mutates state.
func Require(u *user.User, capability Capability) error {
	if u == nil {
		return errs.NewError(errs.ErrUnauthorized)
	}
	if !grants[u.Role][capability] {
		return errs.NewError(errs.ErrForbidden)
	}
	return nil
}

// RequireMember fails with ErrNotRoomMember unless u currently belongs to roomID.
func RequireMember(u *user.User, roomID int64) error {
	if u == nil {
		return errs.NewError(errs.ErrUnauthorized)
	}
	if !u.InRoom(roomID) {
		return errs.NewError(errs.ErrNotRoomMember)
	}
	return nil
}
