package chat

import (
	"context"

	"github.com/rs/zerolog"

	"frenchreborn/internal/app/auth"
	"frenchreborn/internal/app/user"
	"frenchreborn/internal/pkg/errs"
	"frenchreborn/internal/pkg/logx"
)

// Moderator mutes and unmutes accounts. Muted users cannot post and their
// messages are hidden from every listing.
type Moderator struct {
	users  *user.Store
	logger zerolog.Logger
}

// NewModerator creates a Moderator.
func NewModerator(users *user.Store) *Moderator {
	return &Moderator{
		users:  users,
		logger: logx.Logger().With().Str("component", "Moderator").Logger(),
	}
}

func (m *Moderator) target(ctx context.Context, actor *user.User, username string) (*user.User, error) {
	if err := auth.Require(actor, auth.CapMuteUser); err != nil {
		return nil, err
	}

	target, err := m.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errs.NewError(errs.ErrUserNotFound)
	}
	return target, nil
}

// Mute silences username. Owners cannot be muted.
func (m *Moderator) Mute(ctx context.Context, actor *user.User, username string) error {
	target, err := m.target(ctx, actor, username)
	if err != nil {
		return err
	}
	if target.IsOwner() {
		return errs.NewError(errs.ErrForbidden)
	}

	if err := m.users.Mute(ctx, target.ID, actor.ID); err != nil {
		return err
	}

	m.logger.Info().Int64("user_id", target.ID).Int64("muted_by", actor.ID).Msg("User muted.")
	return nil
}

// Unmute lifts a mute and reports whether one was in place.
func (m *Moderator) Unmute(ctx context.Context, actor *user.User, username string) (bool, error) {
	target, err := m.target(ctx, actor, username)
	if err != nil {
		return false, err
	}

	lifted, err := m.users.Unmute(ctx, target.ID)
	if err != nil {
		return false, err
	}

	if lifted {
		m.logger.Info().Int64("user_id", target.ID).Int64("unmuted_by", actor.ID).Msg("User unmuted.")
	}
	return lifted, nil
}
