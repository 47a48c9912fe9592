/*
Package chat contains the province (room) registry, the per-room message ledger
and the idempotent bootstrap that seeds the owner account and default province.
*/
package chat

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"frenchreborn/internal/app/auth"
	"frenchreborn/internal/app/db"
	dbc "frenchreborn/internal/app/db/sqlc"
	"frenchreborn/internal/app/user"
	"frenchreborn/internal/pkg/errs"
	"frenchreborn/internal/pkg/logx"
	"frenchreborn/internal/pkg/metrics"
)

// MaxRoomNameLength bounds province names, in runes.
const MaxRoomNameLength = 50

// Room is a province.
type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Locked    bool      `json:"locked"`
	CreatedAt time.Time `json:"createdAt"`
}

func roomFromRow(row dbc.Room) Room {
	return Room{
		ID:        row.ID,
		Name:      row.Name,
		Locked:    row.Locked,
		CreatedAt: row.CreatedAt.Time,
	}
}

// Registry persists provinces. Name uniqueness is case-insensitive and enforced
// by the database.
type Registry struct {
	q       dbc.Querier
	users   *user.Store
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewRegistry creates a Registry. m may be nil.
func NewRegistry(q dbc.Querier, users *user.Store, m *metrics.Metrics) *Registry {
	return &Registry{
		q:       q,
		users:   users,
		metrics: m,
		logger:  logx.Logger().With().Str("component", "Registry").Logger(),
	}
}

// NormalizeRoomName trims name and checks its length.
func NormalizeRoomName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxRoomNameLength {
		return "", errs.NewError(errs.ErrRoomNameInvalid)
	}
	return name, nil
}

// Create adds a province on behalf of actor, who must hold CapCreateRoom.
func (r *Registry) Create(ctx context.Context, actor *user.User, name string) (*Room, error) {
	if err := auth.Require(actor, auth.CapCreateRoom); err != nil {
		return nil, err
	}

	name, err := NormalizeRoomName(name)
	if err != nil {
		return nil, err
	}

	row, err := r.q.CreateRoom(ctx, name)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, errs.Wrap(errs.ErrRoomNameExists, err)
		}
		return nil, errs.Wrap(errs.ErrUnknown, err)
	}

	if r.metrics != nil {
		r.metrics.RoomsCreated.Inc()
	}
	r.logger.Info().Int64("room_id", row.ID).Int64("created_by", actor.ID).Msg("Province created.")

	room := roomFromRow(row)
	return &room, nil
}

// List returns every province ordered by id.
func (r *Registry) List(ctx context.Context) ([]Room, error) {
	rows, err := r.q.ListRooms(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrUnknown, err)
	}
	return lo.Map(rows, func(row dbc.Room, _ int) Room { return roomFromRow(row) }), nil
}

// Get returns the province, or nil when id is unknown.
func (r *Registry) Get(ctx context.Context, id int64) (*Room, error) {
	row, err := r.q.GetRoomByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, errs.Wrap(errs.ErrUnknown, err)
	}
	room := roomFromRow(row)
	return &room, nil
}

// SetLocked locks or unlocks a province on behalf of actor, who must hold CapLockRoom.
func (r *Registry) SetLocked(ctx context.Context, actor *user.User, id int64, locked bool) (*Room, error) {
	if err := auth.Require(actor, auth.CapLockRoom); err != nil {
		return nil, err
	}

	row, err := r.q.SetRoomLocked(ctx, dbc.SetRoomLockedParams{ID: id, Locked: locked})
	if err != nil {
		if db.IsNotFound(err) {
			return nil, errs.Wrap(errs.ErrRoomNotFound, err)
		}
		return nil, errs.Wrap(errs.ErrUnknown, err)
	}

	r.logger.Info().Int64("room_id", id).Bool("locked", locked).Msg("Province lock changed.")
	room := roomFromRow(row)
	return &room, nil
}

// Join moves actor into province id. Locked provinces admit owners only.
func (r *Registry) Join(ctx context.Context, actor *user.User, id int64) (*user.User, error) {
	if actor == nil {
		return nil, errs.NewError(errs.ErrUnauthorized)
	}

	room, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, errs.NewError(errs.ErrRoomNotFound)
	}
	if room.Locked && !actor.IsOwner() && !actor.InRoom(id) {
		return nil, errs.NewError(errs.ErrRoomLocked)
	}

	return r.users.UpdateRoom(ctx, actor.ID, &room.ID)
}
