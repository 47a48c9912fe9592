package chat

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
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

const (
	DefaultListLimit = 200
	MaxListLimit     = 500

	// UnknownAuthor is shown for messages whose author no longer exists.
	UnknownAuthor = "unknown user"
)

// Message is a ledger entry with its author denormalized.
type Message struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"userId"`
	RoomID    int64     `json:"roomId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Username  string    `json:"username"`
	Role      user.Role `json:"role,omitempty"`
	RoleName  string    `json:"roleName,omitempty"`
}

// Ledger is the append-only message log. Ids come from one global sequence and
// reads are ordered by (created_at, id).
type Ledger struct {
	q       dbc.Querier
	users   *user.Store
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewLedger creates a Ledger. m may be nil.
func NewLedger(q dbc.Querier, users *user.Store, m *metrics.Metrics) *Ledger {
	return &Ledger{
		q:       q,
		users:   users,
		metrics: m,
		logger:  logx.Logger().With().Str("component", "Ledger").Logger(),
	}
}

// Append writes content to roomID as actor. The actor must be a member of the
// room and not muted; blank content is rejected.
func (l *Ledger) Append(ctx context.Context, actor *user.User, roomID int64, content string) (*Message, error) {
	if err := auth.RequireMember(actor, roomID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, errs.NewError(errs.ErrMessageContentEmpty)
	}

	muted, err := l.users.IsMuted(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if muted {
		return nil, errs.NewError(errs.ErrUserMuted)
	}

	row, err := l.q.CreateMessage(ctx, dbc.CreateMessageParams{
		UserID:  pgtype.Int8{Int64: actor.ID, Valid: true},
		RoomID:  roomID,
		Content: content,
	})
	if err != nil {
		switch {
		case db.IsForeignKeyViolation(err, db.ConstraintMessageRoomFK):
			return nil, errs.Wrap(errs.ErrRoomNotFound, err)
		case db.IsForeignKeyViolation(err, db.ConstraintMessageUserFK):
			return nil, errs.Wrap(errs.ErrAuthorNotFound, err)
		default:
			return nil, errs.Wrap(errs.ErrUnknown, err)
		}
	}

	if l.metrics != nil {
		l.metrics.MessagesPosted.Inc()
	}
	l.logger.Debug().Int64("message_id", row.ID).Int64("room_id", roomID).Msg("Message appended.")

	authorID := actor.ID
	return &Message{
		ID:        row.ID,
		UserID:    &authorID,
		RoomID:    row.RoomID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt.Time,
		Username:  actor.Username,
		Role:      actor.Role,
		RoleName:  actor.Role.DisplayName(),
	}, nil
}

// ListByRoom returns the messages of roomID with id > afterID in ascending
// (created_at, id) order, at most limit of them. Each call re-queries the store.
//
// afterID is a sequence cursor. It assumes ids become visible in allocation
// order, which holds on a single primary with short insert transactions. A
// message whose transaction commits after a higher id was already read is
// skipped by a caller polling with that higher cursor.
func (l *Ledger) ListByRoom(ctx context.Context, actor *user.User, roomID, afterID int64, limit int) ([]Message, error) {
	if err := auth.RequireMember(actor, roomID); err != nil {
		return nil, err
	}

	rows, err := l.q.ListRoomMessages(ctx, dbc.ListRoomMessagesParams{
		RoomID:  roomID,
		AfterID: max(afterID, 0),
		MaxRows: int32(ClampLimit(limit)),
	})
	if err != nil {
		return nil, errs.Wrap(errs.ErrUnknown, err)
	}

	return lo.Map(rows, func(row dbc.ListRoomMessagesRow, _ int) Message {
		return messageFromRow(row)
	}), nil
}

// ClampLimit applies the default and maximum page size.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

func messageFromRow(row dbc.ListRoomMessagesRow) Message {
	m := Message{
		ID:        row.ID,
		RoomID:    row.RoomID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt.Time,
		Username:  UnknownAuthor,
	}
	if row.UserID.Valid {
		id := row.UserID.Int64
		m.UserID = &id
	}
	if row.Username.Valid {
		m.Username = row.Username.String
		m.Role = user.Role(row.Role.String)
		m.RoleName = m.Role.DisplayName()
	}
	return m
}
