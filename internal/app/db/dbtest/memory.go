/*
Package dbtest provides an in-memory db.Store for tests. It reproduces the
constraint behaviour of the Postgres schema: case-insensitive unique names,
foreign keys and pgx.ErrNoRows on empty single-row reads.
*/
package dbtest

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"frenchreborn/internal/app/db"
	dbc "frenchreborn/internal/app/db/sqlc"
)

// MemoryStore is a concurrency-safe db.Store backed by maps.
type MemoryStore struct {
	mu      sync.Mutex
	st      *state
	failure error
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{st: newState()}
}

var _ db.Store = (*MemoryStore)(nil)

// Fail makes every following call return err until it is called again with nil.
func (s *MemoryStore) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// DeleteUser removes a user the way ON DELETE SET NULL / CASCADE would.
func (s *MemoryStore) DeleteUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.st.users, id)
	delete(s.st.mutes, id)
	for i := range s.st.messages {
		if s.st.messages[i].UserID.Valid && s.st.messages[i].UserID.Int64 == id {
			s.st.messages[i].UserID = pgtype.Int8{}
		}
	}
}

// CountRooms returns the number of stored rooms.
func (s *MemoryStore) CountRooms() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.rooms)
}

// ExecTx runs fn against a copy of the state and publishes it only when fn succeeds.
func (s *MemoryStore) ExecTx(ctx context.Context, fn func(q dbc.Querier) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return s.failure
	}
	draft := s.st.clone()
	if err := fn(draft); err != nil {
		return err
	}
	s.st = draft
	return nil
}

func (s *MemoryStore) CreateMessage(ctx context.Context, arg dbc.CreateMessageParams) (dbc.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return dbc.Message{}, s.failure
	}
	return s.st.CreateMessage(ctx, arg)
}

func (s *MemoryStore) CreateRoom(ctx context.Context, name string) (dbc.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return dbc.Room{}, s.failure
	}
	return s.st.CreateRoom(ctx, name)
}

func (s *MemoryStore) CreateRoomIfNotExists(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return s.failure
	}
	return s.st.CreateRoomIfNotExists(ctx, name)
}

func (s *MemoryStore) CreateUser(ctx context.Context, arg dbc.CreateUserParams) (dbc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return dbc.User{}, s.failure
	}
	return s.st.CreateUser(ctx, arg)
}

func (s *MemoryStore) CreateUserIfNotExists(ctx context.Context, arg dbc.CreateUserIfNotExistsParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return s.failure
	}
	return s.st.CreateUserIfNotExists(ctx, arg)
}

func (s *MemoryStore) GetRoomByID(ctx context.Context, id int64) (dbc.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return dbc.Room{}, s.failure
	}
	return s.st.GetRoomByID(ctx, id)
}

func (s *MemoryStore) GetRoomByName(ctx context.Context, name string) (dbc.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return dbc.Room{}, s.failure
	}
	return s.st.GetRoomByName(ctx, name)
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id int64) (dbc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return dbc.User{}, s.failure
	}
	return s.st.GetUserByID(ctx, id)
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (dbc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return dbc.User{}, s.failure
	}
	return s.st.GetUserByUsername(ctx, username)
}

func (s *MemoryStore) IsUserMuted(ctx context.Context, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return false, s.failure
	}
	return s.st.IsUserMuted(ctx, userID)
}

func (s *MemoryStore) ListRoomMessages(ctx context.Context, arg dbc.ListRoomMessagesParams) ([]dbc.ListRoomMessagesRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return nil, s.failure
	}
	return s.st.ListRoomMessages(ctx, arg)
}

func (s *MemoryStore) ListRooms(ctx context.Context) ([]dbc.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return nil, s.failure
	}
	return s.st.ListRooms(ctx)
}

func (s *MemoryStore) MuteUser(ctx context.Context, arg dbc.MuteUserParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return s.failure
	}
	return s.st.MuteUser(ctx, arg)
}

func (s *MemoryStore) SetRoomLocked(ctx context.Context, arg dbc.SetRoomLockedParams) (dbc.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return dbc.Room{}, s.failure
	}
	return s.st.SetRoomLocked(ctx, arg)
}

func (s *MemoryStore) UnmuteUser(ctx context.Context, userID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return 0, s.failure
	}
	return s.st.UnmuteUser(ctx, userID)
}

func (s *MemoryStore) UpdateUserRoom(ctx context.Context, arg dbc.UpdateUserRoomParams) (dbc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return dbc.User{}, s.failure
	}
	return s.st.UpdateUserRoom(ctx, arg)
}

// state holds the tables. It implements dbc.Querier without locking; callers hold MemoryStore.mu.
type state struct {
	users    map[int64]dbc.User
	rooms    map[int64]dbc.Room
	messages []dbc.Message
	mutes    map[int64]dbc.MutedUser

	userSeq, roomSeq, messageSeq int64
	lastStamp                    time.Time
}

func newState() *state {
	return &state{
		users: make(map[int64]dbc.User),
		rooms: make(map[int64]dbc.Room),
		mutes: make(map[int64]dbc.MutedUser),
	}
}

func (st *state) clone() *state {
	c := *st
	c.users = make(map[int64]dbc.User, len(st.users))
	for k, v := range st.users {
		c.users[k] = v
	}
	c.rooms = make(map[int64]dbc.Room, len(st.rooms))
	for k, v := range st.rooms {
		c.rooms[k] = v
	}
	c.mutes = make(map[int64]dbc.MutedUser, len(st.mutes))
	for k, v := range st.mutes {
		c.mutes[k] = v
	}
	c.messages = slices.Clone(st.messages)
	return &c
}

// now returns a non-decreasing timestamp, mirroring clock_timestamp() on a single server.
func (st *state) now() pgtype.Timestamptz {
	t := time.Now()
	if t.Before(st.lastStamp) {
		t = st.lastStamp
	}
	st.lastStamp = t
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           pgerrcode.UniqueViolation,
		Message:        "duplicate key value violates unique constraint \"" + constraint + "\"",
		ConstraintName: constraint,
	}
}

func foreignKeyViolation(constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           pgerrcode.ForeignKeyViolation,
		Message:        "insert or update violates foreign key constraint \"" + constraint + "\"",
		ConstraintName: constraint,
	}
}

func (st *state) userByName(name string) (dbc.User, bool) {
	for _, u := range st.users {
		if strings.EqualFold(u.Username, name) {
			return u, true
		}
	}
	return dbc.User{}, false
}

func (st *state) roomByName(name string) (dbc.Room, bool) {
	for _, r := range st.rooms {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return dbc.Room{}, false
}

func (st *state) CreateMessage(_ context.Context, arg dbc.CreateMessageParams) (dbc.Message, error) {
	if _, ok := st.rooms[arg.RoomID]; !ok {
		return dbc.Message{}, foreignKeyViolation(db.ConstraintMessageRoomFK)
	}
	if arg.UserID.Valid {
		if _, ok := st.users[arg.UserID.Int64]; !ok {
			return dbc.Message{}, foreignKeyViolation(db.ConstraintMessageUserFK)
		}
	}
	st.messageSeq++
	m := dbc.Message{
		ID:        st.messageSeq,
		UserID:    arg.UserID,
		RoomID:    arg.RoomID,
		Content:   arg.Content,
		CreatedAt: st.now(),
	}
	st.messages = append(st.messages, m)
	return m, nil
}

func (st *state) CreateRoom(_ context.Context, name string) (dbc.Room, error) {
	if _, ok := st.roomByName(name); ok {
		return dbc.Room{}, uniqueViolation(db.ConstraintRoomNameKey)
	}
	st.roomSeq++
	r := dbc.Room{ID: st.roomSeq, Name: name, CreatedAt: st.now()}
	st.rooms[r.ID] = r
	return r, nil
}

func (st *state) CreateRoomIfNotExists(ctx context.Context, name string) error {
	if _, ok := st.roomByName(name); ok {
		return nil
	}
	_, err := st.CreateRoom(ctx, name)
	return err
}

func (st *state) CreateUser(_ context.Context, arg dbc.CreateUserParams) (dbc.User, error) {
	if _, ok := st.userByName(arg.Username); ok {
		return dbc.User{}, uniqueViolation(db.ConstraintUsernameKey)
	}
	st.userSeq++
	u := dbc.User{
		ID:           st.userSeq,
		Username:     arg.Username,
		PasswordHash: arg.PasswordHash,
		Role:         arg.Role,
		CreatedAt:    st.now(),
	}
	st.users[u.ID] = u
	return u, nil
}

func (st *state) CreateUserIfNotExists(ctx context.Context, arg dbc.CreateUserIfNotExistsParams) error {
	if _, ok := st.userByName(arg.Username); ok {
		return nil
	}
	if arg.RoomID.Valid {
		if _, ok := st.rooms[arg.RoomID.Int64]; !ok {
			return foreignKeyViolation(db.ConstraintUserRoomFK)
		}
	}
	u, err := st.CreateUser(ctx, dbc.CreateUserParams{
		Username:     arg.Username,
		PasswordHash: arg.PasswordHash,
		Role:         arg.Role,
	})
	if err != nil {
		return err
	}
	u.RoomID = arg.RoomID
	st.users[u.ID] = u
	return nil
}

func (st *state) GetRoomByID(_ context.Context, id int64) (dbc.Room, error) {
	r, ok := st.rooms[id]
	if !ok {
		return dbc.Room{}, pgx.ErrNoRows
	}
	return r, nil
}

func (st *state) GetRoomByName(_ context.Context, name string) (dbc.Room, error) {
	r, ok := st.roomByName(name)
	if !ok {
		return dbc.Room{}, pgx.ErrNoRows
	}
	return r, nil
}

func (st *state) GetUserByID(_ context.Context, id int64) (dbc.User, error) {
	u, ok := st.users[id]
	if !ok {
		return dbc.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (st *state) GetUserByUsername(_ context.Context, username string) (dbc.User, error) {
	u, ok := st.userByName(username)
	if !ok {
		return dbc.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (st *state) IsUserMuted(_ context.Context, userID int64) (bool, error) {
	_, ok := st.mutes[userID]
	return ok, nil
}

func (st *state) ListRoomMessages(_ context.Context, arg dbc.ListRoomMessagesParams) ([]dbc.ListRoomMessagesRow, error) {
	var rows []dbc.ListRoomMessagesRow
	for _, m := range st.messages {
		if m.RoomID != arg.RoomID || m.ID <= arg.AfterID {
			continue
		}
		row := dbc.ListRoomMessagesRow{
			ID:        m.ID,
			UserID:    m.UserID,
			RoomID:    m.RoomID,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
		if m.UserID.Valid {
			if _, muted := st.mutes[m.UserID.Int64]; muted {
				continue
			}
			if u, ok := st.users[m.UserID.Int64]; ok {
				row.Username = pgtype.Text{String: u.Username, Valid: true}
				row.Role = pgtype.Text{String: u.Role, Valid: true}
			}
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ti, tj := rows[i].CreatedAt.Time, rows[j].CreatedAt.Time
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return rows[i].ID < rows[j].ID
	})
	if arg.MaxRows >= 0 && len(rows) > int(arg.MaxRows) {
		rows = rows[:arg.MaxRows]
	}
	return rows, nil
}

func (st *state) ListRooms(_ context.Context) ([]dbc.Room, error) {
	rooms := make([]dbc.Room, 0, len(st.rooms))
	for _, r := range st.rooms {
		rooms = append(rooms, r)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

func (st *state) MuteUser(_ context.Context, arg dbc.MuteUserParams) error {
	if _, ok := st.users[arg.UserID]; !ok {
		return foreignKeyViolation("muted_users_user_id_fkey")
	}
	if _, ok := st.mutes[arg.UserID]; ok {
		return nil
	}
	st.mutes[arg.UserID] = dbc.MutedUser{UserID: arg.UserID, MutedBy: arg.MutedBy, CreatedAt: st.now()}
	return nil
}

func (st *state) SetRoomLocked(_ context.Context, arg dbc.SetRoomLockedParams) (dbc.Room, error) {
	r, ok := st.rooms[arg.ID]
	if !ok {
		return dbc.Room{}, pgx.ErrNoRows
	}
	r.Locked = arg.Locked
	st.rooms[r.ID] = r
	return r, nil
}

func (st *state) UnmuteUser(_ context.Context, userID int64) (int64, error) {
	if _, ok := st.mutes[userID]; !ok {
		return 0, nil
	}
	delete(st.mutes, userID)
	return 1, nil
}

func (st *state) UpdateUserRoom(_ context.Context, arg dbc.UpdateUserRoomParams) (dbc.User, error) {
	u, ok := st.users[arg.ID]
	if !ok {
		return dbc.User{}, pgx.ErrNoRows
	}
	if arg.RoomID.Valid {
		if _, ok := st.rooms[arg.RoomID.Int64]; !ok {
			return dbc.User{}, foreignKeyViolation(db.ConstraintUserRoomFK)
		}
	}
	u.RoomID = arg.RoomID
	st.users[u.ID] = u
	return u, nil
}
