package dbtest_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frenchreborn/internal/app/db"
	"frenchreborn/internal/app/db/dbtest"
	dbc "frenchreborn/internal/app/db/sqlc"
)

func TestMemoryStore_Constraints(t *testing.T) {
	ctx := context.Background()
	s := dbtest.NewMemoryStore()

	_, err := s.CreateUser(ctx, dbc.CreateUserParams{Username: "Alice123", PasswordHash: "h", Role: "citizen"})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, dbc.CreateUserParams{Username: "alice123", PasswordHash: "h", Role: "citizen"})
	assert.True(t, db.IsUniqueViolation(err))

	_, err = s.CreateMessage(ctx, dbc.CreateMessageParams{RoomID: 99, Content: "x"})
	assert.True(t, db.IsForeignKeyViolation(err, db.ConstraintMessageRoomFK))

	_, err = s.GetUserByID(ctx, 42)
	assert.True(t, db.IsNotFound(err))
}

func TestMemoryStore_ConcurrentUniqueness(t *testing.T) {
	ctx := context.Background()
	s := dbtest.NewMemoryStore()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.CreateRoom(ctx, "Bretagne"); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, s.CountRooms())
}

func TestMemoryStore_ExecTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := dbtest.NewMemoryStore()
	boom := errors.New("boom")

	err := s.ExecTx(ctx, func(q dbc.Querier) error {
		if err := q.CreateRoomIfNotExists(ctx, "French Reborn"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.CountRooms())
}

func TestMemoryStore_ListRoomMessages(t *testing.T) {
	ctx := context.Background()
	s := dbtest.NewMemoryStore()

	room, err := s.CreateRoom(ctx, "French Reborn")
	require.NoError(t, err)
	alice, err := s.CreateUser(ctx, dbc.CreateUserParams{Username: "Alice123", PasswordHash: "h", Role: "citizen"})
	require.NoError(t, err)
	bob, err := s.CreateUser(ctx, dbc.CreateUserParams{Username: "Bobby99", PasswordHash: "h", Role: "citizen"})
	require.NoError(t, err)

	post := func(u dbc.User, content string) {
		_, err := s.CreateMessage(ctx, dbc.CreateMessageParams{
			UserID:  pgtype.Int8{Int64: u.ID, Valid: true},
			RoomID:  room.ID,
			Content: content,
		})
		require.NoError(t, err)
	}
	post(alice, "one")
	post(bob, "two")
	post(alice, "three")

	require.NoError(t, s.MuteUser(ctx, dbc.MuteUserParams{UserID: bob.ID}))
	rows, err := s.ListRoomMessages(ctx, dbc.ListRoomMessagesParams{RoomID: room.ID, MaxRows: 10})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "one", rows[0].Content)
	assert.Equal(t, "three", rows[1].Content)

	s.DeleteUser(alice.ID)
	rows, err = s.ListRoomMessages(ctx, dbc.ListRoomMessagesParams{RoomID: room.ID, AfterID: 1, MaxRows: 10})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].UserID.Valid)
	assert.False(t, rows[0].Username.Valid)
}
