package user_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frenchreborn/internal/app/db/dbtest"
	"frenchreborn/internal/app/user"
	"frenchreborn/internal/pkg/errs"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"typical", "Alice123", true},
		{"minimum length", "abcde", true},
		{"maximum length", "a" + strings.Repeat("b", 22), true},
		{"too short", "abcd", false},
		{"too long", "a" + strings.Repeat("b", 23), false},
		{"leading digit", "1alice", false},
		{"space", "alice bob", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := user.ValidateUsername(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, errs.ErrInvalidUsername, errs.CodeOf(err))
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, user.ValidatePassword("secret1"))
	assert.Equal(t, errs.ErrInvalidPassword, errs.CodeOf(user.ValidatePassword("short")))
	assert.Equal(t, errs.ErrInvalidPassword, errs.CodeOf(user.ValidatePassword(strings.Repeat("x", 51))))
	// 45 runes but 90 bytes
	assert.Equal(t, errs.ErrInvalidPassword, errs.CodeOf(user.ValidatePassword(strings.Repeat("é", 45))))
}

func TestRoleDisplayName(t *testing.T) {
	assert.Equal(t, "Citoyen", user.RoleCitizen.DisplayName())
	assert.Equal(t, "Propriétaire", user.RoleOwner.DisplayName())
	assert.False(t, user.Role("admin").Valid())
}

func TestStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := user.NewStore(dbtest.NewMemoryStore())

	created, err := store.Create(ctx, "Alice123", "hash", user.RoleCitizen)
	require.NoError(t, err)
	assert.Equal(t, user.RoleCitizen, created.Role)
	assert.Nil(t, created.RoomID)

	found, err := store.FindByUsername(ctx, "alice123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := store.FindByUsername(ctx, "Nobody42")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = store.Create(ctx, "ALICE123", "hash", user.RoleCitizen)
	assert.Equal(t, errs.ErrUserAlreadyExists, errs.CodeOf(err))
}

func TestStore_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store := user.NewStore(dbtest.NewMemoryStore())

	var wg sync.WaitGroup
	results := make(chan error, 20)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(ctx, "Alice123", "hash", user.RoleCitizen)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, errs.ErrUserAlreadyExists, errs.CodeOf(err))
	}
	assert.Equal(t, 1, succeeded)
}

func TestStore_UpdateRoomAndMute(t *testing.T) {
	ctx := context.Background()
	mem := dbtest.NewMemoryStore()
	store := user.NewStore(mem)

	room, err := mem.CreateRoom(ctx, "French Reborn")
	require.NoError(t, err)
	u, err := store.Create(ctx, "Alice123", "hash", user.RoleCitizen)
	require.NoError(t, err)

	moved, err := store.UpdateRoom(ctx, u.ID, &room.ID)
	require.NoError(t, err)
	assert.True(t, moved.InRoom(room.ID))

	missingRoom := int64(404)
	_, err = store.UpdateRoom(ctx, u.ID, &missingRoom)
	assert.Equal(t, errs.ErrRoomNotFound, errs.CodeOf(err))

	require.NoError(t, store.Mute(ctx, u.ID, 1))
	require.NoError(t, store.Mute(ctx, u.ID, 1))
	muted, err := store.IsMuted(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, muted)

	lifted, err := store.Unmute(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, lifted)

	lifted, err = store.Unmute(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, lifted)
}
