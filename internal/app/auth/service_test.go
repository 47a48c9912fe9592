package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"frenchreborn/internal/app/auth"
	"frenchreborn/internal/app/db/dbtest"
	"frenchreborn/internal/app/user"
	"frenchreborn/internal/pkg/auth/jwt"
	"frenchreborn/internal/pkg/errs"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newService(t *testing.T) (*auth.Service, *dbtest.MemoryStore) {
	t.Helper()
	mem := dbtest.NewMemoryStore()
	svc := auth.NewService(
		user.NewStore(mem),
		auth.NewBcryptHasher(bcrypt.MinCost),
		jwt.NewIssuer(testSecret, time.Hour),
		jwt.NewMemoryDenylist(),
	)
	return svc, mem
}

func TestService_RegisterLoginResolve(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	registered, err := svc.Register(ctx, "Alice123", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.RoleCitizen, registered.Role)
	assert.NotEqual(t, "secret1", registered.PasswordHash)

	session, err := svc.Login(ctx, "Alice123", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))
	assert.NotContains(t, session.Token, registered.PasswordHash)

	id, err := svc.Resolve(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "Alice123", id.User.Username)
	assert.Equal(t, user.RoleCitizen, id.User.Role)
}

func TestService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Register(ctx, "abc", "secret1")
	assert.Equal(t, errs.ErrInvalidUsername, errs.CodeOf(err))

	_, err = svc.Register(ctx, "Alice123", "123")
	assert.Equal(t, errs.ErrInvalidPassword, errs.CodeOf(err))

	_, err = svc.Register(ctx, "Alice123", "secret1")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Alice123", "secret2")
	assert.Equal(t, errs.ErrUserAlreadyExists, errs.CodeOf(err))
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) {
	return "", errs.Wrap(errs.ErrHashingFailed, errors.New("entropy exhausted"))
}

func (failingHasher) Verify(string, string) bool { return false }

func TestService_HashingFailureAborts(t *testing.T) {
	ctx := context.Background()
	mem := dbtest.NewMemoryStore()
	users := user.NewStore(mem)
	svc := auth.NewService(users, failingHasher{}, jwt.NewIssuer(testSecret, time.Hour), jwt.NewMemoryDenylist())

	_, err := svc.Register(ctx, "Alice123", "secret1")
	assert.Equal(t, errs.ErrHashingFailed, errs.CodeOf(err))

	u, err := users.FindByUsername(ctx, "Alice123")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestService_LoginFailuresAreUniform(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.Register(ctx, "Alice123", "secret1")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "Alice123", "wrong-password")
	_, unknownUser := svc.Login(ctx, "Nobody42", "secret1")

	assert.Equal(t, errs.ErrInvalidCredentials, errs.CodeOf(wrongPassword))
	assert.Equal(t, errs.ErrInvalidCredentials, errs.CodeOf(unknownUser))
	assert.Equal(t, errs.From(wrongPassword).Message, errs.From(unknownUser).Message)
}

func TestService_ResolveReadsRoleFromStore(t *testing.T) {
	ctx := context.Background()
	svc, mem := newService(t)
	_, err := svc.Register(ctx, "Alice123", "secret1")
	require.NoError(t, err)

	// a token signed with the right key but claiming owner still resolves to the stored role
	forger := jwt.NewIssuer(testSecret, time.Hour)
	token, _, err := forger.GenerateToken(&jwt.Payload{UserID: 1, Username: "Alice123", Role: string(user.RoleOwner)})
	require.NoError(t, err)

	id, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.RoleCitizen, id.User.Role)

	mem.DeleteUser(1)
	_, err = svc.Resolve(ctx, token)
	assert.Equal(t, errs.ErrUnauthorized, errs.CodeOf(err))
}

func TestService_ResolveRejectsForgedToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.Register(ctx, "Alice123", "secret1")
	require.NoError(t, err)

	forger := jwt.NewIssuer("another-secret-another-secret-xx", time.Hour)
	token, _, err := forger.GenerateToken(&jwt.Payload{UserID: 1, Username: "Alice123", Role: string(user.RoleOwner)})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, token)
	assert.Equal(t, errs.ErrUnauthorized, errs.CodeOf(err))
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.Register(ctx, "Alice123", "secret1")
	require.NoError(t, err)

	session, err := svc.Login(ctx, "Alice123", "secret1")
	require.NoError(t, err)
	id, err := svc.Resolve(ctx, session.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, id))

	_, err = svc.Resolve(ctx, session.Token)
	assert.Equal(t, errs.ErrUnauthorized, errs.CodeOf(err))

	// a fresh login is unaffected
	again, err := svc.Login(ctx, "Alice123", "secret1")
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, again.Token)
	assert.NoError(t, err)
}
