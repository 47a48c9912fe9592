package auth

import (
	"context"
	"errors"
	"time"

	"frenchreborn/internal/app/user"
	"frenchreborn/internal/pkg/auth/jwt"
	"frenchreborn/internal/pkg/errs"
	"frenchreborn/internal/pkg/logx"
)

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *user.User
}

// Identity is a resolved credential: the stored account plus the verified claims.
type Identity struct {
	User   *user.User
	Claims *jwt.Payload
}

// Service is the Session Issuer: it registers accounts, exchanges passwords
// for tokens and resolves tokens back to stored users.
type Service struct {
	users    *user.Store
	hasher   Hasher
	issuer   *jwt.Issuer
	denylist jwt.Denylist

	// dummyHash is compared against when the username is unknown so both
	// login failure paths cost one hash comparison.
	dummyHash string
}

// NewService wires the session issuer.
func NewService(users *user.Store, hasher Hasher, issuer *jwt.Issuer, denylist jwt.Denylist) *Service {
	dummyHash, err := hasher.Hash("frenchreborn-unknown-user")
	if err != nil {
		logx.Warn("failed to prepare dummy password hash", "error", err)
	}

	return &Service{
		users:     users,
		hasher:    hasher,
		issuer:    issuer,
		denylist:  denylist,
		dummyHash: dummyHash,
	}
}

// Register validates the input and creates a Citizen account.
func (s *Service) Register(ctx context.Context, username, password string) (*user.User, error) {
	if err := user.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := user.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, username, hash, user.RoleCitizen)
	if err != nil {
		if errs.CodeOf(err) == errs.ErrUserAlreadyExists {
			logx.Warn("registration conflict: username already exists", "username", username)
		}
		return nil, err
	}

	logx.Info("user registered", "user_id", u.ID)
	return u, nil
}

// Login verifies the password and issues a token. Unknown users and wrong
// passwords fail identically with ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if u == nil {
		s.hasher.Verify(password, s.dummyHash)
		logx.Warn("login: unknown username", "username", username)
		return nil, errs.NewError(errs.ErrInvalidCredentials)
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		logx.Warn("login: password mismatch", "user_id", u.ID)
		return nil, errs.NewError(errs.ErrInvalidCredentials)
	}

	token, expiresAt, err := s.issuer.GenerateToken(&jwt.Payload{
		UserID:   u.ID,
		Username: u.Username,
		Role:     string(u.Role),
		RoomID:   u.RoomID,
	})
	if err != nil {
		return nil, errs.Wrap(errs.ErrUnknown, err)
	}

	return &Session{Token: token, ExpiresAt: expiresAt, User: u}, nil
}

// Resolve verifies token and reloads its user. The role and room always come
// from the store, never from the token.
func (s *Service) Resolve(ctx context.Context, token string) (*Identity, error) {
	claims, err := s.issuer.ParseToken(token)
	if err != nil {
		return nil, errs.Wrap(errs.ErrUnauthorized, err)
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.Id)
	if err != nil {
		return nil, errs.Wrap(errs.ErrUnknown, err)
	}
	if revoked {
		return nil, errs.Wrap(errs.ErrUnauthorized, errors.New("token revoked"))
	}

	u, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Username != claims.Username {
		return nil, errs.Wrap(errs.ErrUnauthorized, errors.New("token subject no longer exists"))
	}

	return &Identity{User: u, Claims: claims}, nil
}

// Logout revokes the credential until its expiry.
func (s *Service) Logout(ctx context.Context, id *Identity) error {
	if id == nil || id.Claims == nil {
		return errs.NewError(errs.ErrUnauthorized)
	}

	expiresAt := time.Unix(id.Claims.ExpiresAt, 0)
	if err := s.denylist.Revoke(ctx, id.Claims.Id, expiresAt); err != nil {
		return errs.Wrap(errs.ErrUnknown, err)
	}

	logx.Info("user logged out", "user_id", id.User.ID)
	return nil
}
