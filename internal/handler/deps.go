package handler

import (
	"frenchreborn/internal/app/auth"
	"frenchreborn/internal/app/chat"
	"frenchreborn/internal/app/db"
	"frenchreborn/internal/app/user"
	"frenchreborn/internal/configs"
	"frenchreborn/internal/pkg/auth/jwt"
	"frenchreborn/internal/pkg/metrics"
)

// AppDeps bundles everything the handlers need. It is built once at startup.
type AppDeps struct {
	Config    *configs.AppConfig
	Auth      *auth.Service
	Users     *user.Store
	Rooms     *chat.Registry
	Ledger    *chat.Ledger
	Moderator *chat.Moderator
	Metrics   *metrics.Metrics
}

// NewAppDeps wires the domain components over a single store.
func NewAppDeps(cfg *configs.AppConfig, store db.Store, hasher auth.Hasher, denylist jwt.Denylist, m *metrics.Metrics) *AppDeps {
	users := user.NewStore(store)
	issuer := jwt.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	return &AppDeps{
		Config:    cfg,
		Auth:      auth.NewService(users, hasher, issuer, denylist),
		Users:     users,
		Rooms:     chat.NewRegistry(store, users, m),
		Ledger:    chat.NewLedger(store, users, m),
		Moderator: chat.NewModerator(users),
		Metrics:   m,
	}
}
