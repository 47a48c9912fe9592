/*
Package handler provides the HTTP handlers and routing setup for the French Reborn server.
*/
package handler

import (
	"net/http"
	"time"

	"frenchreborn/internal/app/auth"
	"frenchreborn/internal/pkg/errs"
	"frenchreborn/internal/pkg/req"
	"frenchreborn/internal/pkg/resp"
)

type CredentialsInput struct {
	Username string `json:"username" validate:"max=64"`
	Password string `json:"password" validate:"max=128"`
}

// HandleRegister creates a Citizen account.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CredentialsInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		_, err := deps.Auth.Register(r.Context(), input.Username, input.Password)
		deps.Metrics.ObserveAuth("register", err)
		if err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondCreated(w, r, map[string]any{
			"success": true,
		})
	}
}

// HandleLogin verifies credentials and issues a bearer token.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CredentialsInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		session, err := deps.Auth.Login(r.Context(), input.Username, input.Password)
		deps.Metrics.ObserveAuth("login", err)
		if err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"token":     session.Token,
			"expiresAt": session.ExpiresAt.UTC().Format(time.RFC3339),
			"roomId":    session.User.RoomID,
			"user":      session.User.View(),
		})
	}
}

// HandleLogout revokes the presented token.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := auth.IdentityFromContext(r.Context())
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		if err := deps.Auth.Logout(r.Context(), identity); err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"success": true,
		})
	}
}
