package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"frenchreborn/internal/app/user"
	"frenchreborn/internal/pkg/auth/jwt"
	"frenchreborn/internal/pkg/errs"
	"frenchreborn/internal/pkg/req"
	"frenchreborn/internal/pkg/resp"
)

// HandleGetMe returns the caller's account as stored right now.
func HandleGetMe(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := currentUser(r)
		if u == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		me := meView{View: u.View()}
		if claims := jwt.PayloadFromContext(r.Context()); claims != nil && claims.ExpiresAt > 0 {
			me.SessionExpiresAt = time.Unix(claims.ExpiresAt, 0).UTC().Format(time.RFC3339)
		}

		resp.RespondSuccess(w, r, me)
	}
}

// meView is the account view plus the expiry of the credential used for the request.
type meView struct {
	user.View
	SessionExpiresAt string `json:"sessionExpiresAt,omitempty"`
}

type JoinRoomInput struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}

// HandleJoinRoom moves the caller into another province.
func HandleJoinRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input JoinRoomInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		updated, err := deps.Rooms.Join(r.Context(), currentUser(r), input.RoomID)
		if err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, updated.View())
	}
}

// HandleMuteUser silences the user named in the path.
func HandleMuteUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Moderator.Mute(r.Context(), currentUser(r), chi.URLParam(r, "username")); err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"success": true,
		})
	}
}

// HandleUnmuteUser lifts a mute.
func HandleUnmuteUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lifted, err := deps.Moderator.Unmute(r.Context(), currentUser(r), chi.URLParam(r, "username"))
		if err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"success":  true,
			"wasMuted": lifted,
		})
	}
}
