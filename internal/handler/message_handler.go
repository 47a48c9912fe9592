package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"frenchreborn/internal/pkg/errs"
	"frenchreborn/internal/pkg/req"
	"frenchreborn/internal/pkg/resp"
)

type PostMessageInput struct {
	Content string `json:"content"`
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(r *http.Request, key string) (int64, *errs.CustomError) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, errs.NewError(errs.ErrInvalidParams)
	}
	return v, nil
}

// HandleListMessages returns the province history, optionally only the
// messages after the `after` id, for incremental polling.
func HandleListMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, customErr := req.Int64Param(chi.URLParam(r, "roomId"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		after, customErr := queryInt(r, "after")
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		limit, customErr := queryInt(r, "limit")
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		messages, err := deps.Ledger.ListByRoom(r.Context(), currentUser(r), roomID, after, int(limit))
		if err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, messages)
	}
}

// HandlePostMessage appends a message to the province.
func HandlePostMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, customErr := req.Int64Param(chi.URLParam(r, "roomId"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input PostMessageInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		message, err := deps.Ledger.Append(r.Context(), currentUser(r), roomID, input.Content)
		if err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondCreated(w, r, message)
	}
}
