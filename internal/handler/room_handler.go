package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"frenchreborn/internal/pkg/req"
	"frenchreborn/internal/pkg/resp"
)

type CreateRoomInput struct {
	Name string `json:"name" validate:"required"`
}

// HandleListRooms returns every province ordered by id.
func HandleListRooms(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms, err := deps.Rooms.List(r.Context())
		if err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, rooms)
	}
}

// HandleCreateRoom creates a province. Only owners may do this.
func HandleCreateRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CreateRoomInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		room, err := deps.Rooms.Create(r.Context(), currentUser(r), input.Name)
		if err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondCreated(w, r, room)
	}
}

// HandleSetRoomLocked returns a handler that locks or unlocks the province in the path.
func HandleSetRoomLocked(deps *AppDeps, locked bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, customErr := req.Int64Param(chi.URLParam(r, "roomId"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		room, err := deps.Rooms.SetLocked(r.Context(), currentUser(r), roomID, locked)
		if err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, room)
	}
}
