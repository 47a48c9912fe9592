package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"frenchreborn/internal/pkg/limiter"
	"frenchreborn/internal/pkg/logx"
	"frenchreborn/internal/pkg/resp"
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It configures CORS, request logging and metrics, rate limits the credential
// endpoints per IP, and puts every other API route behind RequireAuth.
// The limiter cleanup goroutine stops when ctx is cancelled.
func Router(ctx context.Context, deps *AppDeps) http.Handler {
	authLimiter := limiter.NewIPRateLimiter(ctx, rate.Limit(deps.Config.AuthRate), deps.Config.AuthBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: false,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "French Reborn",
		}
		resp.RespondSuccess(w, r, data)
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Group(func(public chi.Router) {
		public.Use(authLimiter.Middleware)
		public.Post("/register", HandleRegister(deps))
		public.Post("/login", HandleLogin(deps))
	})

	r.Group(func(private chi.Router) {
		private.Use(RequireAuth(deps))

		private.Post("/logout", HandleLogout(deps))
		private.Get("/me", HandleGetMe(deps))
		private.Put("/me/room", HandleJoinRoom(deps))

		private.Route("/rooms", func(rooms chi.Router) {
			rooms.Get("/", HandleListRooms(deps))
			rooms.Post("/", HandleCreateRoom(deps))

			rooms.Route("/{roomId}", func(room chi.Router) {
				room.Post("/lock", HandleSetRoomLocked(deps, true))
				room.Post("/unlock", HandleSetRoomLocked(deps, false))
				room.Get("/messages", HandleListMessages(deps))
				room.Post("/messages", HandlePostMessage(deps))
			})
		})

		private.Post("/users/{username}/mute", HandleMuteUser(deps))
		private.Delete("/users/{username}/mute", HandleUnmuteUser(deps))
	})

	return r
}
