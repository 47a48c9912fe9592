package handler

import (
	"net/http"

	"frenchreborn/internal/app/auth"
	"frenchreborn/internal/app/user"
	"frenchreborn/internal/pkg/auth/jwt"
	"frenchreborn/internal/pkg/errs"
	"frenchreborn/internal/pkg/logx"
	"frenchreborn/internal/pkg/resp"
)

// RequireAuth resolves the bearer token and rejects the request with 401 when
// it is missing, invalid, expired or revoked.
func RequireAuth(deps *AppDeps) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := jwt.BearerToken(r)
			if err != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			identity, err := deps.Auth.Resolve(r.Context(), token)
			if err != nil {
				logx.FromContext(r.Context()).Warn().Err(err).Msg("Credential rejected")
				resp.RespondErr(w, r, err)
				return
			}

			ctx := auth.WithIdentity(r.Context(), identity)
			ctx = jwt.WithPayload(ctx, identity.Claims)

			logger := logx.FromContext(ctx).With().Int64("user_id", identity.User.ID).Logger()
			ctx = logger.WithContext(ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// currentUser returns the user resolved by RequireAuth.
func currentUser(r *http.Request) *user.User {
	if identity := auth.IdentityFromContext(r.Context()); identity != nil {
		return identity.User
	}
	return nil
}
