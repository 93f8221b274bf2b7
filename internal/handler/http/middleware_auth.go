package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/utils"
	"github.com/MKhiriev/go-fuel-dashboard/models"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the "Authorization: Bearer <token>" header, validates the token
// via [service.AuthService.ParseToken] and stores the user id and role in the
// request context (see [utils.WithIdentity]) before delegating to next. The
// request logger is tagged with the user id.
//
// Any failure is answered with 401 Unauthorized and next is not called.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			unauthorized(w, ErrInvalidAuthorizationHeader.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("error occurred during parsing token")
			unauthorized(w, err.Error())
			return
		}

		ctx = utils.WithIdentity(ctx, token.UserID, token.Role)
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", token.UserID).Str("role", token.Role.String())
		})
		ctx = log.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteError(w, message, http.StatusUnauthorized)
}

// requireRoles admits requests whose authenticated role is one of roles.
// It must run after auth: a request without a role in its context gets 401,
// a role outside the list gets 403.
func requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := slices.Clone(roles)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				unauthorized(w, http.StatusText(http.StatusUnauthorized))
				return
			}

			if !role.In(allowed) {
				logger.FromRequest(r).Warn().Str("role", role.String()).Str("path", r.URL.Path).Msg("role is not allowed")
				utils.WriteError(w, ErrForbidden.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
