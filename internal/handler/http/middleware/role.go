package middleware

import (
	"net/http"

	"github.com/tagtrack/tagtrack-backend-go/internal/domain/auth"
	"github.com/tagtrack/tagtrack-backend-go/internal/handler/http/response"
)

// RequireManager requires an authenticated manager token.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if identity.Role != auth.RoleManager {
			response.Forbidden(w, "Manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireEmployee requires an authenticated employee token.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if identity.Role != auth.RoleEmployee {
			response.Forbidden(w, "Employee access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
