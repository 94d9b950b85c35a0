package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tagtrack/tagtrack-backend-go/internal/domain/auth"
	"github.com/tagtrack/tagtrack-backend-go/internal/handler/http/response"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/jwt"
)

type contextKey string

const identityKey contextKey = "identity"

// AuthRequired authenticates the Bearer token on the request. Every token
// failure, whether malformed, forged or expired, comes back as the same 401
// so the response never reveals which check tripped.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			identity, err := jwtService.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// IdentityFromContext returns the identity attached by AuthRequired.
func IdentityFromContext(ctx context.Context) (jwt.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(jwt.Identity)
	return identity, ok
}
