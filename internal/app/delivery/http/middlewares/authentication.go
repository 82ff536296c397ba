package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
	"github.com/r-weda/my-afya-link/internal/pkg/utils"
)

// Authenticate requires a bearer credential, verifies it against the
// identity provider, and stores the caller's subject identifier plus the
// raw Authorization header on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.BearerTokenPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
		subject, err := m.IdentityService.VerifyToken(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_ID_KEY, subject)
		ctx = context.WithValue(ctx, constvars.CONTEXT_AUTH_TOKEN_KEY, authHeader)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
