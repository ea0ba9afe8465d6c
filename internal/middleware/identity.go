package middleware

import (
	"log/slog"
	"net/http"

	"github.com/stridehq/stride/internal/ctxkeys"
	"github.com/stridehq/stride/internal/identity"
)

// Identity resolves the caller through the identity provider and, when a
// session is present, attaches the identity to the request context.
// Anonymous requests continue without one; handlers that require a caller
// reject those themselves so no store access happens first.
func Identity(provider identity.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := provider.Caller(r)
			if err != nil {
				slog.Warn("identity resolution failed", "error", err, "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}
			if caller == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithIdentity(r.Context(), caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
