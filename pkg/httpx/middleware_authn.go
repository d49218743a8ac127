package httpx

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

// SessionMiddleware verifies the session cookie and injects the caller's
// user id into the request context.
func SessionMiddleware(v jwtx.Verifier, cookie SessionCookie) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := cookie.Read(r)
			if raw == "" {
				WriteFailure(w, http.StatusUnauthorized, "Unauthorized - No Token Provided!")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session verify failed", "err", err)
				WriteFailure(w, http.StatusUnauthorized, "Unauthorized - Invalid Token!")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			ctx = slogx.WithUserID(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
