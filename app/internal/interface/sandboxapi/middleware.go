package sandboxapi

import (
	"context"
	"net/http"

	authuc "example.com/catalog-console/app/internal/usecase/auth"
)

type ctxClaimsKey struct{}

// authMiddleware accepts the token with or without a Bearer prefix.
func (a *API) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := a.authSvc.Check(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Please sign in again")
			return
		}
		ctx := context.WithValue(r.Context(), ctxClaimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getClaims(ctx context.Context) *authuc.Claims {
	if claims, ok := ctx.Value(ctxClaimsKey{}).(*authuc.Claims); ok {
		return claims
	}
	return nil
}
