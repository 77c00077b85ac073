package http

import (
	"net/http"
	"time"

	domsession "example.com/catalog-console/app/internal/domain/session"
)

// sessionMiddleware moves the hexToken cookie into the request context,
// where the API client picks it up as the Authorization header.
func (a *Web) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(domsession.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := domsession.NewContext(r.Context(), cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Web) setSessionCookie(w http.ResponseWriter, token *domsession.Token) {
	cookie := &http.Cookie{
		Name:     domsession.CookieName,
		Value:    token.Value,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if !token.Expires.IsZero() {
		cookie.Expires = token.Expires
	}
	http.SetCookie(w, cookie)
}

func (a *Web) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     domsession.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
