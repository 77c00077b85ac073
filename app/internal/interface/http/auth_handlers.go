package http

import (
	"net/http"
	"strings"

	domsession "example.com/catalog-console/app/internal/domain/session"
)

func (a *Web) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	creds := domsession.Credentials{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}

	c := a.newConsole(r)
	token, err := c.Session.Login(r.Context(), creds)
	if err != nil {
		// Credentials are not echoed back; the form comes back empty.
		a.render(w, http.StatusUnauthorized, a.pageView(c))
		return
	}

	// Login already fetched the first page with the new token, so the
	// table is rendered here instead of redirecting to "/".
	a.setSessionCookie(w, token)
	a.render(w, http.StatusOK, a.pageView(c))
}

func (a *Web) handleLogout(w http.ResponseWriter, r *http.Request) {
	c := a.newConsole(r)
	c.Session.Logout(r.Context())
	a.clearSessionCookie(w)
	redirect(w, r, "/")
}
