package sandboxapi

import (
	"errors"
	"net/http"
	"strconv"

	domsession "example.com/catalog-console/app/internal/domain/session"
	domuser "example.com/catalog-console/app/internal/domain/user"
	authuc "example.com/catalog-console/app/internal/usecase/auth"
)

type signInResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UID     string `json:"uid"`
	Token   string `json:"token"`
	Expired int64  `json:"expired"`
}

func (a *API) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req domsession.Credentials
	if err := a.decodeAndValidate(r, &req); err != nil {
		a.handleRequestError(w, err)
		return
	}

	result, err := a.authSvc.Login(r.Context(), authuc.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if errors.Is(err, domuser.ErrUnauthorized) {
		respondError(w, http.StatusUnauthorized, "Sign in failed")
		return
	}
	if err != nil {
		a.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, signInResponse{
		Success: true,
		Message: "Signed in",
		UID:     strconv.FormatInt(result.User.ID, 10),
		Token:   result.Token,
		Expired: result.Expires.UnixMilli(),
	})
}

func (a *API) handleCheck(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"uid":     strconv.FormatInt(claims.UserID, 10),
	})
}

// handleLogout always succeeds; tokens are stateless and simply expire.
func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	respondOK(w, "Signed out")
}
