package sandboxapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignIn_Success(t *testing.T) {
	router, _ := setupSandboxAPI(t)

	rec := doRequest(router, http.MethodPost, "/admin/signin", "",
		`{"username":"`+testUser+`","password":"`+testPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, true, body["success"])
	require.NotEmpty(t, body["token"])
	require.Equal(t, "1", body["uid"])

	expired, ok := body["expired"].(float64)
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(time.Hour), time.UnixMilli(int64(expired)), time.Minute)
}

func TestSignIn_Failures(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "wrong password", body: `{"username":"` + testUser + `","password":"nope"}`, status: http.StatusUnauthorized},
		{name: "unknown user", body: `{"username":"ghost","password":"nope"}`, status: http.StatusUnauthorized},
		{name: "missing password", body: `{"username":"` + testUser + `"}`, status: http.StatusBadRequest},
		{name: "malformed", body: `{"username":`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupSandboxAPI(t)
			rec := doRequest(router, http.MethodPost, "/admin/signin", "", tt.body)
			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, false, decodeBody(t, rec)["success"])
		})
	}
}

func TestSignIn_ValidationMessageIsList(t *testing.T) {
	router, _ := setupSandboxAPI(t)

	rec := doRequest(router, http.MethodPost, "/admin/signin", "", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, []any{"username is required", "password is required"}, decodeBody(t, rec)["message"])
}

func TestCheck(t *testing.T) {
	router, _ := setupSandboxAPI(t)
	token := signIn(t, router)

	rec := doRequest(router, http.MethodPost, "/api/user/check", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decodeBody(t, rec)["success"])

	rec = doRequest(router, http.MethodPost, "/api/user/check", "Bearer "+token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/user/check", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/user/check", "garbage", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, false, decodeBody(t, rec)["success"])
}

func TestLogout(t *testing.T) {
	router, _ := setupSandboxAPI(t)

	rec := doRequest(router, http.MethodPost, "/logout", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decodeBody(t, rec)["success"])
}

func TestSignIn_RejectedMessage(t *testing.T) {
	router, _ := setupSandboxAPI(t)

	rec := doRequest(router, http.MethodPost, "/admin/signin", "", `{"username":"ghost","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Sign in failed", decodeBody(t, rec)["message"])
}
