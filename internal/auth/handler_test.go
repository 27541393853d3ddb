package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mux.Router, *Service, *Account) {
	t.Helper()

	svc, _, acct := newTestService(t)
	h := NewHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", h.Refresh).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(Middleware(svc.tokens))
	api.HandleFunc("/auth/logout", h.Logout).Methods("POST")

	return r, svc, acct
}

func doLogin(t *testing.T, r *mux.Router, email string, remember bool) *http.Response {
	t.Helper()

	body, _ := json.Marshal(map[string]interface{}{
		"email":    email,
		"password": testPassword,
		"remember": remember,
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Result()
}

func cookieByName(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginHandlerSetsCookies(t *testing.T) {
	r, _, acct := newTestRouter(t)

	resp := doLogin(t, r, acct.Email, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	access := cookieByName(resp, AccessCookie)
	require.NotNil(t, access)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)

	refresh := cookieByName(resp, RefreshCookie)
	require.NotNil(t, refresh)
	assert.Len(t, refresh.Value, 64)

	var env struct {
		Status string `json:"status"`
		Data   struct {
			Token    string `json:"token"`
			Remember bool   `json:"remember"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, access.Value, env.Data.Token)
	assert.True(t, env.Data.Remember)
}

func TestLoginHandlerWithoutRememberOmitsRefreshCookie(t *testing.T) {
	r, _, acct := newTestRouter(t)

	resp := doLogin(t, r, acct.Email, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, cookieByName(resp, AccessCookie))
	assert.Nil(t, cookieByName(resp, RefreshCookie))
}

func TestLoginHandlerErrorStatuses(t *testing.T) {
	r, _, acct := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{"email": acct.Email, "password": "wrong-password"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body, _ = json.Marshal(map[string]string{"email": "nobody@mail.com", "password": testPassword})
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefreshHandlerMissingCookie(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Missing token does not clear cookies; there is nothing to clear.
	assert.Empty(t, rec.Result().Cookies())
}

func TestRefreshHandlerRotatesCookies(t *testing.T) {
	r, _, acct := newTestRouter(t)

	login := doLogin(t, r, acct.Email, true)
	refresh := cookieByName(login, RefreshCookie)
	require.NotNil(t, refresh)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(refresh)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rotated := cookieByName(rec.Result(), RefreshCookie)
	require.NotNil(t, rotated)
	assert.NotEqual(t, refresh.Value, rotated.Value)
	assert.NotNil(t, cookieByName(rec.Result(), AccessCookie))
}

func TestRefreshHandlerRejectionClearsCookies(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: RefreshCookie, Value: "bogus"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	for _, name := range []string{AccessCookie, RefreshCookie} {
		c := cookieByName(rec.Result(), name)
		require.NotNil(t, c)
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	}
}

func TestRefreshHandlerKeepsCookiesOnStorageOutage(t *testing.T) {
	r, svc, acct := newTestRouter(t)

	login := doLogin(t, r, acct.Email, true)
	refresh := cookieByName(login, RefreshCookie)
	require.NotNil(t, refresh)

	healthy := svc.store
	svc.store = &flakyRotationStore{RotationStore: healthy, remaining: 10}

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(refresh)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The slot still holds the token, so the cookies must survive.
	assert.Empty(t, rec.Result().Cookies())

	// Once the store recovers, the same cookie rotates normally.
	svc.store = healthy
	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(refresh)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, cookieByName(rec.Result(), RefreshCookie))
}

func TestLogoutHandlerClearsCookies(t *testing.T) {
	r, _, acct := newTestRouter(t)

	login := doLogin(t, r, acct.Email, true)
	access := cookieByName(login, AccessCookie)
	refresh := cookieByName(login, RefreshCookie)
	require.NotNil(t, access)
	require.NotNil(t, refresh)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(access)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, name := range []string{AccessCookie, RefreshCookie} {
		c := cookieByName(rec.Result(), name)
		require.NotNil(t, c)
		assert.Negative(t, c.MaxAge)
	}

	// The refresh token issued before logout is dead.
	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(refresh)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsMissingOrInvalidToken(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareAcceptsBearerHeader(t *testing.T) {
	r, svc, acct := newTestRouter(t)

	token, err := svc.tokens.Generate(acct.ID, AccessTTL)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
