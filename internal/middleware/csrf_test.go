package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfStack(next http.Handler) http.Handler {
	return Session(CSRF(next))
}

func obtainCSRF(t *testing.T, h http.Handler) ([]*http.Cookie, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rec.Result().Cookies()
	for _, c := range cookies {
		if c.Name == csrfCookieName {
			return cookies, c.Value
		}
	}
	t.Fatal("no csrf cookie issued")
	return nil, ""
}

func TestCSRFRejectsMissingToken(t *testing.T) {
	h := csrfStack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			t.Fatal("handler must not run")
		}
	}))
	cookies, _ := obtainCSRF(t, h)

	req := httptest.NewRequest(http.MethodPost, "/cart/add", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFAcceptsHeaderToken(t *testing.T) {
	called := false
	h := csrfStack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	cookies, token := obtainCSRF(t, h)

	req := httptest.NewRequest(http.MethodPost, "/cart/add", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	req.Header.Set("X-CSRF-Token", token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCSRFAcceptsFormToken(t *testing.T) {
	called := false
	h := csrfStack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	cookies, token := obtainCSRF(t, h)

	form := url.Values{"csrf_token": {token}, "productId": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCSRFSafeMethodsPass(t *testing.T) {
	called := false
	h := csrfStack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/collections/x", nil))
	assert.True(t, called)
}
