// Package features holds test fixtures shared by the UI feature packages.
package features

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"

	"github.com/leapstack-labs/querygenie/internal/testutil"
	"github.com/leapstack-labs/querygenie/internal/ui/notifier"
)

// TestFixture bundles what a feature handler needs under test.
type TestFixture struct {
	Logger       *slog.Logger
	Notifier     *notifier.Notifier
	SessionStore *sessions.CookieStore
}

// SetupTestFixture builds a fixture backed by t.Log and an in-memory cookie store.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	return &TestFixture{
		Logger:       testutil.NewTestLogger(t),
		Notifier:     notifier.New(),
		SessionStore: NewTestSessionStore(),
	}
}

// NewTestSessionStore returns a cookie store with a fixed key.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("querygenie-test-session-key-0001"))
}

// SignalsRequest builds a datastar POST carrying the given signals JSON.
func SignalsRequest(target, signals string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(signals))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// FormRequest builds a urlencoded form POST.
func FormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// FollowCookies returns a GET for target carrying the cookies set on rec.
func FollowCookies(rec *httptest.ResponseRecorder, target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}
