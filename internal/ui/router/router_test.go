package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querygenie/internal/ui/features"
	genieFeature "github.com/leapstack-labs/querygenie/internal/ui/features/genie"
)

func setupRouter(t *testing.T, isDev bool) (chi.Router, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t)
	r := chi.NewRouter()
	require.NoError(t, SetupRoutes(r, fixture.SessionStore, fixture.Notifier, genieFeature.Settings{}, fixture.Logger, isDev))
	return r, fixture
}

func TestSetupRoutes(t *testing.T) {
	r, _ := setupRouter(t, false)

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{http.MethodGet, "/", "", http.StatusOK, "Query Genie"},
		{http.MethodGet, "/healthz", "", http.StatusOK, "ok"},
		{http.MethodGet, "/static/css/app.css", "", http.StatusOK, ".glass-card"},
		{http.MethodPost, "/genie/generate", `{"platform":"googlesheets","queryType":"regex","tableName":"S","columnName":"B","pattern":"foo"}`, http.StatusOK, `=FILTER(B2:B, REGEXMATCH(B2:B, \"foo\"))`},
		{http.MethodPost, "/genie/copy", `{"generatedCode":""}`, http.StatusNoContent, ""},
		{http.MethodGet, "/reload", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestReload_FirstConnectionReloads(t *testing.T) {
	r, _ := setupRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/reload", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 50*time.Millisecond)
	defer cancel()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req.WithContext(ctx))

	assert.Contains(t, rec.Body.String(), "window.location.reload()")
}

func TestReload_FollowsNotifier(t *testing.T) {
	r, fixture := setupRouter(t, true)

	// Consume the one-time reload.
	first := httptest.NewRequest(http.MethodGet, "/reload", nil)
	ctx, cancel := context.WithTimeout(first.Context(), 20*time.Millisecond)
	r.ServeHTTP(httptest.NewRecorder(), first.WithContext(ctx))
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/reload", nil)
	ctx, cancel = context.WithTimeout(req.Context(), 500*time.Millisecond)
	defer cancel()
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		r.ServeHTTP(rec, req.WithContext(ctx))
		close(done)
	}()

	require.Eventually(t, func() bool { return fixture.Notifier.Len() == 1 }, 400*time.Millisecond, 5*time.Millisecond)

	hot := httptest.NewRecorder()
	r.ServeHTTP(hot, httptest.NewRequest(http.MethodGet, "/hotreload", nil))
	assert.Equal(t, http.StatusOK, hot.Code)

	<-done
	assert.Contains(t, rec.Body.String(), "window.location.reload()")
}
