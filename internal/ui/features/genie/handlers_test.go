package genie

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querygenie/internal/ui/features"
	"github.com/leapstack-labs/querygenie/pkg/genie"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

func setupTestHandlers(t *testing.T, settings Settings) *Handlers {
	t.Helper()

	fixture := features.SetupTestFixture(t)
	return NewHandlers(fixture.SessionStore, settings, fixture.Logger, false)
}

func postSignals(t *testing.T, handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	handler(rec, features.SignalsRequest(target, body))
	return rec
}

// =============================================================================
// GeniePage Tests
// =============================================================================

func TestGeniePage(t *testing.T) {
	h := setupTestHandlers(t, Settings{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.GeniePage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	for _, want := range []string{
		"<!doctype html>",
		"<title>Query Genie</title>",
		`id="genie-card"`,
		`data-signals=`,
		`&#34;platform&#34;:&#34;mysql&#34;`,
		`&#34;queryType&#34;:&#34;regex&#34;`,
		`action="/genie"`,
		"@post(&#39;/genie/generate&#39;)",
		"Generate Query / Formula",
		"DB / Platform Type",
		"Table / Sheet Name",
		"Column / Range Name",
		"Query / Formula Type",
		"Regular Expression Pattern",
		`<option value="googlesheets">Google Sheets</option>`,
		`id="toasts"`,
	} {
		assert.Contains(t, body, want, "response should contain %q", want)
	}

	// No generated code yet, so no copy button.
	assert.NotContains(t, body, "Generated Code")
	// Dev reload stream only in dev mode.
	assert.NotContains(t, body, "/reload")
}

func TestGeniePage_AdPlaceholders(t *testing.T) {
	h := setupTestHandlers(t, Settings{})

	rec := httptest.NewRecorder()
	h.GeniePage(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rec.Body.String()

	for _, want := range []string{
		"Advertisement Space - Top Banner",
		"300x250 or responsive",
		"Advertisement Space - Middle Banner",
		"Advertisement Space - Bottom Banner",
		"Floating Ad",
		"300x120",
		"Advertisement Space - Content Banner",
		"Advertisement Space - Footer Banner",
		"970x250 or responsive banner",
		"Prime placement above footer",
	} {
		assert.Contains(t, body, want)
	}
}

func TestGeniePage_ConfiguredDefaults(t *testing.T) {
	h := setupTestHandlers(t, Settings{DefaultPlatform: genie.Excel, DefaultQueryType: genie.Substring})

	rec := httptest.NewRecorder()
	h.GeniePage(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rec.Body.String()

	assert.Contains(t, body, `<option value="excel" selected>Excel</option>`)
	assert.Contains(t, body, `placeholder="e.g., 1,5"`)
	assert.Contains(t, body, `&#34;queryType&#34;:&#34;substring&#34;`)
}

// =============================================================================
// GenerateSSE Tests
// =============================================================================

func TestGenerateSSE(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{
			name:     "mysql regex",
			body:     `{"platform":"mysql","queryType":"regex","tableName":"users","columnName":"email","pattern":"^a"}`,
			wantCode: `SELECT * FROM users WHERE email REGEXP '^a';`,
		},
		{
			name:     "excel substring",
			body:     `{"platform":"excel","queryType":"substring","tableName":"Sheet1","columnName":"A","pattern":"1,5"}`,
			wantCode: `=MID(A2, 1, 5)`,
		},
		{
			name:     "postgres alias",
			body:     `{"platform":"postgres","queryType":"regex","tableName":"t","columnName":"c","pattern":"x"}`,
			wantCode: `SELECT SUBSTRING(c FROM 'x') AS extracted FROM t;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupTestHandlers(t, Settings{})
			rec := postSignals(t, h.GenerateSSE, "/genie/generate", tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()

			assert.Contains(t, body, "event: datastar-patch-signals")
			assert.Contains(t, body, "generatedCode")
			assert.Contains(t, body, tt.wantCode)
			assert.Contains(t, body, `id="genie-output"`)
			assert.Contains(t, body, "Query Generated!")
			assert.Contains(t, body, "selector #toasts")
			assert.Contains(t, body, "mode append")
		})
	}
}

func TestGenerateSSE_MissingInformation(t *testing.T) {
	bodies := []string{
		`{"platform":"mysql","queryType":"regex","tableName":"","columnName":"email","pattern":"^a"}`,
		`{"platform":"mysql","queryType":"regex","tableName":"users","columnName":"","pattern":"^a"}`,
		`{"platform":"mysql","queryType":"regex","tableName":"users","columnName":"email","pattern":""}`,
		`{}`,
	}

	for _, b := range bodies {
		t.Run(b, func(t *testing.T) {
			h := setupTestHandlers(t, Settings{})
			rec := postSignals(t, h.GenerateSSE, "/genie/generate", b)

			body := rec.Body.String()
			assert.Contains(t, body, "Missing Information")
			assert.Contains(t, body, "Please fill in all fields to generate your query or formula.")
			assert.Contains(t, body, "toast-destructive")
			assert.NotContains(t, body, "datastar-patch-signals", "no output should be produced")
			assert.NotContains(t, body, "genie-output")
		})
	}
}

func TestGenerateSSE_UnknownPlatform(t *testing.T) {
	h := setupTestHandlers(t, Settings{})
	rec := postSignals(t, h.GenerateSSE, "/genie/generate",
		`{"platform":"oracle","queryType":"regex","tableName":"t","columnName":"c","pattern":"p"}`)

	body := rec.Body.String()
	assert.Contains(t, body, "Cannot Generate")
	assert.Contains(t, body, "unknown platform")
	assert.NotContains(t, body, "datastar-patch-signals")
}

func TestGenerateSSE_StrictRange(t *testing.T) {
	h := setupTestHandlers(t, Settings{StrictRange: true})
	rec := postSignals(t, h.GenerateSSE, "/genie/generate",
		`{"platform":"mysql","queryType":"substring","tableName":"t","columnName":"c","pattern":"a,b"}`)

	body := rec.Body.String()
	assert.Contains(t, body, "invalid range")
	assert.NotContains(t, body, "datastar-patch-signals")
}

// =============================================================================
// CopySSE Tests
// =============================================================================

func TestCopySSE(t *testing.T) {
	h := setupTestHandlers(t, Settings{})
	rec := postSignals(t, h.CopySSE, "/genie/copy", `{"generatedCode":"=FILTER(B2:B, REGEXMATCH(B2:B, \"foo\"))"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `navigator.clipboard.writeText("=FILTER(B2:B, REGEXMATCH(B2:B, \"foo\"))")`)
	assert.Contains(t, body, "insertAdjacentHTML")
	assert.Contains(t, body, "Copied!")
	assert.Contains(t, body, "Query copied to clipboard.")
	assert.Contains(t, body, ".catch(function(){})", "failed clipboard writes stay silent")
}

func TestCopySSE_NothingToCopy(t *testing.T) {
	h := setupTestHandlers(t, Settings{})
	rec := postSignals(t, h.CopySSE, "/genie/copy", `{"generatedCode":""}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// =============================================================================
// GenerateForm Tests - plain form fallback with session flashes
// =============================================================================

func TestGenerateForm_FlashRoundTrip(t *testing.T) {
	h := setupTestHandlers(t, Settings{})

	form := url.Values{
		"platform":   {"mysql"},
		"queryType":  {"regex"},
		"tableName":  {"users"},
		"columnName": {"email"},
		"pattern":    {"^a"},
	}
	rec := httptest.NewRecorder()
	h.GenerateForm(rec, features.FormRequest("/genie", form))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	require.NotEmpty(t, rec.Result().Cookies())

	// First page view consumes the flash.
	page := features.FollowCookies(rec, "/")
	pageRec := httptest.NewRecorder()
	h.GeniePage(pageRec, page)

	body := pageRec.Body.String()
	assert.Contains(t, body, "SELECT * FROM users WHERE email REGEXP &#39;^a&#39;;")
	assert.Contains(t, body, "Query Generated!")
	assert.Contains(t, body, `value="users"`)
	assert.Contains(t, body, "Generated Code")

	// Second view with the updated cookie has nothing left to show.
	again := features.FollowCookies(pageRec, "/")
	againRec := httptest.NewRecorder()
	h.GeniePage(againRec, again)
	assert.NotContains(t, againRec.Body.String(), "Query Generated!")
	assert.NotContains(t, againRec.Body.String(), "Generated Code")
}

func TestGenerateForm_MissingInformation(t *testing.T) {
	h := setupTestHandlers(t, Settings{})

	form := url.Values{"platform": {"excel"}, "queryType": {"substring"}, "columnName": {"A"}}
	rec := httptest.NewRecorder()
	h.GenerateForm(rec, features.FormRequest("/genie", form))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	page := features.FollowCookies(rec, "/")
	pageRec := httptest.NewRecorder()
	h.GeniePage(pageRec, page)

	body := pageRec.Body.String()
	assert.Contains(t, body, "Missing Information")
	assert.Contains(t, body, `<option value="excel" selected>Excel</option>`)
	assert.NotContains(t, body, "Generated Code")
}
