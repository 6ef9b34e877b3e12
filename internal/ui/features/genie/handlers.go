package genie

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/querygenie/internal/clipboard"
	common "github.com/leapstack-labs/querygenie/internal/ui/features/common/components"
	"github.com/leapstack-labs/querygenie/internal/ui/features/genie/components"
	"github.com/leapstack-labs/querygenie/internal/ui/features/genie/pages"
	"github.com/leapstack-labs/querygenie/pkg/genie"
	"github.com/starfederation/datastar-go/datastar"
)

// Handlers provides HTTP handlers for the generator feature.
type Handlers struct {
	sessionStore sessions.Store
	settings     Settings
	logger       *slog.Logger
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(sessionStore sessions.Store, settings Settings, logger *slog.Logger, isDev bool) *Handlers {
	if !settings.DefaultPlatform.Valid() {
		settings.DefaultPlatform = genie.DefaultPlatform
	}
	if !settings.DefaultQueryType.Valid() {
		settings.DefaultQueryType = genie.DefaultQueryType
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		sessionStore: sessionStore,
		settings:     settings,
		logger:       logger,
		isDev:        isDev,
	}
}

// GeniePage renders the full page. A pending flash from the form fallback
// prefills the form, the output and the notification.
func (h *Handlers) GeniePage(w http.ResponseWriter, r *http.Request) {
	state := h.initialState()
	var toasts []common.Toast

	if f, ok := h.popFlash(w, r); ok {
		state = f.Form
		toasts = append(toasts, f.Toast)
	}

	if err := pages.GeniePage(pageTitle, h.isDev, state, toasts).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GenerateSSE generates code from the posted signals and patches the output
// block, the generatedCode signal and a notification.
func (h *Handlers) GenerateSSE(w http.ResponseWriter, r *http.Request) {
	// Read signals BEFORE creating SSE (SSE consumes the request body)
	var signals Signals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	sse := datastar.NewSSE(w, r)

	code, toast := h.generate(signals)
	if code != "" {
		if err := sse.MarshalAndPatchSignals(map[string]any{"generatedCode": code}); err != nil {
			_ = sse.ConsoleError(err)
			return
		}
		if err := sse.PatchElementTempl(components.Output(code)); err != nil {
			_ = sse.ConsoleError(err)
			return
		}
	}

	if err := sse.PatchElementTempl(common.ToastView(toast),
		datastar.WithSelectorID(common.ToastContainerID),
		datastar.WithModeAppend(),
	); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// CopySSE asks the browser to put the current generated code on the
// clipboard. The notification is shown only once the write resolves; a
// failed write stays silent. Nothing is sent when there is no code.
func (h *Handlers) CopySSE(w http.ResponseWriter, r *http.Request) {
	var signals Signals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	if signals.GeneratedCode == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	toastHTML, err := templ.ToGoHTML(r.Context(), common.ToastView(toastCopied))
	if err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}
	onCopied := "document.getElementById(" + common.JSString(common.ToastContainerID) + ")" +
		".insertAdjacentHTML('beforeend', " + common.JSString(string(toastHTML)) + ")"

	sse := datastar.NewSSE(w, r)
	if err := sse.ExecuteScript(clipboard.BrowserScript(signals.GeneratedCode, onCopied)); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// GenerateForm handles the plain form post used when scripts are disabled.
// The outcome travels as a session flash and the browser is redirected back.
func (h *Handlers) GenerateForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	signals := Signals{
		Platform:   r.PostForm.Get("platform"),
		TableName:  r.PostForm.Get("tableName"),
		ColumnName: r.PostForm.Get("columnName"),
		QueryType:  r.PostForm.Get("queryType"),
		Pattern:    r.PostForm.Get("pattern"),
	}

	code, toast := h.generate(signals)
	state := h.stateFromSignals(signals)
	state.GeneratedCode = code

	if err := h.pushFlash(w, r, flash{Form: state, Toast: toast}); err != nil {
		h.logger.Error("failed to save flash", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// generate runs the generator and picks the notification for the outcome.
func (h *Handlers) generate(signals Signals) (string, common.Toast) {
	req, err := h.request(signals)
	if err != nil {
		return "", toastInvalid(err)
	}

	code, err := genie.Generate(req)
	switch {
	case errors.Is(err, genie.ErrMissingInformation):
		return "", toastMissing
	case err != nil:
		return "", toastInvalid(err)
	}

	h.logger.Debug("generated code", "platform", req.Platform, "query_type", req.QueryType)
	return code, toastGenerated
}

func (h *Handlers) request(signals Signals) (genie.Request, error) {
	req := genie.Request{
		Platform:    h.settings.DefaultPlatform,
		QueryType:   h.settings.DefaultQueryType,
		TableName:   signals.TableName,
		ColumnName:  signals.ColumnName,
		Pattern:     signals.Pattern,
		StrictRange: h.settings.StrictRange,
	}
	if signals.Platform != "" {
		p, err := genie.ParsePlatform(signals.Platform)
		if err != nil {
			return req, err
		}
		req.Platform = p
	}
	if signals.QueryType != "" {
		q, err := genie.ParseQueryType(signals.QueryType)
		if err != nil {
			return req, err
		}
		req.QueryType = q
	}
	return req, nil
}

func (h *Handlers) initialState() components.FormState {
	return components.FormState{
		Platform:  h.settings.DefaultPlatform,
		QueryType: h.settings.DefaultQueryType,
	}
}

// stateFromSignals echoes submitted values back into a form, replacing
// unparseable selections with the defaults.
func (h *Handlers) stateFromSignals(signals Signals) components.FormState {
	state := h.initialState()
	if p, err := genie.ParsePlatform(signals.Platform); err == nil {
		state.Platform = p
	}
	if q, err := genie.ParseQueryType(signals.QueryType); err == nil {
		state.QueryType = q
	}
	state.TableName = signals.TableName
	state.ColumnName = signals.ColumnName
	state.Pattern = signals.Pattern
	return state
}

func (h *Handlers) pushFlash(w http.ResponseWriter, r *http.Request, f flash) error {
	session, _ := h.sessionStore.Get(r, sessionName)
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	session.AddFlash(string(data), flashKey)
	return session.Save(r, w)
}

// popFlash consumes the pending flash, if any.
func (h *Handlers) popFlash(w http.ResponseWriter, r *http.Request) (flash, bool) {
	session, err := h.sessionStore.Get(r, sessionName)
	if err != nil {
		// Undecodable cookie (e.g. rotated secret); a fresh session is returned.
		h.logger.Debug("discarding session", "error", err)
	}

	flashes := session.Flashes(flashKey)
	if len(flashes) == 0 {
		return flash{}, false
	}
	if err := session.Save(r, w); err != nil {
		h.logger.Error("failed to clear flash", "error", err)
	}

	raw, ok := flashes[len(flashes)-1].(string)
	if !ok {
		return flash{}, false
	}
	var f flash
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		h.logger.Debug("discarding malformed flash", "error", err)
		return flash{}, false
	}
	return f, true
}
