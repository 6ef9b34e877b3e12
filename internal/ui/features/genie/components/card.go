// Package components provides templ components for the generator feature.
package components

import (
	"context"
	"encoding/json"

	"github.com/a-h/templ"
	common "github.com/leapstack-labs/querygenie/internal/ui/features/common/components"
	"github.com/leapstack-labs/querygenie/pkg/genie"
)

// Element ids patched by the SSE handlers.
const (
	CardID   = "genie-card"
	OutputID = "genie-output"
)

// Endpoints the card posts to.
const (
	GenerateURL = "/genie/generate"
	CopyURL     = "/genie/copy"
	FormURL     = "/genie"
)

// FormState is the local state of one generator form.
type FormState struct {
	Platform      genie.Platform  `json:"platform"`
	TableName     string          `json:"tableName"`
	ColumnName    string          `json:"columnName"`
	QueryType     genie.QueryType `json:"queryType"`
	Pattern       string          `json:"pattern"`
	GeneratedCode string          `json:"generatedCode"`
}

// Card renders the generator form and its output block.
func Card(state FormState) templ.Component {
	return common.Markup(func(ctx context.Context, h *common.HTMLWriter) {
		signals, _ := json.Marshal(state)

		h.Raw("<section")
		h.Attr("id", CardID)
		h.Attr("class", "glass-card")
		h.Attr("data-signals", string(signals))
		h.Raw(">")

		h.Raw(`<header class="card-header"><h2 class="card-title"><span aria-hidden="true">✨</span> Query Genie</h2>`)
		h.Raw(`<p class="card-description">Effortlessly generate database queries or spreadsheet formulas using Regex or Substring</p></header>`)

		h.Raw("<form")
		h.Attr("id", "genie-form")
		h.Attr("class", "card-content")
		h.Attr("method", "post")
		h.Attr("action", FormURL)
		h.Attr("data-on:submit__prevent", "@post('"+GenerateURL+"')")
		h.Raw(`><div class="form-grid">`)

		platformField(h, state.Platform)
		textField(h, "tableName", "Table / Sheet Name", "e.g., users, customers, Sheet1", state.TableName)
		textField(h, "columnName", "Column / Range Name", "e.g., email, A, B", state.ColumnName)
		queryTypeField(h, state.QueryType)
		patternField(h, state.QueryType, state.Pattern)

		h.Raw("</div>")
		h.Raw(`<button type="submit" class="btn btn-primary btn-lg w-full"><span aria-hidden="true">✨</span> Generate Query / Formula</button>`)
		h.Raw("</form>")

		h.Component(ctx, Output(state.GeneratedCode))
		h.Raw("</section>")
	})
}

// Output renders the generated code block, or an empty anchor when there is none.
func Output(code string) templ.Component {
	return common.Markup(func(_ context.Context, h *common.HTMLWriter) {
		if code == "" {
			h.Raw(`<div id="` + OutputID + `"></div>`)
			return
		}
		h.Raw(`<div id="` + OutputID + `" class="output space-y-2">`)
		h.Raw(`<div class="output-header"><span class="label">Generated Code</span>`)
		h.Raw("<button")
		h.Attr("type", "button")
		h.Attr("class", "btn btn-outline btn-sm")
		h.Attr("data-on:click", "@post('"+CopyURL+"')")
		h.Raw(`><span aria-hidden="true">📋</span> Copy</button></div>`)
		h.Raw(`<pre class="code-block"><code>`)
		h.Text(code)
		h.Raw("</code></pre></div>")
	})
}

func platformField(h *common.HTMLWriter, selected genie.Platform) {
	h.Raw(`<div class="field"><label for="platform">DB / Platform Type</label>`)
	h.Raw(`<select id="platform" name="platform" data-bind="platform">`)
	for _, p := range genie.Platforms() {
		h.Raw("<option")
		h.Attr("value", string(p.Name))
		if p.Name == selected {
			h.Raw(" selected")
		}
		h.Raw(">")
		h.Text(p.DisplayName)
		h.Raw("</option>")
	}
	h.Raw("</select></div>")
}

func queryTypeField(h *common.HTMLWriter, selected genie.QueryType) {
	h.Raw(`<div class="field"><label for="queryType">Query / Formula Type</label>`)
	h.Raw(`<select id="queryType" name="queryType" data-bind="queryType">`)
	for _, q := range genie.QueryTypes() {
		h.Raw("<option")
		h.Attr("value", string(q.Name))
		if q.Name == selected {
			h.Raw(" selected")
		}
		h.Raw(">")
		h.Text(q.Icon + " " + q.Label)
		h.Raw("</option>")
	}
	h.Raw("</select></div>")
}

func textField(h *common.HTMLWriter, id, label, placeholder, value string) {
	h.Raw(`<div class="field">`)
	h.Raw("<label")
	h.Attr("for", id)
	h.Raw(">")
	h.Text(label)
	h.Raw("</label><input")
	h.Attr("id", id)
	h.Attr("name", id)
	h.Attr("type", "text")
	h.Attr("placeholder", placeholder)
	h.Attr("value", value)
	h.Attr("data-bind", id)
	h.Raw("></div>")
}

// patternField renders the pattern input. Label, placeholder and tip follow
// the selected query type on the client; the server renders the initial one.
func patternField(h *common.HTMLWriter, selected genie.QueryType, value string) {
	current, ok := genie.LookupQueryType(selected)
	if !ok {
		current, _ = genie.LookupQueryType(genie.DefaultQueryType)
	}
	regex, _ := genie.LookupQueryType(genie.Regex)
	substring, _ := genie.LookupQueryType(genie.Substring)

	h.Raw(`<div class="field col-span-2"><label for="pattern">`)
	for _, q := range []genie.QueryTypeInfo{regex, substring} {
		h.Raw("<span")
		h.Attr("data-show", "$queryType === "+common.JSString(string(q.Name)))
		if q.Name != current.Name {
			h.Raw(` style="display: none"`)
		}
		h.Raw(">")
		h.Text(q.PatternLabel)
		h.Raw("</span>")
	}
	h.Raw("</label><input")
	h.Attr("id", "pattern")
	h.Attr("name", "pattern")
	h.Attr("type", "text")
	h.Attr("placeholder", current.Placeholder)
	h.Attr("data-attr:placeholder", "$queryType === "+common.JSString(string(genie.Regex))+
		" ? "+common.JSString(regex.Placeholder)+" : "+common.JSString(substring.Placeholder))
	h.Attr("value", value)
	h.Attr("data-bind", "pattern")
	h.Raw(">")
	for _, q := range []genie.QueryTypeInfo{regex, substring} {
		h.Raw(`<p class="hint"`)
		h.Attr("data-show", "$queryType === "+common.JSString(string(q.Name)))
		if q.Name != current.Name {
			h.Raw(` style="display: none"`)
		}
		h.Raw(">")
		h.Text(q.Tip)
		h.Raw("</p>")
	}
	h.Raw("</div>")
}
