package components

import (
	"context"

	"github.com/a-h/templ"
	"github.com/leapstack-labs/querygenie/internal/ui/resources"
)

// DatastarScriptURL is the client bundle loaded by every page.
const DatastarScriptURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

// AppName is shown in titles and the header.
const AppName = "Query Genie"

// PageData holds the document-level settings of a page.
type PageData struct {
	Title  string
	IsDev  bool
	Toasts []Toast
}

// Layout renders the HTML document around body.
func Layout(data PageData, body templ.Component) templ.Component {
	return Markup(func(ctx context.Context, h *HTMLWriter) {
		h.Raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Raw("<title>")
		if data.Title != "" && data.Title != AppName {
			h.Text(data.Title + " - " + AppName)
		} else {
			h.Text(AppName)
		}
		h.Raw("</title>")
		h.Raw("<link")
		h.Attr("rel", "stylesheet")
		h.Attr("href", resources.StaticPath("css/app.css"))
		h.Raw(">")
		h.Raw("<script")
		h.Attr("type", "module")
		h.Attr("src", DatastarScriptURL)
		h.Raw("></script></head><body>")

		if data.IsDev {
			// Long-lived SSE stream; the server reloads the page when assets change.
			h.Raw(`<div data-init="@get('/reload')" hidden></div>`)
		}

		h.Component(ctx, ToastContainer(data.Toasts...))
		h.Component(ctx, body)
		h.Raw("</body></html>")
	})
}
