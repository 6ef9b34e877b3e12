// Package pages provides full-page templ components for the generator feature.
package pages

import (
	"context"

	"github.com/a-h/templ"
	common "github.com/leapstack-labs/querygenie/internal/ui/features/common/components"
	"github.com/leapstack-labs/querygenie/internal/ui/features/genie/components"
)

// GeniePage renders the generator page with every ad placeholder around the card.
func GeniePage(title string, isDev bool, state components.FormState, toasts []common.Toast) templ.Component {
	body := common.Markup(func(ctx context.Context, h *common.HTMLWriter) {
		h.Raw(`<main class="container">`)
		h.Component(ctx, common.TopAdPlaceholder())

		h.Raw(`<header class="hero"><h1>Query Genie</h1>`)
		h.Raw(`<p class="text-muted-foreground">SQL statements and spreadsheet formulas from a pattern, ready to copy.</p></header>`)

		h.Raw(`<div class="layout-grid"><div class="main-col">`)
		h.Component(ctx, components.Card(state))
		h.Component(ctx, common.MiddleAdPlaceholder())
		h.Component(ctx, common.ContentAdPlaceholder())
		h.Raw(`</div><aside class="sidebar">`)
		h.Component(ctx, common.SidebarAdPlaceholder())
		h.Raw("</aside></div>")

		h.Component(ctx, common.BottomAdPlaceholder())
		h.Raw("</main>")

		h.Raw(`<footer class="site-footer">`)
		h.Component(ctx, common.BannerAdPlaceholder())
		h.Raw(`<p class="text-xs text-muted-foreground">Output is not escaped. Review it before running it anywhere.</p></footer>`)

		h.Component(ctx, common.FloatingAdPlaceholder())
	})

	return common.Layout(common.PageData{Title: title, IsDev: isDev, Toasts: toasts}, body)
}
