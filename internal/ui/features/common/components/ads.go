package components

import (
	"context"

	"github.com/a-h/templ"
)

// AdSlot describes a fixed advertisement placeholder.
type AdSlot struct {
	ID        string
	Class     string
	Title     string
	Size      string
	Note      string
	Prominent bool
}

// Ad slots in page order.
var (
	TopAdSlot = AdSlot{
		ID: "ad-top", Class: "ad-placeholder h-24 mb-4",
		Title: "Advertisement Space - Top Banner", Size: "728x90 or responsive",
	}
	SidebarAdSlot = AdSlot{
		ID: "ad-sidebar", Class: "ad-placeholder h-64",
		Title: "Advertisement Space", Size: "300x250 or responsive",
	}
	MiddleAdSlot = AdSlot{
		ID: "ad-middle", Class: "ad-placeholder h-24 mt-4",
		Title: "Advertisement Space - Middle Banner", Size: "728x90 or responsive",
	}
	BottomAdSlot = AdSlot{
		ID: "ad-bottom", Class: "ad-placeholder h-24 mt-4",
		Title: "Advertisement Space - Bottom Banner", Size: "728x90 or responsive",
	}
	FloatingAdSlot = AdSlot{
		ID: "ad-floating", Class: "floating-ad",
		Title: "Floating Ad", Size: "300x120",
	}
	ContentAdSlot = AdSlot{
		ID: "ad-content", Class: "ad-placeholder h-24 my-4",
		Title: "Advertisement Space - Content Banner", Size: "728x90 or responsive",
	}
	BannerAdSlot = AdSlot{
		ID: "ad-banner", Class: "ad-placeholder h-32 mx-auto max-w-4xl",
		Title: "Advertisement Space - Footer Banner", Size: "970x250 or responsive banner",
		Note: "Prime placement above footer", Prominent: true,
	}
)

// AdSlots returns every placeholder slot.
func AdSlots() []AdSlot {
	return []AdSlot{TopAdSlot, SidebarAdSlot, MiddleAdSlot, BottomAdSlot, FloatingAdSlot, ContentAdSlot, BannerAdSlot}
}

// AdPlaceholder renders a non-interactive advertisement slot.
func AdPlaceholder(slot AdSlot) templ.Component {
	return Markup(func(_ context.Context, h *HTMLWriter) {
		h.Raw("<div")
		h.Attr("id", slot.ID)
		h.Attr("class", slot.Class)
		h.Raw(` aria-hidden="true">`)

		titleClass := "text-xs"
		if slot.Prominent {
			titleClass = "text-sm font-medium"
		}
		h.Raw(`<div class="` + titleClass + `">`)
		h.Text(slot.Title)
		h.Raw(`</div><div class="text-xs text-muted-foreground mt-1">`)
		h.Text(slot.Size)
		h.Raw("</div>")
		if slot.Note != "" {
			h.Raw(`<div class="text-xs text-muted-foreground mt-1">`)
			h.Text(slot.Note)
			h.Raw("</div>")
		}
		h.Raw("</div>")
	})
}

// TopAdPlaceholder renders the banner above the form.
func TopAdPlaceholder() templ.Component { return AdPlaceholder(TopAdSlot) }

// SidebarAdPlaceholder renders the medium rectangle next to the form.
func SidebarAdPlaceholder() templ.Component { return AdPlaceholder(SidebarAdSlot) }

// MiddleAdPlaceholder renders the banner between form and output.
func MiddleAdPlaceholder() templ.Component { return AdPlaceholder(MiddleAdSlot) }

// BottomAdPlaceholder renders the banner below the form.
func BottomAdPlaceholder() templ.Component { return AdPlaceholder(BottomAdSlot) }

// FloatingAdPlaceholder renders the small fixed-position ad.
func FloatingAdPlaceholder() templ.Component { return AdPlaceholder(FloatingAdSlot) }

// ContentAdPlaceholder renders the in-content banner.
func ContentAdPlaceholder() templ.Component { return AdPlaceholder(ContentAdSlot) }

// BannerAdPlaceholder renders the large banner above the footer.
func BannerAdPlaceholder() templ.Component { return AdPlaceholder(BannerAdSlot) }
