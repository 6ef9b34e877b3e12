package components

import (
	"context"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/leapstack-labs/querygenie/internal/ui/features/common"
)

// ToastVariant controls toast styling.
type ToastVariant string

// Toast variants.
const (
	ToastDefault     ToastVariant = "default"
	ToastDestructive ToastVariant = "destructive"
)

// ToastContainerID is the element toasts are appended to.
const ToastContainerID = "toasts"

// toastLifetimeMS is how long a toast stays before removing itself.
const toastLifetimeMS = 4000

// Toast is a transient notification.
type Toast struct {
	Title       string
	Description string
	Variant     ToastVariant
}

// ToastContainer renders the live region holding toasts.
func ToastContainer(initial ...Toast) templ.Component {
	return Markup(func(ctx context.Context, h *HTMLWriter) {
		h.Raw(`<div id="` + ToastContainerID + `" class="toaster" role="region" aria-live="polite">`)
		for _, t := range initial {
			h.Component(ctx, ToastView(t))
		}
		h.Raw("</div>")
	})
}

// ToastView renders one toast with a unique id so several can stack.
func ToastView(t Toast) templ.Component {
	return Markup(func(_ context.Context, h *HTMLWriter) {
		variant := t.Variant
		if variant == "" {
			variant = ToastDefault
		}
		h.Raw("<div")
		h.Attr("id", "toast-"+uuid.NewString())
		h.Attr("class", "toast toast-"+string(variant))
		h.Raw(` role="status"`)
		h.Attr("data-init", "setTimeout(() => el.remove(), "+common.Itoa(toastLifetimeMS)+")")
		h.Raw(`><div class="toast-title">`)
		h.Text(t.Title)
		h.Raw("</div>")
		if t.Description != "" {
			h.Raw(`<div class="toast-description">`)
			h.Text(t.Description)
			h.Raw("</div>")
		}
		h.Raw("</div>")
	})
}
