// Package components provides shared templ components for all UI features.
package components

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"
)

// HTMLWriter writes markup and keeps the first write error.
type HTMLWriter struct {
	w   io.Writer
	err error
}

// NewHTMLWriter returns a writer over w.
func NewHTMLWriter(w io.Writer) *HTMLWriter {
	return &HTMLWriter{w: w}
}

// Raw writes trusted markup.
func (h *HTMLWriter) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Text writes escaped text content.
func (h *HTMLWriter) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped.
func (h *HTMLWriter) Attr(name, value string) {
	h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// Component renders a nested component.
func (h *HTMLWriter) Component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// Err returns the first error encountered.
func (h *HTMLWriter) Err() error {
	return h.err
}

// Markup wraps a render function as a component.
func Markup(fn func(ctx context.Context, h *HTMLWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTMLWriter(w)
		fn(ctx, h)
		return h.Err()
	})
}

// JSString quotes s as a JavaScript string literal for use in datastar expressions.
func JSString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
