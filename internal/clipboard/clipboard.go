// Package clipboard puts generated code on the user's clipboard.
//
// Terminals get an OSC52 escape sequence, which most modern emulators (and
// tmux/screen with passthrough) turn into a clipboard write, including over
// SSH. Browsers get a script calling the asynchronous Clipboard API.
package clipboard

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// ErrNothingToCopy is returned when the text to copy is empty.
var ErrNothingToCopy = errors.New("nothing to copy")

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// Terminal copies through the OSC52 escape sequence.
type Terminal struct {
	out *termenv.Output
}

// NewTerminal returns a Terminal writing escape sequences to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{out: termenv.NewOutput(w)}
}

// Copy sends text to the system clipboard.
func (t *Terminal) Copy(text string) error {
	if text == "" {
		return ErrNothingToCopy
	}
	t.out.Copy(text)
	return nil
}

// BrowserScript returns JavaScript that writes text to the clipboard and runs
// onSuccess once the write resolves. A rejected write is swallowed.
func BrowserScript(text, onSuccess string) string {
	quoted, _ := json.Marshal(text)

	var b strings.Builder
	b.WriteString("navigator.clipboard.writeText(")
	b.Write(quoted)
	b.WriteString(").then(function(){")
	b.WriteString(onSuccess)
	b.WriteString("}).catch(function(){});")
	return b.String()
}
