package output

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func newTestRenderer(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{ModeAuto, true, ModeText},
		{ModeAuto, false, ModeMarkdown},
		{"", false, ModeMarkdown},
		{ModeJSON, true, ModeJSON},
		{ModeYAML, false, ModeYAML},
		{ModeText, false, ModeText},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			r, _, _ := newTestRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_TextStyling(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeText, true)
	r.Header(1, "Platforms")
	r.Success("copied")
	r.Error("boom")

	assert.Regexp(t, ansiPattern, out.String())
	assert.Contains(t, out.String(), "Platforms")
	assert.Contains(t, out.String(), "✓ copied")
	assert.Contains(t, errOut.String(), "✗ boom")
}

func TestRenderer_MarkdownHasNoANSI(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeMarkdown, false)
	r.Header(2, "Generated")
	r.Success("done")
	r.Warning("careful")
	r.Muted("quiet")
	r.Code("sql", "SELECT 1;")

	assert.NotRegexp(t, ansiPattern, out.String()+errOut.String())
	assert.Contains(t, out.String(), "## Generated")
	assert.Contains(t, out.String(), "```sql\nSELECT 1;\n```")
}

func TestRenderer_CodeTextIsVerbatim(t *testing.T) {
	r, out, _ := newTestRenderer(ModeText, true)
	r.Code("sql", `SELECT * FROM t WHERE c REGEXP 'x';`)
	assert.Equal(t, "SELECT * FROM t WHERE c REGEXP 'x';\n", out.String())
}

func TestRenderer_Structured(t *testing.T) {
	type payload struct {
		Code string `json:"code" yaml:"code"`
	}
	v := payload{Code: `=FILTER(A2:A, REGEXMATCH(A2:A, "<b>"))`}

	t.Run("json", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeJSON, false)
		ok, err := r.Structured(v)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `{"code":"=FILTER(A2:A, REGEXMATCH(A2:A, \"<b>\"))"}`, out.String())
		assert.Contains(t, out.String(), "<b>", "HTML is not escaped")
	})

	t.Run("yaml", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeYAML, false)
		ok, err := r.Structured(v)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, out.String(), "code: ")
		assert.Contains(t, out.String(), "REGEXMATCH")
	})

	t.Run("text", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeText, false)
		ok, err := r.Structured(v)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, out.String())
	})
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"JSON", ModeJSON, false},
		{" yaml ", ModeYAML, false},
		{"markdown", ModeMarkdown, false},
		{"html", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "available")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "### Sub", FormatHeader(3, "Sub"))
	assert.Equal(t, "# Zero", FormatHeader(0, "Zero"))
	assert.Equal(t, "- **Platform:** mysql", FormatKeyValue("Platform", "mysql"))
	assert.Equal(t, "````\na ``` b\n````", FormatCodeBlock("", "a ``` b"))
}
