package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querygenie/internal/clipboard"
	"github.com/leapstack-labs/querygenie/pkg/genie"
)

type recordingCopier struct {
	copied []string
}

func (c *recordingCopier) Copy(text string) error {
	if text == "" {
		return clipboard.ErrNothingToCopy
	}
	c.copied = append(c.copied, text)
	return nil
}

func press(t *testing.T, m Model, keys ...tea.KeyType) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(tea.KeyMsg{Type: k})
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

// fill moves through the text fields typing the given values.
func fill(t *testing.T, m Model, table, column, pattern string) Model {
	t.Helper()
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, table)
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, column)
	m = press(t, m, tea.KeyTab, tea.KeyTab)
	return typeText(t, m, pattern)
}

func TestNew_Defaults(t *testing.T) {
	m := New(Options{Platform: genie.SQLServer, QueryType: genie.Substring, StrictRange: true})
	req := m.Request()

	assert.Equal(t, genie.SQLServer, req.Platform)
	assert.Equal(t, genie.Substring, req.QueryType)
	assert.True(t, req.StrictRange)
	assert.Empty(t, m.Code())
	assert.NotNil(t, m.Init())
}

func TestModel_GenerateOnEnter(t *testing.T) {
	m := New(Options{Platform: genie.MySQL, QueryType: genie.Regex})
	m = fill(t, m, "users", "email", "^a")
	m = press(t, m, tea.KeyEnter)

	assert.Equal(t, "SELECT * FROM users WHERE email REGEXP '^a';", m.Code())
	assert.Equal(t, "✨ Query Generated!", m.Status().Title)
	assert.False(t, m.Status().Err)
	assert.Contains(t, m.View(), "SELECT * FROM users WHERE email REGEXP '^a';")
}

func TestModel_MissingInformation(t *testing.T) {
	m := New(Options{Platform: genie.MySQL, QueryType: genie.Regex})
	m = press(t, m, tea.KeyCtrlG)

	assert.Empty(t, m.Code())
	assert.True(t, m.Status().Err)
	assert.Equal(t, "Missing Information", m.Status().Title)
	assert.Contains(t, m.View(), genie.MissingInformationMessage)
}

func TestModel_MissingInformationKeepsPreviousCode(t *testing.T) {
	m := New(Options{Platform: genie.Excel, QueryType: genie.Substring})
	m = fill(t, m, "Sheet1", "A", "1,5")
	m = press(t, m, tea.KeyCtrlG)
	require.Equal(t, "=MID(A2, 1, 5)", m.Code())

	// Clear the pattern and regenerate.
	m = press(t, m, tea.KeyCtrlU)
	m = press(t, m, tea.KeyCtrlG)
	assert.True(t, m.Status().Err)
	assert.Equal(t, "=MID(A2, 1, 5)", m.Code())
}

func TestModel_CycleSelections(t *testing.T) {
	m := New(Options{Platform: genie.MySQL, QueryType: genie.Regex})

	m = press(t, m, tea.KeyRight)
	assert.Equal(t, genie.PostgreSQL, m.Request().Platform)

	m = press(t, m, tea.KeyLeft, tea.KeyLeft)
	assert.Equal(t, genie.GoogleSheets, m.Request().Platform, "wraps around")

	m = press(t, m, tea.KeyShiftTab, tea.KeyShiftTab, tea.KeyRight)
	assert.Equal(t, genie.Substring, m.Request().QueryType)
	assert.Contains(t, m.View(), "Range (start,length)")
	assert.Contains(t, m.View(), "extract the juiciest bits")
}

func TestModel_StrictRangeError(t *testing.T) {
	m := New(Options{Platform: genie.PostgreSQL, QueryType: genie.Substring, StrictRange: true})
	m = fill(t, m, "t", "c", "abc")
	m = press(t, m, tea.KeyEnter)

	assert.True(t, m.Status().Err)
	assert.Equal(t, "Cannot Generate", m.Status().Title)
	assert.Contains(t, m.Status().Description, "invalid range")
}

func TestModel_Copy(t *testing.T) {
	copier := &recordingCopier{}
	m := New(Options{Platform: genie.GoogleSheets, QueryType: genie.Regex, Copier: copier})

	m = press(t, m, tea.KeyCtrlY)
	assert.Empty(t, copier.copied, "nothing to copy yet")
	assert.Empty(t, m.Status().Title)

	m = fill(t, m, "S", "B", "foo")
	m = press(t, m, tea.KeyEnter, tea.KeyCtrlY)

	assert.Equal(t, []string{`=FILTER(B2:B, REGEXMATCH(B2:B, "foo"))`}, copier.copied)
	assert.Equal(t, "Copied!", m.Status().Title)
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := New(Options{})
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_SpreadsheetLabels(t *testing.T) {
	m := New(Options{Platform: genie.Excel, QueryType: genie.Regex})
	view := m.View()
	assert.Contains(t, view, "Sheet Name")
	assert.Contains(t, view, "Column letter")
	assert.Contains(t, view, "Regular Expression Pattern")
}

func TestModel_LongPatternNotTruncated(t *testing.T) {
	pattern := strings.Repeat("(foo|bar)", 100)
	require.Greater(t, len(pattern), 512)

	m := New(Options{Platform: genie.MySQL, QueryType: genie.Regex})
	m = fill(t, m, "users", "email", pattern)
	m = press(t, m, tea.KeyEnter)

	assert.Equal(t, pattern, m.Request().Pattern)
	assert.Equal(t, "SELECT * FROM users WHERE email REGEXP '"+pattern+"';", m.Code())
}
