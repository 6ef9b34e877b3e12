// Package tui implements the terminal version of the generator form.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/querygenie/internal/clipboard"
	"github.com/leapstack-labs/querygenie/pkg/genie"
)

// Form fields in display order.
const (
	fieldPlatform = iota
	fieldTable
	fieldColumn
	fieldQueryType
	fieldPattern
	fieldCount
)

// Status is the notification line shown under the form.
type Status struct {
	Title       string
	Description string
	Err         bool
}

// Options configures a new form.
type Options struct {
	Platform    genie.Platform
	QueryType   genie.QueryType
	StrictRange bool
	Copier      clipboard.Copier
}

// Model is the bubbletea model of the generator form.
type Model struct {
	platforms   []genie.PlatformInfo
	platformIdx int
	queryTypes  []genie.QueryTypeInfo
	queryIdx    int

	table   textinput.Model
	column  textinput.Model
	pattern textinput.Model

	focus  int
	strict bool
	code   string
	status Status
	copier clipboard.Copier
	styles styles
}

// New creates a form with the configured defaults selected.
func New(opts Options) Model {
	m := Model{
		platforms:  genie.Platforms(),
		queryTypes: genie.QueryTypes(),
		strict:     opts.StrictRange,
		copier:     opts.Copier,
		styles:     defaultStyles(),
	}

	for i, p := range m.platforms {
		if p.Name == opts.Platform {
			m.platformIdx = i
		}
	}
	for i, q := range m.queryTypes {
		if q.Name == opts.QueryType {
			m.queryIdx = i
		}
	}

	m.table = newInput("e.g., users")
	m.column = newInput("e.g., email")
	m.pattern = newInput("")
	m.syncLabels()

	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 0
	ti.Width = 48
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case "left", "right":
		if m.cycle(key.String() == "right") {
			return m, nil
		}
	case "ctrl+g":
		m.generate()
		return m, nil
	case "enter":
		if m.focus == fieldPattern {
			m.generate()
			return m, nil
		}
		return m, m.setFocus(m.focus + 1)
	case "ctrl+y":
		m.copy()
		return m, nil
	}

	return m.updateInput(msg)
}

// updateInput forwards msg to the focused text input.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTable:
		m.table, cmd = m.table.Update(msg)
	case fieldColumn:
		m.column, cmd = m.column.Update(msg)
	case fieldPattern:
		m.pattern, cmd = m.pattern.Update(msg)
	}
	return m, cmd
}

// setFocus moves focus to field i and focuses its text input, if any.
func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	m.table.Blur()
	m.column.Blur()
	m.pattern.Blur()

	switch i {
	case fieldTable:
		return m.table.Focus()
	case fieldColumn:
		return m.column.Focus()
	case fieldPattern:
		return m.pattern.Focus()
	}
	return nil
}

// cycle steps the focused select field. It reports false when the focused
// field is a text input.
func (m *Model) cycle(forward bool) bool {
	step := 1
	if !forward {
		step = -1
	}
	switch m.focus {
	case fieldPlatform:
		m.platformIdx = (m.platformIdx + step + len(m.platforms)) % len(m.platforms)
	case fieldQueryType:
		m.queryIdx = (m.queryIdx + step + len(m.queryTypes)) % len(m.queryTypes)
	default:
		return false
	}
	m.syncLabels()
	return true
}

// syncLabels updates placeholders that depend on the selections.
func (m *Model) syncLabels() {
	m.pattern.Placeholder = m.queryTypes[m.queryIdx].Placeholder
	if m.platforms[m.platformIdx].Kind == genie.KindSpreadsheet {
		m.table.Placeholder = "e.g., Sheet1"
		m.column.Placeholder = "e.g., A"
	} else {
		m.table.Placeholder = "e.g., users"
		m.column.Placeholder = "e.g., email"
	}
}

// Request returns the form values as a generator request.
func (m Model) Request() genie.Request {
	return genie.Request{
		Platform:    m.platforms[m.platformIdx].Name,
		QueryType:   m.queryTypes[m.queryIdx].Name,
		TableName:   m.table.Value(),
		ColumnName:  m.column.Value(),
		Pattern:     m.pattern.Value(),
		StrictRange: m.strict,
	}
}

// Code returns the last generated code.
func (m Model) Code() string { return m.code }

// Status returns the current notification.
func (m Model) Status() Status { return m.status }

func (m *Model) generate() {
	code, err := genie.Generate(m.Request())
	switch {
	case errors.Is(err, genie.ErrMissingInformation):
		m.status = Status{Title: "Missing Information", Description: genie.MissingInformationMessage, Err: true}
	case err != nil:
		m.status = Status{Title: "Cannot Generate", Description: err.Error(), Err: true}
	default:
		m.code = code
		m.status = Status{Title: "✨ Query Generated!", Description: "Your query or formula is ready to use."}
	}
}

func (m *Model) copy() {
	if m.code == "" || m.copier == nil {
		return
	}
	if err := m.copier.Copy(m.code); err != nil {
		return
	}
	m.status = Status{Title: "Copied!", Description: "Query copied to clipboard."}
}

// View implements tea.Model.
func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.title.Render("✨ Query Genie"))
	b.WriteString("\n")
	b.WriteString(s.subtitle.Render("SQL queries and spreadsheet formulas from a pattern"))
	b.WriteString("\n\n")

	platform := m.platforms[m.platformIdx]
	queryType := m.queryTypes[m.queryIdx]

	options := make([]string, len(m.platforms))
	for i, p := range m.platforms {
		options[i] = p.DisplayName
	}
	m.writeSelect(&b, fieldPlatform, "Platform", options, m.platformIdx)
	m.writeInput(&b, fieldTable, platform.TableLabel+" Name", m.table)
	m.writeInput(&b, fieldColumn, platform.ColumnLabel, m.column)

	options = make([]string, len(m.queryTypes))
	for i, q := range m.queryTypes {
		options[i] = q.Icon + " " + q.Label
	}
	m.writeSelect(&b, fieldQueryType, "Query Type", options, m.queryIdx)
	m.writeInput(&b, fieldPattern, queryType.PatternLabel, m.pattern)
	b.WriteString(s.tip.Render(queryType.Tip))
	b.WriteString("\n\n")

	if m.status.Title != "" {
		style := s.success
		if m.status.Err {
			style = s.errorText
		}
		b.WriteString(style.Render(m.status.Title))
		b.WriteString(" ")
		b.WriteString(m.status.Description)
		b.WriteString("\n\n")
	}

	if m.code != "" {
		b.WriteString(s.label.Render("Generated Code"))
		b.WriteString("\n")
		b.WriteString(s.code.Render(m.code))
		b.WriteString("\n\n")
	}

	b.WriteString(s.help.Render("tab/↑↓ move • ←→ choose • enter/ctrl+g generate • ctrl+y copy • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) label(field int, text string) string {
	if m.focus == field {
		return m.styles.focused.Render("› " + text)
	}
	return m.styles.label.Render("  " + text)
}

func (m Model) writeSelect(b *strings.Builder, field int, label string, options []string, selected int) {
	b.WriteString(m.label(field, label))
	b.WriteString("\n    ")
	for i, opt := range options {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == selected {
			b.WriteString(m.styles.selected.Render(opt))
		} else {
			b.WriteString(m.styles.option.Render(opt))
		}
	}
	b.WriteString("\n")
}

func (m Model) writeInput(b *strings.Builder, field int, label string, in textinput.Model) {
	b.WriteString(m.label(field, label))
	b.WriteString("\n    ")
	b.WriteString(in.View())
	b.WriteString("\n")
}
