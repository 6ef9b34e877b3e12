// Package genie turns a platform, a table, a column and a pattern into a
// ready-to-paste SQL statement or spreadsheet formula.
//
// The generator is a fixed dispatch table over the supported platforms and
// query types. It performs no escaping of user input: the output is meant to
// be read and copied by a person, not executed on their behalf.
package genie

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Platform is a target system for which a template is rendered.
type Platform string

// Supported platforms.
const (
	MySQL        Platform = "mysql"
	PostgreSQL   Platform = "postgresql"
	SQLServer    Platform = "sqlserver"
	Excel        Platform = "excel"
	GoogleSheets Platform = "googlesheets"
)

// DefaultPlatform is preselected in every form.
const DefaultPlatform = MySQL

// Kind groups platforms by the shape of their output.
type Kind string

const (
	// KindSQL platforms produce a SQL statement that references the table.
	KindSQL Kind = "sql"
	// KindSpreadsheet platforms produce a cell formula; the sheet name is not part of it.
	KindSpreadsheet Kind = "spreadsheet"
)

// PlatformInfo describes a platform for selectors and listings.
type PlatformInfo struct {
	Name        Platform
	DisplayName string
	Kind        Kind
	TableLabel  string
	ColumnLabel string
	// Default marks the platform forms preselect.
	Default bool
}

// platforms is ordered the way selectors present them.
var platforms = []PlatformInfo{
	{Name: MySQL, DisplayName: "MySQL", Kind: KindSQL, TableLabel: "Table", ColumnLabel: "Column", Default: DefaultPlatform == MySQL},
	{Name: PostgreSQL, DisplayName: "PostgreSQL", Kind: KindSQL, TableLabel: "Table", ColumnLabel: "Column"},
	{Name: SQLServer, DisplayName: "SQL Server", Kind: KindSQL, TableLabel: "Table", ColumnLabel: "Column"},
	{Name: Excel, DisplayName: "Excel", Kind: KindSpreadsheet, TableLabel: "Sheet", ColumnLabel: "Column letter"},
	{Name: GoogleSheets, DisplayName: "Google Sheets", Kind: KindSpreadsheet, TableLabel: "Sheet", ColumnLabel: "Column letter"},
}

// platformAliases maps normalized spellings to canonical platforms.
var platformAliases = map[string]Platform{
	"mysql":        MySQL,
	"mariadb":      MySQL,
	"postgresql":   PostgreSQL,
	"postgres":     PostgreSQL,
	"pg":           PostgreSQL,
	"psql":         PostgreSQL,
	"sqlserver":    SQLServer,
	"mssql":        SQLServer,
	"tsql":         SQLServer,
	"excel":        Excel,
	"xlsx":         Excel,
	"googlesheets": GoogleSheets,
	"gsheets":      GoogleSheets,
	"sheets":       GoogleSheets,
}

// normalizeName folds case and drops separators so "Google Sheets",
// "google-sheets" and "GOOGLE_SHEETS" compare equal.
// A Caser is stateful, so each call gets its own.
func normalizeName(s string) string {
	s = cases.Fold().String(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Platforms returns all supported platforms in presentation order.
func Platforms() []PlatformInfo {
	out := make([]PlatformInfo, len(platforms))
	copy(out, platforms)
	return out
}

// PlatformNames returns the canonical platform names in presentation order.
func PlatformNames() []string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p.Name)
	}
	return names
}

// LookupPlatform returns the description of p.
func LookupPlatform(p Platform) (PlatformInfo, bool) {
	for _, info := range platforms {
		if info.Name == p {
			return info, true
		}
	}
	return PlatformInfo{}, false
}

// ParsePlatform resolves a user supplied platform name or alias.
func ParsePlatform(s string) (Platform, error) {
	if p, ok := platformAliases[normalizeName(s)]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownPlatform, s, strings.Join(PlatformNames(), ", "))
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	_, ok := LookupPlatform(p)
	return ok
}

// Kind returns the output kind of p, or "" for unknown platforms.
func (p Platform) Kind() Kind {
	info, _ := LookupPlatform(p)
	return info.Kind
}

// DisplayName returns the human readable name of p.
func (p Platform) DisplayName() string {
	if info, ok := LookupPlatform(p); ok {
		return info.DisplayName
	}
	return string(p)
}

func (p Platform) String() string { return string(p) }

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting aliases.
// Empty text yields the zero value, which callers treat as "use the default".
func (p *Platform) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = ""
		return nil
	}
	parsed, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
