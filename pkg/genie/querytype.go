package genie

import (
	"fmt"
	"strings"
)

// QueryType selects between pattern-match and range-extract generation.
type QueryType string

const (
	// Regex produces a filter/search expression from a regular-expression-like pattern.
	Regex QueryType = "regex"
	// Substring produces a substring-extraction expression from a "start,length" pair.
	Substring QueryType = "substring"
)

// DefaultQueryType is preselected in every form.
const DefaultQueryType = Regex

// QueryTypeInfo carries the labels a form shows for a query type.
type QueryTypeInfo struct {
	Name         QueryType
	Label        string
	Icon         string
	PatternLabel string
	Placeholder  string
	Tip          string
}

var queryTypes = []QueryTypeInfo{
	{
		Name:         Regex,
		Label:        "Regex (Pattern Matching)",
		Icon:         "🔍",
		PatternLabel: "Regular Expression Pattern",
		Placeholder:  "e.g., checkoutDate=(.*?)&",
		Tip:          "💡 Tip: Regex = 🔍 powerful pattern matching",
	},
	{
		Name:         Substring,
		Label:        "Substring (Extract Text)",
		Icon:         "✂️",
		PatternLabel: "Range (start,length)",
		Placeholder:  "e.g., 1,5",
		Tip:          "💡 Tip: Substring = ✂️ extract the juiciest bits!",
	},
}

var queryTypeAliases = map[string]QueryType{
	"regex":     Regex,
	"regexp":    Regex,
	"pattern":   Regex,
	"match":     Regex,
	"substring": Substring,
	"substr":    Substring,
	"range":     Substring,
	"extract":   Substring,
}

// QueryTypes returns all query types in presentation order.
func QueryTypes() []QueryTypeInfo {
	out := make([]QueryTypeInfo, len(queryTypes))
	copy(out, queryTypes)
	return out
}

// QueryTypeNames returns the canonical query type names.
func QueryTypeNames() []string {
	names := make([]string, len(queryTypes))
	for i, q := range queryTypes {
		names[i] = string(q.Name)
	}
	return names
}

// LookupQueryType returns the description of q.
func LookupQueryType(q QueryType) (QueryTypeInfo, bool) {
	for _, info := range queryTypes {
		if info.Name == q {
			return info, true
		}
	}
	return QueryTypeInfo{}, false
}

// ParseQueryType resolves a user supplied query type name or alias.
func ParseQueryType(s string) (QueryType, error) {
	if q, ok := queryTypeAliases[normalizeName(s)]; ok {
		return q, nil
	}
	return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownQueryType, s, strings.Join(QueryTypeNames(), ", "))
}

// Valid reports whether q is a supported query type.
func (q QueryType) Valid() bool {
	_, ok := LookupQueryType(q)
	return ok
}

func (q QueryType) String() string { return string(q) }

// MarshalText implements encoding.TextMarshaler.
func (q QueryType) MarshalText() ([]byte, error) {
	return []byte(q), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting aliases.
// Empty text yields the zero value, which callers treat as "use the default".
func (q *QueryType) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*q = ""
		return nil
	}
	parsed, err := ParseQueryType(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
