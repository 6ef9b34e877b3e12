package genie

import (
	"fmt"
)

// Request holds the form values a template is rendered from.
type Request struct {
	Platform   Platform  `json:"platform" yaml:"platform"`
	QueryType  QueryType `json:"queryType" yaml:"query_type"`
	TableName  string    `json:"tableName" yaml:"table"`
	ColumnName string    `json:"columnName" yaml:"column"`
	Pattern    string    `json:"pattern" yaml:"pattern"`

	// StrictRange rejects range-extract patterns that are not two integers.
	StrictRange bool `json:"-" yaml:"-"`
}

// Validate checks the required fields and the enumerations.
// Only the empty string counts as missing.
func (r Request) Validate() error {
	var missing []string
	if r.TableName == "" {
		missing = append(missing, FieldTable)
	}
	if r.ColumnName == "" {
		missing = append(missing, FieldColumn)
	}
	if r.Pattern == "" {
		missing = append(missing, FieldPattern)
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	if !r.Platform.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPlatform, r.Platform)
	}
	if !r.QueryType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownQueryType, r.QueryType)
	}
	return nil
}

// templateKey addresses one cell of the dispatch table.
type templateKey struct {
	platform  Platform
	queryType QueryType
}

// regexTemplate renders pattern-match output from table, column and pattern.
type regexTemplate func(table, column, pattern string) string

// rangeTemplate renders range-extract output from table, column and range.
type rangeTemplate func(table, column string, r Range) string

var regexTemplates = map[Platform]regexTemplate{
	MySQL: func(t, c, p string) string {
		return fmt.Sprintf("SELECT * FROM %s WHERE %s REGEXP '%s';", t, c, p)
	},
	PostgreSQL: func(t, c, p string) string {
		return fmt.Sprintf("SELECT SUBSTRING(%s FROM '%s') AS extracted FROM %s;", c, p, t)
	},
	SQLServer: func(t, c, p string) string {
		return "-- SQL Server doesn't have native regex, use LIKE or PATINDEX\n" +
			fmt.Sprintf("SELECT * FROM %s WHERE %s LIKE '%%%s%%';", t, c, p)
	},
	Excel: func(_, c, p string) string {
		return fmt.Sprintf(`=TEXTJOIN(",", TRUE, FILTER(%[1]s2:%[1]s100, ISNUMBER(SEARCH("%[2]s", %[1]s2:%[1]s100))))`, c, p)
	},
	GoogleSheets: func(_, c, p string) string {
		return fmt.Sprintf(`=FILTER(%[1]s2:%[1]s, REGEXMATCH(%[1]s2:%[1]s, "%[2]s"))`, c, p)
	},
}

func sqlSubstringFilter(t, c string, r Range) string {
	return fmt.Sprintf("SELECT * FROM %s WHERE SUBSTRING(%s, %s, %s) IS NOT NULL;", t, c, r.Start, r.Length)
}

func cellMid(_, c string, r Range) string {
	return fmt.Sprintf("=MID(%s2, %s, %s)", c, r.Start, r.Length)
}

var rangeTemplates = map[Platform]rangeTemplate{
	MySQL: sqlSubstringFilter,
	PostgreSQL: func(t, c string, r Range) string {
		return fmt.Sprintf("SELECT SUBSTRING(%s, %s, %s) AS extracted FROM %s;", c, r.Start, r.Length, t)
	},
	SQLServer:    sqlSubstringFilter,
	Excel:        cellMid,
	GoogleSheets: cellMid,
}

// Generate renders the template for req. It fails with an error matching
// ErrMissingInformation when the table, column or pattern is empty.
func Generate(req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	switch req.QueryType {
	case Regex:
		return regexTemplates[req.Platform](req.TableName, req.ColumnName, req.Pattern), nil
	case Substring:
		r := ParseRange(req.Pattern)
		if req.StrictRange {
			var err error
			if r, err = ParseRangeStrict(req.Pattern); err != nil {
				return "", err
			}
		}
		return rangeTemplates[req.Platform](req.TableName, req.ColumnName, r), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQueryType, req.QueryType)
}

// Example returns the output for a fixed sample request, used by listings.
func Example(p Platform, q QueryType) string {
	req := Request{Platform: p, QueryType: q, TableName: "users", ColumnName: "email", Pattern: "^a"}
	if p.Kind() == KindSpreadsheet {
		req.TableName, req.ColumnName = "Sheet1", "A"
	}
	if q == Substring {
		req.Pattern = "1,5"
	}
	out, err := Generate(req)
	if err != nil {
		return ""
	}
	return out
}
