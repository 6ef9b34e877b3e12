package genie

import (
	common "github.com/leapstack-labs/querygenie/internal/ui/features/common/components"
	"github.com/leapstack-labs/querygenie/internal/ui/features/genie/components"
	"github.com/leapstack-labs/querygenie/pkg/genie"
)

// Signals is the client state posted by the generator card.
// Enumerations arrive as plain strings and are parsed by the handler.
type Signals struct {
	Platform      string `json:"platform"`
	TableName     string `json:"tableName"`
	ColumnName    string `json:"columnName"`
	QueryType     string `json:"queryType"`
	Pattern       string `json:"pattern"`
	GeneratedCode string `json:"generatedCode"`
}

// Settings are the server-wide defaults for new forms.
type Settings struct {
	DefaultPlatform  genie.Platform
	DefaultQueryType genie.QueryType
	StrictRange      bool
}

// flash carries the outcome of a plain form post across the redirect.
type flash struct {
	Form  components.FormState `json:"form"`
	Toast common.Toast         `json:"toast"`
}

const (
	sessionName = "querygenie"
	flashKey    = "genie"
	pageTitle   = "Query Genie"
)

// Notifications shown after user actions.
var (
	toastMissing = common.Toast{
		Title:       "Missing Information",
		Description: genie.MissingInformationMessage,
		Variant:     common.ToastDestructive,
	}
	toastGenerated = common.Toast{
		Title:       "✨ Query Generated!",
		Description: "Your query or formula is ready to use.",
	}
	toastCopied = common.Toast{
		Title:       "Copied!",
		Description: "Query copied to clipboard.",
	}
)

// toastInvalid reports a rejected selection or range.
func toastInvalid(err error) common.Toast {
	return common.Toast{
		Title:       "Cannot Generate",
		Description: err.Error(),
		Variant:     common.ToastDestructive,
	}
}
