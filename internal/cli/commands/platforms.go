package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/querygenie/internal/cli/output"
	"github.com/leapstack-labs/querygenie/pkg/genie"
	"github.com/spf13/cobra"
)

// PlatformRow is one platform and query type pairing with its sample output.
type PlatformRow struct {
	Platform    genie.Platform  `json:"platform" yaml:"platform"`
	DisplayName string          `json:"display_name" yaml:"display_name"`
	Kind        genie.Kind      `json:"kind" yaml:"kind"`
	QueryType   genie.QueryType `json:"query_type" yaml:"query_type"`
	Example     string          `json:"example" yaml:"example"`
}

// NewPlatformsCommand creates the platforms command.
func NewPlatformsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "platforms",
		Aliases: []string{"ls"},
		Short:   "List supported platforms and query types",
		Long: `List every supported platform with both query types and the output each
produces for a sample input (users/email/^a, Sheet1/A for spreadsheets,
and 1,5 for substring).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlatforms(NewCommandContext(cmd).Renderer)
		},
	}
}

// platformRows builds the listing in registry order.
func platformRows() []PlatformRow {
	var rows []PlatformRow
	for _, p := range genie.Platforms() {
		for _, q := range genie.QueryTypes() {
			rows = append(rows, PlatformRow{
				Platform:    p.Name,
				DisplayName: p.DisplayName,
				Kind:        p.Kind,
				QueryType:   q.Name,
				Example:     genie.Example(p.Name, q.Name),
			})
		}
	}
	return rows
}

func runPlatforms(r *output.Renderer) error {
	rows := platformRows()
	if ok, err := r.Structured(rows); ok {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Platform", "Name", "Kind", "Query Type", "Example"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.DisplayName, row.Platform, row.Kind, row.QueryType, row.Example})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Platforms"))
		r.Println("")
		t.RenderMarkdown()
		return nil
	}

	r.Header(1, "Platforms")
	t.Render()
	r.Muted("Generate with: querygenie generate -p <name> -q <query type> --table ... --column ... --pattern ...")
	return nil
}
