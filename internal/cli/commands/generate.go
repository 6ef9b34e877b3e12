package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/querygenie/internal/cli/output"
	"github.com/leapstack-labs/querygenie/internal/clipboard"
	"github.com/leapstack-labs/querygenie/pkg/genie"
	"github.com/spf13/cobra"
)

// GenerateOptions holds options for the generate command.
type GenerateOptions struct {
	Platform  string
	QueryType string
	Table     string
	Column    string
	Pattern   string
	Copy      bool
	Strict    bool
}

// GenerateOutput is the structured output of the generate command.
type GenerateOutput struct {
	Platform  genie.Platform  `json:"platform" yaml:"platform"`
	QueryType genie.QueryType `json:"query_type" yaml:"query_type"`
	Table     string          `json:"table" yaml:"table"`
	Column    string          `json:"column" yaml:"column"`
	Pattern   string          `json:"pattern" yaml:"pattern"`
	Code      string          `json:"code" yaml:"code"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a SQL query or spreadsheet formula",
		Long: `Generate a SQL statement or spreadsheet formula that filters a column by a
regular expression or extracts a substring range.

The output is the literal text, ready to paste. Inputs are not escaped.`,
		Example: `  # MySQL pattern match
  querygenie generate -p mysql --table users --column email --pattern '^a'

  # Excel substring extraction, copied to the clipboard
  querygenie generate -p excel -q substring --table Sheet1 --column A --pattern 1,5 --copy

  # Structured output
  querygenie generate -p postgres --table t --column c --pattern x -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Platform, "platform", "p", "", "Target platform ("+joinNames(genie.PlatformNames())+")")
	cmd.Flags().StringVarP(&opts.QueryType, "type", "q", "", "Query type ("+joinNames(genie.QueryTypeNames())+")")
	cmd.Flags().StringVar(&opts.Table, "table", "", "Table or sheet name")
	cmd.Flags().StringVar(&opts.Column, "column", "", "Column or range name")
	cmd.Flags().StringVar(&opts.Pattern, "pattern", "", "Regular expression, or start,length for substring")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copy the result to the clipboard (OSC52)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Require start,length to be integers")

	registerEnumCompletions(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	req := genie.Request{
		Platform:    cfg.Generator.Platform,
		QueryType:   cfg.Generator.QueryType,
		TableName:   opts.Table,
		ColumnName:  opts.Column,
		Pattern:     opts.Pattern,
		StrictRange: cfg.Generator.StrictRange,
	}

	// Flags win even when the root command did not load them into config.
	var err error
	if cmd.Flags().Changed("platform") {
		if req.Platform, err = genie.ParsePlatform(opts.Platform); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("type") {
		if req.QueryType, err = genie.ParseQueryType(opts.QueryType); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("strict") {
		req.StrictRange = opts.Strict
	}

	code, err := genie.Generate(req)
	if err != nil {
		if errors.Is(err, genie.ErrMissingInformation) {
			return fmt.Errorf("%w. %s", err, genie.MissingInformationMessage)
		}
		return err
	}
	cmdCtx.Logger.Debug("generated", "platform", req.Platform, "query_type", req.QueryType)

	if opts.Copy {
		if err := copyToTerminal(cmd.ErrOrStderr(), code); err != nil {
			return err
		}
	}

	return renderGenerated(r, req, code, opts.Copy)
}

func renderGenerated(r *output.Renderer, req genie.Request, code string, copied bool) error {
	out := GenerateOutput{
		Platform:  req.Platform,
		QueryType: req.QueryType,
		Table:     req.TableName,
		Column:    req.ColumnName,
		Pattern:   req.Pattern,
		Code:      code,
	}
	if ok, err := r.Structured(out); ok {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(2, "Generated "+req.Platform.DisplayName()))
		r.Println("")
		r.Code(codeLang(req.Platform), code)
	default:
		r.Code("", code)
	}

	if copied {
		_, _ = fmt.Fprintln(r.ErrWriter(), r.Styles().Success.Render("✓ Copied to clipboard"))
	}
	return nil
}

// copyToTerminal writes the OSC52 sequence to w.
func copyToTerminal(w io.Writer, code string) error {
	if err := clipboard.NewTerminal(w).Copy(code); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}

// codeLang picks the fence language for markdown output.
func codeLang(p genie.Platform) string {
	if p.Kind() == genie.KindSQL {
		return "sql"
	}
	return ""
}

func joinNames(names []string) string {
	return strings.Join(names, "|")
}

// registerEnumCompletions adds shell completion for the platform and type flags.
func registerEnumCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("platform", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return genie.PlatformNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return genie.QueryTypeNames(), cobra.ShellCompDirectiveNoFileComp
	})
}
