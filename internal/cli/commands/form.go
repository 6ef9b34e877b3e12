package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/querygenie/internal/clipboard"
	"github.com/leapstack-labs/querygenie/internal/tui"
	"github.com/spf13/cobra"
)

// NewFormCommand creates the form command.
func NewFormCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Fill in the generator form in the terminal",
		Long: `Open an interactive terminal form with the same fields as the web page.

Keys: tab/shift+tab or arrows move between fields, left/right choose the
platform and query type, enter on the pattern field (or ctrl+g) generates,
ctrl+y copies the result through OSC52, esc quits. The last generated code
is printed after the form closes.`,
		Args: cobra.NoArgs,
		RunE: runForm,
	}
}

func runForm(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	model := tui.New(tui.Options{
		Platform:    cfg.Generator.Platform,
		QueryType:   cfg.Generator.QueryType,
		StrictRange: cfg.Generator.StrictRange,
		Copier:      clipboard.NewTerminal(cmd.OutOrStdout()),
	})

	p := tea.NewProgram(model,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithContext(cmd.Context()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("form failed: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Code() != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), m.Code())
	}
	return nil
}
