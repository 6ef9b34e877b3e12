package commands

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/leapstack-labs/querygenie/internal/ui"
	genieFeature "github.com/leapstack-labs/querygenie/internal/ui/features/genie"
	"github.com/spf13/cobra"
)

// UIOptions holds options for the ui command.
type UIOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
	Dev       bool
}

// NewUICommand creates the ui command.
func NewUICommand() *cobra.Command {
	opts := &UIOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the Query Genie web UI",
		Long: `Start a local web server with the generator form.

The page offers:
- Platform, table, column, query type and pattern fields
- Generated code with a copy button
- Advertisement placeholders around the form`,
		Example: `  # Start UI on default port
  querygenie ui

  # Start on custom port
  querygenie ui --port 3000

  # Start without auto-opening browser
  querygenie ui --no-browser`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload the browser when static assets change")
	cmd.Flags().BoolVar(&opts.Dev, "dev", false, "Development mode (live reload endpoints)")

	return cmd
}

func runUI(cmd *cobra.Command, opts *UIOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	uiCfg := cfg.UI

	// CLI flags override config file
	port := uiCfg.Port
	if cmd.Flags().Changed("port") {
		port = opts.Port
	}
	autoOpen := uiCfg.AutoOpen && !opts.NoBrowser
	watch := uiCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}
	dev := uiCfg.Dev
	if cmd.Flags().Changed("dev") {
		dev = opts.Dev
	}

	server := ui.NewServer(ui.Config{
		Port:          port,
		Watch:         watch && dev,
		Dev:           dev,
		SessionSecret: uiCfg.SessionSecret,
		Logger:        cmdCtx.Logger,
		Settings: genieFeature.Settings{
			DefaultPlatform:  cfg.Generator.Platform,
			DefaultQueryType: cfg.Generator.QueryType,
			StrictRange:      cfg.Generator.StrictRange,
		},
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- server.Serve(ctx) }()

	select {
	case err := <-errc:
		return err
	case <-server.Listening():
	}

	url := server.URL()
	if autoOpen {
		go openBrowser(url)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Query Genie running on %s\n", url)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	return <-errc
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
