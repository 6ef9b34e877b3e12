package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/querygenie/internal/clipboard"
	"github.com/leapstack-labs/querygenie/pkg/genie"
	"github.com/spf13/cobra"
)

const replPrompt = "genie> "

// REPLOptions holds options for the repl command.
type REPLOptions struct {
	HistoryFile string
}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	opts := &REPLOptions{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive generator shell",
		Long: `Start an interactive shell. Set the platform, table and column with
dot-commands, then type a pattern on its own line to generate.

Type .help inside the shell for the list of commands.`,
		Example: `  querygenie repl
  genie> .platform postgres
  genie> .table users
  genie> .column email
  genie> ^a.*@example\.com$`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.HistoryFile, "history", defaultHistoryFile(), "History file (empty to disable)")

	return cmd
}

func defaultHistoryFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "querygenie", "repl_history")
}

func runREPL(cmd *cobra.Command, opts *REPLOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	if opts.HistoryFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.HistoryFile), 0o750); err != nil {
			cmdCtx.Logger.Warn("history disabled", "error", err)
			opts.HistoryFile = ""
		}
	}

	rlCfg := &readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     opts.HistoryFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	}
	// Piped or test input never gets raw mode.
	if _, ok := cmd.InOrStdin().(*os.File); !ok {
		rlCfg.FuncIsTerminal = func() bool { return false }
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	session := newREPLSession(cmd.OutOrStdout(), cmd.ErrOrStderr(), clipboard.NewTerminal(cmd.OutOrStdout()))
	session.req.Platform = cfg.Generator.Platform
	session.req.QueryType = cfg.Generator.QueryType
	session.req.StrictRange = cfg.Generator.StrictRange

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Query Genie REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if quit := session.handle(line); quit {
			break
		}
	}

	return nil
}

// replSession holds the request being edited and the last result.
type replSession struct {
	req    genie.Request
	last   string
	out    io.Writer
	errOut io.Writer
	copier clipboard.Copier
}

func newREPLSession(out, errOut io.Writer, copier clipboard.Copier) *replSession {
	return &replSession{
		req: genie.Request{
			Platform:  genie.DefaultPlatform,
			QueryType: genie.DefaultQueryType,
		},
		out:    out,
		errOut: errOut,
		copier: copier,
	}
}

// replCommands are the dot-commands; any other line is a pattern.
var replCommands = map[string]bool{
	".platform": true,
	".type":     true,
	".table":    true,
	".column":   true,
	".strict":   true,
	".show":     true,
	".copy":     true,
	".help":     true,
	".quit":     true,
	".exit":     true,
}

// isREPLCommand reports whether the first word of line is a dot-command.
func isREPLCommand(line string) bool {
	word, _, _ := strings.Cut(strings.TrimSpace(line), " ")
	return replCommands[strings.ToLower(word)]
}

// handle processes one input line and reports whether the session should end.
// Patterns are used as typed, so leading dots and surrounding spaces survive.
func (s *replSession) handle(line string) bool {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return false
	}
	if isREPLCommand(line) {
		return s.dotCommand(strings.TrimSpace(line))
	}

	s.req.Pattern = line
	code, err := genie.Generate(s.req)
	if err != nil {
		s.errorf("%v", err)
		return false
	}
	s.last = code
	_, _ = fmt.Fprintln(s.out, code)
	return false
}

func (s *replSession) dotCommand(line string) bool {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(command) {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".platform":
		if arg == "" {
			s.printf("platform: %s (available: %s)\n", s.req.Platform, strings.Join(genie.PlatformNames(), ", "))
			return false
		}
		p, err := genie.ParsePlatform(arg)
		if err != nil {
			s.errorf("%v", err)
			return false
		}
		s.req.Platform = p
		s.printf("platform: %s\n", p.DisplayName())

	case ".type":
		if arg == "" {
			s.printf("type: %s (available: %s)\n", s.req.QueryType, strings.Join(genie.QueryTypeNames(), ", "))
			return false
		}
		q, err := genie.ParseQueryType(arg)
		if err != nil {
			s.errorf("%v", err)
			return false
		}
		s.req.QueryType = q
		info, _ := genie.LookupQueryType(q)
		s.printf("type: %s\n", info.Label)

	case ".table":
		if arg == "" {
			s.errorf("Usage: .table <name>")
			return false
		}
		s.req.TableName = arg
		s.printf("table: %s\n", arg)

	case ".column":
		if arg == "" {
			s.errorf("Usage: .column <name>")
			return false
		}
		s.req.ColumnName = arg
		s.printf("column: %s\n", arg)

	case ".strict":
		switch strings.ToLower(arg) {
		case "on", "true", "1":
			s.req.StrictRange = true
		case "off", "false", "0":
			s.req.StrictRange = false
		default:
			s.errorf("Usage: .strict on|off")
			return false
		}
		s.printf("strict range: %t\n", s.req.StrictRange)

	case ".show":
		s.printf("platform: %s\ntype:     %s\ntable:    %s\ncolumn:   %s\npattern:  %s\nstrict:   %t\n",
			s.req.Platform, s.req.QueryType, s.req.TableName, s.req.ColumnName, s.req.Pattern, s.req.StrictRange)
		if s.last != "" {
			s.printf("last:     %s\n", s.last)
		}

	case ".copy":
		if err := s.copier.Copy(s.last); err != nil {
			s.errorf("%v", err)
			return false
		}
		s.printf("Copied!\n")

	default:
		s.errorf("Unknown command: %s (type .help for commands)", command)
	}
	return false
}

func (s *replSession) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *replSession) errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.errOut, "Error: "+format+"\n", a...)
}

func printREPLHelp(w io.Writer) {
	help := `Commands:
  .platform [name]   Show or set the platform
  .type [name]       Show or set the query type (regex, substring)
  .table <name>      Set the table or sheet name
  .column <name>     Set the column or range name
  .strict on|off     Require integer start,length in substring mode
  .show              Show the current settings and last result
  .copy              Copy the last result to the clipboard
  .help              Show this help
  .quit              Exit

Any other line is used as the pattern and generates immediately.`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter completes dot-commands and their enumerated arguments.
func newREPLCompleter() *readline.PrefixCompleter {
	platforms := make([]readline.PrefixCompleterInterface, 0, len(genie.PlatformNames()))
	for _, name := range genie.PlatformNames() {
		platforms = append(platforms, readline.PcItem(name))
	}
	types := make([]readline.PrefixCompleterInterface, 0, len(genie.QueryTypeNames()))
	for _, name := range genie.QueryTypeNames() {
		types = append(types, readline.PcItem(name))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem(".platform", platforms...),
		readline.PcItem(".type", types...),
		readline.PcItem(".table"),
		readline.PcItem(".column"),
		readline.PcItem(".strict", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem(".show"),
		readline.PcItem(".copy"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
	)
}
