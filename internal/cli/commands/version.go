package commands

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/querygenie/pkg/genie"
)

// VersionInfo is the structured form of the version command output.
type VersionInfo struct {
	Version    string   `json:"version" yaml:"version"`
	GoVersion  string   `json:"go_version" yaml:"go_version"`
	OS         string   `json:"os" yaml:"os"`
	Arch       string   `json:"arch" yaml:"arch"`
	Platforms  []string `json:"platforms" yaml:"platforms"`
	QueryTypes []string `json:"query_types" yaml:"query_types"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the Query Genie version, build environment and supported targets.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			info := VersionInfo{
				Version:    version,
				GoVersion:  runtime.Version(),
				OS:         runtime.GOOS,
				Arch:       runtime.GOARCH,
				Platforms:  genie.PlatformNames(),
				QueryTypes: genie.QueryTypeNames(),
			}

			if ok, err := ctx.Renderer.Structured(info); ok {
				return err
			}

			r := ctx.Renderer
			r.Printf("Query Genie v%s\n", info.Version)
			r.Println("SQL queries and spreadsheet formulas from a pattern")
			r.Muted("built with " + info.GoVersion + " for " + info.OS + "/" + info.Arch)
			r.Muted("platforms: " + strings.Join(info.Platforms, ", "))
			return nil
		},
	}
}
