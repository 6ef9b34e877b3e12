package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querygenie/internal/cli/config"
	"github.com/leapstack-labs/querygenie/internal/cli/testutil"
)

func TestNewGenerateCommand(t *testing.T) {
	cmd := NewGenerateCommand()

	assert.Equal(t, "generate", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Example)
	assert.Contains(t, cmd.Aliases, "gen")

	for _, flag := range []string{"platform", "type", "table", "column", "pattern", "copy", "strict"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
	assert.Equal(t, "p", cmd.Flags().Lookup("platform").Shorthand)
	assert.Equal(t, "q", cmd.Flags().Lookup("type").Shorthand)
}

func TestNewPlatformsCommand(t *testing.T) {
	cmd := NewPlatformsCommand()

	assert.Equal(t, "platforms", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}

func TestNewREPLCommand(t *testing.T) {
	cmd := NewREPLCommand()

	assert.Equal(t, "repl", cmd.Use)
	assert.NotEmpty(t, cmd.Example)
	assert.NotNil(t, cmd.Flags().Lookup("history"))
}

func TestNewFormCommand(t *testing.T) {
	cmd := NewFormCommand()

	assert.Equal(t, "form", cmd.Use)
	assert.Contains(t, cmd.Long, "ctrl+y")
}

func TestNewUICommand(t *testing.T) {
	cmd := NewUICommand()

	assert.Equal(t, "ui", cmd.Use)
	for _, flag := range []string{"port", "no-browser", "watch", "dev"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestUICommand_StopsWithContext(t *testing.T) {
	config.ResetConfig()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := NewUICommand()
	cmd.SetContext(ctx)
	_, _, err := testutil.ExecuteCommand(t, cmd, "--port", "0", "--no-browser")
	require.NoError(t, err)
}

func TestREPLCommand_EOF(t *testing.T) {
	config.ResetConfig()

	stdout, _, err := testutil.ExecuteCommand(t, NewREPLCommand(), "--history", "")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Query Genie REPL")
}

func TestGetConfig_FallsBackToDefaults(t *testing.T) {
	config.ResetConfig()

	cfg := getConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, config.DefaultPort, cfg.UI.Port)
}
