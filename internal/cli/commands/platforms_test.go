package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querygenie/internal/cli/config"
	"github.com/leapstack-labs/querygenie/internal/cli/testutil"
	"github.com/leapstack-labs/querygenie/pkg/genie"
)

func TestPlatformRows(t *testing.T) {
	rows := platformRows()
	require.Len(t, rows, 10)

	assert.Equal(t, genie.MySQL, rows[0].Platform)
	assert.Equal(t, genie.Regex, rows[0].QueryType)
	assert.Equal(t, "SELECT * FROM users WHERE email REGEXP '^a';", rows[0].Example)

	last := rows[len(rows)-1]
	assert.Equal(t, genie.GoogleSheets, last.Platform)
	assert.Equal(t, genie.Substring, last.QueryType)
	assert.Equal(t, "=MID(A2, 1, 5)", last.Example)

	for _, row := range rows {
		assert.NotEmpty(t, row.Example, "%s/%s", row.Platform, row.QueryType)
	}
}

func TestRunPlatforms(t *testing.T) {
	t.Run("text table", func(t *testing.T) {
		tr := testutil.NewTestRenderer("text", false)
		require.NoError(t, runPlatforms(tr.Renderer))

		out := tr.Output()
		assert.Contains(t, out, "Platforms")
		assert.Contains(t, out, "Google Sheets")
		assert.Contains(t, out, "SELECT * FROM users WHERE email LIKE '%^a%';")
		assert.Contains(t, out, "┌", "light box style")
	})

	t.Run("markdown table", func(t *testing.T) {
		tr := testutil.NewTestRendererMarkdown()
		require.NoError(t, runPlatforms(tr.Renderer))

		out := tr.Output()
		assert.True(t, strings.HasPrefix(out, "# Platforms\n"))
		assert.Contains(t, strings.ToLower(out), "| platform | name | kind | query type | example |")
		assert.Contains(t, out, "| PostgreSQL | postgresql | sql | substring |")
		testutil.AssertOutputMode(t, tr, "markdown")
	})

	t.Run("json", func(t *testing.T) {
		tr := testutil.NewTestRendererJSON()
		require.NoError(t, runPlatforms(tr.Renderer))

		var rows []PlatformRow
		require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &rows))
		assert.Len(t, rows, 10)
		assert.Equal(t, genie.KindSpreadsheet, rows[6].Kind)
	})
}

func TestPlatformsCommand(t *testing.T) {
	config.ResetConfig()

	stdout, _, err := testutil.ExecuteCommand(t, NewPlatformsCommand())
	require.NoError(t, err)
	assert.Contains(t, stdout, "sqlserver")
	assert.Contains(t, stdout, `=TEXTJOIN(",", TRUE, FILTER(A2:A100, ISNUMBER(SEARCH("^a", A2:A100))))`)
}
