package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JIRA_BASE_URL", "")
	t.Setenv("INPUT_JSON", "")
	t.Setenv("OUTPUT_JSON", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultJiraBaseURL, cfg.JiraBaseURL)
	assert.Equal(t, "jira_export.json", cfg.InputJSON)
	assert.Equal(t, "phabricator_import.json", cfg.OutputJSON)
}

func TestLoadConfigTrimsTrailingSlash(t *testing.T) {
	t.Setenv("JIRA_BASE_URL", "https://jira.mycompany.jp/browse/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://jira.mycompany.jp/browse", cfg.JiraBaseURL)
}

func TestStatusMapping(t *testing.T) {
	// 同じ出力ステータスに畳み込まれる入力の代表例
	assert.Equal(t, "open", StatusMapping["Open"])
	assert.Equal(t, "open", StatusMapping["Reopened"])
	assert.Equal(t, "wip", StatusMapping["In Progress"])
	assert.Equal(t, "resolved", StatusMapping["Fixed"])
	assert.Equal(t, "rejected", StatusMapping["Won't Fix"])
	assert.Equal(t, "duplicate", StatusMapping["Duplicate"])

	_, ok := StatusMapping["Pending"]
	assert.False(t, ok)
}

func TestPriorityMapping(t *testing.T) {
	assert.Equal(t, 100, PriorityMapping["Blocker"])
	assert.Equal(t, 80, PriorityMapping["Critical"])
	assert.Equal(t, 50, PriorityMapping["Major"])
	assert.Equal(t, 25, PriorityMapping["Minor"])
	assert.Equal(t, 0, PriorityMapping["Trivial"])
}
