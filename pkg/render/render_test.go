package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cursorview/pkg/types"
)

var testModified = time.Date(2026, 8, 19, 14, 30, 0, 0, time.UTC)

func longPromptRecord() types.WorkspaceRecord {
	return types.WorkspaceRecord{
		ID:           "ws1",
		Folder:       "/home/user/project",
		LastModified: testModified,
		Prompts: []types.Prompt{
			{Text: strings.Repeat("a", 250), CommandType: types.CommandTypeChat},
		},
	}
}

func TestDetail_TruncatesLongPrompts(t *testing.T) {
	var buf strings.Builder
	Detail(&buf, longPromptRecord(), 20, 0)

	out := buf.String()
	assert.Contains(t, out, "Chat: "+strings.Repeat("a", 200)+"...")
	assert.NotContains(t, out, strings.Repeat("a", 201))
	assert.Contains(t, out, "/home/user/project")
	assert.Contains(t, out, "2026-08-19 14:30")
}

func TestDetail_LimitShowsMostRecent(t *testing.T) {
	rec := types.WorkspaceRecord{
		ID:           "ws",
		LastModified: testModified,
		Prompts: []types.Prompt{
			{Text: "oldest"},
			{Text: "middle"},
			{Text: "newest"},
		},
	}

	var buf strings.Builder
	Detail(&buf, rec, 2, 0)

	out := buf.String()
	assert.NotContains(t, out, "oldest")
	assert.Contains(t, out, "middle")
	assert.Contains(t, out, "newest")
}

func TestDetail_ComposerTabs(t *testing.T) {
	var buf strings.Builder
	Detail(&buf, longPromptRecord(), 20, 3)
	assert.Contains(t, buf.String(), "Composer tabs: 3")

	buf.Reset()
	Detail(&buf, longPromptRecord(), 20, 0)
	assert.NotContains(t, buf.String(), "Composer tabs")
}

func TestSummary(t *testing.T) {
	records := []types.WorkspaceRecord{
		{
			ID:           "ws1",
			Folder:       "/home/user/project",
			LastModified: testModified,
			Prompts:      []types.Prompt{{Text: "one"}, {Text: "two"}},
		},
		{
			ID:           "bare-workspace-hash",
			LastModified: testModified.Add(-time.Hour),
			Prompts:      []types.Prompt{{Text: "three"}},
		},
	}

	var buf strings.Builder
	Summary(&buf, records)

	out := buf.String()
	assert.Contains(t, out, "/home/user/project")
	// second workspace has no folder metadata, so the directory name
	// stands in as its label
	assert.Contains(t, out, "bare-workspace-hash")
	assert.Contains(t, out, "2026-08-19 14:30")
}

func TestSummary_LongLabelKeepsTail(t *testing.T) {
	long := "/very/long/prefix/that/keeps/going/and/going/forever/project-name"
	records := []types.WorkspaceRecord{
		{ID: "ws", Folder: long, LastModified: testModified, Prompts: []types.Prompt{{Text: "p"}}},
	}

	var buf strings.Builder
	Summary(&buf, records)

	assert.Contains(t, buf.String(), "project-name")
	assert.NotContains(t, buf.String(), long)
}

func TestSearchResults(t *testing.T) {
	results := []types.SearchResult{
		{
			Workspace: "/home/user/project",
			Prompt:    types.Prompt{Text: "fix the bug", CommandType: types.CommandTypeAgent},
		},
	}

	var buf strings.Builder
	SearchResults(&buf, "bug", results)

	out := buf.String()
	assert.Contains(t, out, `Search results for "bug"`)
	assert.Contains(t, out, "Agent: fix the bug")
	assert.Contains(t, out, "Found 1 matching prompts.")
}

func TestExportMarkdown(t *testing.T) {
	longText := strings.Repeat("b", 250)
	records := []types.WorkspaceRecord{
		{
			ID:           "ws1",
			Folder:       "/home/user/project",
			LastModified: testModified,
			Prompts: []types.Prompt{
				{Text: longText, CommandType: types.CommandTypeChat},
				{Text: "short one", CommandType: types.CommandTypeTerminal},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "export.md")
	require.NoError(t, ExportMarkdown(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "# Cursor Chat History")
	assert.Contains(t, out, "## /home/user/project")
	assert.Contains(t, out, "**Last modified:** 2026-08-19 14:30")
	assert.Contains(t, out, "### Chat")
	assert.Contains(t, out, "### Terminal")
	// full text, no truncation in export
	assert.Contains(t, out, longText)
	assert.Contains(t, out, "---")
}

func TestExportMarkdown_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.md")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0600))

	require.NoError(t, ExportMarkdown(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale content")
	assert.Contains(t, string(data), "# Cursor Chat History")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 200))
	assert.Equal(t, strings.Repeat("a", 200)+"...", truncate(strings.Repeat("a", 250), 200))
}
