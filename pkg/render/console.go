// Package render formats aggregated workspace history for the console and
// for markdown export. Presenters only read the aggregate; all filtering
// and ordering happens before data reaches this package.
package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"cursorview/pkg/types"
)

const (
	// detailTextLimit caps prompt text in the console detail view. The
	// markdown export never truncates.
	detailTextLimit = 200
	// labelLimit caps workspace labels in the summary; longer labels
	// keep their tail, which carries the project name.
	labelLimit = 50

	timeFormat = "2006-01-02 15:04"
)

// truncate cuts s to limit characters with a trailing ellipsis marker.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// shortenLabel keeps the trailing portion of long labels, which for
// filesystem paths is the informative end.
func shortenLabel(label string) string {
	if len(label) <= labelLimit {
		return label
	}
	return "..." + label[len(label)-labelLimit+3:]
}

// Summary writes the one-line-per-workspace overview table, in aggregate
// order (most recently modified first).
func Summary(w io.Writer, records []types.WorkspaceRecord) {
	fmt.Fprintln(w, "Cursor chat history")

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "WORKSPACE", "MODIFIED", "PROMPTS"})
	for i, rec := range records {
		t.AppendRow(table.Row{
			i + 1,
			shortenLabel(rec.Label()),
			rec.LastModified.Format(timeFormat),
			len(rec.Prompts),
		})
	}
	t.Render()
}

// Detail writes one workspace's most recent prompts. limit caps how many
// are shown, counted from the end of storage order (the newest entries).
// composerTabs, when positive, is surfaced as the open session-tab count.
func Detail(w io.Writer, rec types.WorkspaceRecord, limit int, composerTabs int) {
	fmt.Fprintf(w, "%s\n", rec.Label())
	fmt.Fprintf(w, "Last modified: %s\n", rec.LastModified.Format(timeFormat))
	if composerTabs > 0 {
		fmt.Fprintf(w, "Composer tabs: %d\n", composerTabs)
	}
	fmt.Fprintln(w)

	prompts := rec.Prompts
	if limit > 0 && len(prompts) > limit {
		prompts = prompts[len(prompts)-limit:]
	}
	for i, p := range prompts {
		fmt.Fprintf(w, "%d. %s: %s\n", i+1, p.CommandType.Label(), truncate(p.Text, detailTextLimit))
	}
}

// SearchResults writes each match under its workspace label, then a count.
func SearchResults(w io.Writer, query string, results []types.SearchResult) {
	fmt.Fprintf(w, "Search results for %q:\n\n", query)
	for _, r := range results {
		fmt.Fprintf(w, "%s\n", r.Workspace)
		fmt.Fprintf(w, "  %s: %s\n", r.Prompt.CommandType.Label(), truncate(r.Prompt.Text, detailTextLimit))
	}
	fmt.Fprintf(w, "\nFound %d matching prompts.\n", len(results))
}
