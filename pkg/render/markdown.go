package render

import (
	"fmt"
	"os"
	"time"

	"cursorview/pkg/types"
)

// ExportMarkdown writes the full aggregate to path as a markdown document,
// overwriting any existing file. Unlike the console detail view, prompt
// text is never truncated here; each prompt goes into a fenced code block
// so editors don't reflow it.
func ExportMarkdown(path string, records []types.WorkspaceRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "# Cursor Chat History\n\n")
	fmt.Fprintf(f, "Exported on: %s\n\n", time.Now().Format(timeFormat))

	for _, rec := range records {
		fmt.Fprintf(f, "## %s\n\n", rec.Label())
		fmt.Fprintf(f, "**Last modified:** %s\n\n", rec.LastModified.Format(timeFormat))

		for _, p := range rec.Prompts {
			fmt.Fprintf(f, "### %s\n\n", p.CommandType.Label())
			fmt.Fprintf(f, "```\n%s\n```\n\n", p.Text)
		}

		fmt.Fprintf(f, "---\n\n")
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}
