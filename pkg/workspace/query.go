package workspace

import (
	"fmt"
	"strings"

	"cursorview/pkg/types"
)

// Search returns every prompt whose text contains query, case
// insensitively. Results keep the input order: workspaces as given
// (most recent first after a Scan), prompts in storage order within each
// workspace. The empty query matches every prompt.
func Search(records []types.WorkspaceRecord, query string) []types.SearchResult {
	needle := strings.ToLower(query)

	var results []types.SearchResult
	for _, rec := range records {
		for _, p := range rec.Prompts {
			if !strings.Contains(strings.ToLower(p.Text), needle) {
				continue
			}
			results = append(results, types.SearchResult{
				Workspace:    rec.Label(),
				LastModified: rec.LastModified,
				Prompt:       p,
			})
		}
	}
	return results
}

// Select returns the nth workspace, 1-based, from the aggregate. An
// out-of-range n is a user input error, reported with the valid range.
func Select(records []types.WorkspaceRecord, n int) (types.WorkspaceRecord, error) {
	if n < 1 || n > len(records) {
		return types.WorkspaceRecord{}, fmt.Errorf("invalid workspace number %d: choose 1-%d", n, len(records))
	}
	return records[n-1], nil
}
