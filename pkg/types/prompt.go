// Package types defines the core data types shared across cursorview
// components: prompts extracted from Cursor's workspace storage, the
// per-workspace aggregate records built during a scan, and search results.
package types

import "time"

// CommandType classifies a prompt by the Cursor surface it was issued from.
// The codes are Cursor's own and are stored verbatim in the prompt JSON.
type CommandType int

const (
	// CommandTypeOther covers unknown or unclassified prompts.
	CommandTypeOther CommandType = 0
	// CommandTypeTerminal is a terminal (Cmd-K in terminal) prompt.
	CommandTypeTerminal CommandType = 1
	// CommandTypeChat is a chat panel prompt.
	CommandTypeChat CommandType = 2
	// CommandTypeAgent is an agent/composer prompt.
	CommandTypeAgent CommandType = 4
)

// Label returns a human-readable name for the command type.
// Unknown codes map to "Other".
func (c CommandType) Label() string {
	switch c {
	case CommandTypeTerminal:
		return "Terminal"
	case CommandTypeChat:
		return "Chat"
	case CommandTypeAgent:
		return "Agent"
	default:
		return "Other"
	}
}

// Prompt is a single user-issued AI prompt as stored in the
// aiService.prompts JSON array. Fields absent in the stored object keep
// their zero values; fields we don't model are ignored on decode.
type Prompt struct {
	Text        string      `json:"text"`
	CommandType CommandType `json:"commandType"`
}

// WorkspaceRecord aggregates one workspace's chat activity. Records are
// built during a scan and are not mutated afterwards. Prompts preserve
// storage order, oldest first.
type WorkspaceRecord struct {
	// ID is the workspace storage directory name (an opaque hash).
	ID string
	// DatabasePath is the absolute path to the workspace's state.vscdb.
	DatabasePath string
	// Folder is the best-effort resolved project folder path. May be
	// empty when the workspace database carries no usable folder metadata.
	Folder string
	// LastModified is the database file's modification time.
	LastModified time.Time
	// Prompts holds every prompt extracted from the workspace, in
	// storage order.
	Prompts []Prompt
}

// Label returns the folder path when one was resolved, falling back to
// the workspace directory name.
func (w WorkspaceRecord) Label() string {
	if w.Folder != "" {
		return w.Folder
	}
	return w.ID
}

// SearchResult pairs a matching prompt with the workspace it came from.
type SearchResult struct {
	Workspace    string
	LastModified time.Time
	Prompt       Prompt
}
