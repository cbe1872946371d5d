// Package workspace aggregates per-workspace chat history out of Cursor's
// storage root and provides search and selection over the aggregate.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"cursorview/pkg/storage"
	"cursorview/pkg/types"
)

// Options controls a scan.
type Options struct {
	// Days is the recency window: workspaces whose database was last
	// modified more than Days days ago are skipped.
	Days int
	// Now anchors the window; the zero value means time.Now(). Tests
	// pin it for determinism.
	Now time.Time
}

// Logger receives scan diagnostics. Satisfied by *logging.Logger; kept as
// a local interface so the scanner has no logging dependency.
type Logger interface {
	Debugf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// Scan enumerates the immediate subdirectories of root and builds one
// WorkspaceRecord per workspace that has a state database, recent enough
// activity, and at least one prompt. Every per-workspace failure skips
// just that workspace; the scan itself only fails if root is unreadable,
// and even then it returns what it has (nil).
//
// The returned slice is sorted by last-modified time, most recent first.
// Workspaces without prompts are deliberately dropped: most accumulate
// empty session databases that would drown out the real history.
func Scan(root string, opts Options, log Logger) []types.WorkspaceRecord {
	if log == nil {
		log = nopLogger{}
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	cutoff := now.AddDate(0, 0, -opts.Days)

	entries, err := os.ReadDir(root)
	if err != nil {
		log.Debugf("reading storage root %s: %v", root, err)
		return nil
	}

	var records []types.WorkspaceRecord
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dbPath := filepath.Join(root, entry.Name(), storage.DatabaseName)
		info, err := os.Stat(dbPath)
		if err != nil {
			continue // no state database in this workspace
		}
		modified := info.ModTime()
		if modified.Before(cutoff) {
			continue
		}

		rec, ok := scanOne(entry.Name(), dbPath, modified, log)
		if ok {
			records = append(records, rec)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].LastModified.After(records[j].LastModified)
	})
	return records
}

// scanOne reads a single workspace database. The store is opened and
// closed here so the handle never outlives the directory visit.
func scanOne(id, dbPath string, modified time.Time, log Logger) (types.WorkspaceRecord, bool) {
	st, err := storage.Open(dbPath)
	if err != nil {
		log.Debugf("skipping workspace %s: %v", id, err)
		return types.WorkspaceRecord{}, false
	}
	defer st.Close()

	prompts := storage.Prompts(st)
	if len(prompts) == 0 {
		log.Debugf("skipping workspace %s: no prompts", id)
		return types.WorkspaceRecord{}, false
	}

	return types.WorkspaceRecord{
		ID:           id,
		DatabasePath: dbPath,
		Folder:       storage.Folder(st),
		LastModified: modified,
		Prompts:      prompts,
	}, true
}
