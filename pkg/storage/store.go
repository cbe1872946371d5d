package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Well-known ItemTable keys consumed by cursorview.
const (
	// KeyPrompts holds a JSON array of prompt objects.
	KeyPrompts = "aiService.prompts"
	// KeyComposer holds a JSON object with composer/chat session state.
	KeyComposer = "composer.composerData"
	// FolderKeyPattern is a LIKE pattern used to heuristically find the
	// workspace's folder metadata; the exact key has varied across
	// Cursor versions.
	FolderKeyPattern = "%folder%"
)

// Store is a read-only handle to one workspace's state database. The
// underlying connection never blocks more than the busy timeout on lock
// contention; a workspace being actively written by Cursor reads as
// empty for this run.
type Store struct {
	db *sql.DB
}

// Open opens the database at path read-only with a one second busy
// timeout. The caller must Close the store before moving on to the next
// workspace.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(1000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle. Safe on a nil store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Value looks up the exact key in ItemTable. The second return is false
// when the key is absent or the database cannot be read (locked, corrupt,
// wrong schema); those cases are indistinguishable by design.
func (s *Store) Value(key string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM ItemTable WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// ValueLike returns the first value whose key matches the LIKE pattern.
// Same degraded semantics as Value.
func (s *Store) ValueLike(pattern string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM ItemTable WHERE key LIKE ? LIMIT 1", pattern).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}
