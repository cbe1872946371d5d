// Package storage locates and reads Cursor's SQLite-backed workspace
// storage. All reads are strictly read-only; a locked or corrupt database
// is treated as having no data rather than as a failure.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrRootNotFound indicates the workspace storage root does not exist on
// this machine. This is an environment problem (Cursor not installed, or
// a non-default data directory) and is reported to the user, not treated
// as a bug.
var ErrRootNotFound = errors.New("cursor workspace storage not found")

// DatabaseName is the fixed file name of a workspace's state database.
const DatabaseName = "state.vscdb"

// Root returns the platform-default workspace storage root for the
// current user. The path is computed, not checked; use Locate when the
// caller needs an existence guarantee.
func Root() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Cursor", "User", "workspaceStorage"), nil
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Cursor", "User", "workspaceStorage"), nil
	default:
		return filepath.Join(home, ".config", "Cursor", "User", "workspaceStorage"), nil
	}
}

// Locate resolves the storage root and verifies it exists. override, when
// non-empty, replaces the platform default (it still must exist). Returns
// ErrRootNotFound (wrapped with the attempted path) when the directory is
// missing.
func Locate(override string) (string, error) {
	root := override
	if root == "" {
		var err error
		root, err = Root()
		if err != nil {
			return "", err
		}
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	return root, nil
}
