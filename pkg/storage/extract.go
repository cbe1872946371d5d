package storage

import (
	"encoding/json"
	"strings"

	"cursorview/pkg/types"
)

// The extractors below are total functions: Cursor's storage schema is
// undocumented and has changed between versions, so every failure mode
// (missing key, malformed JSON, unexpected shape) degrades to an empty
// value instead of surfacing an error.

// Prompts extracts the workspace's prompt history. The stored value must
// decode as a JSON array; anything else yields nil. Objects in the array
// decode field-by-field, so entries with extra or missing fields are kept
// with defaults rather than dropped.
func Prompts(s *Store) []types.Prompt {
	raw, ok := s.Value(KeyPrompts)
	if !ok || raw == "" {
		return nil
	}
	var prompts []types.Prompt
	if err := json.Unmarshal([]byte(raw), &prompts); err != nil {
		return nil
	}
	return prompts
}

// ComposerData extracts the composer/chat session payload as a loose map.
// Returns nil on any failure. Callers treat the payload as opaque beyond
// shallow key inspection.
func ComposerData(s *Store) map[string]any {
	raw, ok := s.Value(KeyComposer)
	if !ok || raw == "" {
		return nil
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil
	}
	return data
}

// rawFolderLimit bounds the raw-string fallback used when folder metadata
// does not parse as JSON.
const rawFolderLimit = 100

// Folder resolves the workspace's project folder path, best effort. The
// stored shape has varied across Cursor versions, so resolution walks a
// fallback chain:
//
//  1. value is a JSON string: use it as-is
//  2. value is a JSON object with a "uri" field: strip the file:// scheme
//  3. value does not parse: the first 100 bytes of the raw value
//
// Valid JSON of any other shape (an object without "uri", an array, a
// number) resolves to "", as does a missing value entirely.
func Folder(s *Store) string {
	raw, ok := s.ValueLike(FolderKeyPattern)
	if !ok || raw == "" {
		return ""
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		if len(raw) > rawFolderLimit {
			return raw[:rawFolderLimit]
		}
		return raw
	}

	switch v := decoded.(type) {
	case string:
		return v
	case map[string]any:
		if uri, ok := v["uri"].(string); ok {
			return strings.TrimPrefix(uri, "file://")
		}
	}
	return ""
}
