package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cursorview/pkg/types"
)

// newFixtureDB creates a state database populated with the given
// ItemTable rows, mirroring the schema Cursor writes.
func newFixtureDB(t *testing.T, rows map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DatabaseName)
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE ItemTable (key TEXT UNIQUE ON CONFLICT REPLACE, value BLOB)`)
	require.NoError(t, err)

	for key, value := range rows {
		_, err = db.Exec(`INSERT INTO ItemTable (key, value) VALUES (?, ?)`, key, value)
		require.NoError(t, err)
	}
	return path
}

func openFixture(t *testing.T, rows map[string]string) *Store {
	t.Helper()
	st, err := Open(newFixtureDB(t, rows))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestStore_Value(t *testing.T) {
	st := openFixture(t, map[string]string{
		"some.key": "some value",
	})

	value, ok := st.Value("some.key")
	assert.True(t, ok)
	assert.Equal(t, "some value", value)

	_, ok = st.Value("missing.key")
	assert.False(t, ok)
}

func TestStore_ValueLike(t *testing.T) {
	st := openFixture(t, map[string]string{
		"workbench.panel.folder.state": `"/home/user/project"`,
	})

	value, ok := st.ValueLike("%folder%")
	assert.True(t, ok)
	assert.Equal(t, `"/home/user/project"`, value)

	_, ok = st.ValueLike("%nothing%")
	assert.False(t, ok)
}

func TestStore_CorruptDatabase(t *testing.T) {
	// A file that isn't SQLite at all: lookups degrade to "not
	// available", never an error.
	dir := t.TempDir()
	path := filepath.Join(dir, DatabaseName)
	require.NoError(t, os.WriteFile(path, []byte("this is not a database"), 0600))

	st, err := Open(path)
	require.NoError(t, err) // sql.Open is lazy; failure shows on query
	defer st.Close()

	_, ok := st.Value(KeyPrompts)
	assert.False(t, ok)
}

func TestPrompts(t *testing.T) {
	tests := []struct {
		name string
		rows map[string]string
		want []types.Prompt
	}{
		{
			name: "valid array",
			rows: map[string]string{
				KeyPrompts: `[{"text":"fix the build","commandType":2},{"text":"ls -la","commandType":1}]`,
			},
			want: []types.Prompt{
				{Text: "fix the build", CommandType: types.CommandTypeChat},
				{Text: "ls -la", CommandType: types.CommandTypeTerminal},
			},
		},
		{
			name: "missing fields default",
			rows: map[string]string{
				KeyPrompts: `[{"unknownField":true}]`,
			},
			want: []types.Prompt{{Text: "", CommandType: types.CommandTypeOther}},
		},
		{
			name: "non-array value yields nil",
			rows: map[string]string{
				KeyPrompts: `{"text":"not an array"}`,
			},
			want: nil,
		},
		{
			name: "invalid JSON yields nil",
			rows: map[string]string{
				KeyPrompts: `{{{ garbage`,
			},
			want: nil,
		},
		{
			name: "missing key yields nil",
			rows: map[string]string{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := openFixture(t, tt.rows)
			assert.Equal(t, tt.want, Prompts(st))
		})
	}
}

func TestComposerData(t *testing.T) {
	t.Run("valid object", func(t *testing.T) {
		st := openFixture(t, map[string]string{
			KeyComposer: `{"allComposers":[{"id":"a"},{"id":"b"}]}`,
		})
		data := ComposerData(st)
		require.NotNil(t, data)
		assert.Len(t, data["allComposers"], 2)
	})

	t.Run("invalid JSON yields nil", func(t *testing.T) {
		st := openFixture(t, map[string]string{KeyComposer: `not json`})
		assert.Nil(t, ComposerData(st))
	})

	t.Run("missing key yields nil", func(t *testing.T) {
		st := openFixture(t, nil)
		assert.Nil(t, ComposerData(st))
	})
}

func TestFolder(t *testing.T) {
	longGarbage := strings.Repeat("x", 150)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "JSON string used directly",
			value: `"/home/user/project"`,
			want:  "/home/user/project",
		},
		{
			name:  "object with uri strips scheme",
			value: `{"uri":"file:///home/user/project"}`,
			want:  "/home/user/project",
		},
		{
			name:  "unparsable long value truncates to 100",
			value: longGarbage,
			want:  longGarbage[:100],
		},
		{
			name:  "unparsable short value kept whole",
			value: `{broken`,
			want:  `{broken`,
		},
		{
			name:  "object without uri resolves to nothing",
			value: `{"path":"/somewhere"}`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := openFixture(t, map[string]string{
				"history.folderState": tt.value,
			})
			assert.Equal(t, tt.want, Folder(st))
		})
	}

	t.Run("no folder key resolves to nothing", func(t *testing.T) {
		st := openFixture(t, nil)
		assert.Equal(t, "", Folder(st))
	})
}
