package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()

	store, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	return store
}

// TestFileStore_SetAndGetToken tests basic token round-tripping.
func TestFileStore_SetAndGetToken(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	assert.Empty(t, store.Token())

	require.NoError(t, store.SetToken("abc123"))
	assert.Equal(t, "abc123", store.Token())
}

// TestFileStore_SetToken_Empty tests that empty tokens are rejected.
func TestFileStore_SetToken_Empty(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	err := store.SetToken("")
	require.ErrorIs(t, err, ErrEmptyToken)
}

// TestFileStore_BothKeysKeptInSync tests that writes populate both storage keys.
func TestFileStore_BothKeysKeptInSync(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("abc123"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(content, &raw))

	assert.Equal(t, "abc123", raw["admin_token"])
	assert.Equal(t, "abc123", raw["token"])
}

// TestFileStore_LegacyKeyMigration tests that a token stored only under the
// legacy key is promoted to the primary key at load.
func TestFileStore_LegacyKeyMigration(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"legacy-token"}`), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	assert.Equal(t, "legacy-token", store.Token())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(content, &raw))
	assert.Equal(t, "legacy-token", raw["admin_token"])
}

// TestFileStore_PrimaryKeyWins tests that the primary key takes precedence
// when the keys diverge on disk.
func TestFileStore_PrimaryKeyWins(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"admin_token":"primary","token":"legacy"}`), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	assert.Equal(t, "primary", store.Token())
}

// TestFileStore_ClearToken tests that ClearToken removes both keys
// but keeps the user record.
func TestFileStore_ClearToken(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("abc123"))
	require.NoError(t, store.SetUser(map[string]any{"id": 1, "name": "Admin"}))

	require.NoError(t, store.ClearToken())
	assert.Empty(t, store.Token())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(content, &raw))
	assert.NotContains(t, raw, "admin_token")
	assert.NotContains(t, raw, "token")
	assert.Contains(t, raw, "user")
}

// TestFileStore_Clear tests that Clear wipes the whole state file.
func TestFileStore_Clear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("abc123"))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-clean store is not an error.
	require.NoError(t, store.Clear())
}

// TestFileStore_SetUser tests that the user record is persisted as JSON.
func TestFileStore_SetUser(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	user := map[string]any{"id": 1, "email": "a@x.com"}
	require.NoError(t, store.SetUser(user))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw struct {
		User map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(content, &raw))
	assert.Equal(t, "a@x.com", raw.User["email"])
}

// TestFileStore_CorruptedFile tests that a corrupted state file surfaces an error.
func TestFileStore_CorruptedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o600))

	_, err := NewFileStore(path)
	require.Error(t, err)
}

// TestFileStore_Permissions tests that the state file is only owner-readable.
func TestFileStore_Permissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("abc123"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// TestFileStore_ExternalChangeObserved tests that reads go back to disk,
// so a token removed by another process is observed.
func TestFileStore_ExternalChangeObserved(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("abc123"))

	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	assert.Empty(t, store.Token())
}
