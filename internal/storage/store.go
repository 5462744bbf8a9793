package storage

//go:generate $MOCKGEN -source=store.go -destination=mocks/store_mock.go

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/odanilov/adminctl/internal/constants"
)

// Store is the durable client-side credential storage.
// The token is the sole credential; the user record is write-only.
type Store interface {
	// Token returns the stored bearer token, or an empty string if none is stored.
	Token() string
	// SetToken persists the bearer token under both storage keys.
	SetToken(token string) error
	// ClearToken removes the bearer token from both storage keys.
	ClearToken() error
	// SetUser persists the last-known user record. It is never read back.
	SetUser(user any) error
	// Clear wipes the entire state file.
	Clear() error
}

const (
	// defaultStateDir is the directory under the user's home holding the state file.
	defaultStateDir = ".adminctl"
	// defaultStateFilename is the name of the session state file.
	defaultStateFilename = "state.json"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyToken indicates an attempt to persist an empty token.
	ErrEmptyToken = errors.New("token cannot be empty")
)

// state is the on-disk layout of the session state file.
// AdminToken is the primary token key; Token is the legacy key kept in sync
// so older tooling that still reads it keeps working.
type state struct {
	// AdminToken is the primary bearer token key.
	AdminToken string `json:"admin_token,omitempty"`
	// Token is the legacy bearer token key.
	Token string `json:"token,omitempty"`
	// User is the JSON-serialized last-known user record.
	User json.RawMessage `json:"user,omitempty"`
}

// FileStore implements Store on top of a single JSON file.
// Reads re-open the file each time; writes replace it atomically.
type FileStore struct {
	// path is the absolute path of the state file.
	path string
	// mu serializes read-modify-write cycles within the process.
	mu sync.Mutex
}

// DefaultStatePath returns the default location of the session state file.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, defaultStateDir, defaultStateFilename), nil
}

// NewFileStore creates a FileStore at the given path.
// If the existing state carries a token only under the legacy key,
// it is migrated to the primary key once, at load.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		defaultPath, err := DefaultStatePath()
		if err != nil {
			return nil, err
		}

		path = defaultPath
	}

	s := &FileStore{path: path}

	if err := s.migrateLegacyToken(); err != nil {
		return nil, err
	}

	return s, nil
}

// Token returns the stored bearer token: the primary key wins,
// the legacy key is the fallback, absence yields an empty string.
func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.read()
	if err != nil {
		return ""
	}

	if st.AdminToken != "" {
		return st.AdminToken
	}

	return st.Token
}

// SetToken persists the bearer token under both storage keys.
func (s *FileStore) SetToken(token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.read()
	if err != nil {
		return err
	}

	st.AdminToken = token
	st.Token = token

	return s.write(st)
}

// ClearToken removes the bearer token from both storage keys,
// leaving the user record in place.
func (s *FileStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.read()
	if err != nil {
		return err
	}

	st.AdminToken = ""
	st.Token = ""

	return s.write(st)
}

// SetUser persists the JSON-serialized user record. The record is
// write-only: nothing in this package ever reads it back.
func (s *FileStore) SetUser(user any) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, readErr := s.read()
	if readErr != nil {
		return readErr
	}

	st.User = raw

	return s.write(st)
}

// Clear wipes the entire state file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}

	return nil
}

// migrateLegacyToken promotes a legacy-key-only token to the primary key.
func (s *FileStore) migrateLegacyToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.read()
	if err != nil {
		return err
	}

	if st.AdminToken != "" || st.Token == "" {
		return nil
	}

	st.AdminToken = st.Token

	return s.write(st)
}

func (s *FileStore) read() (*state, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &state{}, nil
		}

		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var st state
	if err = json.Unmarshal(content, &st); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	return &st, nil
}

func (s *FileStore) write(st *state) error {
	content, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	// Write to a temp file and rename so readers never observe a torn state.
	tmp, err := os.CreateTemp(dir, defaultStateFilename+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("failed to write state: %w", err)
	}

	if err = tmp.Chmod(constants.SecretFilePermissions); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("failed to set state file permissions: %w", err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to close temp state file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}
