// Package store persists session documents as per-session YAML files.
// YAML keeps the documents hand-editable, which matters for support: a
// stuck session can be inspected and repaired with a text editor.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"structor/pkg/wizard"
)

// sessionIDPattern keeps session ids filesystem-safe.
var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// envelope is the on-disk shape: the document plus bookkeeping.
type envelope struct {
	SavedAt  time.Time        `yaml:"saved_at"`
	Document *wizard.Document `yaml:"document"`
}

// Store manages persistent session documents under a base directory.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at baseDir, creating it if missing.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session directory %s: %w", baseDir, err)
	}
	return &Store{baseDir: baseDir}, nil
}

func (s *Store) filename(sessionID string) string {
	return filepath.Join(s.baseDir, sessionID+".yaml")
}

func validateSessionID(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session id cannot be empty")
	}
	if !sessionIDPattern.MatchString(sessionID) {
		return fmt.Errorf("invalid session id %q", sessionID)
	}
	return nil
}

// Save writes the session document. The write goes through a temp file plus
// rename so a crash mid-write cannot leave a truncated document.
func (s *Store) Save(sessionID string, doc *wizard.Document) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("document cannot be nil")
	}

	data, err := yaml.Marshal(envelope{
		SavedAt:  time.Now().UTC(),
		Document: doc,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", sessionID, err)
	}

	filename := s.filename(sessionID)
	tmp := filename + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session file for %s: %w", sessionID, err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		return fmt.Errorf("failed to finalize session file for %s: %w", sessionID, err)
	}
	return nil
}

// Load reads a session document. A missing file returns a fresh empty
// document, not an error; a new session and a resumed one share one path.
func (s *Store) Load(sessionID string) (*wizard.Document, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.filename(sessionID))
	if os.IsNotExist(err) {
		return &wizard.Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file for %s: %w", sessionID, err)
	}

	var env envelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionID, err)
	}
	if env.Document == nil {
		return &wizard.Document{}, nil
	}
	return env.Document, nil
}

// Delete removes a session document. Deleting a missing session is a no-op.
func (s *Store) Delete(sessionID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	if err := os.Remove(s.filename(sessionID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}

// List returns the stored session ids, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".yaml"))
	}
	sort.Strings(ids)
	return ids, nil
}
