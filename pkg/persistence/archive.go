// Package persistence provides the SQLite archive for conversation
// transcripts and AI-assist help events. The archive is append-only
// history; session state itself lives in the YAML document store.
package persistence

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"structor/pkg/logx"
)

// CurrentSchemaVersion defines the archive schema version.
const CurrentSchemaVersion = 1

// Archive wraps the SQLite connection used for transcript and help-event
// history.
type Archive struct {
	db     *sql.DB
	logger *logx.Logger
}

// Open creates (or opens) the archive database and ensures the schema is at
// the current version. Safe to call on an existing database.
func Open(dbPath string) (*Archive, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf(
		"file:%s?_foreign_keys=ON&_journal_mode=WAL&_busy_timeout=5000",
		dbPath,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	logger := logx.NewLogger("persistence")
	logger.Info("Archive database ready: %s", dbPath)

	return &Archive{db: db, logger: logger}, nil
}

// Close releases the database connection.
func (a *Archive) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func schemaVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func migrate(db *sql.DB) error {
	version, err := schemaVersion(db)
	if err != nil {
		return err
	}
	if version == CurrentSchemaVersion {
		return nil
	}
	if version > CurrentSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, CurrentSchemaVersion)
	}

	if version == 0 {
		if err := createSchema(db); err != nil {
			return err
		}
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", CurrentSchemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}
	return nil
}

func createSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS transcript (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	role       TEXT NOT NULL CHECK (role IN ('user', 'assistant')),
	content    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transcript_session ON transcript(session_id, id);

CREATE TABLE IF NOT EXISTS help_events (
	id          TEXT PRIMARY KEY,
	session_id  TEXT NOT NULL,
	action      TEXT NOT NULL,
	question_id TEXT,
	provider    TEXT,
	fallback    INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_help_events_session ON help_events(session_id, created_at);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Message is one transcript row.
type Message struct {
	ID        int64
	SessionID string
	Role      string
	Content   string
	CreatedAt time.Time
}

// Transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// RecordTurn appends one user/assistant exchange to the transcript.
func (a *Archive) RecordTurn(sessionID, userInput, reply string) error {
	now := time.Now().UTC()
	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	const insert = "INSERT INTO transcript (session_id, role, content, created_at) VALUES (?, ?, ?, ?)"
	if _, err := tx.Exec(insert, sessionID, RoleUser, userInput, now); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to record user turn: %w", err)
	}
	if _, err := tx.Exec(insert, sessionID, RoleAssistant, reply, now); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to record assistant turn: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transcript turn: %w", err)
	}
	return nil
}

// Transcript returns the most recent messages for a session in
// chronological order, up to limit (0 means all).
func (a *Archive) Transcript(sessionID string, limit int) ([]Message, error) {
	query := "SELECT id, session_id, role, content, created_at FROM transcript WHERE session_id = ? ORDER BY id"
	args := []any{sessionID}
	if limit > 0 {
		query = `SELECT id, session_id, role, content, created_at FROM (
			SELECT id, session_id, role, content, created_at FROM transcript
			WHERE session_id = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id`
		args = append(args, limit)
	}

	rows, err := a.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transcript: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transcript row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transcript rows: %w", err)
	}
	return messages, nil
}

// HelpEventRecord is one archived assist invocation.
type HelpEventRecord struct {
	ID         string
	SessionID  string
	Action     string
	QuestionID string
	Provider   string
	Fallback   bool
	CreatedAt  time.Time
}

// RecordHelpEvent archives one assist invocation. Events are keyed by their
// uuid, so re-archiving the same event is an upsert, not a duplicate.
func (a *Archive) RecordHelpEvent(sessionID string, event HelpEventRecord) error {
	const upsert = `
INSERT INTO help_events (id, session_id, action, question_id, provider, fallback, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO NOTHING`

	_, err := a.db.Exec(upsert,
		event.ID, sessionID, event.Action, event.QuestionID,
		event.Provider, boolToInt(event.Fallback), event.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to record help event: %w", err)
	}
	return nil
}

// HelpEvents returns the archived assist invocations for a session in
// chronological order.
func (a *Archive) HelpEvents(sessionID string) ([]HelpEventRecord, error) {
	rows, err := a.db.Query(
		"SELECT id, session_id, action, question_id, provider, fallback, created_at FROM help_events WHERE session_id = ? ORDER BY created_at, id",
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query help events: %w", err)
	}
	defer rows.Close()

	var events []HelpEventRecord
	for rows.Next() {
		var e HelpEventRecord
		var questionID, provider sql.NullString
		var fallback int
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Action, &questionID, &provider, &fallback, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan help event row: %w", err)
		}
		e.QuestionID = questionID.String
		e.Provider = provider.String
		e.Fallback = fallback != 0
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate help event rows: %w", err)
	}
	return events, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
