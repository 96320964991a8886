// Package chat runs complete conversation turns: load the session document,
// interpret the input, persist the mutated document, and archive the
// exchange. One turn is handled to completion before the next; there is no
// overlap between in-flight turns for a session.
package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"structor/pkg/logx"
	"structor/pkg/persistence"
	"structor/pkg/store"
	"structor/pkg/wizard"
)

// Service executes conversation turns against persistent session state.
type Service struct {
	store     *store.Store
	archive   *persistence.Archive // nil disables history archiving
	navigator *wizard.Navigator
	logger    *logx.Logger
}

// NewService wires the turn service. The archive is optional; passing nil
// keeps the conversation fully functional without history.
func NewService(sessions *store.Store, archive *persistence.Archive, navigator *wizard.Navigator) *Service {
	return &Service{
		store:     sessions,
		archive:   archive,
		navigator: navigator,
		logger:    logx.NewLogger("chat"),
	}
}

// NewSessionID generates a fresh session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

// Turn handles one user message: read the document, compute the reply,
// write the document back, then archive. Reads precede every mutation they
// inform, and the document is never re-read after the write.
func (s *Service) Turn(ctx context.Context, sessionID, input string) (string, error) {
	doc, err := s.store.Load(sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	helpEventsBefore := 0
	if doc.Wizard != nil {
		helpEventsBefore = len(doc.Wizard.HelpEvents)
	}

	reply := s.navigator.Handle(ctx, doc, input)

	if err := s.store.Save(sessionID, doc); err != nil {
		return "", fmt.Errorf("failed to save session %s: %w", sessionID, err)
	}

	s.archiveTurn(sessionID, input, reply, doc, helpEventsBefore)
	return reply, nil
}

// archiveTurn records the exchange and any help events added this turn.
// Archive failures are logged, never surfaced: history is best-effort and
// must not break the conversation.
func (s *Service) archiveTurn(sessionID, input, reply string, doc *wizard.Document, helpEventsBefore int) {
	if s.archive == nil {
		return
	}

	if err := s.archive.RecordTurn(sessionID, input, reply); err != nil {
		s.logger.Warn("Failed to archive turn for session %s: %v", sessionID, err)
	}

	if doc.Wizard == nil {
		return
	}
	for _, event := range doc.Wizard.HelpEvents[helpEventsBefore:] {
		record := persistence.HelpEventRecord{
			ID:         event.ID,
			Action:     event.Action,
			QuestionID: event.QuestionID,
			Provider:   event.Provider,
			Fallback:   event.Fallback,
			CreatedAt:  event.At,
		}
		if err := s.archive.RecordHelpEvent(sessionID, record); err != nil {
			s.logger.Warn("Failed to archive help event %s: %v", event.ID, err)
		}
	}
}

// Reset wipes the stored session document. The archive keeps its history;
// only live state is destroyed.
func (s *Service) Reset(sessionID string) error {
	if err := s.store.Delete(sessionID); err != nil {
		return fmt.Errorf("failed to reset session %s: %w", sessionID, err)
	}
	return nil
}

// Sessions lists the stored session ids.
func (s *Service) Sessions() ([]string, error) {
	return s.store.List()
}

// History returns the archived transcript for a session, most recent limit
// messages (0 for all). Returns nil without error when archiving is off.
func (s *Service) History(sessionID string, limit int) ([]persistence.Message, error) {
	if s.archive == nil {
		return nil, nil
	}
	return s.archive.Transcript(sessionID, limit)
}
