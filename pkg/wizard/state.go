package wizard

import (
	"strings"
	"time"
)

// Stage tags for WizardState.ActiveStage.
const (
	StageCoreIntake = "CORE_INTAKE"
	StageDeepIntake = "DEEP_INTAKE"

	// Specialist stages are StageSpecialistPrefix + specialist name.
	StageSpecialistPrefix = "SPECIALIST_"
)

// HelpEvent records one AI-assist invocation. The list is append-only and
// survives normal navigation; only a full restart clears it.
type HelpEvent struct {
	ID         string    `yaml:"id" json:"id"`
	Action     string    `yaml:"action" json:"action"`
	QuestionID string    `yaml:"question_id,omitempty" json:"question_id,omitempty"`
	Provider   string    `yaml:"provider,omitempty" json:"provider,omitempty"`
	Fallback   bool      `yaml:"fallback" json:"fallback"`
	At         time.Time `yaml:"at" json:"at"`
}

// CustomDataRequest is an out-of-band request for structured data, raised by
// a report or specialist outside the normal question flow. The next user
// message resolves it.
type CustomDataRequest struct {
	ID       string `yaml:"id" json:"id"`
	Prompt   Text   `yaml:"prompt" json:"prompt"`
	SavePath string `yaml:"save_path" json:"save_path"`
}

// WizardState is the single mutable session document for the guided intake.
// It is co-persisted with the answers document and threaded explicitly
// through every turn; there are no ambient singletons.
type WizardState struct {
	WorkflowID string `yaml:"workflow_id" json:"workflow_id"`
	Version    string `yaml:"version" json:"version"`
	Mode       string `yaml:"mode,omitempty" json:"mode,omitempty"`

	// Queue holds pending questions ordered by priority desc, id asc.
	// It never contains duplicate ids nor an id already in Asked.
	Queue []Question `yaml:"queue" json:"queue"`

	// Asked lists ids already presented, in chronological order.
	// It doubles as the undo stack for BACK.
	Asked []string `yaml:"asked" json:"asked"`

	// Pointer fields. CurrentQuestionID and AwaitingAnswerFor are kept equal
	// in practice; LastQuestion is the full snapshot needed to re-render and
	// validate without re-deriving the candidate set.
	CurrentQuestionID string    `yaml:"current_question_id,omitempty" json:"current_question_id,omitempty"`
	AwaitingAnswerFor string    `yaml:"awaiting_answer_for,omitempty" json:"awaiting_answer_for,omitempty"`
	LastQuestion      *Question `yaml:"last_question,omitempty" json:"last_question,omitempty"`

	DynamicEnabled           bool               `yaml:"dynamic_enabled" json:"dynamic_enabled"`
	PendingResetPrompt       bool               `yaml:"pending_reset_prompt" json:"pending_reset_prompt"`
	AwaitingStageChoice      bool               `yaml:"awaiting_stage_choice" json:"awaiting_stage_choice"`
	AwaitingSpecialistChoice bool               `yaml:"awaiting_specialist_choice" json:"awaiting_specialist_choice"`
	PendingCustomData        *CustomDataRequest `yaml:"pending_custom_data,omitempty" json:"pending_custom_data,omitempty"`

	Completed   bool       `yaml:"completed" json:"completed"`
	CompletedAt *time.Time `yaml:"completed_at,omitempty" json:"completed_at,omitempty"`
	ActiveStage string     `yaml:"active_stage" json:"active_stage"`

	HelpEvents []HelpEvent `yaml:"help_events" json:"help_events"`
}

// Document is the persisted session document: dot-path-addressable answers,
// the company profile, and the wizard state.
type Document struct {
	Answers map[string]any `yaml:"answers" json:"answers"`
	Company map[string]any `yaml:"company" json:"company"`
	Wizard  *WizardState   `yaml:"wizard" json:"wizard"`
}

// NewDocument returns an empty session document with a defaulted wizard state.
func NewDocument(workflowID, version string, dynamicEnabled bool) *Document {
	return &Document{
		Answers: make(map[string]any),
		Company: make(map[string]any),
		Wizard:  newWizardState(workflowID, version, dynamicEnabled),
	}
}

func newWizardState(workflowID, version string, dynamicEnabled bool) *WizardState {
	return &WizardState{
		WorkflowID:     workflowID,
		Version:        version,
		Queue:          make([]Question, 0),
		Asked:          make([]string, 0),
		DynamicEnabled: dynamicEnabled,
		ActiveStage:    StageCoreIntake,
		HelpEvents:     make([]HelpEvent, 0),
	}
}

// EnsureWizard coerces a possibly-partial document into a usable one.
// Missing maps and nil slices are defaulted in place rather than failing;
// malformed state must never crash the conversation.
func EnsureWizard(doc *Document, workflowID, version string, dynamicEnabled bool) {
	if doc.Answers == nil {
		doc.Answers = make(map[string]any)
	}
	if doc.Company == nil {
		doc.Company = make(map[string]any)
	}
	if doc.Wizard == nil {
		doc.Wizard = newWizardState(workflowID, version, dynamicEnabled)
		return
	}
	w := doc.Wizard
	if w.WorkflowID == "" {
		w.WorkflowID = workflowID
	}
	if w.Version == "" {
		w.Version = version
	}
	if w.Queue == nil {
		w.Queue = make([]Question, 0)
	}
	if w.Asked == nil {
		w.Asked = make([]string, 0)
	}
	if w.HelpEvents == nil {
		w.HelpEvents = make([]HelpEvent, 0)
	}
	if w.ActiveStage == "" {
		w.ActiveStage = StageCoreIntake
	}
}

// Reset reinitializes the wizard state and wipes all answers. The company
// profile is preserved; only an explicit restart reaches this code.
func (d *Document) Reset(workflowID, version string, dynamicEnabled bool) {
	d.Answers = make(map[string]any)
	d.Wizard = newWizardState(workflowID, version, dynamicEnabled)
}

// HasAnswers reports whether any answer has been recorded.
func (d *Document) HasAnswers() bool {
	return len(d.Answers) > 0
}

// Pending reports whether a question is currently awaiting an answer.
func (w *WizardState) Pending() bool {
	return w.AwaitingAnswerFor != "" && w.LastQuestion != nil
}

// SpecialistStage returns the specialist name when the active stage is a
// specialist sub-flow, and "" otherwise.
func (w *WizardState) SpecialistStage() string {
	return strings.TrimPrefix(w.ActiveStage, StageSpecialistPrefix)
}

// InSpecialistStage reports whether the active stage is a specialist sub-flow.
func (w *WizardState) InSpecialistStage() bool {
	return strings.HasPrefix(w.ActiveStage, StageSpecialistPrefix)
}

// GetPath resolves a dot-path in a nested map. Returns the value and whether
// the full path exists.
func GetPath(m map[string]any, path string) (any, bool) {
	if m == nil || path == "" {
		return nil, false
	}
	segments := strings.Split(path, ".")
	current := m
	for i, seg := range segments {
		value, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return value, true
		}
		next, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// SetPath writes a value at a dot-path, creating intermediate maps as needed.
// An intermediate non-map value is overwritten; the write always succeeds.
func SetPath(m map[string]any, path string, value any) {
	if m == nil || path == "" {
		return
	}
	segments := strings.Split(path, ".")
	current := m
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[seg] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// DeletePath removes the leaf value at a dot-path and prunes intermediate
// maps that become empty, so a fully undone answer no longer counts as
// answered by the top-level check. Missing segments make it a no-op.
func DeletePath(m map[string]any, path string) {
	if m == nil || path == "" {
		return
	}
	deletePath(m, strings.Split(path, "."))
}

func deletePath(m map[string]any, segments []string) {
	if len(segments) == 1 {
		delete(m, segments[0])
		return
	}
	next, ok := m[segments[0]].(map[string]any)
	if !ok {
		return
	}
	deletePath(next, segments[1:])
	if len(next) == 0 {
		delete(m, segments[0])
	}
}

// TopLevelSet reports whether the first segment of a dot-path exists as a
// top-level key. This is deliberately a shallow check: a question saving to
// "a.b.c" counts as answered when "a" exists at all.
func TopLevelSet(m map[string]any, path string) bool {
	if m == nil || path == "" {
		return false
	}
	top := path
	if idx := strings.IndexByte(path, '.'); idx >= 0 {
		top = path[:idx]
	}
	_, ok := m[top]
	return ok
}
