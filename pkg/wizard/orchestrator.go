package wizard

import (
	"sort"
	"time"

	"structor/pkg/logx"
)

// Specialist is the contract a pluggable domain module fulfills. Questions
// must be pure and deterministic for a given context, with no side effects;
// the orchestrator is the only place specialist output is merged.
type Specialist interface {
	// Name returns the stable specialist identifier (e.g. "compliance").
	Name() string
	// Questions returns the questions this specialist contributes for the
	// given derived context.
	Questions(ctx Context) []Question
	// Analysis renders the specialist's templated report for the context.
	Analysis(ctx Context, lang string) string
	// Prompt returns the localized greeting shown when the specialist
	// sub-flow starts.
	Prompt(lang string) string
}

// Orchestrator is the single source of truth for "what should the user be
// asked next". It composes the static catalogs, the specialist registry, and
// the queue manager into refresh and get-next operations.
type Orchestrator struct {
	core        []Question
	deep        []Question
	specialists map[string]Specialist
	names       []string // specialist names, sorted for deterministic refresh order

	defaultLanguage string
	defaultPack     string
	workflowID      string
	version         string
	dynamicDefault  bool

	logger *logx.Logger
}

// NewOrchestrator builds an orchestrator over the standard catalogs.
func NewOrchestrator(specialists []Specialist, defaultLanguage, defaultPack string) *Orchestrator {
	return NewOrchestratorWithCatalogs(CoreQuestions(), DeepQuestions(), specialists, defaultLanguage, defaultPack)
}

// NewOrchestratorWithCatalogs builds an orchestrator with explicit question
// catalogs. Tests use this to run tiny workflows.
func NewOrchestratorWithCatalogs(core, deep []Question, specialists []Specialist, defaultLanguage, defaultPack string) *Orchestrator {
	byName := make(map[string]Specialist, len(specialists))
	names := make([]string, 0, len(specialists))
	for _, s := range specialists {
		if s == nil || s.Name() == "" {
			continue
		}
		if _, dup := byName[s.Name()]; dup {
			continue
		}
		byName[s.Name()] = s
		names = append(names, s.Name())
	}
	sort.Strings(names)

	return &Orchestrator{
		core:            FilterValid(core),
		deep:            FilterValid(deep),
		specialists:     byName,
		names:           names,
		defaultLanguage: defaultLanguage,
		defaultPack:     defaultPack,
		workflowID:      "business-structuring",
		version:         "1.0",
		dynamicDefault:  true,
		logger:          logx.NewLogger("orchestrator"),
	}
}

// SetWorkflowIdentity overrides the workflow id/version stamped on new state.
func (o *Orchestrator) SetWorkflowIdentity(workflowID, version string, dynamicEnabled bool) {
	if workflowID != "" {
		o.workflowID = workflowID
	}
	if version != "" {
		o.version = version
	}
	o.dynamicDefault = dynamicEnabled
}

// Ensure coerces the document into a usable shape with this workflow's
// identity. Every public operation calls it first.
func (o *Orchestrator) Ensure(doc *Document) {
	EnsureWizard(doc, o.workflowID, o.version, o.dynamicDefault)
}

// Reset wipes answers and reinitializes wizard state to defaults.
func (o *Orchestrator) Reset(doc *Document) {
	doc.Reset(o.workflowID, o.version, o.dynamicDefault)
}

// BuildContext derives the current turn context from the document.
func (o *Orchestrator) BuildContext(doc *Document) Context {
	o.Ensure(doc)
	return BuildContext(doc, o.defaultLanguage, o.defaultPack)
}

// Specialist looks up a registered specialist by name.
func (o *Orchestrator) Specialist(name string) (Specialist, bool) {
	s, ok := o.specialists[name]
	return s, ok
}

// SpecialistNames returns the registered specialist names in sorted order.
func (o *Orchestrator) SpecialistNames() []string {
	return append([]string{}, o.names...)
}

// Refresh rebuilds the pending queue for the active stage. Two phases:
// static catalog questions whose top-level answer key is still unset are
// seeded first, then, when dynamic mode is enabled, every specialist runs
// against the current context and its validated output is enqueued.
// Idempotent: repeated calls with unchanged answers add nothing, guaranteed
// by the queue/asked dedup in Enqueue.
func (o *Orchestrator) Refresh(doc *Document) {
	o.Ensure(doc)
	state := doc.Wizard

	if state.InSpecialistStage() {
		// Specialist sub-flows own their queue wholesale; a refresh re-runs
		// only that specialist so new answers can unlock its questions.
		if s, ok := o.specialists[state.SpecialistStage()]; ok {
			ctx := BuildContext(doc, o.defaultLanguage, o.defaultPack)
			Enqueue(state, o.unanswered(doc, FilterValid(s.Questions(ctx))))
		}
		return
	}

	catalog := o.core
	if state.ActiveStage == StageDeepIntake {
		// The deep set is a superset: core questions still unanswered come
		// back before the deep additions.
		catalog = append(append([]Question{}, o.core...), o.deep...)
	}

	Enqueue(state, o.unanswered(doc, catalog))

	if state.DynamicEnabled {
		ctx := BuildContext(doc, o.defaultLanguage, o.defaultPack)
		for _, name := range o.names {
			contributed := FilterValid(o.specialists[name].Questions(ctx))
			if added := Enqueue(state, o.unanswered(doc, contributed)); added > 0 {
				o.logger.Debug("Specialist %s contributed %d questions", name, added)
			}
		}
	}
}

// unanswered filters out questions whose top-level answer key is already set.
// Deliberately shallow: "a.b.c" counts as answered if answers["a"] exists.
func (o *Orchestrator) unanswered(doc *Document, questions []Question) []Question {
	pending := make([]Question, 0, len(questions))
	for i := range questions {
		if TopLevelSet(doc.Answers, questions[i].SaveTo.Answers) {
			continue
		}
		pending = append(pending, questions[i])
	}
	return pending
}

// GetNext pops the next pending question. A nil return signals queue
// exhaustion; the caller transitions to the stage-choice state.
func (o *Orchestrator) GetNext(doc *Document) *Question {
	o.Ensure(doc)
	return Pop(doc.Wizard)
}

// CompleteStage marks the current questioning phase exhausted and arms the
// stage-choice menu.
func (o *Orchestrator) CompleteStage(doc *Document) {
	o.Ensure(doc)
	state := doc.Wizard
	state.Completed = true
	now := time.Now().UTC()
	state.CompletedAt = &now
	state.AwaitingStageChoice = true
	o.logger.Info("Stage %s exhausted, offering stage choice", state.ActiveStage)
}

// EnterDeepIntake transitions to the advanced question set and refreshes.
func (o *Orchestrator) EnterDeepIntake(doc *Document) {
	o.Ensure(doc)
	state := doc.Wizard
	state.ActiveStage = StageDeepIntake
	state.AwaitingStageChoice = false
	state.Completed = false
	state.CompletedAt = nil
	o.Refresh(doc)
	o.logger.Info("Entered deep intake (queue depth %d)", len(state.Queue))
}

// EnterSpecialist replaces the queue wholesale with the named specialist's
// question set. Specialist sub-flows are exclusive, not additive: whatever
// was queued before is discarded, not merged.
func (o *Orchestrator) EnterSpecialist(doc *Document, name string) bool {
	o.Ensure(doc)
	s, ok := o.specialists[name]
	if !ok {
		return false
	}
	state := doc.Wizard
	state.Queue = state.Queue[:0]
	state.ActiveStage = StageSpecialistPrefix + name
	state.AwaitingStageChoice = false
	state.AwaitingSpecialistChoice = false
	state.Completed = false
	state.CompletedAt = nil

	ctx := BuildContext(doc, o.defaultLanguage, o.defaultPack)
	Enqueue(state, o.unanswered(doc, FilterValid(s.Questions(ctx))))
	o.logger.Info("Entered specialist %s (queue depth %d)", name, len(state.Queue))
	return true
}

// CandidateSet returns the full derivable question set for the current
// context: core plus deep catalogs plus every specialist's output. Back
// navigation uses it to find a previously asked question by id.
func (o *Orchestrator) CandidateSet(doc *Document) []Question {
	o.Ensure(doc)
	ctx := BuildContext(doc, o.defaultLanguage, o.defaultPack)

	candidates := make([]Question, 0, len(o.core)+len(o.deep))
	candidates = append(candidates, o.core...)
	candidates = append(candidates, o.deep...)
	for _, name := range o.names {
		candidates = append(candidates, FilterValid(o.specialists[name].Questions(ctx))...)
	}
	return candidates
}

// FindQuestion searches the candidate set for a question id.
func (o *Orchestrator) FindQuestion(doc *Document, id string) (*Question, bool) {
	for _, q := range o.CandidateSet(doc) {
		if q.ID == id {
			found := q
			return &found, true
		}
	}
	return nil, false
}
