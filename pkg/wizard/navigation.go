package wizard

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"structor/pkg/logx"
	"structor/pkg/metrics"
)

// Assist actions available while a question is pending.
const (
	AssistExplain = "EXPLAIN"
	AssistReframe = "REFRAME"
	AssistSuggest = "SUGGEST"
)

// Assister produces enrichment text for an assist action. Implementations
// must degrade to a deterministic template on failure or cancellation and
// report that via fallback; the navigation controller never sees an error.
type Assister interface {
	Respond(ctx context.Context, action string, q *Question, wctx Context, lang string) (text, provider string, fallback bool)
}

// ReportFunc renders a templated analysis report from the derived context.
type ReportFunc func(ctx Context, lang string) string

// MethodFunc looks up a business-method descriptor by id and renders it in
// the requested mode ("", "explain", or "checklist").
type MethodFunc func(id, mode, lang string) (string, bool)

// NavigatorConfig wires the navigation controller's collaborators. All
// fields are optional; missing ones degrade to static replies.
type NavigatorConfig struct {
	Assist   Assister
	Reports  map[string]ReportFunc // keyed by command name: swot, diagnose, ...
	Method   MethodFunc
	Render   ReportFunc // external document generation hook for /render
	Recorder *metrics.Recorder
}

// Navigator interprets user input against the wizard state and produces the
// next rendered prompt. Each turn is (doc, input) -> (doc mutated, reply);
// the caller owns persistence of doc.
type Navigator struct {
	orch     *Orchestrator
	assist   Assister
	reports  map[string]ReportFunc
	method   MethodFunc
	render   ReportFunc
	recorder *metrics.Recorder
	logger   *logx.Logger
}

// NewNavigator creates a navigation controller over the orchestrator.
func NewNavigator(orch *Orchestrator, cfg NavigatorConfig) *Navigator {
	return &Navigator{
		orch:     orch,
		assist:   cfg.Assist,
		reports:  cfg.Reports,
		method:   cfg.Method,
		render:   cfg.Render,
		recorder: cfg.Recorder,
		logger:   logx.NewLogger("nav"),
	}
}

// keyword tables for language-dependent literal matching.
var (
	kwStatus   = []string{"status", "situação", "situacao"}
	kwBack     = []string{"back", "voltar"}
	kwRestart  = []string{"restart", "recomeçar", "recomecar", "reiniciar"}
	kwSkip     = []string{"skip", "pular"}
	kwContinue = []string{"continue", "continuar"}
	kwReset    = []string{"reset", "resetar", "zerar"}
	kwExit     = []string{"exit", "sair"}

	kwAssist = map[string]string{
		"explain":    AssistExplain,
		"explicar":   AssistExplain,
		"reframe":    AssistReframe,
		"reformular": AssistReframe,
		"suggest":    AssistSuggest,
		"sugerir":    AssistSuggest,
	}
)

func matchKeyword(input string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.EqualFold(input, kw) {
			return true
		}
	}
	return false
}

// Handle processes one user turn. Input handling priority is strict and
// first-match-wins: global commands, assist actions, reset-prompt
// resolution, stage choice, specialist choice, pending custom data, normal
// answer handling, slash commands, and finally the free-text intent
// fallback.
func (n *Navigator) Handle(ctx context.Context, doc *Document, input string) string {
	n.orch.Ensure(doc)
	state := doc.Wizard
	wctx := n.orch.BuildContext(doc)
	lang := wctx.Language
	trimmed := strings.TrimSpace(input)

	// 1. Global commands, available in any state.
	switch {
	case matchKeyword(trimmed, kwStatus):
		n.recorder.ObserveTurn("status")
		return RenderStatus(state, lang)
	case matchKeyword(trimmed, kwBack):
		return n.handleBack(doc, lang)
	case matchKeyword(trimmed, kwRestart):
		n.recorder.ObserveReset()
		n.recorder.ObserveTurn("restart")
		n.orch.Reset(doc)
		return msgResetDone.get(lang)
	}

	// 2. AI-assist actions, valid only while a question is pending.
	if action, ok := kwAssist[strings.ToLower(trimmed)]; ok {
		return n.handleAssist(ctx, doc, action, wctx, lang)
	}

	// 3. Reset-prompt resolution.
	if state.PendingResetPrompt {
		return n.handleResetPrompt(doc, trimmed, lang)
	}

	// 4. Stage-choice resolution.
	if state.AwaitingStageChoice {
		return n.handleStageChoice(doc, trimmed, lang)
	}

	// 5. Specialist-choice resolution.
	if state.AwaitingSpecialistChoice {
		return n.handleSpecialistChoice(doc, trimmed, lang)
	}

	// 6. Pending custom-data resolution.
	if state.PendingCustomData != nil {
		return n.handleCustomData(doc, trimmed, lang)
	}

	// 7. Normal answer handling when a question is pending. Slash-prefixed
	// input is never an answer; it falls through to command handling so that
	// /intake and friends still work mid-question.
	if state.Pending() && !strings.HasPrefix(trimmed, "/") {
		return n.handleAnswer(doc, trimmed, lang)
	}

	// 8. Slash commands.
	if strings.HasPrefix(trimmed, "/") {
		return n.handleSlashCommand(doc, trimmed, wctx, lang)
	}

	// 9. Free-text intent fallback.
	n.recorder.ObserveTurn("fallback")
	if pattern, score := DetectIntent(trimmed, DefaultIntentPatterns()); score > 0 {
		return RenderIntentSuggestion(pattern, lang)
	}
	return RenderFallbackHelp(lang)
}

// handleAnswer validates, normalizes, persists, and advances. SKIP is
// checked first and is only legal for non-required questions.
func (n *Navigator) handleAnswer(doc *Document, input, lang string) string {
	state := doc.Wizard
	q := state.LastQuestion

	if matchKeyword(input, kwSkip) {
		if q.IsRequired() {
			n.recorder.ObserveTurn("skip_blocked")
			return msgSkipBlocked.get(lang) + "\n\n" + RenderQuestion(q, lang)
		}
		n.recorder.ObserveSkip()
		n.recorder.ObserveTurn("skip")
		MarkAsked(state, q.ID)
		state.LastQuestion = nil
		return n.advance(doc, lang)
	}

	value, answerErr := NormalizeAnswer(q, input)
	if answerErr != nil {
		n.recorder.ObserveTurn("invalid_answer")
		return answerErr.Message.Get(lang) + "\n\n" + RenderQuestion(q, lang)
	}

	SaveAnswer(doc, q, value)
	MarkAsked(state, q.ID)
	state.LastQuestion = nil
	n.recorder.ObserveAnswer(string(q.Type))
	n.recorder.ObserveTurn("answer")
	n.logger.Debug("Answered %s -> %s", q.ID, q.SaveTo.Answers)

	// Language may have just changed; re-derive for the reply.
	lang = n.orch.BuildContext(doc).Language
	return n.advance(doc, lang)
}

// advance refreshes the queue (so newly unlocked specialist questions join
// in priority order) and presents the next question, or the stage menu when
// the phase is exhausted.
func (n *Navigator) advance(doc *Document, lang string) string {
	n.orch.Refresh(doc)

	if q := n.orch.GetNext(doc); q != nil {
		n.recorder.ObserveQuestionAsked()
		return RenderQuestion(q, lang)
	}

	state := doc.Wizard
	var analysis string
	if state.InSpecialistStage() {
		// A finished specialist sub-flow reports its analysis before the menu.
		if s, ok := n.orch.Specialist(state.SpecialistStage()); ok {
			analysis = s.Analysis(n.orch.BuildContext(doc), lang) + "\n\n"
		}
	}

	n.orch.CompleteStage(doc)
	return analysis + msgIntakeComplete.get(lang) + "\n\n" + msgStageMenu.get(lang)
}

// handleBack pops the last asked id, deletes its saved answer, and re-poses
// it: a destructive one-step undo. If the question can no longer be derived
// (the workflow changed underneath), the operation is abandoned with a
// warning and the flow advances instead.
func (n *Navigator) handleBack(doc *Document, lang string) string {
	state := doc.Wizard
	if len(state.Asked) == 0 {
		n.recorder.ObserveTurn("back_empty")
		return msgBackNothing.get(lang)
	}

	lastID := state.Asked[len(state.Asked)-1]
	state.Asked = state.Asked[:len(state.Asked)-1]

	// BACK may cross a phase boundary. Any armed menu or prompt is abandoned
	// so the next input is handled as an answer, not a menu choice.
	state.AwaitingStageChoice = false
	state.AwaitingSpecialistChoice = false
	state.PendingResetPrompt = false
	state.Completed = false
	state.CompletedAt = nil

	q, found := n.orch.FindQuestion(doc, lastID)
	if !found {
		n.logger.Warn("Back navigation lost question %s", lastID)
		n.recorder.ObserveTurn("back_lost")
		return msgBackLost.get(lang) + "\n\n" + n.advance(doc, lang)
	}

	DeleteAnswer(doc, q)
	RePose(state, q)
	n.recorder.ObserveBack()
	n.recorder.ObserveTurn("back")

	// The deleted answer may change the derived language.
	lang = n.orch.BuildContext(doc).Language
	return RenderQuestion(q, lang)
}

// handleAssist runs one enrichment action against the pending question and
// records the invocation in the help-events audit log.
func (n *Navigator) handleAssist(ctx context.Context, doc *Document, action string, wctx Context, lang string) string {
	state := doc.Wizard
	if !state.Pending() {
		n.recorder.ObserveTurn("assist_no_question")
		return msgAssistNeedsQuestion.get(lang)
	}

	q := state.LastQuestion
	start := time.Now()

	var text, provider string
	fallback := true
	if n.assist != nil {
		text, provider, fallback = n.assist.Respond(ctx, action, q, wctx, lang)
	}
	if text == "" {
		text = FallbackAssist(action, q, lang)
	}

	outcome := "success"
	if fallback {
		outcome = "fallback"
	}
	n.recorder.ObserveAssist(action, outcome, time.Since(start))
	n.recorder.ObserveTurn("assist")

	state.HelpEvents = append(state.HelpEvents, HelpEvent{
		ID:         uuid.New().String(),
		Action:     action,
		QuestionID: q.ID,
		Provider:   provider,
		Fallback:   fallback,
		At:         time.Now().UTC(),
	})

	return text + "\n\n" + RenderQuestion(q, lang)
}

func (n *Navigator) handleResetPrompt(doc *Document, input, lang string) string {
	state := doc.Wizard
	switch {
	case matchKeyword(input, kwContinue):
		state.PendingResetPrompt = false
		n.recorder.ObserveTurn("resume")
		if state.Pending() {
			return RenderQuestion(state.LastQuestion, lang)
		}
		return n.advance(doc, lang)
	case matchKeyword(input, kwReset):
		n.recorder.ObserveReset()
		n.recorder.ObserveTurn("reset")
		n.orch.Reset(doc)
		n.orch.Ensure(doc)
		return n.advance(doc, lang)
	case matchKeyword(input, kwExit):
		state.PendingResetPrompt = false
		n.recorder.ObserveTurn("exit")
		return msgExitAck.get(lang)
	default:
		return msgResetPrompt.get(lang)
	}
}

func (n *Navigator) handleStageChoice(doc *Document, input, lang string) string {
	state := doc.Wizard
	lower := strings.ToLower(strings.TrimPrefix(input, "/"))

	switch lower {
	case "1", "deep", "aprofundar":
		n.recorder.ObserveTurn("stage_deep")
		n.orch.EnterDeepIntake(doc)
		if q := n.orch.GetNext(doc); q != nil {
			n.recorder.ObserveQuestionAsked()
			return RenderQuestion(q, lang)
		}
		n.orch.CompleteStage(doc)
		return msgIntakeComplete.get(lang) + "\n\n" + msgStageMenu.get(lang)
	case "2", "render", "gerar":
		state.AwaitingStageChoice = false
		n.recorder.ObserveTurn("stage_render")
		if n.render != nil {
			return n.render(n.orch.BuildContext(doc), lang)
		}
		return msgRenderHint.get(lang)
	case "3", "specialist", "especialista":
		state.AwaitingStageChoice = false
		state.AwaitingSpecialistChoice = true
		n.recorder.ObserveTurn("stage_specialist")
		return RenderSpecialistMenu(n.orch.SpecialistNames(), lang)
	}

	// A specialist name is accepted directly at the stage menu.
	if _, ok := n.orch.Specialist(lower); ok {
		return n.enterSpecialist(doc, lower, lang)
	}

	return msgStageMenuInvalid.get(lang)
}

func (n *Navigator) handleSpecialistChoice(doc *Document, input, lang string) string {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(input), "/"))
	if _, ok := n.orch.Specialist(name); !ok {
		return msgUnknownSpecialist.get(lang) + "\n\n" + RenderSpecialistMenu(n.orch.SpecialistNames(), lang)
	}
	return n.enterSpecialist(doc, name, lang)
}

func (n *Navigator) enterSpecialist(doc *Document, name, lang string) string {
	n.orch.EnterSpecialist(doc, name)
	n.recorder.ObserveSpecialistEntered(name)
	n.recorder.ObserveTurn("specialist")

	s, _ := n.orch.Specialist(name)
	greeting := s.Prompt(lang)

	if q := n.orch.GetNext(doc); q != nil {
		n.recorder.ObserveQuestionAsked()
		return greeting + "\n\n" + RenderQuestion(q, lang)
	}
	// Nothing to ask: go straight to the analysis.
	return greeting + "\n\n" + s.Analysis(n.orch.BuildContext(doc), lang)
}

func (n *Navigator) handleCustomData(doc *Document, input, lang string) string {
	state := doc.Wizard
	req := state.PendingCustomData

	if input == "" {
		return req.Prompt.Get(lang)
	}

	SetPath(doc.Answers, req.SavePath, input)
	state.PendingCustomData = nil
	n.recorder.ObserveTurn("custom_data")

	reply := msgCustomDataSaved.get(lang)
	if state.Pending() {
		reply += "\n\n" + RenderQuestion(state.LastQuestion, lang)
	}
	return reply
}

func (n *Navigator) handleSlashCommand(doc *Document, input string, wctx Context, lang string) string {
	state := doc.Wizard
	fields := strings.Fields(input)
	command := strings.ToLower(strings.TrimPrefix(fields[0], "/"))

	switch command {
	case "intake":
		n.recorder.ObserveTurn("intake")
		if doc.HasAnswers() {
			state.PendingResetPrompt = true
			return msgResetPrompt.get(lang)
		}
		if state.Pending() {
			// Resume: re-pose the interrupted question.
			return RenderQuestion(state.LastQuestion, lang)
		}
		return n.advance(doc, lang)

	case "render", "generate":
		n.recorder.ObserveTurn("render")
		if n.render != nil {
			return n.render(wctx, lang)
		}
		return msgRenderHint.get(lang)

	case "method":
		n.recorder.ObserveTurn("method")
		return n.handleMethod(fields[1:], lang)

	case "help":
		n.recorder.ObserveTurn("help")
		return RenderHelp(n.orch.SpecialistNames(), lang)
	}

	if report, ok := n.reports[command]; ok {
		n.recorder.ObserveTurn("report")
		return report(wctx, lang)
	}

	if _, ok := n.orch.Specialist(command); ok {
		return n.enterSpecialist(doc, command, lang)
	}

	n.recorder.ObserveTurn("unknown_command")
	return RenderFallbackHelp(lang)
}

func (n *Navigator) handleMethod(args []string, lang string) string {
	if n.method == nil || len(args) == 0 {
		return msgMethodUsage.get(lang)
	}

	id := args[0]
	mode := ""
	for _, arg := range args[1:] {
		switch arg {
		case "--explain":
			mode = "explain"
		case "--checklist":
			mode = "checklist"
		}
	}

	text, ok := n.method(id, mode, lang)
	if !ok {
		return msgMethodUsage.get(lang)
	}
	return text
}

// FallbackAssist renders the deterministic template used when the assist
// service is unavailable, failed, or was cancelled. It never touches wizard
// state.
func FallbackAssist(action string, q *Question, lang string) string {
	pt := lang == LangPT
	switch action {
	case AssistExplain:
		if pt {
			return "Esta pergunta ajuda a montar o seu perfil de estruturação. Responda da forma mais direta possível; você pode voltar depois com VOLTAR."
		}
		return "This question helps build your structuring profile. Answer as directly as you can; you can always revisit it with BACK."
	case AssistReframe:
		if pt {
			return "Em outras palavras: " + q.Text.Get(lang)
		}
		return "In other words: " + q.Text.Get(lang)
	case AssistSuggest:
		if q.HasOptions() {
			values := strings.Join(q.OptionValues(), ", ")
			if pt {
				return "Opções comuns para negócios como o seu: " + values + "."
			}
			return "Common picks for businesses like yours: " + values + "."
		}
		if pt {
			return "Uma frase curta e concreta é suficiente aqui."
		}
		return "A short, concrete sentence is enough here."
	default:
		return ""
	}
}
