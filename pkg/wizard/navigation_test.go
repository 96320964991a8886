package wizard

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAssist returns canned text so navigation tests can assert on the
// audit log without a real provider.
type stubAssist struct {
	text     string
	provider string
	fallback bool
}

func (s *stubAssist) Respond(_ context.Context, action string, q *Question, _ Context, _ string) (string, string, bool) {
	return s.text, s.provider, s.fallback
}

func navCatalog() ([]Question, []Question) {
	first := Question{
		ID:       "core.first",
		Type:     TypeEnum,
		Priority: 100,
		Text:     Text{LangEN: "First choice?", LangPT: "Primeira escolha?"},
		Options:  optionYesNo(),
		Validation: &Validation{
			Required: true,
		},
		SaveTo: SaveTo{Answers: "first.choice"},
	}
	second := Question{
		ID:       "core.second",
		Type:     TypeText,
		Priority: 90,
		Text:     Text{LangEN: "Second note?", LangPT: "Segunda nota?"},
		SaveTo:   SaveTo{Answers: "second.note"},
	}
	deep := Question{
		ID:       "deep.extra",
		Type:     TypeText,
		Priority: 50,
		Text:     Text{LangEN: "Extra detail?", LangPT: "Detalhe extra?"},
		SaveTo:   SaveTo{Answers: "extra.note"},
	}
	return []Question{first, second}, []Question{deep}
}

func newTestNavigator(t *testing.T, cfg NavigatorConfig, specialists ...Specialist) (*Navigator, *Document) {
	t.Helper()
	core, deep := navCatalog()
	orch := NewOrchestratorWithCatalogs(core, deep, specialists, "en", "general")
	doc := NewDocument("business-structuring", "1.0", true)
	return NewNavigator(orch, cfg), doc
}

func TestIntakeStartsWithHighestPriority(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})

	reply := nav.Handle(context.Background(), doc, "/intake")

	assert.Contains(t, reply, "First choice?")
	assert.True(t, doc.Wizard.Pending())
	assert.Equal(t, "core.first", doc.Wizard.AwaitingAnswerFor)
}

func TestInvalidAnswerRePosesSameQuestion(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")

	reply := nav.Handle(context.Background(), doc, "maybe")

	assert.Contains(t, reply, "YES, NO")
	assert.Contains(t, reply, "First choice?")
	assert.Equal(t, "core.first", doc.Wizard.AwaitingAnswerFor)
	assert.False(t, TopLevelSet(doc.Answers, "first.choice"))
}

func TestAnswerAdvancesToNextQuestion(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")

	reply := nav.Handle(context.Background(), doc, "yes")

	assert.Contains(t, reply, "Second note?")
	value, ok := GetPath(doc.Answers, "first.choice")
	require.True(t, ok)
	assert.Equal(t, "YES", value)
	assert.Equal(t, []string{"core.first"}, doc.Wizard.Asked)
}

func TestSkipBlockedOnRequired(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")

	reply := nav.Handle(context.Background(), doc, "SKIP")

	assert.Contains(t, reply, "required")
	assert.Contains(t, reply, "First choice?")
	assert.Equal(t, "core.first", doc.Wizard.AwaitingAnswerFor)
}

func TestSkipOptionalAdvances(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")
	nav.Handle(context.Background(), doc, "yes")

	reply := nav.Handle(context.Background(), doc, "skip")

	// No saved value, but the question is marked asked and the phase ends.
	assert.False(t, TopLevelSet(doc.Answers, "second.note"))
	assert.Contains(t, doc.Wizard.Asked, "core.second")
	assert.Contains(t, reply, "DEEP")
	assert.True(t, doc.Wizard.AwaitingStageChoice)
}

func TestBackRoundTrip(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")
	nav.Handle(context.Background(), doc, "yes")

	reply := nav.Handle(context.Background(), doc, "BACK")

	// The first question is re-posed and its answer destroyed.
	assert.Contains(t, reply, "First choice?")
	assert.Equal(t, "core.first", doc.Wizard.AwaitingAnswerFor)
	assert.False(t, TopLevelSet(doc.Answers, "first.choice"))
	assert.Empty(t, doc.Wizard.Asked)

	// Re-answering resumes the normal flow.
	reply = nav.Handle(context.Background(), doc, "no")
	assert.Contains(t, reply, "Second note?")
	value, _ := GetPath(doc.Answers, "first.choice")
	assert.Equal(t, "NO", value)
}

func TestBackFromStageMenuReopensQuestion(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")
	nav.Handle(context.Background(), doc, "yes")
	nav.Handle(context.Background(), doc, "skip")
	require.True(t, doc.Wizard.AwaitingStageChoice)
	require.True(t, doc.Wizard.Completed)

	reply := nav.Handle(context.Background(), doc, "BACK")

	// The skipped question is re-posed and the stage menu is disarmed.
	assert.Contains(t, reply, "Second note?")
	assert.False(t, doc.Wizard.AwaitingStageChoice)
	assert.False(t, doc.Wizard.Completed)
	assert.Nil(t, doc.Wizard.CompletedAt)

	// The reply is a real answer now, not a menu choice.
	reply = nav.Handle(context.Background(), doc, "my real note")
	assert.NotContains(t, reply, "choose")
	value, ok := GetPath(doc.Answers, "second.note")
	require.True(t, ok)
	assert.Equal(t, "my real note", value)
	assert.Contains(t, doc.Wizard.Asked, "core.second")
}

func TestBackFromSpecialistMenuReopensQuestion(t *testing.T) {
	spec := &fakeSpecialist{name: "finance"}
	nav, doc := newTestNavigator(t, NavigatorConfig{}, spec)
	nav.Handle(context.Background(), doc, "/intake")
	nav.Handle(context.Background(), doc, "yes")
	nav.Handle(context.Background(), doc, "skip")
	nav.Handle(context.Background(), doc, "3")
	require.True(t, doc.Wizard.AwaitingSpecialistChoice)

	reply := nav.Handle(context.Background(), doc, "BACK")

	assert.Contains(t, reply, "Second note?")
	assert.False(t, doc.Wizard.AwaitingSpecialistChoice)
	assert.Equal(t, "core.second", doc.Wizard.AwaitingAnswerFor)
}

func TestBackWithNothingAsked(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})

	reply := nav.Handle(context.Background(), doc, "back")

	assert.Contains(t, reply, "nothing to go back")
}

func TestRestartResetsEverything(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")
	nav.Handle(context.Background(), doc, "yes")
	doc.Company["country"] = "BR"

	reply := nav.Handle(context.Background(), doc, "RESTART")

	assert.Contains(t, reply, "reset")
	assert.Empty(t, doc.Answers)
	assert.Empty(t, doc.Wizard.Asked)
	assert.Empty(t, doc.Wizard.Queue)
	assert.False(t, doc.Wizard.Pending())
	// Company profile survives a restart.
	assert.Equal(t, "BR", doc.Company["country"])
}

func TestStatusAvailableAnytime(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})

	reply := nav.Handle(context.Background(), doc, "status")
	assert.Contains(t, reply, "Interview status")

	nav.Handle(context.Background(), doc, "/intake")
	reply = nav.Handle(context.Background(), doc, "STATUS")
	assert.Contains(t, reply, "core.first")
	// Status never consumes the pending question.
	assert.Equal(t, "core.first", doc.Wizard.AwaitingAnswerFor)
}

func TestStageMenuToSpecialist(t *testing.T) {
	spec := &fakeSpecialist{name: "finance"}
	nav, doc := newTestNavigator(t, NavigatorConfig{}, spec)
	nav.Handle(context.Background(), doc, "/intake")
	nav.Handle(context.Background(), doc, "yes")
	nav.Handle(context.Background(), doc, "skip")
	require.True(t, doc.Wizard.AwaitingStageChoice)

	reply := nav.Handle(context.Background(), doc, "3")
	assert.Contains(t, reply, "/finance")
	assert.True(t, doc.Wizard.AwaitingSpecialistChoice)

	reply = nav.Handle(context.Background(), doc, "finance")
	assert.Contains(t, reply, "hello from finance")
	// No questions to ask, so the analysis renders immediately.
	assert.Contains(t, reply, "analysis from finance")
	assert.Equal(t, StageSpecialistPrefix+"finance", doc.Wizard.ActiveStage)
}

func TestStageMenuDeep(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")
	nav.Handle(context.Background(), doc, "yes")
	nav.Handle(context.Background(), doc, "skip")
	require.True(t, doc.Wizard.AwaitingStageChoice)

	reply := nav.Handle(context.Background(), doc, "1")

	assert.Contains(t, reply, "Extra detail?")
	assert.Equal(t, StageDeepIntake, doc.Wizard.ActiveStage)
}

func TestStageMenuInvalidChoice(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")
	nav.Handle(context.Background(), doc, "yes")
	nav.Handle(context.Background(), doc, "skip")

	reply := nav.Handle(context.Background(), doc, "7")

	assert.Contains(t, reply, "choose")
	assert.True(t, doc.Wizard.AwaitingStageChoice)
}

func TestAssistRecordsHelpEvent(t *testing.T) {
	assist := &stubAssist{text: "Here is a hint.", provider: "openai", fallback: false}
	nav, doc := newTestNavigator(t, NavigatorConfig{Assist: assist})
	nav.Handle(context.Background(), doc, "/intake")

	reply := nav.Handle(context.Background(), doc, "EXPLAIN")

	assert.Contains(t, reply, "Here is a hint.")
	assert.Contains(t, reply, "First choice?")
	require.Len(t, doc.Wizard.HelpEvents, 1)
	event := doc.Wizard.HelpEvents[0]
	assert.Equal(t, AssistExplain, event.Action)
	assert.Equal(t, "core.first", event.QuestionID)
	assert.Equal(t, "openai", event.Provider)
	assert.False(t, event.Fallback)
	assert.NotEmpty(t, event.ID)
	// The question is still pending after an assist turn.
	assert.Equal(t, "core.first", doc.Wizard.AwaitingAnswerFor)
}

func TestAssistFallsBackWithoutService(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")

	reply := nav.Handle(context.Background(), doc, "SUGGEST")

	assert.Contains(t, reply, "YES, NO")
	require.Len(t, doc.Wizard.HelpEvents, 1)
	assert.True(t, doc.Wizard.HelpEvents[0].Fallback)
}

func TestAssistPortugueseKeyword(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")

	nav.Handle(context.Background(), doc, "EXPLICAR")

	require.Len(t, doc.Wizard.HelpEvents, 1)
	assert.Equal(t, AssistExplain, doc.Wizard.HelpEvents[0].Action)
}

func TestAssistWithoutPendingQuestion(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})

	reply := nav.Handle(context.Background(), doc, "EXPLAIN")

	assert.Contains(t, reply, "pending")
	assert.Empty(t, doc.Wizard.HelpEvents)
}

func TestIntakeWithAnswersAsksResetPrompt(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")
	nav.Handle(context.Background(), doc, "yes")

	reply := nav.Handle(context.Background(), doc, "/intake")
	assert.Contains(t, reply, "CONTINUE")
	assert.True(t, doc.Wizard.PendingResetPrompt)

	// CONTINUE resumes where the interview left off.
	reply = nav.Handle(context.Background(), doc, "continue")
	assert.False(t, doc.Wizard.PendingResetPrompt)
	assert.Contains(t, reply, "Second note?")
}

func TestResetPromptReset(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")
	nav.Handle(context.Background(), doc, "yes")
	nav.Handle(context.Background(), doc, "/intake")

	reply := nav.Handle(context.Background(), doc, "RESET")

	assert.Empty(t, doc.Answers)
	// A fresh interview starts immediately from the top.
	assert.Contains(t, reply, "First choice?")
}

func TestResetPromptExit(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")
	nav.Handle(context.Background(), doc, "yes")
	nav.Handle(context.Background(), doc, "/intake")

	reply := nav.Handle(context.Background(), doc, "exit")

	assert.Contains(t, reply, "preserved")
	assert.True(t, TopLevelSet(doc.Answers, "first.choice"))
	assert.False(t, doc.Wizard.PendingResetPrompt)
}

func TestCustomDataResolution(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	nav.Handle(context.Background(), doc, "/intake")
	doc.Wizard.PendingCustomData = &CustomDataRequest{
		ID:       "req-1",
		Prompt:   Text{LangEN: "Paste your CNPJ.", LangPT: "Cole seu CNPJ."},
		SavePath: "company.cnpj",
	}

	reply := nav.Handle(context.Background(), doc, "12.345.678/0001-00")

	assert.Contains(t, reply, "saved")
	assert.Nil(t, doc.Wizard.PendingCustomData)
	value, ok := GetPath(doc.Answers, "company.cnpj")
	require.True(t, ok)
	assert.Equal(t, "12.345.678/0001-00", value)
	// The interrupted question is re-rendered.
	assert.Contains(t, reply, "First choice?")
}

func TestReportCommand(t *testing.T) {
	reports := map[string]ReportFunc{
		"swot": func(ctx Context, lang string) string { return "## SWOT" },
	}
	nav, doc := newTestNavigator(t, NavigatorConfig{Reports: reports})

	reply := nav.Handle(context.Background(), doc, "/swot")

	assert.Equal(t, "## SWOT", reply)
}

func TestMethodCommand(t *testing.T) {
	method := func(id, mode, lang string) (string, bool) {
		if id != "swot" {
			return "", false
		}
		return "method:" + mode, true
	}
	nav, doc := newTestNavigator(t, NavigatorConfig{Method: method})

	assert.Equal(t, "method:", nav.Handle(context.Background(), doc, "/method swot"))
	assert.Equal(t, "method:checklist", nav.Handle(context.Background(), doc, "/method swot --checklist"))
	assert.Contains(t, nav.Handle(context.Background(), doc, "/method unknown"), "Usage")
	assert.Contains(t, nav.Handle(context.Background(), doc, "/method"), "Usage")
}

func TestFreeTextIntentFallback(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})

	reply := nav.Handle(context.Background(), doc, "I want to see a swot analysis")

	assert.Contains(t, reply, "/swot")
}

func TestFreeTextNoIntent(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})

	reply := nav.Handle(context.Background(), doc, "zzzz qqqq")

	assert.Contains(t, reply, "/help")
}

func TestPortugueseSurface(t *testing.T) {
	nav, doc := newTestNavigator(t, NavigatorConfig{})
	SetPath(doc.Answers, PathLanguage, "pt")
	doc.Wizard.Asked = append(doc.Wizard.Asked, "core.pt_marker")

	reply := nav.Handle(context.Background(), doc, "situação")
	assert.Contains(t, reply, "Situação da entrevista")

	reply = nav.Handle(context.Background(), doc, "/help")
	assert.Contains(t, reply, "Comandos")
}

func TestLanguageSwitchMidFlow(t *testing.T) {
	core := []Question{
		{
			ID:       "core.language",
			Type:     TypeEnum,
			Priority: 1000,
			Text:     Text{LangEN: "Language?", LangPT: "Idioma?"},
			Options: []Option{
				{Value: "en", Label: Text{LangEN: "English", LangPT: "Inglês"}},
				{Value: "pt", Label: Text{LangEN: "Portuguese", LangPT: "Português"}},
			},
			Validation: &Validation{Required: true},
			SaveTo:     SaveTo{Answers: PathLanguage},
		},
		{
			ID:       "core.next",
			Type:     TypeText,
			Priority: 900,
			Text:     Text{LangEN: "Next?", LangPT: "Próxima?"},
			SaveTo:   SaveTo{Answers: "next.note"},
		},
	}
	orch := NewOrchestratorWithCatalogs(core, nil, nil, "en", "general")
	nav := NewNavigator(orch, NavigatorConfig{})
	doc := NewDocument("wf", "1.0", true)

	nav.Handle(context.Background(), doc, "/intake")
	reply := nav.Handle(context.Background(), doc, "pt")

	// The reply after the language answer is already localized.
	assert.Contains(t, reply, "Próxima?")
	assert.True(t, strings.Contains(reply, "PULAR"))
}
