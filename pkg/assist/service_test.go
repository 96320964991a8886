package assist

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"structor/pkg/config"
	"structor/pkg/wizard"
)

func testConfig() config.AssistConfig {
	return config.AssistConfig{
		Provider:        "openai",
		Model:           "gpt-4o-mini",
		MaxTokens:       256,
		MaxPromptTokens: 2000,
		TimeoutSec:      5,
	}
}

func pendingQuestion() *wizard.Question {
	return &wizard.Question{
		ID:   "core.country_mode",
		Type: wizard.TypeEnum,
		Text: wizard.Text{wizard.LangEN: "Where will the business operate?", wizard.LangPT: "Onde o negócio vai operar?"},
		Options: []wizard.Option{
			{Value: "BR", Label: wizard.Text{wizard.LangEN: "Brazil", wizard.LangPT: "Brasil"}},
			{Value: "US", Label: wizard.Text{wizard.LangEN: "United States", wizard.LangPT: "Estados Unidos"}},
		},
		SaveTo: wizard.SaveTo{Answers: "country.mode"},
	}
}

func testContext() wizard.Context {
	doc := wizard.NewDocument("wf", "1.0", true)
	wizard.SetPath(doc.Answers, "industry.sector", "RETAIL")
	return wizard.BuildContext(doc, "en", "GENERAL")
}

func TestRespondSuccess(t *testing.T) {
	mock := &MockClient{Response: "Pick the country where you will invoice customers."}
	svc := NewService(mock, testConfig())

	text, provider, fallback := svc.Respond(context.Background(), wizard.AssistExplain, pendingQuestion(), testContext(), wizard.LangEN)

	assert.Equal(t, "Pick the country where you will invoice customers.", text)
	assert.Equal(t, "mock", provider)
	assert.False(t, fallback)
	// The prompt carries the question and the profile snapshot.
	assert.Contains(t, mock.LastUser, "core.country_mode")
	assert.Contains(t, mock.LastUser, "RETAIL")
	assert.Contains(t, mock.LastSystem, "English")
}

func TestRespondPortugueseInstruction(t *testing.T) {
	mock := &MockClient{Response: "ok"}
	svc := NewService(mock, testConfig())

	svc.Respond(context.Background(), wizard.AssistReframe, pendingQuestion(), testContext(), wizard.LangPT)

	assert.Contains(t, mock.LastSystem, "Portuguese")
	assert.Contains(t, mock.LastUser, "Onde o negócio vai operar?")
}

func TestRespondFallsBackOnError(t *testing.T) {
	mock := &MockClient{Err: errors.New("rate limited")}
	svc := NewService(mock, testConfig())

	text, provider, fallback := svc.Respond(context.Background(), wizard.AssistSuggest, pendingQuestion(), testContext(), wizard.LangEN)

	assert.True(t, fallback)
	assert.Equal(t, "mock", provider)
	// The deterministic template still references the option values.
	assert.Contains(t, text, "BR, US")
}

func TestRespondWithoutClientAlwaysFallsBack(t *testing.T) {
	svc := NewService(nil, testConfig())

	text, provider, fallback := svc.Respond(context.Background(), wizard.AssistExplain, pendingQuestion(), testContext(), wizard.LangEN)

	assert.True(t, fallback)
	assert.Empty(t, provider)
	assert.NotEmpty(t, text)
}

func TestRespondCancelledContextFallsBack(t *testing.T) {
	mock := &MockClient{Err: context.Canceled}
	svc := NewService(mock, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, fallback := svc.Respond(ctx, wizard.AssistExplain, pendingQuestion(), testContext(), wizard.LangEN)

	assert.True(t, fallback)
}

func TestNewFromConfigNoneProvider(t *testing.T) {
	svc := NewFromConfig(config.AssistConfig{Provider: config.ProviderNone})

	_, _, fallback := svc.Respond(context.Background(), wizard.AssistExplain, pendingQuestion(), testContext(), wizard.LangEN)
	assert.True(t, fallback)
}

func TestPromptBudgetTrimsProfileNotQuestion(t *testing.T) {
	cfg := testConfig()
	cfg.MaxPromptTokens = 40
	mock := &MockClient{Response: "ok"}
	svc := NewService(mock, cfg)

	doc := wizard.NewDocument("wf", "1.0", true)
	wizard.SetPath(doc.Answers, "goals.main", strings.Repeat("expand the operation ", 400))
	wctx := wizard.BuildContext(doc, "en", "GENERAL")

	svc.Respond(context.Background(), wizard.AssistExplain, pendingQuestion(), wctx, wizard.LangEN)

	require.NotEmpty(t, mock.LastUser)
	// The question appears at the head, so trimming cut the tail profile.
	assert.Contains(t, mock.LastUser, "core.country_mode")
	assert.True(t, strings.HasSuffix(mock.LastUser, "..."))
}

func TestTokenCounter(t *testing.T) {
	counter, err := NewTokenCounter()
	require.NoError(t, err)

	count := counter.Count("hello world, this is a prompt")
	assert.Greater(t, count, 0)

	long := strings.Repeat("word ", 500)
	trimmed := counter.Truncate(long, 50)
	assert.Less(t, len(trimmed), len(long))
	assert.True(t, strings.HasSuffix(trimmed, "..."))

	short := "short"
	assert.Equal(t, short, counter.Truncate(short, 50))
}

func TestTruncatePreservesUTF8(t *testing.T) {
	counter, err := NewTokenCounter()
	require.NoError(t, err)

	long := strings.Repeat("organização Jaçanã não pré-receita ", 300)
	trimmed := counter.Truncate(long, 50)

	require.Less(t, len(trimmed), len(long))
	assert.True(t, strings.HasSuffix(trimmed, "..."))
	// The cut must land on a rune boundary, never inside an accented char.
	assert.True(t, utf8.ValidString(trimmed))
}

func TestTokenCounterNilFallback(t *testing.T) {
	var counter *TokenCounter
	assert.Equal(t, len("abcdefgh")/4, counter.Count("abcdefgh"))
}
