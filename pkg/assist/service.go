package assist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"structor/pkg/config"
	"structor/pkg/logx"
	"structor/pkg/wizard"
)

// Service runs assist actions against a provider client and degrades to the
// deterministic templates on any failure. It implements wizard.Assister.
type Service struct {
	client          Client
	counter         *TokenCounter
	maxPromptTokens int
	timeout         time.Duration
	logger          *logx.Logger
}

// NewService wires a Service over an explicit client. A nil client yields a
// service that always falls back.
func NewService(client Client, cfg config.AssistConfig) *Service {
	counter, err := NewTokenCounter()
	if err != nil {
		// Character-based estimation still enforces the budget roughly.
		counter = nil
	}
	return &Service{
		client:          client,
		counter:         counter,
		maxPromptTokens: cfg.MaxPromptTokens,
		timeout:         time.Duration(cfg.TimeoutSec) * time.Second,
		logger:          logx.NewLogger("assist"),
	}
}

// NewFromConfig builds the service for the configured provider. Provider
// "none" (or a missing key) produces a fallback-only service.
func NewFromConfig(cfg config.AssistConfig) *Service {
	var client Client
	switch cfg.Provider {
	case config.ProviderOpenAI:
		if cfg.APIKey != "" {
			client = NewOpenAIClient(cfg)
		}
	case config.ProviderAnthropic:
		if cfg.APIKey != "" {
			client = NewAnthropicClient(cfg)
		}
	}
	return NewService(client, cfg)
}

// Respond executes one assist action. The returned fallback flag is true
// whenever the text did not come from the provider; the caller records it in
// the help-event audit log. State is never touched here, so a cancelled or
// failed call cannot corrupt the session.
func (s *Service) Respond(ctx context.Context, action string, q *wizard.Question, wctx wizard.Context, lang string) (string, string, bool) {
	if s == nil || s.client == nil || q == nil {
		return wizard.FallbackAssist(action, q, lang), "", true
	}

	system := s.systemPrompt(action, lang)
	user := s.userPrompt(q, wctx, lang)

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.client.Complete(callCtx, system, user)
	if err != nil {
		s.logger.Warn("Assist %s via %s failed, using template: %v", action, s.client.Name(), err)
		return wizard.FallbackAssist(action, q, lang), s.client.Name(), true
	}

	return strings.TrimSpace(text), s.client.Name(), false
}

func (s *Service) systemPrompt(action, lang string) string {
	language := "English"
	if lang == wizard.LangPT {
		language = "Brazilian Portuguese"
	}

	var task string
	switch action {
	case wizard.AssistExplain:
		task = "Explain why the interview question below matters for structuring a small business. Two sentences maximum."
	case wizard.AssistReframe:
		task = "Rephrase the interview question below in simpler words, keeping the exact same meaning. One sentence."
	case wizard.AssistSuggest:
		task = "Suggest a plausible answer to the interview question below based on the business profile. Be concrete and brief."
	default:
		task = "Help the user with the interview question below. Be brief."
	}

	return fmt.Sprintf("You are a business-structuring assistant. %s Answer in %s. Do not ask follow-up questions.", task, language)
}

// userPrompt renders the question plus a trimmed profile snapshot. The
// profile goes last so budget trimming cuts context, never the question.
func (s *Service) userPrompt(q *wizard.Question, wctx wizard.Context, lang string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question (%s): %s\n", q.ID, q.Text.Get(lang))
	if q.HasOptions() {
		fmt.Fprintf(&b, "Options: %s\n", strings.Join(q.OptionValues(), ", "))
	}

	profile := map[string]any{
		"country":   wctx.CountryMode,
		"lifecycle": wctx.LifecycleMode,
		"industry":  wctx.Industry,
		"packs":     wctx.Packs,
		"answers":   wctx.Answers,
	}
	if snapshot, err := yaml.Marshal(profile); err == nil {
		b.WriteString("\nBusiness profile:\n")
		b.Write(snapshot)
	}

	prompt := b.String()
	if s.maxPromptTokens > 0 {
		prompt = s.counter.Truncate(prompt, s.maxPromptTokens)
	}
	return prompt
}
