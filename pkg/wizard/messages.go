package wizard

import (
	"fmt"
	"strings"
)

// message is a small bilingual string table keyed by language tag.
type message map[string]string

func (m message) get(lang string) string {
	if s, ok := m[lang]; ok {
		return s
	}
	return m[LangEN]
}

var (
	msgNoQuestionPending = message{
		LangEN: "No question is pending. Send `/intake` to start or resume the interview, or `/help` for commands.",
		LangPT: "Nenhuma pergunta pendente. Envie `/intake` para começar ou retomar a entrevista, ou `/help` para ver os comandos.",
	}
	msgResetPrompt = message{
		LangEN: "You already have saved answers. Reply **CONTINUE** to resume, **RESET** to start over, or **EXIT** to leave the interview.",
		LangPT: "Você já tem respostas salvas. Responda **CONTINUE** para retomar, **RESET** para recomeçar, ou **EXIT** para sair da entrevista.",
	}
	msgResetDone = message{
		LangEN: "Everything was reset. Send `/intake` to start fresh.",
		LangPT: "Tudo foi reiniciado. Envie `/intake` para começar do zero.",
	}
	msgExitAck = message{
		LangEN: "Okay, leaving the interview. Your answers are preserved; `/intake` resumes anytime.",
		LangPT: "Certo, saindo da entrevista. Suas respostas estão preservadas; `/intake` retoma quando quiser.",
	}
	msgSkipBlocked = message{
		LangEN: "This question is required and cannot be skipped.",
		LangPT: "Esta pergunta é obrigatória e não pode ser pulada.",
	}
	msgBackNothing = message{
		LangEN: "There is nothing to go back to yet.",
		LangPT: "Ainda não há nada para voltar.",
	}
	msgBackLost = message{
		LangEN: "I could not recover the previous question (the workflow may have changed). Moving on to the next one.",
		LangPT: "Não consegui recuperar a pergunta anterior (o fluxo pode ter mudado). Seguindo para a próxima.",
	}
	msgStageMenu = message{
		LangEN: "That wraps up this round of questions. What next?\n\n1. **DEEP** — go deeper with advanced questions\n2. **RENDER** — generate your documents\n3. **SPECIALIST** — talk to a domain specialist\n\nReply with a number or keyword.",
		LangPT: "Essa rodada de perguntas terminou. O que vem agora?\n\n1. **DEEP** — aprofundar com perguntas avançadas\n2. **RENDER** — gerar seus documentos\n3. **SPECIALIST** — falar com um especialista\n\nResponda com um número ou palavra-chave.",
	}
	msgStageMenuInvalid = message{
		LangEN: "Please choose **1** (DEEP), **2** (RENDER), or **3** (SPECIALIST).",
		LangPT: "Por favor, escolha **1** (DEEP), **2** (RENDER) ou **3** (SPECIALIST).",
	}
	msgRenderHint = message{
		LangEN: "Use `/swot`, `/diagnose`, `/plan`, `/canvas`, or `/score` to generate a document from your answers.",
		LangPT: "Use `/swot`, `/diagnose`, `/plan`, `/canvas` ou `/score` para gerar um documento a partir das suas respostas.",
	}
	msgUnknownSpecialist = message{
		LangEN: "I don't know that specialist.",
		LangPT: "Não conheço esse especialista.",
	}
	msgAssistNeedsQuestion = message{
		LangEN: "EXPLAIN, REFRAME, and SUGGEST only work while a question is pending.",
		LangPT: "EXPLAIN, REFRAME e SUGGEST só funcionam enquanto uma pergunta está pendente.",
	}
	msgIntakeComplete = message{
		LangEN: "All questions in this phase are answered.",
		LangPT: "Todas as perguntas desta fase foram respondidas.",
	}
	msgCustomDataSaved = message{
		LangEN: "Got it, the extra information was saved.",
		LangPT: "Entendido, a informação extra foi salva.",
	}
	msgMethodUsage = message{
		LangEN: "Usage: `/method <id> [--explain|--checklist]`.",
		LangPT: "Uso: `/method <id> [--explain|--checklist]`.",
	}
)

// RenderQuestion formats a question as a markdown prompt in the given
// language: text, options list, placeholder hint, and skip hint for optional
// questions.
func RenderQuestion(q *Question, lang string) string {
	if q == nil {
		return msgNoQuestionPending.get(lang)
	}

	var b strings.Builder
	b.WriteString("**" + q.Text.Get(lang) + "**\n")

	if q.HasOptions() {
		b.WriteString("\n")
		for i := range q.Options {
			opt := &q.Options[i]
			b.WriteString(fmt.Sprintf("- `%s` — %s\n", opt.Value, opt.Label.Get(lang)))
		}
	}

	if q.Type == TypeText {
		if hint := q.Placeholder.Get(lang); hint != "" {
			b.WriteString("\n_" + hint + "_\n")
		}
	}

	if !q.IsRequired() {
		if lang == LangPT {
			b.WriteString("\n_(Opcional — responda PULAR para pular.)_")
		} else {
			b.WriteString("\n_(Optional — reply SKIP to skip.)_")
		}
	}

	return b.String()
}

// RenderStatus summarizes progress without mutating state.
func RenderStatus(state *WizardState, lang string) string {
	var b strings.Builder
	if lang == LangPT {
		b.WriteString("**Situação da entrevista**\n\n")
		b.WriteString(fmt.Sprintf("- Etapa ativa: `%s`\n", state.ActiveStage))
		b.WriteString(fmt.Sprintf("- Perguntas respondidas: %d\n", len(state.Asked)))
		b.WriteString(fmt.Sprintf("- Perguntas na fila: %d\n", len(state.Queue)))
		if state.Pending() {
			b.WriteString(fmt.Sprintf("- Aguardando resposta para: `%s`\n", state.AwaitingAnswerFor))
		}
		if state.Completed {
			b.WriteString("- Fase concluída\n")
		}
	} else {
		b.WriteString("**Interview status**\n\n")
		b.WriteString(fmt.Sprintf("- Active stage: `%s`\n", state.ActiveStage))
		b.WriteString(fmt.Sprintf("- Questions answered: %d\n", len(state.Asked)))
		b.WriteString(fmt.Sprintf("- Questions queued: %d\n", len(state.Queue)))
		if state.Pending() {
			b.WriteString(fmt.Sprintf("- Awaiting answer for: `%s`\n", state.AwaitingAnswerFor))
		}
		if state.Completed {
			b.WriteString("- Phase complete\n")
		}
	}
	return b.String()
}

// RenderSpecialistMenu lists the available specialists as a choice menu.
func RenderSpecialistMenu(names []string, lang string) string {
	var b strings.Builder
	if lang == LangPT {
		b.WriteString("Com qual especialista você quer falar?\n\n")
	} else {
		b.WriteString("Which specialist would you like to talk to?\n\n")
	}
	for _, name := range names {
		b.WriteString(fmt.Sprintf("- `/%s`\n", name))
	}
	return b.String()
}

// RenderHelp returns the static help text.
func RenderHelp(specialists []string, lang string) string {
	var b strings.Builder
	if lang == LangPT {
		b.WriteString("**Comandos**\n\n")
		b.WriteString("- `/intake` — começar ou retomar a entrevista\n")
		b.WriteString("- `/swot`, `/diagnose`, `/plan`, `/canvas`, `/score` — relatórios\n")
		b.WriteString("- `/method <id> [--explain|--checklist]` — métodos de negócio\n")
		b.WriteString("- `/render` — gerar documentos\n")
		for _, name := range specialists {
			b.WriteString(fmt.Sprintf("- `/%s` — especialista\n", name))
		}
		b.WriteString("- `STATUS`, `VOLTAR`, `PULAR`, `RECOMEÇAR` — navegação\n")
		b.WriteString("- `EXPLAIN`, `REFRAME`, `SUGGEST` — ajuda com a pergunta atual\n")
	} else {
		b.WriteString("**Commands**\n\n")
		b.WriteString("- `/intake` — start or resume the interview\n")
		b.WriteString("- `/swot`, `/diagnose`, `/plan`, `/canvas`, `/score` — reports\n")
		b.WriteString("- `/method <id> [--explain|--checklist]` — business methods\n")
		b.WriteString("- `/render` — generate documents\n")
		for _, name := range specialists {
			b.WriteString(fmt.Sprintf("- `/%s` — specialist\n", name))
		}
		b.WriteString("- `STATUS`, `BACK`, `SKIP`, `RESTART` — navigation\n")
		b.WriteString("- `EXPLAIN`, `REFRAME`, `SUGGEST` — help with the current question\n")
	}
	return b.String()
}

// RenderIntentSuggestion phrases the free-text fallback suggestion.
func RenderIntentSuggestion(pattern IntentPattern, lang string) string {
	if lang == LangPT {
		return fmt.Sprintf("Acho que você quer `%s`. Envie esse comando para confirmar, ou `/help` para ver tudo.", pattern.Command)
	}
	return fmt.Sprintf("It sounds like you want `%s`. Send that command to confirm, or `/help` to see everything.", pattern.Command)
}

// RenderFallbackHelp is the default reply for unrecognized input.
func RenderFallbackHelp(lang string) string {
	if lang == LangPT {
		return "Não entendi. Envie `/help` para ver os comandos disponíveis."
	}
	return "I didn't catch that. Send `/help` to see the available commands."
}
