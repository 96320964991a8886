package wizard

import (
	"sort"
	"strings"
)

// IntentPattern maps an intent to the keywords that signal it. Keywords are
// matched as whole lowercase tokens of the user's free text.
type IntentPattern struct {
	Intent   string
	Command  string // Suggested command surface for the intent
	Keywords []string
}

// DefaultIntentPatterns is the keyword table used for the free-text fallback.
// Both languages share one table; keyword overlap scoring picks the winner.
func DefaultIntentPatterns() []IntentPattern {
	return []IntentPattern{
		{
			Intent:   "intake",
			Command:  "/intake",
			Keywords: []string{"start", "begin", "questions", "intake", "começar", "iniciar", "perguntas", "cadastro"},
		},
		{
			Intent:   "status",
			Command:  "STATUS",
			Keywords: []string{"status", "progress", "where", "progresso", "situação", "situacao", "onde"},
		},
		{
			Intent:   "swot",
			Command:  "/swot",
			Keywords: []string{"swot", "strengths", "weaknesses", "forças", "fraquezas", "análise", "analise"},
		},
		{
			Intent:   "diagnose",
			Command:  "/diagnose",
			Keywords: []string{"diagnosis", "diagnose", "health", "check", "diagnóstico", "diagnostico", "avaliação", "avaliacao"},
		},
		{
			Intent:   "plan",
			Command:  "/plan",
			Keywords: []string{"plan", "roadmap", "steps", "next", "plano", "passos", "próximos", "proximos"},
		},
		{
			Intent:   "compliance",
			Command:  "/compliance",
			Keywords: []string{"compliance", "tax", "taxes", "license", "regulation", "imposto", "impostos", "licença", "licenca", "regularização", "regularizacao"},
		},
		{
			Intent:   "finance",
			Command:  "/finance",
			Keywords: []string{"finance", "money", "cash", "revenue", "finanças", "financas", "dinheiro", "caixa", "receita"},
		},
		{
			Intent:   "legal",
			Command:  "/legal",
			Keywords: []string{"legal", "contract", "contracts", "lawyer", "contrato", "contratos", "advogado", "jurídico", "juridico"},
		},
		{
			Intent:   "restart",
			Command:  "RESTART",
			Keywords: []string{"restart", "reset", "over", "again", "recomeçar", "recomecar", "reiniciar", "zerar"},
		},
		{
			Intent:   "help",
			Command:  "/help",
			Keywords: []string{"help", "commands", "options", "ajuda", "comandos", "opções", "opcoes"},
		},
	}
}

// DetectIntent scores free text against the pattern table by keyword overlap
// and returns the best intent with its score. Score 0 means no keyword
// matched; callers fall back to a generic help message. Ties resolve to the
// earlier pattern for determinism.
func DetectIntent(text string, patterns []IntentPattern) (IntentPattern, int) {
	tokens := tokenize(text)
	if len(tokens) == 0 || len(patterns) == 0 {
		return IntentPattern{}, 0
	}

	best := IntentPattern{}
	bestScore := 0
	for _, pattern := range patterns {
		score := 0
		for _, keyword := range pattern.Keywords {
			if tokens[keyword] {
				score++
			}
		}
		if score > bestScore {
			best = pattern
			bestScore = score
		}
	}
	return best, bestScore
}

// tokenize lowercases the text and splits on non-letter/digit runes,
// returning the token set.
func tokenize(text string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	tokens := make(map[string]bool, len(fields))
	for _, f := range fields {
		tokens[f] = true
	}
	return tokens
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r >= 'à' && r <= 'ÿ': // Accented Latin letters used in Portuguese
		return true
	default:
		return false
	}
}

// SortedIntents returns the intent names of a pattern table, sorted.
// Used by the help renderer.
func SortedIntents(patterns []IntentPattern) []string {
	names := make([]string, 0, len(patterns))
	for _, p := range patterns {
		names = append(names, p.Intent)
	}
	sort.Strings(names)
	return names
}
