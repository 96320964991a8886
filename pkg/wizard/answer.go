package wizard

import (
	"fmt"
	"strings"
)

// AnswerError describes a rejected answer with a localized message. Invalid
// input never advances the queue; the same question is re-rendered with the
// message attached.
type AnswerError struct {
	Message Text
}

func (e *AnswerError) Error() string {
	return e.Message.Get(LangEN)
}

func answerErrorf(en, pt string) *AnswerError {
	return &AnswerError{Message: Text{LangEN: en, LangPT: pt}}
}

// SuggestedValues computes the auxiliary suggestion set for an option
// question: heuristic aliases accepted alongside the canonical values.
// Localized option labels map back to their canonical value, so "Brasil" is
// as valid as "BR".
func SuggestedValues(q *Question) map[string]string {
	suggestions := make(map[string]string)
	if q == nil || !q.HasOptions() {
		return suggestions
	}
	for i := range q.Options {
		opt := &q.Options[i]
		for _, label := range opt.Label {
			if label != "" {
				suggestions[strings.ToLower(strings.TrimSpace(label))] = opt.Value
			}
		}
		// Underscored values also match with spaces ("credit card" -> CREDIT_CARD).
		spaced := strings.ToLower(strings.ReplaceAll(opt.Value, "_", " "))
		suggestions[spaced] = opt.Value
	}
	return suggestions
}

// NormalizeAnswer validates raw input against the question and returns the
// normalized value to persist. Behavior per type:
//
//   - text: any non-empty string (after trimming) is valid. The literal
//     string SKIP never reaches normalization: the navigation controller
//     intercepts the skip keywords before answer handling, so here it is
//     ordinary text.
//   - enum: trimmed case-insensitive match against an option's canonical
//     value or the suggestion set; normalizes to the canonical-cased value.
//   - multiselect: input split on commas, each token validated as enum;
//     the result preserves input order and does NOT deduplicate repeats.
func NormalizeAnswer(q *Question, input string) (any, *AnswerError) {
	if q == nil {
		return nil, answerErrorf("No question is pending.", "Nenhuma pergunta pendente.")
	}

	trimmed := strings.TrimSpace(input)

	switch q.Type {
	case TypeText:
		return normalizeText(q, trimmed)
	case TypeEnum:
		value, ok := matchOption(q, trimmed)
		if !ok {
			return nil, optionError(q)
		}
		return value, nil
	case TypeMultiSelect:
		return normalizeMultiSelect(q, trimmed)
	default:
		// Unknown type: defensively accept the raw text rather than wedging
		// the conversation on a malformed definition.
		return trimmed, nil
	}
}

func normalizeText(q *Question, trimmed string) (any, *AnswerError) {
	if trimmed == "" {
		return nil, answerErrorf(
			"Please enter a non-empty answer.",
			"Por favor, digite uma resposta não vazia.",
		)
	}
	if q.Validation != nil {
		if q.Validation.MinLength > 0 && len(trimmed) < q.Validation.MinLength {
			return nil, answerErrorf(
				fmt.Sprintf("Answer is too short (minimum %d characters).", q.Validation.MinLength),
				fmt.Sprintf("Resposta muito curta (mínimo de %d caracteres).", q.Validation.MinLength),
			)
		}
		if q.Validation.MaxLength > 0 && len(trimmed) > q.Validation.MaxLength {
			return nil, answerErrorf(
				fmt.Sprintf("Answer is too long (maximum %d characters).", q.Validation.MaxLength),
				fmt.Sprintf("Resposta muito longa (máximo de %d caracteres).", q.Validation.MaxLength),
			)
		}
	}
	return trimmed, nil
}

func normalizeMultiSelect(q *Question, trimmed string) (any, *AnswerError) {
	if trimmed == "" {
		return nil, optionError(q)
	}
	tokens := strings.Split(trimmed, ",")
	values := make([]string, 0, len(tokens))
	for _, token := range tokens {
		value, ok := matchOption(q, strings.TrimSpace(token))
		if !ok {
			return nil, optionError(q)
		}
		// Duplicates are preserved in input order.
		values = append(values, value)
	}
	return values, nil
}

// matchOption resolves one token to a canonical option value, checking the
// canonical values first and the suggestion set second.
func matchOption(q *Question, token string) (string, bool) {
	if token == "" {
		return "", false
	}
	for i := range q.Options {
		if strings.EqualFold(q.Options[i].Value, token) {
			return q.Options[i].Value, true
		}
	}
	if value, ok := SuggestedValues(q)[strings.ToLower(token)]; ok {
		return value, true
	}
	return "", false
}

func optionError(q *Question) *AnswerError {
	values := strings.Join(q.OptionValues(), ", ")
	return answerErrorf(
		fmt.Sprintf("Please answer with one of: %s.", values),
		fmt.Sprintf("Por favor, responda com uma das opções: %s.", values),
	)
}

// SaveAnswer persists a normalized value at the question's destinations:
// always the answers path, and the company profile path when configured.
func SaveAnswer(doc *Document, q *Question, value any) {
	if doc == nil || q == nil {
		return
	}
	SetPath(doc.Answers, q.SaveTo.Answers, value)
	if q.SaveTo.Company != "" {
		SetPath(doc.Company, q.SaveTo.Company, value)
	}
}

// DeleteAnswer removes a previously saved answer from both destinations.
// Used by back navigation's one-step destructive undo.
func DeleteAnswer(doc *Document, q *Question) {
	if doc == nil || q == nil {
		return
	}
	DeletePath(doc.Answers, q.SaveTo.Answers)
	if q.SaveTo.Company != "" {
		DeletePath(doc.Company, q.SaveTo.Company)
	}
}
