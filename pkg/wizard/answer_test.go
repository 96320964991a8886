package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enumQuestion() *Question {
	return &Question{
		ID:   "core.country_mode",
		Type: TypeEnum,
		Text: Text{LangEN: "Where do you operate?", LangPT: "Onde você opera?"},
		Options: []Option{
			{Value: "BR", Label: Text{LangEN: "Brazil", LangPT: "Brasil"}},
			{Value: "US", Label: Text{LangEN: "United States", LangPT: "Estados Unidos"}},
		},
		SaveTo: SaveTo{Answers: "country.mode"},
	}
}

func multiselectQuestion() *Question {
	return &Question{
		ID:   "finance.payment_methods",
		Type: TypeMultiSelect,
		Text: Text{LangEN: "Payment methods?", LangPT: "Meios de pagamento?"},
		Options: []Option{
			{Value: "PIX", Label: Text{LangEN: "Pix", LangPT: "Pix"}},
			{Value: "CREDIT_CARD", Label: Text{LangEN: "Credit card", LangPT: "Cartão de crédito"}},
			{Value: "BOLETO", Label: Text{LangEN: "Boleto", LangPT: "Boleto"}},
		},
		SaveTo: SaveTo{Answers: "finance.payment_methods"},
	}
}

func TestNormalizeTextAnswer(t *testing.T) {
	q := &Question{
		ID:     "core.main_goal",
		Type:   TypeText,
		Text:   Text{LangEN: "Goal?", LangPT: "Objetivo?"},
		SaveTo: SaveTo{Answers: "goal.main"},
	}

	value, answerErr := NormalizeAnswer(q, "  grow revenue  ")
	require.Nil(t, answerErr)
	assert.Equal(t, "grow revenue", value)

	_, answerErr = NormalizeAnswer(q, "   ")
	assert.NotNil(t, answerErr)
}

func TestNormalizeTextSkipIsOrdinaryText(t *testing.T) {
	q := &Question{
		ID:     "core.notes",
		Type:   TypeText,
		Text:   Text{LangEN: "Notes?", LangPT: "Notas?"},
		SaveTo: SaveTo{Answers: "notes"},
	}

	// Skipping is the navigation controller's job; by the time input reaches
	// normalization it is a plain answer.
	value, answerErr := NormalizeAnswer(q, "skip")
	require.Nil(t, answerErr)
	assert.Equal(t, "skip", value)
}

func TestNormalizeTextMinLength(t *testing.T) {
	q := &Question{
		ID:         "core.main_goal",
		Type:       TypeText,
		Text:       Text{LangEN: "Goal?", LangPT: "Objetivo?"},
		Validation: &Validation{Required: true, MinLength: 5},
		SaveTo:     SaveTo{Answers: "goal.main"},
	}

	_, answerErr := NormalizeAnswer(q, "ok")
	require.NotNil(t, answerErr)
	assert.Contains(t, answerErr.Message.Get(LangEN), "too short")

	value, answerErr := NormalizeAnswer(q, "grow faster")
	require.Nil(t, answerErr)
	assert.Equal(t, "grow faster", value)
}

func TestNormalizeEnumCanonicalAndSuggestions(t *testing.T) {
	q := enumQuestion()

	tests := []struct {
		input string
		want  string
	}{
		{"BR", "BR"},
		{"br", "BR"},
		{"Brazil", "BR"},
		{"brasil", "BR"},
		{"united states", "US"},
	}
	for _, tt := range tests {
		value, answerErr := NormalizeAnswer(q, tt.input)
		require.Nil(t, answerErr, "input %q", tt.input)
		assert.Equal(t, tt.want, value, "input %q", tt.input)
	}

	_, answerErr := NormalizeAnswer(q, "Mars")
	require.NotNil(t, answerErr)
	assert.Contains(t, answerErr.Message.Get(LangEN), "BR, US")
}

func TestNormalizeMultiSelect(t *testing.T) {
	q := multiselectQuestion()

	value, answerErr := NormalizeAnswer(q, "pix, credit_card")
	require.Nil(t, answerErr)
	assert.Equal(t, []string{"PIX", "CREDIT_CARD"}, value)

	// Spaced alias for an underscored value.
	value, answerErr = NormalizeAnswer(q, "credit card")
	require.Nil(t, answerErr)
	assert.Equal(t, []string{"CREDIT_CARD"}, value)
}

func TestNormalizeMultiSelectPreservesDuplicatesAndOrder(t *testing.T) {
	q := multiselectQuestion()

	value, answerErr := NormalizeAnswer(q, "boleto, pix, boleto")
	require.Nil(t, answerErr)
	assert.Equal(t, []string{"BOLETO", "PIX", "BOLETO"}, value)
}

func TestNormalizeMultiSelectRejectsUnknownToken(t *testing.T) {
	q := multiselectQuestion()

	_, answerErr := NormalizeAnswer(q, "pix, cash")
	assert.NotNil(t, answerErr)
}

func TestNormalizeUnknownTypeAcceptsRawText(t *testing.T) {
	q := &Question{
		ID:     "weird",
		Type:   QuestionType("slider"),
		Text:   Text{LangEN: "?", LangPT: "?"},
		SaveTo: SaveTo{Answers: "weird"},
	}

	value, answerErr := NormalizeAnswer(q, "7")
	require.Nil(t, answerErr)
	assert.Equal(t, "7", value)
}

func TestSaveAndDeleteAnswerMirrorsCompany(t *testing.T) {
	doc := NewDocument("wf", "1.0", true)
	q := enumQuestion()
	q.SaveTo.Company = "country"

	SaveAnswer(doc, q, "BR")

	value, ok := GetPath(doc.Answers, "country.mode")
	require.True(t, ok)
	assert.Equal(t, "BR", value)
	assert.Equal(t, "BR", doc.Company["country"])

	DeleteAnswer(doc, q)

	assert.False(t, TopLevelSet(doc.Answers, "country.mode"))
	_, ok = doc.Company["country"]
	assert.False(t, ok)
}
