package specialist

import (
	"strings"

	"structor/pkg/wizard"
)

// Compliance asks about tax regimes, licenses, and regulatory registrations.
// Its question set is the most context-sensitive of the specialists: country
// mode gates entire branches, and the health-import pack adds ANVISA
// registration on top.
type Compliance struct{}

// NewCompliance returns the compliance specialist.
func NewCompliance() *Compliance { return &Compliance{} }

func (c *Compliance) Name() string { return "compliance" }

func (c *Compliance) Prompt(lang string) string {
	if lang == wizard.LangPT {
		return "Sou o especialista em conformidade. Vamos revisar impostos, licenças e registros obrigatórios."
	}
	return "I'm the compliance specialist. Let's review taxes, licenses, and mandatory registrations."
}

// Questions contributes the country-specific compliance set. The 840-880
// priority band places these between the profile questions and the long
// tail, so a freshly unlocked compliance question is asked before deferred
// lower-priority core ones.
func (c *Compliance) Questions(ctx wizard.Context) []wizard.Question {
	var questions []wizard.Question

	switch ctx.CountryMode {
	case wizard.CountryBR:
		questions = append(questions,
			wizard.Question{
				ID:   "compliance.br_tax_regime",
				Type: wizard.TypeEnum,
				Text: wizard.Text{
					wizard.LangEN: "Which Brazilian tax regime does (or will) the business use?",
					wizard.LangPT: "Qual regime tributário brasileiro o negócio usa (ou vai usar)?",
				},
				Options: []wizard.Option{
					{Value: "SIMPLES", Label: wizard.Text{wizard.LangEN: "Simples Nacional", wizard.LangPT: "Simples Nacional"}},
					{Value: "PRESUMIDO", Label: wizard.Text{wizard.LangEN: "Lucro Presumido", wizard.LangPT: "Lucro Presumido"}},
					{Value: "REAL", Label: wizard.Text{wizard.LangEN: "Lucro Real", wizard.LangPT: "Lucro Real"}},
					{Value: "UNDECIDED", Label: wizard.Text{wizard.LangEN: "Not decided yet", wizard.LangPT: "Ainda não decidido"}},
				},
				Validation: &wizard.Validation{Required: true},
				SaveTo:     wizard.SaveTo{Answers: "compliance.br_tax_regime"},
				Tags:       []string{"compliance", "br"},
				Priority:   880,
				CreatedBy:  c.Name(),
			},
			wizard.Question{
				ID:   "compliance.br_licenses",
				Type: wizard.TypeMultiSelect,
				Text: wizard.Text{
					wizard.LangEN: "Which municipal or state licenses does the operation need? (comma-separated)",
					wizard.LangPT: "Quais licenças municipais ou estaduais a operação precisa? (separadas por vírgula)",
				},
				Options: []wizard.Option{
					{Value: "ALVARA", Label: wizard.Text{wizard.LangEN: "Operating permit (alvará)", wizard.LangPT: "Alvará de funcionamento"}},
					{Value: "VIGILANCIA", Label: wizard.Text{wizard.LangEN: "Health surveillance", wizard.LangPT: "Vigilância sanitária"}},
					{Value: "BOMBEIROS", Label: wizard.Text{wizard.LangEN: "Fire department", wizard.LangPT: "Corpo de bombeiros"}},
					{Value: "NONE", Label: wizard.Text{wizard.LangEN: "None / not sure", wizard.LangPT: "Nenhuma / não sei"}},
				},
				SaveTo:    wizard.SaveTo{Answers: "compliance.br_licenses"},
				Tags:      []string{"compliance", "br"},
				Priority:  860,
				CreatedBy: c.Name(),
			},
		)
	case wizard.CountryUS:
		questions = append(questions, wizard.Question{
			ID:   "compliance.us_entity_type",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "Which US entity type does (or will) the business use?",
				wizard.LangPT: "Qual tipo de entidade nos EUA o negócio usa (ou vai usar)?",
			},
			Options: []wizard.Option{
				{Value: "LLC", Label: wizard.Text{wizard.LangEN: "LLC", wizard.LangPT: "LLC"}},
				{Value: "C_CORP", Label: wizard.Text{wizard.LangEN: "C Corporation", wizard.LangPT: "C Corporation"}},
				{Value: "S_CORP", Label: wizard.Text{wizard.LangEN: "S Corporation", wizard.LangPT: "S Corporation"}},
				{Value: "SOLE_PROP", Label: wizard.Text{wizard.LangEN: "Sole proprietorship", wizard.LangPT: "Empresário individual"}},
			},
			Validation: &wizard.Validation{Required: true},
			SaveTo:     wizard.SaveTo{Answers: "compliance.us_entity_type"},
			Tags:       []string{"compliance", "us"},
			Priority:   880,
			CreatedBy:  c.Name(),
		})
	case wizard.CountryEU:
		questions = append(questions, wizard.Question{
			ID:   "compliance.eu_vat_registered",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "Is the business registered for VAT?",
				wizard.LangPT: "O negócio tem registro de VAT (IVA)?",
			},
			Options: []wizard.Option{
				{Value: "YES", Label: wizard.Text{wizard.LangEN: "Yes", wizard.LangPT: "Sim"}},
				{Value: "NO", Label: wizard.Text{wizard.LangEN: "No", wizard.LangPT: "Não"}},
				{Value: "IN_PROGRESS", Label: wizard.Text{wizard.LangEN: "In progress", wizard.LangPT: "Em andamento"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "compliance.eu_vat_registered"},
			Tags:      []string{"compliance", "eu"},
			Priority:  880,
			CreatedBy: c.Name(),
		})
	}

	if ctx.HasPack(PackHealthImport) {
		questions = append(questions, wizard.Question{
			ID:   "compliance.anvisa_status",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "What is the ANVISA registration status for the imported products?",
				wizard.LangPT: "Qual a situação do registro ANVISA dos produtos importados?",
			},
			Options: []wizard.Option{
				{Value: "REGISTERED", Label: wizard.Text{wizard.LangEN: "Registered", wizard.LangPT: "Registrado"}},
				{Value: "IN_PROGRESS", Label: wizard.Text{wizard.LangEN: "In progress", wizard.LangPT: "Em andamento"}},
				{Value: "NOT_STARTED", Label: wizard.Text{wizard.LangEN: "Not started", wizard.LangPT: "Não iniciado"}},
				{Value: "EXEMPT", Label: wizard.Text{wizard.LangEN: "Exempt", wizard.LangPT: "Isento"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "compliance.anvisa_status"},
			Tags:      []string{"compliance", "health"},
			Priority:  840,
			CreatedBy: c.Name(),
		})
	}

	return questions
}

func (c *Compliance) Analysis(ctx wizard.Context, lang string) string {
	var b strings.Builder
	pt := lang == wizard.LangPT

	if pt {
		b.WriteString("## Análise de conformidade\n\n")
	} else {
		b.WriteString("## Compliance analysis\n\n")
	}

	regime := ctx.AnswerString("compliance.br_tax_regime")
	if ctx.CountryMode == wizard.CountryBR {
		body := labelOrFallback(regime,
			"Tax regime not chosen yet. Compare Simples Nacional against Lucro Presumido before issuing the first invoice.",
			"Regime tributário ainda não escolhido. Compare o Simples Nacional com o Lucro Presumido antes de emitir a primeira nota.",
			lang)
		if pt {
			section(&b, "Regime tributário", body)
		} else {
			section(&b, "Tax regime", body)
		}
	}

	licenses := ctx.AnswerStrings("compliance.br_licenses")
	if len(licenses) > 0 {
		body := strings.Join(licenses, ", ")
		if pt {
			section(&b, "Licenças mapeadas", body)
		} else {
			section(&b, "Mapped licenses", body)
		}
	}

	if ctx.HasPack(PackHealthImport) {
		status := ctx.AnswerString("compliance.anvisa_status")
		body := labelOrFallback(status,
			"ANVISA status unknown. Imported health products cannot clear customs without it.",
			"Situação ANVISA desconhecida. Produtos de saúde importados não passam pela alfândega sem isso.",
			lang)
		section(&b, "ANVISA", body)
	}

	regulated := ctx.AnswerStrings("compliance.regulated_activities")
	if len(regulated) > 0 {
		body := strings.Join(regulated, ", ")
		if pt {
			section(&b, "Atividades reguladas declaradas", body)
		} else {
			section(&b, "Declared regulated activities", body)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
