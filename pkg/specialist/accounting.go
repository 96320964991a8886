package specialist

import (
	"strings"

	"structor/pkg/wizard"
)

// Accounting covers bookkeeping, fiscal documents, and accountant support.
type Accounting struct{}

// NewAccounting returns the accounting specialist.
func NewAccounting() *Accounting { return &Accounting{} }

func (a *Accounting) Name() string { return "accounting" }

func (a *Accounting) Prompt(lang string) string {
	if lang == wizard.LangPT {
		return "Sou o especialista contábil. Vamos verificar escrituração, notas e obrigações."
	}
	return "I'm the accounting specialist. Let's check bookkeeping, invoicing, and filings."
}

func (a *Accounting) Questions(ctx wizard.Context) []wizard.Question {
	questions := []wizard.Question{
		{
			ID:   "accounting.has_accountant",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "Does the business have an accountant or accounting service?",
				wizard.LangPT: "O negócio tem contador ou serviço de contabilidade?",
			},
			Options: []wizard.Option{
				{Value: "YES", Label: wizard.Text{wizard.LangEN: "Yes", wizard.LangPT: "Sim"}},
				{Value: "NO", Label: wizard.Text{wizard.LangEN: "No", wizard.LangPT: "Não"}},
				{Value: "DIY", Label: wizard.Text{wizard.LangEN: "I do it myself", wizard.LangPT: "Eu mesmo faço"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "accounting.has_accountant"},
			Tags:      []string{"accounting"},
			Priority:  520,
			CreatedBy: a.Name(),
		},
	}

	if ctx.LifecycleMode == wizard.LifecycleExisting {
		questions = append(questions, wizard.Question{
			ID:   "accounting.filings_current",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "Are tax filings and fiscal obligations up to date?",
				wizard.LangPT: "As declarações e obrigações fiscais estão em dia?",
			},
			Options: []wizard.Option{
				{Value: "YES", Label: wizard.Text{wizard.LangEN: "Yes", wizard.LangPT: "Sim"}},
				{Value: "BEHIND", Label: wizard.Text{wizard.LangEN: "Behind", wizard.LangPT: "Atrasadas"}},
				{Value: "UNSURE", Label: wizard.Text{wizard.LangEN: "Not sure", wizard.LangPT: "Não sei"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "accounting.filings_current"},
			Tags:      []string{"accounting"},
			Priority:  515,
			CreatedBy: a.Name(),
		})
	}

	return questions
}

func (a *Accounting) Analysis(ctx wizard.Context, lang string) string {
	var b strings.Builder
	pt := lang == wizard.LangPT

	if pt {
		b.WriteString("## Análise contábil\n\n")
	} else {
		b.WriteString("## Accounting analysis\n\n")
	}

	accountant := ctx.AnswerString("accounting.has_accountant")
	if pt {
		section(&b, "Suporte contábil", labelOrFallback(accountant, "Not informed", "Não informado", lang))
	} else {
		section(&b, "Accounting support", labelOrFallback(accountant, "Not informed", "Não informado", lang))
	}

	if accountant == "NO" || accountant == "DIY" {
		if pt {
			section(&b, "Recomendação", "Contrate suporte contábil antes da próxima obrigação fiscal; o custo de regularizar atrasos supera o da mensalidade.")
		} else {
			section(&b, "Recommendation", "Hire accounting support before the next filing deadline; fixing late filings costs more than the retainer.")
		}
	}

	if filings := ctx.AnswerString("accounting.filings_current"); filings == "BEHIND" || filings == "UNSURE" {
		if pt {
			section(&b, "Alerta", "Obrigações fiscais atrasadas ou desconhecidas bloqueiam crédito e licitações. Levante a situação já.")
		} else {
			section(&b, "Warning", "Late or unknown fiscal filings block credit and public contracts. Get a status report now.")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
