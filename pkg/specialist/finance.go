package specialist

import (
	"strings"

	"structor/pkg/wizard"
)

// Finance covers payment rails, cash runway, and bookkeeping discipline.
type Finance struct{}

// NewFinance returns the finance specialist.
func NewFinance() *Finance { return &Finance{} }

func (f *Finance) Name() string { return "finance" }

func (f *Finance) Prompt(lang string) string {
	if lang == wizard.LangPT {
		return "Sou o especialista financeiro. Vamos olhar para recebimentos, caixa e controles."
	}
	return "I'm the finance specialist. Let's look at how money comes in, your cash position, and controls."
}

func (f *Finance) Questions(ctx wizard.Context) []wizard.Question {
	paymentOptions := []wizard.Option{
		{Value: "CREDIT_CARD", Label: wizard.Text{wizard.LangEN: "Credit card", wizard.LangPT: "Cartão de crédito"}},
		{Value: "BANK_TRANSFER", Label: wizard.Text{wizard.LangEN: "Bank transfer", wizard.LangPT: "Transferência bancária"}},
		{Value: "CASH", Label: wizard.Text{wizard.LangEN: "Cash", wizard.LangPT: "Dinheiro"}},
	}
	if ctx.CountryMode == wizard.CountryBR || ctx.CountryMode == "" {
		// Brazilian rails lead the list for the default market.
		paymentOptions = append([]wizard.Option{
			{Value: "PIX", Label: wizard.Text{wizard.LangEN: "Pix", wizard.LangPT: "Pix"}},
			{Value: "BOLETO", Label: wizard.Text{wizard.LangEN: "Boleto", wizard.LangPT: "Boleto"}},
		}, paymentOptions...)
	}

	questions := []wizard.Question{
		{
			ID:   "finance.payment_methods",
			Type: wizard.TypeMultiSelect,
			Text: wizard.Text{
				wizard.LangEN: "Which payment methods do you accept (or plan to)? (comma-separated)",
				wizard.LangPT: "Quais meios de pagamento você aceita (ou pretende aceitar)? (separados por vírgula)",
			},
			Options:   paymentOptions,
			SaveTo:    wizard.SaveTo{Answers: "finance.payment_methods"},
			Tags:      []string{"finance"},
			Priority:  560,
			CreatedBy: f.Name(),
		},
		{
			ID:   "finance.runway_months",
			Type: wizard.TypeText,
			Text: wizard.Text{
				wizard.LangEN: "Roughly how many months can the business operate with the cash it has today?",
				wizard.LangPT: "Aproximadamente quantos meses o negócio consegue operar com o caixa atual?",
			},
			Placeholder: wizard.Text{
				wizard.LangEN: "e.g. 6",
				wizard.LangPT: "ex.: 6",
			},
			SaveTo:    wizard.SaveTo{Answers: "finance.runway_months"},
			Tags:      []string{"finance"},
			Priority:  540,
			CreatedBy: f.Name(),
		},
	}

	if ctx.LifecycleMode == wizard.LifecycleExisting {
		questions = append(questions, wizard.Question{
			ID:   "finance.separated_accounts",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "Are personal and business finances fully separated?",
				wizard.LangPT: "As finanças pessoais e do negócio estão totalmente separadas?",
			},
			Options: []wizard.Option{
				{Value: "YES", Label: wizard.Text{wizard.LangEN: "Yes", wizard.LangPT: "Sim"}},
				{Value: "PARTIALLY", Label: wizard.Text{wizard.LangEN: "Partially", wizard.LangPT: "Parcialmente"}},
				{Value: "NO", Label: wizard.Text{wizard.LangEN: "No", wizard.LangPT: "Não"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "finance.separated_accounts"},
			Tags:      []string{"finance"},
			Priority:  530,
			CreatedBy: f.Name(),
		})
	}

	return questions
}

func (f *Finance) Analysis(ctx wizard.Context, lang string) string {
	var b strings.Builder
	pt := lang == wizard.LangPT

	if pt {
		b.WriteString("## Análise financeira\n\n")
	} else {
		b.WriteString("## Finance analysis\n\n")
	}

	methods := ctx.AnswerStrings("finance.payment_methods")
	if len(methods) > 0 {
		body := strings.Join(methods, ", ")
		if pt {
			section(&b, "Meios de pagamento", body)
		} else {
			section(&b, "Payment methods", body)
		}
	}

	runway := ctx.AnswerString("finance.runway_months")
	body := labelOrFallback(runway,
		"Runway unknown. Establish a monthly cash report before committing to new fixed costs.",
		"Fôlego de caixa desconhecido. Monte um relatório mensal de caixa antes de assumir novos custos fixos.",
		lang)
	if pt {
		section(&b, "Fôlego de caixa (meses)", body)
	} else {
		section(&b, "Cash runway (months)", body)
	}

	stage := ctx.AnswerString("finance.revenue_stage")
	if stage != "" {
		if pt {
			section(&b, "Estágio de receita", stage)
		} else {
			section(&b, "Revenue stage", stage)
		}
	}

	if separated := ctx.AnswerString("finance.separated_accounts"); separated != "" && separated != "YES" {
		if pt {
			section(&b, "Alerta", "Separe as contas pessoais e do negócio; misturar caixa distorce qualquer análise.")
		} else {
			section(&b, "Warning", "Separate personal and business accounts; mixed cash flows distort every other analysis.")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
