package specialist

import (
	"strings"

	"structor/pkg/wizard"
)

// Legal covers ownership structure, contracts, and liability exposure.
type Legal struct{}

// NewLegal returns the legal specialist.
func NewLegal() *Legal { return &Legal{} }

func (l *Legal) Name() string { return "legal" }

func (l *Legal) Prompt(lang string) string {
	if lang == wizard.LangPT {
		return "Sou o especialista jurídico. Vamos revisar sociedade, contratos e responsabilidades."
	}
	return "I'm the legal specialist. Let's review ownership, contracts, and liabilities."
}

func (l *Legal) Questions(ctx wizard.Context) []wizard.Question {
	questions := []wizard.Question{
		{
			ID:   "legal.ownership",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "Who owns the business?",
				wizard.LangPT: "Quem é dono do negócio?",
			},
			Options: []wizard.Option{
				{Value: "SOLO", Label: wizard.Text{wizard.LangEN: "Just me", wizard.LangPT: "Só eu"}},
				{Value: "PARTNERS", Label: wizard.Text{wizard.LangEN: "Me and partners", wizard.LangPT: "Eu e sócios"}},
				{Value: "FAMILY", Label: wizard.Text{wizard.LangEN: "Family members", wizard.LangPT: "Membros da família"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "legal.ownership"},
			Tags:      []string{"legal"},
			Priority:  550,
			CreatedBy: l.Name(),
		},
		{
			ID:   "legal.written_contracts",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "Are agreements with clients and suppliers in writing?",
				wizard.LangPT: "Os acordos com clientes e fornecedores estão por escrito?",
			},
			Options: []wizard.Option{
				{Value: "ALL", Label: wizard.Text{wizard.LangEN: "All of them", wizard.LangPT: "Todos"}},
				{Value: "SOME", Label: wizard.Text{wizard.LangEN: "Some of them", wizard.LangPT: "Alguns"}},
				{Value: "NONE", Label: wizard.Text{wizard.LangEN: "None", wizard.LangPT: "Nenhum"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "legal.written_contracts"},
			Tags:      []string{"legal"},
			Priority:  540,
			CreatedBy: l.Name(),
		},
	}

	// A partnership without a written agreement is the classic dispute; only
	// ask once ownership is known to involve more than one person.
	if owner := ctx.AnswerString("legal.ownership"); owner == "PARTNERS" || owner == "FAMILY" {
		questions = append(questions, wizard.Question{
			ID:   "legal.partnership_agreement",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "Is there a written partnership agreement covering exits and deadlocks?",
				wizard.LangPT: "Existe um acordo de sócios por escrito cobrindo saídas e impasses?",
			},
			Options: []wizard.Option{
				{Value: "YES", Label: wizard.Text{wizard.LangEN: "Yes", wizard.LangPT: "Sim"}},
				{Value: "NO", Label: wizard.Text{wizard.LangEN: "No", wizard.LangPT: "Não"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "legal.partnership_agreement"},
			Tags:      []string{"legal"},
			Priority:  535,
			CreatedBy: l.Name(),
		})
	}

	if ctx.HasPack(PackDigitalServices) {
		questions = append(questions, wizard.Question{
			ID:   "legal.privacy_policy",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "Do you have a published privacy policy for user data?",
				wizard.LangPT: "Você tem uma política de privacidade publicada para dados de usuários?",
			},
			Options: []wizard.Option{
				{Value: "YES", Label: wizard.Text{wizard.LangEN: "Yes", wizard.LangPT: "Sim"}},
				{Value: "NO", Label: wizard.Text{wizard.LangEN: "No", wizard.LangPT: "Não"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "legal.privacy_policy"},
			Tags:      []string{"legal", "digital"},
			Priority:  525,
			CreatedBy: l.Name(),
		})
	}

	return questions
}

func (l *Legal) Analysis(ctx wizard.Context, lang string) string {
	var b strings.Builder
	pt := lang == wizard.LangPT

	if pt {
		b.WriteString("## Análise jurídica\n\n")
	} else {
		b.WriteString("## Legal analysis\n\n")
	}

	owner := ctx.AnswerString("legal.ownership")
	if pt {
		section(&b, "Estrutura societária", labelOrFallback(owner, "Not informed", "Não informado", lang))
	} else {
		section(&b, "Ownership", labelOrFallback(owner, "Not informed", "Não informado", lang))
	}

	if agreement := ctx.AnswerString("legal.partnership_agreement"); agreement == "NO" {
		if pt {
			section(&b, "Risco", "Sociedade sem acordo de sócios por escrito. Formalize antes de qualquer disputa surgir.")
		} else {
			section(&b, "Risk", "Partnership with no written agreement. Formalize it before any dispute appears.")
		}
	}

	if contracts := ctx.AnswerString("legal.written_contracts"); contracts == "NONE" || contracts == "SOME" {
		if pt {
			section(&b, "Contratos", "Padronize contratos por escrito para clientes e fornecedores recorrentes.")
		} else {
			section(&b, "Contracts", "Standardize written contracts for recurring clients and suppliers.")
		}
	}

	if privacy := ctx.AnswerString("legal.privacy_policy"); privacy == "NO" {
		if pt {
			section(&b, "Privacidade", "Serviços digitais sem política de privacidade publicada estão expostos à LGPD.")
		} else {
			section(&b, "Privacy", "Digital services without a published privacy policy are exposed to data-protection law.")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
