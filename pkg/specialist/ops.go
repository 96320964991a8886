package specialist

import (
	"strings"

	"structor/pkg/wizard"
)

// Ops covers day-to-day operations: delivery model, bottlenecks, tooling.
type Ops struct{}

// NewOps returns the operations specialist.
func NewOps() *Ops { return &Ops{} }

func (o *Ops) Name() string { return "ops" }

func (o *Ops) Prompt(lang string) string {
	if lang == wizard.LangPT {
		return "Sou o especialista em operações. Vamos mapear como o trabalho acontece no dia a dia."
	}
	return "I'm the operations specialist. Let's map how the work actually gets done day to day."
}

func (o *Ops) Questions(ctx wizard.Context) []wizard.Question {
	questions := []wizard.Question{
		{
			ID:   "ops.key_challenges",
			Type: wizard.TypeMultiSelect,
			Text: wizard.Text{
				wizard.LangEN: "What are the biggest operational challenges today? (comma-separated)",
				wizard.LangPT: "Quais são os maiores desafios operacionais hoje? (separados por vírgula)",
			},
			Options: []wizard.Option{
				{Value: "TIME", Label: wizard.Text{wizard.LangEN: "Not enough time", wizard.LangPT: "Falta de tempo"}},
				{Value: "PROCESS", Label: wizard.Text{wizard.LangEN: "No defined processes", wizard.LangPT: "Processos indefinidos"}},
				{Value: "PEOPLE", Label: wizard.Text{wizard.LangEN: "Hiring and training", wizard.LangPT: "Contratação e treinamento"}},
				{Value: "SUPPLIERS", Label: wizard.Text{wizard.LangEN: "Supplier reliability", wizard.LangPT: "Confiabilidade de fornecedores"}},
				{Value: "TOOLS", Label: wizard.Text{wizard.LangEN: "Missing tools/systems", wizard.LangPT: "Falta de ferramentas/sistemas"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "ops.key_challenges"},
			Tags:      []string{"ops"},
			Priority:  550,
			CreatedBy: o.Name(),
		},
		{
			ID:   "ops.delivery_model",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "How is the product or service delivered to customers?",
				wizard.LangPT: "Como o produto ou serviço chega aos clientes?",
			},
			Options: []wizard.Option{
				{Value: "IN_PERSON", Label: wizard.Text{wizard.LangEN: "In person", wizard.LangPT: "Presencial"}},
				{Value: "SHIPPING", Label: wizard.Text{wizard.LangEN: "Shipping/delivery", wizard.LangPT: "Envio/entrega"}},
				{Value: "ONLINE", Label: wizard.Text{wizard.LangEN: "Fully online", wizard.LangPT: "Totalmente online"}},
				{Value: "HYBRID", Label: wizard.Text{wizard.LangEN: "Hybrid", wizard.LangPT: "Híbrido"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "ops.delivery_model"},
			Tags:      []string{"ops"},
			Priority:  545,
			CreatedBy: o.Name(),
		},
	}

	if ctx.HasPack(PackFoodService) {
		questions = append(questions, wizard.Question{
			ID:   "ops.kitchen_capacity",
			Type: wizard.TypeText,
			Text: wizard.Text{
				wizard.LangEN: "How many orders can the kitchen handle on a peak day?",
				wizard.LangPT: "Quantos pedidos a cozinha dá conta em um dia de pico?",
			},
			Placeholder: wizard.Text{
				wizard.LangEN: "e.g. 120",
				wizard.LangPT: "ex.: 120",
			},
			SaveTo:    wizard.SaveTo{Answers: "ops.kitchen_capacity"},
			Tags:      []string{"ops", "food"},
			Priority:  540,
			CreatedBy: o.Name(),
		})
	}

	return questions
}

func (o *Ops) Analysis(ctx wizard.Context, lang string) string {
	var b strings.Builder
	pt := lang == wizard.LangPT

	if pt {
		b.WriteString("## Análise operacional\n\n")
	} else {
		b.WriteString("## Operations analysis\n\n")
	}

	challenges := ctx.AnswerStrings("ops.key_challenges")
	if len(challenges) > 0 {
		body := strings.Join(challenges, ", ")
		if pt {
			section(&b, "Desafios declarados", body)
		} else {
			section(&b, "Declared challenges", body)
		}
	}

	if model := ctx.AnswerString("ops.delivery_model"); model != "" {
		if pt {
			section(&b, "Modelo de entrega", model)
		} else {
			section(&b, "Delivery model", model)
		}
	}

	for _, c := range challenges {
		if c == "PROCESS" {
			if pt {
				section(&b, "Recomendação", "Documente os três processos mais repetidos antes de contratar; processo indefinido não escala com gente nova.")
			} else {
				section(&b, "Recommendation", "Document your three most repeated processes before hiring; undefined process does not scale with new people.")
			}
			break
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
