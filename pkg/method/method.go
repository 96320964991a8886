// Package method holds the registry of business-method descriptors served
// by the /method command. Each descriptor carries a bilingual summary, a
// longer explanation, and an application checklist.
package method

import (
	"sort"
	"strings"

	"structor/pkg/wizard"
)

// Descriptor describes one business method.
type Descriptor struct {
	ID        string
	Name      wizard.Text
	Summary   wizard.Text
	Explain   wizard.Text
	Checklist []wizard.Text
}

// registry is keyed by descriptor id. IDs are lowercase and stable; they are
// the public handle used in /method <id>.
var registry = map[string]Descriptor{
	"swot": {
		ID:   "swot",
		Name: wizard.Text{wizard.LangEN: "SWOT analysis", wizard.LangPT: "Análise SWOT"},
		Summary: wizard.Text{
			wizard.LangEN: "Map strengths, weaknesses, opportunities, and threats in a 2x2 grid.",
			wizard.LangPT: "Mapeie forças, fraquezas, oportunidades e ameaças em uma grade 2x2.",
		},
		Explain: wizard.Text{
			wizard.LangEN: "SWOT separates what is internal (strengths, weaknesses) from what is external (opportunities, threats). Internal factors you can change directly; external ones you prepare for. Use it before any strategic decision to check that the plan leans on a real strength and covers a real threat.",
			wizard.LangPT: "A SWOT separa o que é interno (forças, fraquezas) do que é externo (oportunidades, ameaças). Fatores internos você muda diretamente; para os externos você se prepara. Use antes de qualquer decisão estratégica para conferir se o plano se apoia em uma força real e cobre uma ameaça real.",
		},
		Checklist: []wizard.Text{
			{wizard.LangEN: "List 3 strengths customers would confirm.", wizard.LangPT: "Liste 3 forças que os clientes confirmariam."},
			{wizard.LangEN: "List 3 weaknesses that cost you sales.", wizard.LangPT: "Liste 3 fraquezas que custam vendas."},
			{wizard.LangEN: "Name 2 market opportunities with a deadline.", wizard.LangPT: "Nomeie 2 oportunidades de mercado com prazo."},
			{wizard.LangEN: "Name 2 threats and one mitigation each.", wizard.LangPT: "Nomeie 2 ameaças e uma mitigação para cada."},
		},
	},
	"canvas": {
		ID:   "canvas",
		Name: wizard.Text{wizard.LangEN: "Business Model Canvas", wizard.LangPT: "Canvas do Modelo de Negócio"},
		Summary: wizard.Text{
			wizard.LangEN: "Describe the whole business model on one page with nine blocks.",
			wizard.LangPT: "Descreva o modelo de negócio inteiro em uma página com nove blocos.",
		},
		Explain: wizard.Text{
			wizard.LangEN: "The canvas forces every assumption about customers, value, channels, and costs onto one page. Its value is in the connections: a change in customer segment should visibly ripple into channels and revenue streams. Redo it whenever the offer changes.",
			wizard.LangPT: "O canvas força todas as hipóteses sobre clientes, valor, canais e custos em uma página. O valor está nas conexões: mudar o segmento de clientes deve refletir visivelmente em canais e receitas. Refaça sempre que a oferta mudar.",
		},
		Checklist: []wizard.Text{
			{wizard.LangEN: "Fill customer segments and value proposition first.", wizard.LangPT: "Preencha segmentos de clientes e proposta de valor primeiro."},
			{wizard.LangEN: "Trace every revenue stream to a segment.", wizard.LangPT: "Ligue cada fonte de receita a um segmento."},
			{wizard.LangEN: "Mark the three riskiest assumptions.", wizard.LangPT: "Marque as três hipóteses mais arriscadas."},
		},
	},
	"okr": {
		ID:   "okr",
		Name: wizard.Text{wizard.LangEN: "OKR (Objectives and Key Results)", wizard.LangPT: "OKR (Objetivos e Resultados-Chave)"},
		Summary: wizard.Text{
			wizard.LangEN: "Set one qualitative objective with 2-4 measurable key results per quarter.",
			wizard.LangPT: "Defina um objetivo qualitativo com 2 a 4 resultados-chave mensuráveis por trimestre.",
		},
		Explain: wizard.Text{
			wizard.LangEN: "OKRs connect ambition to measurement. The objective says where to go; key results say how you will know you arrived. Keep them few: one objective per quarter is enough for a small business, and every key result needs a number.",
			wizard.LangPT: "OKRs conectam ambição a medição. O objetivo diz aonde ir; os resultados-chave dizem como saber que chegou. Mantenha poucos: um objetivo por trimestre basta para um negócio pequeno, e todo resultado-chave precisa de um número.",
		},
		Checklist: []wizard.Text{
			{wizard.LangEN: "Write one inspiring objective for the quarter.", wizard.LangPT: "Escreva um objetivo inspirador para o trimestre."},
			{wizard.LangEN: "Attach 2-4 key results, each with a number.", wizard.LangPT: "Anexe de 2 a 4 resultados-chave, cada um com um número."},
			{wizard.LangEN: "Review progress every two weeks.", wizard.LangPT: "Revise o progresso a cada duas semanas."},
		},
	},
	"5whys": {
		ID:   "5whys",
		Name: wizard.Text{wizard.LangEN: "Five Whys", wizard.LangPT: "Cinco Porquês"},
		Summary: wizard.Text{
			wizard.LangEN: "Ask \"why\" five times to get from a symptom to a root cause.",
			wizard.LangPT: "Pergunte \"por quê\" cinco vezes para ir do sintoma à causa raiz.",
		},
		Explain: wizard.Text{
			wizard.LangEN: "Each answer becomes the next question's subject. Stop when the answer points at a process you control, not a person. Fixing the root cause prevents the class of problem; fixing the symptom buys a week.",
			wizard.LangPT: "Cada resposta vira o assunto da próxima pergunta. Pare quando a resposta apontar para um processo que você controla, não para uma pessoa. Corrigir a causa raiz previne a classe de problema; corrigir o sintoma compra uma semana.",
		},
		Checklist: []wizard.Text{
			{wizard.LangEN: "State the problem as an observable fact.", wizard.LangPT: "Declare o problema como um fato observável."},
			{wizard.LangEN: "Ask why, write the answer, repeat five times.", wizard.LangPT: "Pergunte por quê, anote a resposta, repita cinco vezes."},
			{wizard.LangEN: "Define one countermeasure for the final cause.", wizard.LangPT: "Defina uma contramedida para a causa final."},
		},
	},
	"smart": {
		ID:   "smart",
		Name: wizard.Text{wizard.LangEN: "SMART goals", wizard.LangPT: "Metas SMART"},
		Summary: wizard.Text{
			wizard.LangEN: "Make goals Specific, Measurable, Achievable, Relevant, and Time-bound.",
			wizard.LangPT: "Torne metas Específicas, Mensuráveis, Atingíveis, Relevantes e Temporais.",
		},
		Explain: wizard.Text{
			wizard.LangEN: "A SMART goal removes ambiguity about success. \"Grow sales\" becomes \"close 10 new recurring clients by June 30\". The rewrite exposes missing decisions: which clients, which offer, by when, and who owns it.",
			wizard.LangPT: "Uma meta SMART remove ambiguidade sobre sucesso. \"Vender mais\" vira \"fechar 10 novos clientes recorrentes até 30 de junho\". A reescrita expõe decisões que faltam: quais clientes, qual oferta, até quando e quem é o responsável.",
		},
		Checklist: []wizard.Text{
			{wizard.LangEN: "Rewrite the goal with a number and a date.", wizard.LangPT: "Reescreva a meta com um número e uma data."},
			{wizard.LangEN: "Name one owner for the goal.", wizard.LangPT: "Nomeie um responsável pela meta."},
			{wizard.LangEN: "Define the weekly leading indicator.", wizard.LangPT: "Defina o indicador semanal antecedente."},
		},
	},
}

// IDs returns the registered method ids in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup renders a method descriptor by id in the requested mode: ""
// (summary), "explain", or "checklist". It satisfies wizard.MethodFunc.
func Lookup(id, mode, lang string) (string, bool) {
	d, ok := registry[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteString("## " + d.Name.Get(lang) + "\n\n")

	switch mode {
	case "explain":
		b.WriteString(d.Explain.Get(lang))
	case "checklist":
		for _, item := range d.Checklist {
			b.WriteString("- [ ] " + item.Get(lang) + "\n")
		}
	default:
		b.WriteString(d.Summary.Get(lang))
	}

	return strings.TrimRight(b.String(), "\n"), true
}
