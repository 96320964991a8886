package specialist

import (
	"strings"

	"structor/pkg/wizard"
)

// Logistics covers shipping, inventory, and import flows. Most of its set
// only applies to businesses that move physical goods, which is inferred
// from the delivery model, regulated activities, and active packs.
type Logistics struct{}

// NewLogistics returns the logistics specialist.
func NewLogistics() *Logistics { return &Logistics{} }

func (l *Logistics) Name() string { return "logistics" }

func (l *Logistics) Prompt(lang string) string {
	if lang == wizard.LangPT {
		return "Sou o especialista em logística. Vamos revisar estoque, envio e importação."
	}
	return "I'm the logistics specialist. Let's review inventory, shipping, and imports."
}

// movesGoods reports whether the business appears to handle physical goods.
func movesGoods(ctx wizard.Context) bool {
	if ctx.HasPack(PackHealthImport) || ctx.HasPack(PackFoodService) {
		return true
	}
	switch ctx.AnswerString("ops.delivery_model") {
	case "SHIPPING", "HYBRID", "IN_PERSON":
		return true
	}
	for _, activity := range ctx.AnswerStrings("compliance.regulated_activities") {
		if activity == "IMPORT_EXPORT" {
			return true
		}
	}
	return ctx.Industry == "RETAIL" || ctx.Industry == "FOOD"
}

func (l *Logistics) Questions(ctx wizard.Context) []wizard.Question {
	if !movesGoods(ctx) {
		return nil
	}

	questions := []wizard.Question{
		{
			ID:   "logistics.inventory_control",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "How is inventory tracked today?",
				wizard.LangPT: "Como o estoque é controlado hoje?",
			},
			Options: []wizard.Option{
				{Value: "SYSTEM", Label: wizard.Text{wizard.LangEN: "Dedicated system", wizard.LangPT: "Sistema dedicado"}},
				{Value: "SPREADSHEET", Label: wizard.Text{wizard.LangEN: "Spreadsheet", wizard.LangPT: "Planilha"}},
				{Value: "MANUAL", Label: wizard.Text{wizard.LangEN: "By eye / manual", wizard.LangPT: "No olho / manual"}},
				{Value: "NONE", Label: wizard.Text{wizard.LangEN: "No inventory", wizard.LangPT: "Sem estoque"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "logistics.inventory_control"},
			Tags:      []string{"logistics"},
			Priority:  510,
			CreatedBy: l.Name(),
		},
	}

	if ctx.HasPack(PackHealthImport) {
		questions = append(questions, wizard.Question{
			ID:   "logistics.import_channel",
			Type: wizard.TypeEnum,
			Text: wizard.Text{
				wizard.LangEN: "How are imports brought into the country?",
				wizard.LangPT: "Como as importações entram no país?",
			},
			Options: []wizard.Option{
				{Value: "DIRECT", Label: wizard.Text{wizard.LangEN: "Direct import", wizard.LangPT: "Importação direta"}},
				{Value: "TRADING", Label: wizard.Text{wizard.LangEN: "Trading company", wizard.LangPT: "Trading company"}},
				{Value: "COURIER", Label: wizard.Text{wizard.LangEN: "Courier/simplified", wizard.LangPT: "Courier/simplificada"}},
			},
			SaveTo:    wizard.SaveTo{Answers: "logistics.import_channel"},
			Tags:      []string{"logistics", "health"},
			Priority:  505,
			CreatedBy: l.Name(),
		})
	}

	return questions
}

func (l *Logistics) Analysis(ctx wizard.Context, lang string) string {
	var b strings.Builder
	pt := lang == wizard.LangPT

	if pt {
		b.WriteString("## Análise logística\n\n")
	} else {
		b.WriteString("## Logistics analysis\n\n")
	}

	if !movesGoods(ctx) {
		if pt {
			return b.String() + "O negócio não parece movimentar bens físicos; logística não é um foco agora."
		}
		return b.String() + "The business does not appear to move physical goods; logistics is not a focus right now."
	}

	control := ctx.AnswerString("logistics.inventory_control")
	if pt {
		section(&b, "Controle de estoque", labelOrFallback(control, "Not informed", "Não informado", lang))
	} else {
		section(&b, "Inventory control", labelOrFallback(control, "Not informed", "Não informado", lang))
	}

	if control == "MANUAL" || control == "SPREADSHEET" {
		if pt {
			section(&b, "Recomendação", "Migre o controle de estoque para um sistema com baixa automática antes de ampliar o catálogo.")
		} else {
			section(&b, "Recommendation", "Move inventory to a system with automatic write-off before growing the catalog.")
		}
	}

	if channel := ctx.AnswerString("logistics.import_channel"); channel != "" {
		if pt {
			section(&b, "Canal de importação", channel)
		} else {
			section(&b, "Import channel", channel)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
