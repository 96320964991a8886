package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"structor/pkg/wizard"
)

func contextWith(answers map[string]any) wizard.Context {
	doc := wizard.NewDocument("wf", "1.0", true)
	for path, value := range answers {
		wizard.SetPath(doc.Answers, path, value)
	}
	return wizard.BuildContext(doc, "en", "GENERAL")
}

func TestRegistryCoversCommandSurface(t *testing.T) {
	registry := Registry()
	for _, name := range []string{"swot", "diagnose", "plan", "canvas", "score"} {
		assert.Contains(t, registry, name)
	}
}

func TestAllReportsRenderInBothLanguages(t *testing.T) {
	contexts := []wizard.Context{
		contextWith(nil),
		contextWith(map[string]any{
			wizard.PathCountry:            wizard.CountryBR,
			wizard.PathLifecycle:          wizard.LifecycleExisting,
			"compliance.br_tax_regime":    "SIMPLES",
			"finance.runway_months":       "6",
			"finance.separated_accounts":  "NO",
			"legal.ownership":             "PARTNERS",
			"legal.partnership_agreement": "NO",
			"ops.key_challenges":          []string{"PROCESS", "TIME"},
			"goals.main":                  "double revenue",
		}),
	}

	for name, render := range Registry() {
		for _, ctx := range contexts {
			for _, lang := range wizard.SupportedLanguages {
				out := render(ctx, lang)
				require.NotEmpty(t, out, "report %s lang %s", name, lang)
				assert.True(t, strings.HasPrefix(out, "## "), "report %s lang %s", name, lang)
			}
		}
	}
}

func TestSWOTDetectsGaps(t *testing.T) {
	ctx := contextWith(map[string]any{
		wizard.PathCountry:            wizard.CountryBR,
		"legal.partnership_agreement": "NO",
	})

	out := SWOT(ctx, wizard.LangEN)

	assert.Contains(t, out, "Partnership without a written agreement")
	assert.Contains(t, out, "Undefined tax regime")
}

func TestSWOTEmptyContextStillRendersAllSections(t *testing.T) {
	out := SWOT(contextWith(nil), wizard.LangPT)

	for _, section := range []string{"Forças", "Fraquezas", "Oportunidades", "Ameaças"} {
		assert.Contains(t, out, section)
	}
}

func TestDiagnoseIncludesStatedGoal(t *testing.T) {
	ctx := contextWith(map[string]any{"goals.main": "open a second store"})

	out := Diagnose(ctx, wizard.LangEN)

	assert.Contains(t, out, "open a second store")
}

func TestPlanOrdersSteps(t *testing.T) {
	ctx := contextWith(map[string]any{
		wizard.PathCountry:            wizard.CountryBR,
		"legal.partnership_agreement": "NO",
	})

	out := Plan(ctx, wizard.LangEN)

	assert.Contains(t, out, "1. Decide the tax regime")
	assert.Contains(t, out, "2. Draft and sign a partnership agreement")
}

func TestProfileFlattensAnswers(t *testing.T) {
	ctx := contextWith(map[string]any{
		wizard.PathCountry:        wizard.CountryBR,
		"goals.main":              "open a second store",
		"finance.payment_methods": []string{"PIX", "CARD"},
	})

	out := Profile(ctx, wizard.LangEN)

	assert.True(t, strings.HasPrefix(out, "# Structuring profile"))
	assert.Contains(t, out, "- Country: BR")
	assert.Contains(t, out, "- goals.main: open a second store")
	assert.Contains(t, out, "- finance.payment_methods: PIX, CARD")
	// The diagnosis and plan ride along.
	assert.Contains(t, out, "## Business diagnosis")
	assert.Contains(t, out, "## Action plan")
}

func TestProfileEmptyInvitesIntake(t *testing.T) {
	out := Profile(contextWith(nil), wizard.LangPT)

	assert.Contains(t, out, "Nenhuma resposta ainda")
}

func TestScorecardBounds(t *testing.T) {
	empty := Scorecard(contextWith(nil), wizard.LangEN)
	assert.Contains(t, empty, "/100")

	full := Scorecard(contextWith(map[string]any{
		wizard.PathCountry:            wizard.CountryBR,
		"compliance.br_tax_regime":    "SIMPLES",
		"accounting.filings_current":  "YES",
		"legal.ownership":             "SOLO",
		"finance.runway_months":       "8",
		"finance.separated_accounts":  "YES",
		"finance.payment_methods":     []string{"PIX"},
		"ops.delivery_model":          "ONLINE",
		"ops.key_challenges":          []string{"TIME"},
		"logistics.inventory_control": "NONE",
	}), wizard.LangEN)

	assert.Contains(t, full, "Total: 100/100")
}
