// Package report renders templated analysis documents from the intake
// context: SWOT, diagnosis, action plan, business model canvas, and a
// readiness scorecard. Reports are deterministic functions of the answers
// and company documents; no model call is involved.
package report

import (
	"fmt"
	"strings"

	"structor/pkg/wizard"
)

// Registry returns the report renderers keyed by their slash-command name.
func Registry() map[string]wizard.ReportFunc {
	return map[string]wizard.ReportFunc{
		"swot":     SWOT,
		"diagnose": Diagnose,
		"plan":     Plan,
		"canvas":   Canvas,
		"score":    Scorecard,
	}
}

type bullet struct {
	en string
	pt string
}

func writeBullets(b *strings.Builder, lang string, bullets []bullet) {
	for _, item := range bullets {
		if lang == wizard.LangPT {
			b.WriteString("- " + item.pt + "\n")
		} else {
			b.WriteString("- " + item.en + "\n")
		}
	}
	b.WriteString("\n")
}

func heading(b *strings.Builder, lang, en, pt string) {
	if lang == wizard.LangPT {
		b.WriteString("### " + pt + "\n")
	} else {
		b.WriteString("### " + en + "\n")
	}
}

func title(b *strings.Builder, lang, en, pt string) {
	if lang == wizard.LangPT {
		b.WriteString("## " + pt + "\n\n")
	} else {
		b.WriteString("## " + en + "\n\n")
	}
}

// SWOT derives strengths, weaknesses, opportunities, and threats from the
// collected answers. Sections with nothing to say still render, with a
// placeholder inviting more intake.
func SWOT(ctx wizard.Context, lang string) string {
	var b strings.Builder
	title(&b, lang, "SWOT analysis", "Análise SWOT")

	var strengths, weaknesses, opportunities, threats []bullet

	if ctx.AnswerString("accounting.has_accountant") == "YES" {
		strengths = append(strengths, bullet{
			en: "Professional accounting support is in place.",
			pt: "Suporte contábil profissional já existe.",
		})
	}
	if ctx.AnswerString("legal.written_contracts") == "ALL" {
		strengths = append(strengths, bullet{
			en: "All agreements are formalized in writing.",
			pt: "Todos os acordos estão formalizados por escrito.",
		})
	}
	if stage := ctx.AnswerString("finance.revenue_stage"); stage == "GROWING" || stage == "STABLE" {
		strengths = append(strengths, bullet{
			en: "Revenue is established and " + strings.ToLower(stage) + ".",
			pt: "A receita está estabelecida.",
		})
	}

	if ctx.AnswerString("legal.partnership_agreement") == "NO" {
		weaknesses = append(weaknesses, bullet{
			en: "Partnership without a written agreement.",
			pt: "Sociedade sem acordo de sócios por escrito.",
		})
	}
	if sep := ctx.AnswerString("finance.separated_accounts"); sep == "NO" || sep == "PARTIALLY" {
		weaknesses = append(weaknesses, bullet{
			en: "Personal and business finances are mixed.",
			pt: "Finanças pessoais e do negócio estão misturadas.",
		})
	}
	for _, challenge := range ctx.AnswerStrings("ops.key_challenges") {
		if challenge == "PROCESS" {
			weaknesses = append(weaknesses, bullet{
				en: "Core processes are undocumented.",
				pt: "Processos principais não documentados.",
			})
		}
	}

	if ctx.LifecycleMode == wizard.LifecycleNew {
		opportunities = append(opportunities, bullet{
			en: "Starting fresh: the structure can be designed right from day one.",
			pt: "Começando do zero: a estrutura pode nascer certa desde o primeiro dia.",
		})
	}
	if ctx.HasPack("DIGITAL_SERVICES") {
		opportunities = append(opportunities, bullet{
			en: "Digital delivery scales without proportional headcount.",
			pt: "Entrega digital escala sem crescer o time na mesma proporção.",
		})
	}

	if ctx.AnswerString("compliance.br_tax_regime") == "" && ctx.CountryMode == wizard.CountryBR {
		threats = append(threats, bullet{
			en: "Undefined tax regime risks over-taxation or penalties.",
			pt: "Regime tributário indefinido traz risco de pagar imposto a mais ou multas.",
		})
	}
	if filings := ctx.AnswerString("accounting.filings_current"); filings == "BEHIND" || filings == "UNSURE" {
		threats = append(threats, bullet{
			en: "Fiscal obligations may be overdue.",
			pt: "Obrigações fiscais podem estar atrasadas.",
		})
	}

	sections := []struct {
		en, pt  string
		bullets []bullet
	}{
		{"Strengths", "Forças", strengths},
		{"Weaknesses", "Fraquezas", weaknesses},
		{"Opportunities", "Oportunidades", opportunities},
		{"Threats", "Ameaças", threats},
	}
	for _, s := range sections {
		heading(&b, lang, s.en, s.pt)
		if len(s.bullets) == 0 {
			writeBullets(&b, lang, []bullet{{
				en: "Not enough data yet; continue the intake with /intake.",
				pt: "Dados insuficientes; continue a entrevista com /intake.",
			}})
			continue
		}
		writeBullets(&b, lang, s.bullets)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Diagnose renders a short health check across structure, finance, and
// compliance.
func Diagnose(ctx wizard.Context, lang string) string {
	var b strings.Builder
	title(&b, lang, "Business diagnosis", "Diagnóstico do negócio")

	var items []bullet

	if ctx.CountryMode == "" {
		items = append(items, bullet{
			en: "Country of operation not defined; most structuring advice depends on it.",
			pt: "País de operação não definido; a maior parte da estruturação depende disso.",
		})
	}
	if ctx.CountryMode == wizard.CountryBR && ctx.AnswerString("compliance.br_tax_regime") == "" {
		items = append(items, bullet{
			en: "Choose a tax regime: compare Simples Nacional and Lucro Presumido with your accountant.",
			pt: "Escolha o regime tributário: compare Simples Nacional e Lucro Presumido com seu contador.",
		})
	}
	if ctx.AnswerString("finance.runway_months") == "" {
		items = append(items, bullet{
			en: "Cash runway is unknown; build a simple monthly cash view.",
			pt: "Fôlego de caixa desconhecido; monte uma visão mensal simples de caixa.",
		})
	}
	if ctx.AnswerString("accounting.has_accountant") == "NO" {
		items = append(items, bullet{
			en: "No accounting support; filings and payroll risks are unmanaged.",
			pt: "Sem suporte contábil; riscos de obrigações e folha estão sem gestão.",
		})
	}
	if goal := ctx.AnswerString("goals.main"); goal != "" {
		items = append(items, bullet{
			en: "Stated 12-month goal: " + goal,
			pt: "Objetivo declarado para 12 meses: " + goal,
		})
	}

	if len(items) == 0 {
		items = append(items, bullet{
			en: "No critical gaps detected from the answers so far.",
			pt: "Nenhuma lacuna crítica detectada nas respostas até aqui.",
		})
	}
	writeBullets(&b, lang, items)

	return strings.TrimRight(b.String(), "\n")
}

// Plan renders a prioritized next-steps list from the detected gaps.
func Plan(ctx wizard.Context, lang string) string {
	var b strings.Builder
	title(&b, lang, "Action plan", "Plano de ação")

	var steps []bullet

	if ctx.CountryMode == wizard.CountryBR && ctx.AnswerString("compliance.br_tax_regime") == "" {
		steps = append(steps, bullet{
			en: "Decide the tax regime before the next fiscal quarter.",
			pt: "Decida o regime tributário antes do próximo trimestre fiscal.",
		})
	}
	if ctx.AnswerString("legal.partnership_agreement") == "NO" {
		steps = append(steps, bullet{
			en: "Draft and sign a partnership agreement.",
			pt: "Redija e assine um acordo de sócios.",
		})
	}
	if sep := ctx.AnswerString("finance.separated_accounts"); sep == "NO" || sep == "PARTIALLY" {
		steps = append(steps, bullet{
			en: "Open a dedicated business account and stop mixed spending.",
			pt: "Abra uma conta exclusiva do negócio e encerre gastos misturados.",
		})
	}
	if ctx.AnswerString("logistics.inventory_control") == "MANUAL" {
		steps = append(steps, bullet{
			en: "Adopt an inventory system with automatic write-off.",
			pt: "Adote um sistema de estoque com baixa automática.",
		})
	}
	if hiring := ctx.AnswerString("team.hiring_plan"); hiring != "" {
		steps = append(steps, bullet{
			en: "Prepare role descriptions for the planned hires: " + hiring,
			pt: "Prepare descrições de cargo para as contratações planejadas: " + hiring,
		})
	}

	if len(steps) == 0 {
		steps = append(steps, bullet{
			en: "Complete the deep intake to unlock a tailored plan.",
			pt: "Complete a entrevista aprofundada para liberar um plano sob medida.",
		})
	}

	for i, step := range steps {
		text := step.en
		if lang == wizard.LangPT {
			text = step.pt
		}
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, text))
	}

	return strings.TrimRight(b.String(), "\n")
}

// Canvas renders a lightweight business model canvas from the profile.
func Canvas(ctx wizard.Context, lang string) string {
	var b strings.Builder
	title(&b, lang, "Business model canvas", "Canvas do modelo de negócio")

	blocks := []struct {
		en, pt, value string
		fallbackEN    string
		fallbackPT    string
	}{
		{"Customer segments", "Segmentos de clientes", ctx.Industry, "Define the industry during intake.", "Defina o setor na entrevista."},
		{"Channels", "Canais", ctx.AnswerString("ops.delivery_model"), "Delivery model not captured yet.", "Modelo de entrega ainda não informado."},
		{"Revenue streams", "Fontes de receita", ctx.AnswerString("finance.pricing_model"), "Pricing model not captured yet.", "Modelo de precificação ainda não informado."},
		{"Key resources", "Recursos-chave", ctx.AnswerString("team.size"), "Team size not captured yet.", "Tamanho do time ainda não informado."},
		{"Value proposition", "Proposta de valor", ctx.AnswerString("goals.main"), "State the main goal during intake.", "Declare o objetivo principal na entrevista."},
	}

	for _, block := range blocks {
		heading(&b, lang, block.en, block.pt)
		value := block.value
		if value == "" {
			if lang == wizard.LangPT {
				value = block.fallbackPT
			} else {
				value = block.fallbackEN
			}
		}
		b.WriteString(value + "\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// Scorecard scores structuring readiness on a 0-100 scale across four
// dimensions, 25 points each.
func Scorecard(ctx wizard.Context, lang string) string {
	scoreStructure := 0
	if ctx.CountryMode != "" {
		scoreStructure += 10
	}
	if ctx.AnswerString("legal.ownership") != "" {
		scoreStructure += 5
	}
	if ctx.AnswerString("legal.partnership_agreement") != "NO" {
		scoreStructure += 10
	}

	scoreFinance := 0
	if ctx.AnswerString("finance.runway_months") != "" {
		scoreFinance += 10
	}
	if ctx.AnswerString("finance.separated_accounts") == "YES" || ctx.LifecycleMode == wizard.LifecycleNew {
		scoreFinance += 10
	}
	if len(ctx.AnswerStrings("finance.payment_methods")) > 0 {
		scoreFinance += 5
	}

	scoreCompliance := 0
	switch {
	case ctx.CountryMode == wizard.CountryBR && ctx.AnswerString("compliance.br_tax_regime") != "":
		scoreCompliance += 15
	case ctx.CountryMode != wizard.CountryBR && ctx.CountryMode != "":
		scoreCompliance += 10
	}
	if filings := ctx.AnswerString("accounting.filings_current"); filings == "YES" || ctx.LifecycleMode == wizard.LifecycleNew {
		scoreCompliance += 10
	}

	scoreOps := 0
	if ctx.AnswerString("ops.delivery_model") != "" {
		scoreOps += 10
	}
	if len(ctx.AnswerStrings("ops.key_challenges")) > 0 {
		scoreOps += 5
	}
	if control := ctx.AnswerString("logistics.inventory_control"); control == "SYSTEM" || control == "NONE" {
		scoreOps += 10
	}

	total := scoreStructure + scoreFinance + scoreCompliance + scoreOps

	var b strings.Builder
	title(&b, lang, "Readiness scorecard", "Placar de prontidão")

	rows := []struct {
		en, pt string
		score  int
	}{
		{"Structure", "Estrutura", scoreStructure},
		{"Finance", "Finanças", scoreFinance},
		{"Compliance", "Conformidade", scoreCompliance},
		{"Operations", "Operações", scoreOps},
	}
	for _, row := range rows {
		name := row.en
		if lang == wizard.LangPT {
			name = row.pt
		}
		b.WriteString(fmt.Sprintf("- %s: %d/25\n", name, row.score))
	}

	b.WriteString(fmt.Sprintf("\n**Total: %d/100**", total))

	return b.String()
}
