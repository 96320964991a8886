package report

import (
	"sort"
	"strings"

	"structor/pkg/wizard"
)

// Profile renders the consolidated structuring profile document: the derived
// identity, the captured answers by area, and the diagnosis and action plan
// appended. This is the /render output.
func Profile(ctx wizard.Context, lang string) string {
	pt := lang == wizard.LangPT

	var b strings.Builder
	if pt {
		b.WriteString("# Perfil de estruturação\n\n")
	} else {
		b.WriteString("# Structuring profile\n\n")
	}

	heading(&b, lang, "Identity", "Identidade")
	identity := []struct {
		en, pt, value string
	}{
		{"Country", "País", ctx.CountryMode},
		{"Lifecycle", "Estágio", ctx.LifecycleMode},
		{"Industry", "Setor", ctx.Industry},
		{"Packs", "Pacotes", strings.Join(ctx.Packs, ", ")},
	}
	for _, row := range identity {
		label := row.en
		if pt {
			label = row.pt
		}
		value := row.value
		if value == "" {
			value = "-"
		}
		b.WriteString("- " + label + ": " + value + "\n")
	}
	b.WriteString("\n")

	heading(&b, lang, "Captured answers", "Respostas coletadas")
	paths := answerPaths(ctx.Answers, "")
	if len(paths) == 0 {
		if pt {
			b.WriteString("Nenhuma resposta ainda; comece com /intake.\n")
		} else {
			b.WriteString("No answers yet; start with /intake.\n")
		}
	}
	for _, path := range paths {
		value, _ := wizard.GetPath(ctx.Answers, path)
		b.WriteString("- " + path + ": " + renderValue(value) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Diagnose(ctx, lang) + "\n\n")
	b.WriteString(Plan(ctx, lang))

	return strings.TrimRight(b.String(), "\n")
}

// answerPaths flattens the answers document into sorted dot-paths of its
// leaf values.
func answerPaths(answers map[string]any, prefix string) []string {
	var paths []string
	for _, key := range sortedKeys(answers) {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := answers[key].(map[string]any); ok {
			paths = append(paths, answerPaths(nested, path)...)
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func renderValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return "-"
	}
}
