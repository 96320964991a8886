package wizard

import "strings"

// Lifecycle modes.
const (
	LifecycleNew      = "NEW"
	LifecycleExisting = "EXISTING"
)

// Country modes.
const (
	CountryBR = "BR"
	CountryUS = "US"
	CountryEU = "EU"
)

// Well-known answer paths read by context derivation.
const (
	PathLanguage  = "language"
	PathLifecycle = "lifecycle.mode"
	PathCountry   = "country.mode"
	PathIndustry  = "industry.sector"
	PathPacks     = "packs.active"
)

// Company profile keys consulted when an answer is absent.
const (
	companyLanguage  = "language"
	companyLifecycle = "lifecycle"
	companyCountry   = "country"
	companyIndustry  = "industry"
	companyPacks     = "packs"
)

// Context carries the derived signals specialists and reports decide from.
// It is recomputed per turn from the session document; explicit user-entered
// answers always win over company profile values, which win over defaults.
type Context struct {
	CountryMode   string
	LifecycleMode string
	Language      string
	Industry      string
	Packs         []string
	Answers       map[string]any
	Company       map[string]any
}

// HasPack reports whether the named pack is active (case-insensitive).
func (c *Context) HasPack(pack string) bool {
	for _, p := range c.Packs {
		if strings.EqualFold(p, pack) {
			return true
		}
	}
	return false
}

// AnswerString returns the answer at path as a string, or "".
func (c *Context) AnswerString(path string) string {
	value, ok := GetPath(c.Answers, path)
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}

// AnswerStrings returns the answer at path as a string slice. Scalar string
// answers are wrapped; YAML round-trips may produce []any, which is coerced.
func (c *Context) AnswerStrings(path string) []string {
	value, ok := GetPath(c.Answers, path)
	if !ok {
		return nil
	}
	return coerceStrings(value)
}

// BuildContext derives the turn context from the session document. Precedence
// per field: answers document, then company profile, then the hardcoded
// default (language "en", lifecycle NEW, defaultPack for packs).
func BuildContext(doc *Document, defaultLanguage, defaultPack string) Context {
	ctx := Context{
		Answers: doc.Answers,
		Company: doc.Company,
	}

	ctx.Language = stringWithFallback(doc, PathLanguage, companyLanguage, defaultLanguage)
	ctx.LifecycleMode = stringWithFallback(doc, PathLifecycle, companyLifecycle, LifecycleNew)
	ctx.CountryMode = stringWithFallback(doc, PathCountry, companyCountry, "")
	ctx.Industry = stringWithFallback(doc, PathIndustry, companyIndustry, "")

	if packs, ok := GetPath(doc.Answers, PathPacks); ok {
		ctx.Packs = coerceStrings(packs)
	} else if packs, ok := doc.Company[companyPacks]; ok {
		ctx.Packs = coerceStrings(packs)
	}
	if len(ctx.Packs) == 0 && defaultPack != "" {
		ctx.Packs = []string{defaultPack}
	}

	return ctx
}

func stringWithFallback(doc *Document, answerPath, companyKey, fallback string) string {
	if value, ok := GetPath(doc.Answers, answerPath); ok {
		if s, ok := value.(string); ok && s != "" {
			return s
		}
	}
	if value, ok := doc.Company[companyKey]; ok {
		if s, ok := value.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

func coerceStrings(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
