// Package specialist contains the pluggable domain modules that contribute
// context-dependent questions and templated analyses to the intake wizard.
// Each specialist is pure: question generation depends only on the derived
// context and has no side effects.
package specialist

import (
	"strings"

	"structor/pkg/wizard"
)

// Pack names recognized by the specialists.
const (
	PackGeneral         = "GENERAL"
	PackHealthImport    = "HEALTH_IMPORT"
	PackFoodService     = "FOOD_SERVICE"
	PackDigitalServices = "DIGITAL_SERVICES"
)

// All returns one instance of every built-in specialist.
func All() []wizard.Specialist {
	return []wizard.Specialist{
		NewAccounting(),
		NewCompliance(),
		NewFinance(),
		NewLegal(),
		NewLogistics(),
		NewOps(),
	}
}

// section appends a markdown heading plus body to a report builder, skipping
// empty bodies so analyses stay compact.
func section(b *strings.Builder, heading, body string) {
	if body == "" {
		return
	}
	b.WriteString("### " + heading + "\n")
	b.WriteString(body + "\n\n")
}

// labelOrFallback renders a stored canonical value, or the localized
// fallback when the answer is missing.
func labelOrFallback(value, fallbackEN, fallbackPT, lang string) string {
	if value != "" {
		return value
	}
	if lang == wizard.LangPT {
		return fallbackPT
	}
	return fallbackEN
}
