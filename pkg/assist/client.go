// Package assist provides the optional AI enrichment for the intake wizard:
// EXPLAIN, REFRAME, and SUGGEST actions against the pending question. Every
// failure path degrades synchronously to a deterministic template, so the
// conversation never depends on provider availability.
package assist

import "context"

// Client is the minimal completion interface the assist service needs from
// a language-model provider.
type Client interface {
	// Complete sends one system+user prompt pair and returns the reply text.
	Complete(ctx context.Context, system, user string) (string, error)
	// Name identifies the provider for audit logging ("openai", "anthropic").
	Name() string
}
