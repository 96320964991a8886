// Package config provides configuration loading, validation, and defaults
// for the structuring assistant. Config files are YAML with environment
// variable substitution for secrets.
package config

import (
	"fmt"
	"strings"
)

// Supported assist providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderNone      = "none"
)

// Default assist models per provider.
const (
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
)

// Workflow identity defaults.
const (
	DefaultWorkflowID      = "business-structuring"
	DefaultWorkflowVersion = "1.0"
)

// StorageConfig holds paths for session documents and the archive database.
type StorageConfig struct {
	Dir          string `yaml:"dir"`           // Directory for per-session YAML documents
	DatabaseFile string `yaml:"database_file"` // SQLite file for transcript + help-event archive
}

// AssistConfig configures the optional AI-assist enrichment calls.
// When disabled or misconfigured the assistant falls back to static templates.
type AssistConfig struct {
	Provider        string `yaml:"provider"` // "openai", "anthropic", or "none"
	Model           string `yaml:"model"`
	APIKey          string `yaml:"api_key"`
	MaxTokens       int    `yaml:"max_tokens"`        // Maximum tokens for the model reply
	MaxPromptTokens int    `yaml:"max_prompt_tokens"` // Prompt budget; longer context is trimmed
	TimeoutSec      int    `yaml:"timeout_sec"`
}

// MetricsConfig configures the optional Prometheus endpoint.
type MetricsConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ListenAddr string `yaml:"listen_addr"`
}

// WizardConfig holds intake workflow settings.
type WizardConfig struct {
	WorkflowID string `yaml:"workflow_id"`
	Version    string `yaml:"version"`
	// DynamicEnabled allows specialists to inject questions during refresh.
	// Pointer so an omitted key defaults to true instead of false.
	DynamicEnabled *bool  `yaml:"dynamic_enabled"`
	DefaultPack    string `yaml:"default_pack"` // Pack used when neither answers nor company set one
}

// Config is the root configuration for the assistant.
type Config struct {
	Languages       []string      `yaml:"languages"`        // Supported language tags, e.g. ["en", "pt"]
	DefaultLanguage string        `yaml:"default_language"` //
	Storage         StorageConfig `yaml:"storage"`
	Assist          AssistConfig  `yaml:"assist"`
	Metrics         MetricsConfig `yaml:"metrics"`
	Wizard          WizardConfig  `yaml:"wizard"`
}

// applyDefaults sets default values for missing configuration.
func applyDefaults(config *Config) {
	if len(config.Languages) == 0 {
		config.Languages = []string{"en", "pt"}
	}
	if config.DefaultLanguage == "" {
		config.DefaultLanguage = "en"
	}

	if config.Storage.Dir == "" {
		config.Storage.Dir = ".structor"
	}
	if config.Storage.DatabaseFile == "" {
		config.Storage.DatabaseFile = ".structor/structor.db"
	}

	if config.Assist.Provider == "" {
		config.Assist.Provider = ProviderNone
	}
	if config.Assist.Model == "" {
		switch config.Assist.Provider {
		case ProviderAnthropic:
			config.Assist.Model = DefaultAnthropicModel
		default:
			config.Assist.Model = DefaultOpenAIModel
		}
	}
	if config.Assist.MaxTokens <= 0 {
		config.Assist.MaxTokens = 1024
	}
	if config.Assist.MaxPromptTokens <= 0 {
		config.Assist.MaxPromptTokens = 6000
	}
	if config.Assist.TimeoutSec <= 0 {
		config.Assist.TimeoutSec = 30
	}

	if config.Metrics.ListenAddr == "" {
		config.Metrics.ListenAddr = "localhost:9198"
	}

	if config.Wizard.WorkflowID == "" {
		config.Wizard.WorkflowID = DefaultWorkflowID
	}
	if config.Wizard.DynamicEnabled == nil {
		enabled := true
		config.Wizard.DynamicEnabled = &enabled
	}
	if config.Wizard.Version == "" {
		config.Wizard.Version = DefaultWorkflowVersion
	}
	if config.Wizard.DefaultPack == "" {
		config.Wizard.DefaultPack = "general"
	}
}

// validateConfig checks the configuration for inconsistencies.
func validateConfig(config *Config) error {
	validProviders := []string{ProviderOpenAI, ProviderAnthropic, ProviderNone}
	found := false
	for _, p := range validProviders {
		if config.Assist.Provider == p {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("invalid assist provider '%s', must be one of: %s",
			config.Assist.Provider, strings.Join(validProviders, ", "))
	}

	if config.Assist.Provider != ProviderNone && config.Assist.APIKey == "" {
		return fmt.Errorf("assist provider '%s' requires an api_key", config.Assist.Provider)
	}

	langSet := make(map[string]bool, len(config.Languages))
	for _, lang := range config.Languages {
		if lang == "" {
			return fmt.Errorf("empty language tag in languages list")
		}
		if langSet[lang] {
			return fmt.Errorf("duplicate language tag: %s", lang)
		}
		langSet[lang] = true
	}
	if !langSet[config.DefaultLanguage] {
		return fmt.Errorf("default_language '%s' is not in the languages list", config.DefaultLanguage)
	}

	if config.Storage.Dir == "" {
		return fmt.Errorf("storage.dir is required")
	}

	return nil
}

// IsAssistEnabled reports whether AI-assist calls should be attempted at all.
func (c *Config) IsAssistEnabled() bool {
	return c.Assist.Provider != ProviderNone && c.Assist.APIKey != ""
}

// DynamicEnabled reports whether specialist question injection is on.
// On by default; only an explicit `dynamic_enabled: false` turns it off.
func (c *Config) DynamicEnabled() bool {
	return c.Wizard.DynamicEnabled == nil || *c.Wizard.DynamicEnabled
}
