// Package config defines the on-disk configuration for the CLI: which
// paths to lint, which rules to run, and in what format to report results.
// It is pure data with no dependency on how it was loaded.
package config

// OutputFormat specifies how diagnostics are printed.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid reports whether f is a recognized output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration. A nil Enabled means "on",
// matching the rule's registration default.
type RuleConfig struct {
	Enabled *bool `mapstructure:"enabled" yaml:"enabled"`
}

// IsEnabled reports whether the rule should run, defaulting to true.
func (r RuleConfig) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Config is the root configuration for a lint run.
type Config struct {
	// Paths are the source files or directories to lint, relative to the
	// config file's directory unless absolute.
	Paths []string `mapstructure:"paths" yaml:"paths"`

	// Format selects the reporter used to print diagnostics.
	Format OutputFormat `mapstructure:"format" yaml:"format"`

	// Rules holds per-rule overrides, keyed by the rule's declared name.
	// A rule with no entry here runs with its registration default.
	Rules map[string]RuleConfig `mapstructure:"rules" yaml:"rules"`
}

// Default returns a Config with the conventional defaults: the current
// directory, text output, every registered rule enabled.
func Default() Config {
	return Config{
		Paths:  []string{"."},
		Format: FormatText,
		Rules:  map[string]RuleConfig{},
	}
}

// RuleEnabled reports whether ruleName should run under c.
func (c Config) RuleEnabled(ruleName string) bool {
	rc, ok := c.Rules[ruleName]
	if !ok {
		return true
	}
	return rc.IsEnabled()
}
