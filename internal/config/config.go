// Package config loads and validates the settings file. Validation is
// fail-fast and total: a configuration that violates any constraint is
// rejected before a single domain is analyzed.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

// Load reads a YAML settings file, overlays it on the built-in defaults and
// validates the merged result. An empty path returns the validated defaults.
func Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	normalize(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// normalize lowercases the lexical lists so matching is case-insensitive
// regardless of how the file was written.
func normalize(cfg *domain.Config) {
	for i, kw := range cfg.SuspiciousKeywords {
		cfg.SuspiciousKeywords[i] = strings.ToLower(strings.TrimSpace(kw))
	}
	for i, tld := range cfg.RiskyTLDs {
		cfg.RiskyTLDs[i] = strings.ToLower(strings.TrimSpace(tld))
	}
}

// Validate checks every configuration constraint. Any violation rejects the
// whole configuration; there is no degraded mode.
func Validate(cfg *domain.Config) error {
	for id, weight := range cfg.RiskWeights.All() {
		if weight < 0 {
			return fmt.Errorf("weight %s cannot be negative: %d", id, weight)
		}
	}

	t := cfg.RiskThresholds
	if t.Low < 0 {
		return fmt.Errorf("threshold low cannot be negative: %d", t.Low)
	}
	if !(t.Low < t.Medium && t.Medium < t.High && t.High < t.Critical) {
		return fmt.Errorf("risk thresholds must be strictly ascending: low=%d medium=%d high=%d critical=%d",
			t.Low, t.Medium, t.High, t.Critical)
	}
	if t.Critical > 100 {
		return fmt.Errorf("critical threshold cannot exceed 100: %d", t.Critical)
	}

	if len(cfg.SuspiciousKeywords) == 0 {
		return fmt.Errorf("suspicious_keywords must not be empty")
	}
	for _, kw := range cfg.SuspiciousKeywords {
		if kw == "" {
			return fmt.Errorf("suspicious_keywords must not contain empty entries")
		}
	}

	if len(cfg.RiskyTLDs) == 0 {
		return fmt.Errorf("risky_tlds must not be empty")
	}
	for _, tld := range cfg.RiskyTLDs {
		if !strings.HasPrefix(tld, ".") {
			return fmt.Errorf("risky TLD must start with a dot: %q", tld)
		}
	}

	if cfg.KeywordCap <= 0 {
		return fmt.Errorf("keyword_cap must be positive: %d", cfg.KeywordCap)
	}

	if cfg.Timeouts.DNS <= 0 || cfg.Timeouts.WHOIS <= 0 || cfg.Timeouts.SSL <= 0 {
		return fmt.Errorf("collector timeouts must be positive: dns=%d whois=%d ssl=%d",
			cfg.Timeouts.DNS, cfg.Timeouts.WHOIS, cfg.Timeouts.SSL)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", cfg.Server.Port)
	}

	switch cfg.Cache.Type {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported cache type: %q", cfg.Cache.Type)
	}

	for _, cr := range cfg.CustomRules {
		if cr.ID == "" || cr.Expression == "" {
			return fmt.Errorf("custom rule needs both id and expression: %+v", cr)
		}
	}

	return nil
}
