package risk

import (
	"strings"
	"testing"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

func TestGhostPattern(t *testing.T) {
	bundle := domain.SignalBundle{
		Domain:  "throwaway.xyz",
		AgeDays: domain.KnownAge(2),
		HasMX:   false,
	}

	patterns := DetectPatterns(bundle)
	if len(patterns) != 1 || !strings.HasPrefix(patterns[0], "Ghost pattern") {
		t.Errorf("expected ghost pattern, got %v", patterns)
	}

	// An old domain without MX is not a ghost.
	bundle.AgeDays = domain.KnownAge(400)
	if got := DetectPatterns(bundle); len(got) != 0 {
		t.Errorf("expected no patterns, got %v", got)
	}

	// Unknown age never ghosts.
	bundle.AgeDays = domain.DomainAge{}
	if got := DetectPatterns(bundle); len(got) != 0 {
		t.Errorf("expected no patterns for unknown age, got %v", got)
	}
}

func TestAuthorityPattern(t *testing.T) {
	bundle := domain.SignalBundle{
		Domain:            "secure-bank.com",
		AgeDays:           domain.KnownAge(500),
		HasMX:             true,
		SSLValid:          true,
		TriggeredKeywords: []string{"secure"},
	}

	patterns := DetectPatterns(bundle)
	if len(patterns) != 1 || !strings.HasPrefix(patterns[0], "Authority pattern") {
		t.Errorf("expected authority pattern, got %v", patterns)
	}

	// Keywords without valid SSL already look suspicious at the rule
	// layer; the pattern exists for the valid-certificate blind spot.
	bundle.SSLValid = false
	if got := DetectPatterns(bundle); len(got) != 0 {
		t.Errorf("expected no patterns without valid SSL, got %v", got)
	}
}

func TestHomographPattern(t *testing.T) {
	bundle := domain.SignalBundle{
		Domain:     "xn--pple-43d.com",
		AgeDays:    domain.KnownAge(500),
		HasMX:      true,
		IsPunycode: true,
	}

	patterns := DetectPatterns(bundle)
	if len(patterns) != 1 || !strings.HasPrefix(patterns[0], "Homograph pattern") {
		t.Errorf("expected homograph pattern, got %v", patterns)
	}
}

func TestPatternsCoFire(t *testing.T) {
	bundle := domain.SignalBundle{
		Domain:            "xn--secure-login.tk",
		AgeDays:           domain.KnownAge(1),
		HasMX:             false,
		SSLValid:          true,
		TriggeredKeywords: []string{"secure", "login"},
		IsPunycode:        true,
	}

	patterns := DetectPatterns(bundle)
	if len(patterns) != 3 {
		t.Fatalf("expected all three patterns, got %v", patterns)
	}
}

func TestPatternsDoNotChangeScore(t *testing.T) {
	cfg := domain.DefaultConfig()

	// Authority-pattern bundle: keyword weight is the only contribution;
	// the pattern itself must add nothing.
	bundle := domain.SignalBundle{
		Domain:            "secure-bank.com",
		AgeDays:           domain.KnownAge(500),
		HasMX:             true,
		HasSPF:            true,
		SSLValid:          true,
		TriggeredKeywords: []string{"secure"},
	}

	result := Assess(bundle, cfg)
	if result.Score != cfg.RiskWeights.SuspiciousKeyword {
		t.Errorf("pattern leaked into score: got %d, want %d",
			result.Score, cfg.RiskWeights.SuspiciousKeyword)
	}
	if len(result.Patterns) != 1 {
		t.Errorf("expected one pattern annotation, got %v", result.Patterns)
	}
}
