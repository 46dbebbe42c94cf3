package rules

import (
	"strings"
	"testing"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

func TestCompileFailureRejectsRule(t *testing.T) {
	_, err := NewAnnotator([]domain.CustomRule{
		{ID: "broken", Expression: "age_days <<< 3"},
	})
	if err == nil {
		t.Fatal("expected compile error")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error should name the rule: %v", err)
	}
}

func TestNonBoolExpressionRejected(t *testing.T) {
	_, err := NewAnnotator([]domain.CustomRule{
		{ID: "arith", Expression: "age_days + 1"},
	})
	if err == nil || !strings.Contains(err.Error(), "bool") {
		t.Fatalf("expected bool output rejection, got %v", err)
	}
}

func TestUnknownVariableRejected(t *testing.T) {
	_, err := NewAnnotator([]domain.CustomRule{
		{ID: "stray", Expression: "transaction_amount > 100"},
	})
	if err == nil {
		t.Fatal("expected unknown variable rejection")
	}
}

func TestAnnotateMatches(t *testing.T) {
	a, err := NewAnnotator([]domain.CustomRule{
		{
			ID:         "fresh-and-faceless",
			Expression: "age_known && age_days < 30 && !has_mx && !has_spf",
			Message:    "Young domain with no mail infrastructure",
		},
		{
			ID:         "secure-keyword",
			Expression: `"secure" in keywords`,
		},
	})
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if a.RuleCount() != 2 {
		t.Fatalf("expected 2 compiled rules, got %d", a.RuleCount())
	}

	bundle := domain.SignalBundle{
		Domain:            "secure-login-verify.tk",
		AgeDays:           domain.KnownAge(3),
		TriggeredKeywords: []string{"secure", "login", "verify"},
	}

	annotations := a.Annotate(bundle)
	if len(annotations) != 2 {
		t.Fatalf("expected 2 annotations, got %v", annotations)
	}
	if annotations[0] != "Young domain with no mail infrastructure" {
		t.Errorf("configured message not used: %q", annotations[0])
	}
	// Rules without a message fall back to a generated one.
	if !strings.Contains(annotations[1], "secure-keyword") {
		t.Errorf("fallback message should name the rule: %q", annotations[1])
	}
}

func TestAnnotateNoMatch(t *testing.T) {
	a, err := NewAnnotator([]domain.CustomRule{
		{ID: "punycode", Expression: "is_punycode"},
	})
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	if got := a.Annotate(domain.SignalBundle{Domain: "example.com"}); got != nil {
		t.Errorf("expected no annotations, got %v", got)
	}
}

func TestUnknownAgeMapsToNegative(t *testing.T) {
	a, err := NewAnnotator([]domain.CustomRule{
		{ID: "hidden-age", Expression: "!age_known && age_days == -1", Message: "age withheld"},
	})
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	annotations := a.Annotate(domain.SignalBundle{Domain: "example.com"})
	if len(annotations) != 1 || annotations[0] != "age withheld" {
		t.Errorf("unexpected annotations: %v", annotations)
	}
}

func TestEmptyRuleSet(t *testing.T) {
	a, err := NewAnnotator(nil)
	if err != nil {
		t.Fatalf("empty rule set should compile: %v", err)
	}
	if got := a.Annotate(domain.SignalBundle{Domain: "example.com"}); got != nil {
		t.Errorf("expected nil annotations, got %v", got)
	}
}
