// Package risk is the scoring and classification engine. Every function in
// this package is a pure transformation over a signal bundle and a validated
// configuration: no I/O, no clock, no shared state. Concurrent evaluations
// need no coordination.
package risk

import (
	"fmt"
	"strings"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

// Evaluate applies the weighted rule set to a bundle and returns the clamped
// score together with every fired rule in evaluation order: age, DNS, SSL,
// behavioral, failure. It is total over well-formed bundles.
func Evaluate(bundle domain.SignalBundle, cfg *domain.Config) (int, []domain.TriggeredRule) {
	var triggered []domain.TriggeredRule

	fire := func(id domain.RuleID, justification string) {
		triggered = append(triggered, domain.TriggeredRule{
			Rule:          id,
			Triggered:     true,
			Weight:        cfg.RiskWeights.ForRule(id),
			Justification: justification,
		})
	}

	// Age rules: exactly one band per bundle, narrowest first. An unknown
	// age fires nothing; the failure rules below carry that evidence.
	if bundle.AgeDays.Known {
		switch days := bundle.AgeDays.Days; {
		case days < 7:
			fire(domain.RuleDomainAgeVeryNew,
				fmt.Sprintf("Domain registered %d days ago (< 7 days)", days))
		case days < 30:
			fire(domain.RuleDomainAgeNew,
				fmt.Sprintf("Domain registered %d days ago (< 30 days)", days))
		case days < 90:
			fire(domain.RuleDomainAgeRecent,
				fmt.Sprintf("Domain registered %d days ago (< 90 days)", days))
		}
	}

	// DNS rules
	if !bundle.HasMX {
		fire(domain.RuleNoMXRecords, "No MX records found (no email infrastructure)")
	}
	if !bundle.HasSPF {
		fire(domain.RuleNoSPFRecords, "No SPF records found (no email authentication)")
	}

	// SSL rules
	if !bundle.SSLValid {
		fire(domain.RuleSSLInvalid, "SSL certificate invalid or not present")
	}
	if bundle.IsSelfSigned {
		fire(domain.RuleSSLSelfSigned, "SSL certificate is self-signed")
	}

	// Behavioral rules
	if bundle.RiskyTLD {
		fire(domain.RuleRiskyTLD,
			fmt.Sprintf("Domain uses high-risk TLD: %s", tldOf(bundle.Domain)))
	}
	for i, kw := range bundle.TriggeredKeywords {
		// Contributions are capped; matches beyond the cap remain
		// visible in the bundle but add no score.
		if i >= cfg.KeywordCap {
			break
		}
		fire(domain.RuleSuspiciousKeyword,
			fmt.Sprintf("Suspicious keyword detected: %s", kw))
	}
	if bundle.IsPunycode {
		fire(domain.RulePunycodeDetected, "Punycode detected (potential homograph attack)")
	}

	// Failure rules: absence of data is evidence. One firing per distinct
	// error category.
	if hasErrorCategory(bundle.Errors, "whois") {
		fire(domain.RuleWHOISLookupFailed, "WHOIS lookup failed or timed out")
	}
	if hasErrorCategory(bundle.Errors, "dns") {
		fire(domain.RuleDNSResolutionFailed, "DNS resolution failed")
	}
	if hasErrorCategory(bundle.Errors, "ssl") {
		fire(domain.RuleSSLCheckFailed, "SSL certificate check failed")
	}

	score := 0
	for _, r := range triggered {
		score += r.Weight
	}
	if score > 100 {
		score = 100
	}

	return score, triggered
}

// hasErrorCategory matches the "<CATEGORY>:" prefix convention collectors
// use when recording failures.
func hasErrorCategory(errs []string, category string) bool {
	for _, e := range errs {
		if strings.HasPrefix(strings.ToLower(e), category+":") {
			return true
		}
	}
	return false
}

// tldOf returns the domain's suffix including the leading dot.
func tldOf(domainName string) string {
	idx := strings.LastIndex(domainName, ".")
	if idx < 0 {
		return ""
	}
	return domainName[idx:]
}

// Assess runs the complete pipeline for one bundle: rule evaluation, pattern
// detection, classification, and result assembly.
func Assess(bundle domain.SignalBundle, cfg *domain.Config) domain.Result {
	score, triggered := Evaluate(bundle, cfg)
	if triggered == nil {
		// A clean domain reports an empty rule list, not a missing one.
		triggered = []domain.TriggeredRule{}
	}

	return domain.Result{
		Domain:         bundle.Domain,
		Score:          score,
		Classification: Classify(score, cfg.RiskThresholds),
		TriggeredRules: triggered,
		Patterns:       DetectPatterns(bundle),
		Intelligence:   bundle,
	}
}
