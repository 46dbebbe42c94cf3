package domain

// RuleID identifies one scoring rule. The set is closed: adding a rule means
// extending this enumeration, RuleWeights, and the evaluator together.
type RuleID string

const (
	RuleDomainAgeVeryNew    RuleID = "domain_age_very_new"
	RuleDomainAgeNew        RuleID = "domain_age_new"
	RuleDomainAgeRecent     RuleID = "domain_age_recent"
	RuleNoMXRecords         RuleID = "no_mx_records"
	RuleNoSPFRecords        RuleID = "no_spf_records"
	RuleSSLInvalid          RuleID = "ssl_invalid"
	RuleSSLSelfSigned       RuleID = "ssl_self_signed"
	RuleRiskyTLD            RuleID = "risky_tld"
	RuleSuspiciousKeyword   RuleID = "suspicious_keyword"
	RulePunycodeDetected    RuleID = "punycode_detected"
	RuleWHOISLookupFailed   RuleID = "whois_lookup_failed"
	RuleDNSResolutionFailed RuleID = "dns_resolution_failed"
	RuleSSLCheckFailed      RuleID = "ssl_check_failed"
)

// RuleWeights maps each rule to its non-negative score contribution.
type RuleWeights struct {
	DomainAgeVeryNew    int `json:"domain_age_very_new" yaml:"domain_age_very_new"`
	DomainAgeNew        int `json:"domain_age_new" yaml:"domain_age_new"`
	DomainAgeRecent     int `json:"domain_age_recent" yaml:"domain_age_recent"`
	NoMXRecords         int `json:"no_mx_records" yaml:"no_mx_records"`
	NoSPFRecords        int `json:"no_spf_records" yaml:"no_spf_records"`
	SSLInvalid          int `json:"ssl_invalid" yaml:"ssl_invalid"`
	SSLSelfSigned       int `json:"ssl_self_signed" yaml:"ssl_self_signed"`
	RiskyTLD            int `json:"risky_tld" yaml:"risky_tld"`
	SuspiciousKeyword   int `json:"suspicious_keyword" yaml:"suspicious_keyword"`
	PunycodeDetected    int `json:"punycode_detected" yaml:"punycode_detected"`
	WHOISLookupFailed   int `json:"whois_lookup_failed" yaml:"whois_lookup_failed"`
	DNSResolutionFailed int `json:"dns_resolution_failed" yaml:"dns_resolution_failed"`
	SSLCheckFailed      int `json:"ssl_check_failed" yaml:"ssl_check_failed"`
}

// ForRule returns the configured weight for a rule. The switch is exhaustive
// over the RuleID constants; an unknown ID is a programming error.
func (w RuleWeights) ForRule(id RuleID) int {
	switch id {
	case RuleDomainAgeVeryNew:
		return w.DomainAgeVeryNew
	case RuleDomainAgeNew:
		return w.DomainAgeNew
	case RuleDomainAgeRecent:
		return w.DomainAgeRecent
	case RuleNoMXRecords:
		return w.NoMXRecords
	case RuleNoSPFRecords:
		return w.NoSPFRecords
	case RuleSSLInvalid:
		return w.SSLInvalid
	case RuleSSLSelfSigned:
		return w.SSLSelfSigned
	case RuleRiskyTLD:
		return w.RiskyTLD
	case RuleSuspiciousKeyword:
		return w.SuspiciousKeyword
	case RulePunycodeDetected:
		return w.PunycodeDetected
	case RuleWHOISLookupFailed:
		return w.WHOISLookupFailed
	case RuleDNSResolutionFailed:
		return w.DNSResolutionFailed
	case RuleSSLCheckFailed:
		return w.SSLCheckFailed
	default:
		panic("unknown rule id: " + string(id))
	}
}

// All returns every weight keyed by rule ID, for validation and the
// read-only config endpoint.
func (w RuleWeights) All() map[RuleID]int {
	return map[RuleID]int{
		RuleDomainAgeVeryNew:    w.DomainAgeVeryNew,
		RuleDomainAgeNew:        w.DomainAgeNew,
		RuleDomainAgeRecent:     w.DomainAgeRecent,
		RuleNoMXRecords:         w.NoMXRecords,
		RuleNoSPFRecords:        w.NoSPFRecords,
		RuleSSLInvalid:          w.SSLInvalid,
		RuleSSLSelfSigned:       w.SSLSelfSigned,
		RuleRiskyTLD:            w.RiskyTLD,
		RuleSuspiciousKeyword:   w.SuspiciousKeyword,
		RulePunycodeDetected:    w.PunycodeDetected,
		RuleWHOISLookupFailed:   w.WHOISLookupFailed,
		RuleDNSResolutionFailed: w.DNSResolutionFailed,
		RuleSSLCheckFailed:      w.SSLCheckFailed,
	}
}

// TriggeredRule is one fired rule in a Result. Non-firing rules are omitted,
// so Triggered is always true on the wire; it is kept for consumers that
// expect the flag.
type TriggeredRule struct {
	Rule          RuleID `json:"rule"`
	Triggered     bool   `json:"triggered"`
	Weight        int    `json:"weight"`
	Justification string `json:"justification"`
}
