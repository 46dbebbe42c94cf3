// Package domain holds the shared data model: the signal bundle produced by
// collectors, the rule and result types produced by the risk engine, and the
// configuration schema consumed by every component.
package domain

import "encoding/json"

// DomainAge distinguishes "WHOIS returned a creation date" from "age is
// unknown". A failed or empty WHOIS lookup leaves Known false; the reason is
// carried separately in SignalBundle.Errors.
type DomainAge struct {
	Known bool
	Days  int
}

// KnownAge returns an age with a resolved day count.
func KnownAge(days int) DomainAge {
	return DomainAge{Known: true, Days: days}
}

// MarshalJSON encodes an unknown age as null, matching the wire contract.
func (a DomainAge) MarshalJSON() ([]byte, error) {
	if !a.Known {
		return []byte("null"), nil
	}
	return json.Marshal(a.Days)
}

// UnmarshalJSON accepts null or an integer day count.
func (a *DomainAge) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = DomainAge{}
		return nil
	}
	var days int
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	*a = DomainAge{Known: true, Days: days}
	return nil
}

// SignalBundle is the normalized observation set for one domain. Collectors
// populate it; the risk engine consumes it. It is the engine's only input
// besides configuration: no clock, no I/O, no ambient state.
type SignalBundle struct {
	Domain string `json:"domain"`

	// Infrastructure signals
	AgeDays      DomainAge `json:"age_days"`
	HasMX        bool      `json:"has_mx"`
	HasSPF       bool      `json:"has_spf"`
	SSLValid     bool      `json:"ssl_valid"`
	IsSelfSigned bool      `json:"is_self_signed"`

	// Behavioral signals
	TriggeredKeywords []string `json:"triggered_keywords"`
	RiskyTLD          bool     `json:"risky_tld"`
	IsPunycode        bool     `json:"is_punycode"`

	// Failure signals, one entry per failed collection step.
	// Entries follow the "<CATEGORY>: detail" convention (WHOIS, DNS, SSL).
	Errors []string `json:"errors"`
}
