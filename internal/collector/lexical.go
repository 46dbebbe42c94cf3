package collector

import "strings"

// LexicalAnalyzer detects suspicious keywords, risky TLDs and punycode
// labels. Pure string work, no network.
type LexicalAnalyzer struct {
	keywords  []string
	riskyTLDs map[string]struct{}
}

// NewLexicalAnalyzer creates an analyzer over the configured lowercase
// keyword and TLD lists.
func NewLexicalAnalyzer(keywords, riskyTLDs []string) *LexicalAnalyzer {
	tlds := make(map[string]struct{}, len(riskyTLDs))
	for _, tld := range riskyTLDs {
		tlds[tld] = struct{}{}
	}
	return &LexicalAnalyzer{keywords: keywords, riskyTLDs: tlds}
}

// Analyze scans the domain name. Triggered keywords come back in scan order
// (configuration order) with duplicates collapsed.
func (l *LexicalAnalyzer) Analyze(domainName string) (triggered []string, riskyTLD, isPunycode bool) {
	name := strings.ToLower(domainName)

	seen := make(map[string]struct{})
	for _, kw := range l.keywords {
		if _, dup := seen[kw]; dup {
			continue
		}
		if strings.Contains(name, kw) {
			triggered = append(triggered, kw)
			seen[kw] = struct{}{}
		}
	}

	if idx := strings.LastIndex(name, "."); idx >= 0 {
		_, riskyTLD = l.riskyTLDs[name[idx:]]
	}

	for _, label := range strings.Split(name, ".") {
		if strings.HasPrefix(label, "xn--") {
			isPunycode = true
			break
		}
	}

	return triggered, riskyTLD, isPunycode
}
