package collector

import (
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

// WHOISCollector derives the registration age of a domain from its WHOIS
// record.
type WHOISCollector struct {
	client *whois.Client

	// now is injectable for tests; the engine itself never reads a clock,
	// age resolution happens here at collection time.
	now func() time.Time
}

// NewWHOISCollector creates a WHOIS collector with the given query timeout.
func NewWHOISCollector(timeout time.Duration) *WHOISCollector {
	client := whois.NewClient()
	client.SetTimeout(timeout)
	return &WHOISCollector{
		client: client,
		now:    time.Now,
	}
}

// Collect returns the domain age in days. A missing creation date leaves the
// age unknown without an error entry; a failed lookup or unparseable record
// leaves it unknown and records a "WHOIS:" error.
func (w *WHOISCollector) Collect(domainName string) (domain.DomainAge, []string) {
	raw, err := w.client.Whois(domainName)
	if err != nil {
		return domain.DomainAge{}, []string{"WHOIS: lookup failed"}
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		return domain.DomainAge{}, []string{"WHOIS: parsing error"}
	}

	created := parsed.Domain.CreatedDateInTime
	if created == nil {
		// Some registries simply do not publish a creation date.
		return domain.DomainAge{}, nil
	}

	days := int(w.now().Sub(*created).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return domain.KnownAge(days), nil
}
