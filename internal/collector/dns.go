package collector

import (
	"strings"
	"time"

	"github.com/miekg/dns"
)

// DNSCollector gathers mail-infrastructure signals: MX presence and an SPF
// policy in TXT records.
type DNSCollector struct {
	client   *dns.Client
	resolver string
}

// NewDNSCollector creates a DNS collector querying the given resolver
// address ("host:port").
func NewDNSCollector(resolver string, timeout time.Duration) *DNSCollector {
	return &DNSCollector{
		client:   &dns.Client{Timeout: timeout},
		resolver: resolver,
	}
}

// Collect looks up MX and TXT records for the domain. Failures become error
// strings under the "DNS:" category; the booleans default to false.
func (d *DNSCollector) Collect(domainName string) (hasMX, hasSPF bool, errs []string) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domainName), dns.TypeMX)

	resp, _, err := d.client.Exchange(msg, d.resolver)
	switch {
	case err != nil:
		if isTimeout(err) {
			errs = append(errs, "DNS: query timeout")
		} else {
			errs = append(errs, "DNS: "+err.Error())
		}
	case resp.Rcode == dns.RcodeNameError:
		errs = append(errs, "DNS: domain does not exist")
	default:
		for _, rr := range resp.Answer {
			if _, ok := rr.(*dns.MX); ok {
				hasMX = true
				break
			}
		}
	}

	// SPF lives in TXT records. A failed TXT lookup is not recorded
	// separately; the MX query above already captured resolver trouble.
	msg = new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domainName), dns.TypeTXT)

	resp, _, err = d.client.Exchange(msg, d.resolver)
	if err == nil && resp.Rcode == dns.RcodeSuccess {
		for _, rr := range resp.Answer {
			txt, ok := rr.(*dns.TXT)
			if !ok {
				continue
			}
			if strings.HasPrefix(strings.ToLower(strings.Join(txt.Txt, "")), "v=spf1") {
				hasSPF = true
				break
			}
		}
	}

	return hasMX, hasSPF, errs
}

func isTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	if te, ok := err.(timeouter); ok {
		return te.Timeout()
	}
	return false
}
