// Package collector gathers the raw observations that make up a signal
// bundle: DNS, WHOIS, SSL and lexical analysis. Collectors run concurrently
// under independent timeouts and never return a Go error to the caller — a
// failed step becomes a bundle error entry and its fields keep their failure
// defaults.
package collector

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

// Service fans out all collectors for one domain and merges their partial
// results into a complete SignalBundle.
type Service struct {
	dns     *DNSCollector
	whois   *WHOISCollector
	ssl     *SSLCollector
	lexical *LexicalAnalyzer
}

// NewService wires collectors from the validated configuration.
func NewService(cfg *domain.Config) *Service {
	return &Service{
		dns:     NewDNSCollector(cfg.DNSResolver, time.Duration(cfg.Timeouts.DNS)*time.Second),
		whois:   NewWHOISCollector(time.Duration(cfg.Timeouts.WHOIS) * time.Second),
		ssl:     NewSSLCollector(time.Duration(cfg.Timeouts.SSL) * time.Second),
		lexical: NewLexicalAnalyzer(cfg.SuspiciousKeywords, cfg.RiskyTLDs),
	}
}

// Collect runs every collector for the domain and builds the bundle. The
// network collectors run in parallel; each records its own failures. Merge
// order of error entries is fixed: DNS, WHOIS, SSL.
func (s *Service) Collect(ctx context.Context, domainName string) domain.SignalBundle {
	var (
		hasMX, hasSPF          bool
		age                    domain.DomainAge
		sslValid, isSelfSigned bool

		dnsErrs, whoisErrs, sslErrs []string
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		hasMX, hasSPF, dnsErrs = s.dns.Collect(domainName)
		return nil
	})
	g.Go(func() error {
		age, whoisErrs = s.whois.Collect(domainName)
		return nil
	})
	g.Go(func() error {
		sslValid, isSelfSigned, sslErrs = s.ssl.Collect(domainName)
		return nil
	})

	// Collectors report failures as data, never as errors.
	_ = g.Wait()

	triggered, riskyTLD, isPunycode := s.lexical.Analyze(domainName)

	errs := make([]string, 0, len(dnsErrs)+len(whoisErrs)+len(sslErrs))
	errs = append(errs, dnsErrs...)
	errs = append(errs, whoisErrs...)
	errs = append(errs, sslErrs...)

	bundle := domain.SignalBundle{
		Domain:            domainName,
		AgeDays:           age,
		HasMX:             hasMX,
		HasSPF:            hasSPF,
		SSLValid:          sslValid,
		IsSelfSigned:      isSelfSigned,
		TriggeredKeywords: triggered,
		RiskyTLD:          riskyTLD,
		IsPunycode:        isPunycode,
		Errors:            errs,
	}

	slog.Debug("intelligence collected",
		"domain", domainName,
		"age_known", age.Known,
		"has_mx", hasMX,
		"has_spf", hasSPF,
		"ssl_valid", sslValid,
		"errors", len(errs),
	)

	return bundle
}
