package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/cache"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/rules"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/validate"
)

// countingCollector records how many times collection actually ran, so
// tests can prove the cache short-circuits it.
type countingCollector struct {
	calls  int
	bundle domain.SignalBundle
}

func (c *countingCollector) Collect(_ context.Context, domainName string) domain.SignalBundle {
	c.calls++
	b := c.bundle
	b.Domain = domainName
	return b
}

func TestAnalyzeProducesResult(t *testing.T) {
	coll := &countingCollector{bundle: domain.SignalBundle{
		AgeDays:  domain.KnownAge(3),
		RiskyTLD: true,
	}}
	svc := NewService(domain.DefaultConfig(), coll, nil, nil)

	result, err := svc.Analyze(context.Background(), "Example.TK")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if result.Domain != "example.tk" {
		t.Errorf("input not normalized: %s", result.Domain)
	}
	// domain_age_very_new (25) + risky_tld (20) on top of the missing-MX/SPF
	// and invalid-SSL observations.
	if result.Score == 0 {
		t.Error("risky bundle should not score zero")
	}
	if coll.calls != 1 {
		t.Errorf("expected exactly one collection, got %d", coll.calls)
	}
}

func TestAnalyzeInvalidDomain(t *testing.T) {
	coll := &countingCollector{}
	svc := NewService(domain.DefaultConfig(), coll, nil, nil)

	_, err := svc.Analyze(context.Background(), "not a domain")
	if !errors.Is(err, validate.ErrInvalidDomain) {
		t.Fatalf("expected ErrInvalidDomain, got %v", err)
	}
	if coll.calls != 0 {
		t.Error("rejected input must not reach the collectors")
	}
}

func TestAnalyzeCacheHitSkipsCollection(t *testing.T) {
	coll := &countingCollector{bundle: domain.SignalBundle{
		AgeDays:  domain.KnownAge(3),
		RiskyTLD: true,
	}}
	svc := NewService(domain.DefaultConfig(), coll, nil, cache.NewLRUCache(10))

	ctx := context.Background()
	first, err := svc.Analyze(ctx, "example.tk")
	if err != nil {
		t.Fatalf("first analyze failed: %v", err)
	}
	second, err := svc.Analyze(ctx, "example.tk")
	if err != nil {
		t.Fatalf("second analyze failed: %v", err)
	}

	if coll.calls != 1 {
		t.Errorf("second analysis should come from cache, collections=%d", coll.calls)
	}
	if first.Score != second.Score || first.Classification != second.Classification {
		t.Errorf("cached result diverged: %+v vs %+v", first, second)
	}
}

func TestAnalyzeCacheKeyIsNormalizedName(t *testing.T) {
	coll := &countingCollector{bundle: domain.SignalBundle{AgeDays: domain.KnownAge(9000), HasMX: true, HasSPF: true, SSLValid: true}}
	svc := NewService(domain.DefaultConfig(), coll, nil, cache.NewLRUCache(10))

	ctx := context.Background()
	svc.Analyze(ctx, "https://www.example.com/login")
	svc.Analyze(ctx, "EXAMPLE.COM")

	if coll.calls != 1 {
		t.Errorf("both spellings should hit the same cache entry, collections=%d", coll.calls)
	}
}

func TestAnalyzeAppendsAnnotations(t *testing.T) {
	annotator, err := rules.NewAnnotator([]domain.CustomRule{
		{
			ID:         "fresh-and-faceless",
			Expression: "age_known && age_days < 30 && !has_mx && !has_spf",
			Message:    "Young domain with no mail infrastructure",
		},
	})
	if err != nil {
		t.Fatalf("annotator compile failed: %v", err)
	}

	coll := &countingCollector{bundle: domain.SignalBundle{AgeDays: domain.KnownAge(3)}}
	svc := NewService(domain.DefaultConfig(), coll, annotator, nil)

	result, err := svc.Analyze(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	found := false
	for _, p := range result.Patterns {
		if p == "Young domain with no mail infrastructure" {
			found = true
		}
	}
	if !found {
		t.Errorf("annotation missing from patterns: %v", result.Patterns)
	}
}
