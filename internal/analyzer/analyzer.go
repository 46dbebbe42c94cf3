// Package analyzer orchestrates one complete domain analysis: input
// validation, result-cache lookup, signal collection, risk assessment and
// advisory annotation. Both the CLI and the API go through this service.
package analyzer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/cache"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/risk"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/rules"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/validate"
)

// Collector produces a signal bundle for a validated domain. It never
// returns an error: collection failures are bundle data.
type Collector interface {
	Collect(ctx context.Context, domainName string) domain.SignalBundle
}

// Service performs domain analyses against one immutable configuration.
type Service struct {
	cfg        *domain.Config
	collectors Collector
	annotator  *rules.Annotator
	cache      cache.Cache
	cacheTTL   time.Duration
}

// NewService wires an analyzer. The cache may be nil to disable caching; the
// annotator may be nil when no custom rules are configured.
func NewService(cfg *domain.Config, collectors Collector, annotator *rules.Annotator, resultCache cache.Cache) *Service {
	return &Service{
		cfg:        cfg,
		collectors: collectors,
		annotator:  annotator,
		cache:      resultCache,
		cacheTTL:   time.Duration(cfg.Cache.TTLSeconds) * time.Second,
	}
}

// Analyze validates the raw input, then produces a complete Result. Partial
// collection always yields a full Result; the only error this returns wraps
// validate.ErrInvalidDomain.
func (s *Service) Analyze(ctx context.Context, rawDomain string) (domain.Result, error) {
	name, err := validate.Domain(rawDomain)
	if err != nil {
		return domain.Result{}, err
	}

	if cached, ok := s.cachedResult(ctx, name); ok {
		slog.Debug("result cache hit", "domain", name)
		return cached, nil
	}

	slog.Info("analyzing domain", "domain", name)

	bundle := s.collectors.Collect(ctx, name)
	result := risk.Assess(bundle, s.cfg)

	if s.annotator != nil {
		result.Patterns = append(result.Patterns, s.annotator.Annotate(bundle)...)
	}

	s.storeResult(ctx, name, result)

	slog.Info("analysis complete",
		"domain", name,
		"score", result.Score,
		"classification", result.Classification,
	)

	return result, nil
}

func (s *Service) cachedResult(ctx context.Context, name string) (domain.Result, bool) {
	if s.cache == nil {
		return domain.Result{}, false
	}

	data, err := s.cache.Get(ctx, name)
	if err != nil {
		slog.Warn("result cache read failed", "domain", name, "error", err)
		return domain.Result{}, false
	}
	if data == nil {
		return domain.Result{}, false
	}

	var result domain.Result
	if err := json.Unmarshal(data, &result); err != nil {
		slog.Warn("discarding undecodable cache entry", "domain", name, "error", err)
		_ = s.cache.Delete(ctx, name)
		return domain.Result{}, false
	}
	return result, true
}

func (s *Service) storeResult(ctx context.Context, name string, result domain.Result) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, name, data, s.cacheTTL); err != nil {
		slog.Warn("result cache write failed", "domain", name, "error", err)
	}
}
