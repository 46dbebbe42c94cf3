package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/analyzer"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/validate"
)

type stubCollector struct{}

func (stubCollector) Collect(_ context.Context, domainName string) domain.SignalBundle {
	return domain.SignalBundle{
		Domain:   domainName,
		AgeDays:  domain.KnownAge(9000),
		HasMX:    true,
		HasSPF:   true,
		SSLValid: true,
	}
}

func newService() *analyzer.Service {
	return analyzer.NewService(domain.DefaultConfig(), stubCollector{}, nil, nil)
}

func TestRunPreservesInputOrder(t *testing.T) {
	pool := NewPool(newService(), 4)

	domains := []string{"a.com", "b.com", "c.com", "d.com", "e.com", "f.com"}
	outcomes := pool.Run(context.Background(), domains)

	if len(outcomes) != len(domains) {
		t.Fatalf("expected %d outcomes, got %d", len(domains), len(outcomes))
	}
	for i, o := range outcomes {
		if o.Input != domains[i] {
			t.Errorf("outcome %d: input %q, want %q", i, o.Input, domains[i])
		}
		if o.Err != nil {
			t.Errorf("outcome %d: unexpected error %v", i, o.Err)
		}
		if o.Result.Domain != domains[i] {
			t.Errorf("outcome %d: result domain %q, want %q", i, o.Result.Domain, domains[i])
		}
	}
}

func TestRunInvalidInputGetsErrorOutcome(t *testing.T) {
	pool := NewPool(newService(), 2)

	outcomes := pool.Run(context.Background(), []string{"good.com", "not a domain", "also-good.com"})

	if outcomes[0].Err != nil || outcomes[2].Err != nil {
		t.Error("valid domains should not error")
	}
	if !errors.Is(outcomes[1].Err, validate.ErrInvalidDomain) {
		t.Errorf("expected ErrInvalidDomain, got %v", outcomes[1].Err)
	}
	// A rejected input keeps its original text for reporting.
	if outcomes[1].Input != "not a domain" {
		t.Errorf("input text lost: %q", outcomes[1].Input)
	}
}

func TestRunEmptyBatch(t *testing.T) {
	pool := NewPool(newService(), 2)
	if outcomes := pool.Run(context.Background(), nil); len(outcomes) != 0 {
		t.Errorf("expected no outcomes, got %d", len(outcomes))
	}
}

func TestNewPoolDefaultsWorkers(t *testing.T) {
	pool := NewPool(newService(), 0)
	outcomes := pool.Run(context.Background(), []string{"a.com"})
	if len(outcomes) != 1 || outcomes[0].Err != nil {
		t.Errorf("pool with defaulted workers should still run: %+v", outcomes)
	}
}
