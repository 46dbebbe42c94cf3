// Package rules provides the CEL-Go based advisory rule engine. Operators
// can ship extra detection heuristics in configuration without rebuilding;
// a matching expression appends an annotation to the result, never score.
// The weighted core rule set stays a closed enumeration in the risk package.
package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

// Annotator evaluates configured CEL expressions against signal bundles.
type Annotator struct {
	env      *cel.Env
	compiled []compiledRule
}

type compiledRule struct {
	rule    domain.CustomRule
	program cel.Program
}

// NewAnnotator compiles every custom rule. Compilation is part of startup
// validation: a rule that fails to compile rejects the configuration before
// any analysis runs.
func NewAnnotator(customRules []domain.CustomRule) (*Annotator, error) {
	env, err := cel.NewEnv(
		cel.Variable("domain", cel.StringType),
		cel.Variable("age_known", cel.BoolType),
		cel.Variable("age_days", cel.IntType),
		cel.Variable("has_mx", cel.BoolType),
		cel.Variable("has_spf", cel.BoolType),
		cel.Variable("ssl_valid", cel.BoolType),
		cel.Variable("is_self_signed", cel.BoolType),
		cel.Variable("risky_tld", cel.BoolType),
		cel.Variable("is_punycode", cel.BoolType),
		cel.Variable("keywords", cel.ListType(cel.StringType)),
		cel.Variable("errors", cel.ListType(cel.StringType)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	a := &Annotator{env: env}

	for _, cr := range customRules {
		program, err := a.compile(cr)
		if err != nil {
			return nil, err
		}
		a.compiled = append(a.compiled, compiledRule{rule: cr, program: program})
	}

	return a, nil
}

func (a *Annotator) compile(cr domain.CustomRule) (cel.Program, error) {
	ast, issues := a.env.Compile(cr.Expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("failed to compile custom rule %s: %w", cr.ID, issues.Err())
	}

	if ast.OutputType() != cel.BoolType {
		return nil, fmt.Errorf("custom rule %s: expression must return bool, got %s",
			cr.ID, ast.OutputType())
	}

	program, err := a.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to create program for custom rule %s: %w", cr.ID, err)
	}

	return program, nil
}

// RuleCount returns the number of compiled custom rules.
func (a *Annotator) RuleCount() int {
	return len(a.compiled)
}

// Annotate evaluates every custom rule against the bundle and returns the
// messages of those that matched, in configuration order. Evaluation errors
// are swallowed: an advisory rule that cannot be evaluated simply does not
// annotate.
func (a *Annotator) Annotate(bundle domain.SignalBundle) []string {
	if len(a.compiled) == 0 {
		return nil
	}

	ageDays := -1
	if bundle.AgeDays.Known {
		ageDays = bundle.AgeDays.Days
	}

	keywords := bundle.TriggeredKeywords
	if keywords == nil {
		keywords = []string{}
	}
	collectErrs := bundle.Errors
	if collectErrs == nil {
		collectErrs = []string{}
	}

	activation := map[string]any{
		"domain":         bundle.Domain,
		"age_known":      bundle.AgeDays.Known,
		"age_days":       ageDays,
		"has_mx":         bundle.HasMX,
		"has_spf":        bundle.HasSPF,
		"ssl_valid":      bundle.SSLValid,
		"is_self_signed": bundle.IsSelfSigned,
		"risky_tld":      bundle.RiskyTLD,
		"is_punycode":    bundle.IsPunycode,
		"keywords":       keywords,
		"errors":         collectErrs,
	}

	var annotations []string
	for _, c := range a.compiled {
		out, _, err := c.program.Eval(activation)
		if err != nil {
			continue
		}
		if matched, ok := out.(types.Bool); ok && bool(matched) {
			msg := c.rule.Message
			if msg == "" {
				msg = fmt.Sprintf("Custom rule %s matched", c.rule.ID)
			}
			annotations = append(annotations, msg)
		}
	}

	return annotations
}
