package domain

// RiskClass is the ordinal risk band derived from the score.
type RiskClass string

const (
	RiskLow      RiskClass = "Low"
	RiskMedium   RiskClass = "Medium"
	RiskHigh     RiskClass = "High"
	RiskCritical RiskClass = "Critical"
)

// Severe reports whether the class maps to a non-zero CLI exit code.
func (c RiskClass) Severe() bool {
	return c == RiskHigh || c == RiskCritical
}

// Result is the complete, explainable assessment for one domain. It carries
// the originating bundle so every justification can be traced back to the
// observation that produced it.
type Result struct {
	Domain         string          `json:"domain"`
	Score          int             `json:"score"`
	Classification RiskClass       `json:"classification"`
	TriggeredRules []TriggeredRule `json:"triggered_rules"`

	// Patterns holds advisory annotations from the composite-pattern
	// detector and any configured custom rules. They never contribute
	// score; the weights of their component rules are already counted.
	Patterns []string `json:"patterns,omitempty"`

	Intelligence SignalBundle `json:"intelligence"`
}
