package risk

import "github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"

// Classify maps a clamped score to exactly one risk band. Thresholds are
// inclusive lower bounds: a score equal to a threshold belongs to the upper
// band.
func Classify(score int, t domain.RiskThresholds) domain.RiskClass {
	switch {
	case score >= t.Critical:
		return domain.RiskCritical
	case score >= t.High:
		return domain.RiskHigh
	case score >= t.Medium:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}
