package risk

import (
	"fmt"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

// DetectPatterns recognizes composite signatures across the bundle. Patterns
// are explanatory only: their component rules are already weighted by
// Evaluate, so adding score here would double-count. The signatures are
// non-exclusive and may co-fire.
func DetectPatterns(bundle domain.SignalBundle) []string {
	var patterns []string

	// Ghost: a domain registered days ago with no mail infrastructure,
	// the footprint of automated disposable registration.
	if bundle.AgeDays.Known && bundle.AgeDays.Days < 7 && !bundle.HasMX {
		patterns = append(patterns, fmt.Sprintf(
			"Ghost pattern: domain registered %d days ago with no mail infrastructure (disposable registration)",
			bundle.AgeDays.Days))
	}

	// Authority: suspicious keywords behind a valid certificate. A valid
	// certificate lowers suspicion in signal-only scoring; this flags
	// exactly that blind spot.
	if len(bundle.TriggeredKeywords) > 0 && bundle.SSLValid {
		patterns = append(patterns, fmt.Sprintf(
			"Authority pattern: suspicious keyword %q served behind a valid certificate (convincing phishing page)",
			bundle.TriggeredKeywords[0]))
	}

	// Homograph: punycode labels used for character spoofing.
	if bundle.IsPunycode {
		patterns = append(patterns,
			"Homograph pattern: punycode label may impersonate another name")
	}

	return patterns
}
