// Package validate rejects malformed domain input before a bundle is ever
// built. The engine downstream assumes it only sees normalized names.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// ErrInvalidDomain marks input rejected by validation. Callers map it to
// exit code 2 (CLI) or 400 (API).
var ErrInvalidDomain = errors.New("invalid domain")

var domainPattern = regexp.MustCompile(
	`^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?$`)

// Domain normalizes raw user input into a bare lowercase domain name:
// whitespace, scheme, www prefix, path and query are stripped, unicode
// labels are converted to their ASCII-compatible (xn--) form, and the result
// is checked against RFC label and length limits.
func Domain(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidDomain)
	}

	for _, prefix := range []string{"https://", "http://", "//", "www."} {
		name = strings.TrimPrefix(name, prefix)
	}

	// Drop path and query if a URL was pasted.
	if idx := strings.IndexAny(name, "/?"); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSuffix(name, ".")

	if name == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidDomain)
	}

	// Convert internationalized labels to their ACE form so the rest of
	// the system only handles ASCII names.
	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDomain, raw, err)
	}
	name = ascii

	if len(name) > 253 {
		return "", fmt.Errorf("%w: exceeds maximum length (253 characters)", ErrInvalidDomain)
	}
	if !strings.Contains(name, ".") {
		return "", fmt.Errorf("%w: %q has no TLD", ErrInvalidDomain, name)
	}
	for _, label := range strings.Split(name, ".") {
		if len(label) > 63 {
			return "", fmt.Errorf("%w: label exceeds maximum length (63 characters)", ErrInvalidDomain)
		}
	}
	if !domainPattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, name)
	}

	return name, nil
}
