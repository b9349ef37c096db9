package validate

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxHostnameLength is the longest hostname accepted.
	MaxHostnameLength = 253
	// MaxLabelLength is the longest single label accepted.
	MaxLabelLength = 63
	// Localhost is the only dotless hostname accepted.
	Localhost = "localhost"
)

// domainRegexp matches lowercase dot-separated labels. Non-final labels may
// carry interior hyphens; the final label is alphanumeric only. Label length
// is checked separately.
var domainRegexp = regexp.MustCompile(`^(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)*[a-z0-9]+$`)

// IsDomain reports whether input, a bare hostname or a URL-like string,
// has the structure of a valid domain name. It never fails; malformed input
// is simply false.
func IsDomain(input string) bool {
	_, r := check(input)
	return r == ReasonNone
}

// IsDomainValue is IsDomain for untyped values such as decoded JSON.
// Anything other than a string is rejected.
func IsDomainValue(v any) bool {
	s, ok := v.(string)
	return ok && IsDomain(s)
}

// Check returns the first check input fails, or ReasonNone if IsDomain would
// accept it.
func Check(input string) Reason {
	_, r := check(input)
	return r
}

// Diagnose re-runs the IsDomain checks and returns an error naming the first
// one that failed. It returns nil exactly when IsDomain returns true.
func Diagnose(input string) error {
	host, r := check(input)
	if r == ReasonNone {
		return nil
	}
	if r == ReasonEmptyInput || r == ReasonEmptyHostname {
		return r.Err()
	}
	return fmt.Errorf("%w: %q", r.Err(), host)
}

// check runs the validation steps in order and stops at the first failure.
func check(input string) (string, Reason) {
	if input == "" {
		return "", ReasonEmptyInput
	}

	host, hasScheme := splitHostname(input)
	if host == "" {
		return "", ReasonEmptyHostname
	}

	// localhost behind a scheme falls through and fails the dot check.
	if host == Localhost && !hasScheme {
		return host, ReasonNone
	}

	if len(host) > MaxHostnameLength {
		return host, ReasonHostnameTooLong
	}

	if !strings.Contains(host, ".") {
		return host, ReasonMissingDot
	}

	if !domainRegexp.MatchString(host) {
		return host, ReasonMalformed
	}

	for _, label := range strings.Split(host, ".") {
		if len(label) > MaxLabelLength {
			return host, ReasonLabelTooLong
		}
	}

	return host, ReasonNone
}
