// Package isdomain reports whether a string, possibly a full URL, has the
// structure of a valid domain name or is the special host "localhost".
//
// The check is purely structural; nothing is resolved.
//
//	isdomain.IsDomain("https://www.example.com:9000/path") // true
//	isdomain.IsDomain("-hyphen.com")                       // false
package isdomain

import "github.com/tbckr/isdomain/internal/validate"

// IsDomain reports whether input is a structurally valid hostname, after
// stripping a scheme, path and port. It never panics and never errors.
func IsDomain(input string) bool {
	return validate.IsDomain(input)
}

// IsDomainValue is IsDomain for untyped values; non-strings are false.
func IsDomainValue(v any) bool {
	return validate.IsDomainValue(v)
}

// ExtractHostname returns the lowercased hostname portion of input.
func ExtractHostname(input string) string {
	return validate.ExtractHostname(input)
}

// Diagnose returns nil if IsDomain(input) is true, otherwise an error naming
// the first check that failed.
func Diagnose(input string) error {
	return validate.Diagnose(input)
}
