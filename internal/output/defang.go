package output

import (
	"regexp"
	"strings"
)

// defangDotRe matches dots in hostnames.
var defangDotRe = regexp.MustCompile(`\.`)

// defangSchemeRe matches http:// and https:// scheme prefixes.
var defangSchemeRe = regexp.MustCompile(`(?i)^(https?)://`)

// DefangDomain replaces all dots in a hostname with [.] to prevent
// clickable links in reports. Example: "example.com" → "example[.]com".
func DefangDomain(s string) string {
	return defangDotRe.ReplaceAllString(s, "[.]")
}

// DefangURL defangs a URL-like input by replacing the scheme and dots in the host.
// Example: "http://example.com/path" → "hxxp://example[.]com/path".
// Strings without "://" have all dots replaced.
func DefangURL(s string) string {
	s = defangSchemeRe.ReplaceAllStringFunc(s, func(match string) string {
		return strings.Replace(strings.ToLower(match), "http", "hxxp", 1)
	})
	schemeEnd := strings.Index(s, "://")
	if schemeEnd < 0 {
		return DefangDomain(s)
	}
	hostStart := schemeEnd + 3
	host, rest, found := strings.Cut(s[hostStart:], "/")
	if !found {
		return s[:hostStart] + DefangDomain(host)
	}
	return s[:hostStart] + DefangDomain(host) + "/" + rest
}
