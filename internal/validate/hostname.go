package validate

import (
	"regexp"
	"strings"
)

// schemeRegexp matches a leading "letters://" scheme such as http:// or ftp://.
var schemeRegexp = regexp.MustCompile(`^[A-Za-z]+://`)

// ExtractHostname isolates the hostname portion of input.
// It trims surrounding whitespace, strips a leading scheme, drops everything
// from the first "/" (path, query, fragment) and from the first ":" (port),
// and lowercases ASCII letters. The result may be empty.
//
// A colon anywhere in the host truncates it, so IPv6 literals are not
// preserved.
func ExtractHostname(input string) string {
	host, _ := splitHostname(input)
	return host
}

// splitHostname is ExtractHostname that also reports whether a scheme was stripped.
func splitHostname(input string) (string, bool) {
	host := strings.TrimSpace(input)

	hasScheme := false
	if loc := schemeRegexp.FindStringIndex(host); loc != nil {
		host = host[loc[1]:]
		hasScheme = true
	}

	host, _, _ = strings.Cut(host, "/")
	host, _, _ = strings.Cut(host, ":")

	return lowerASCII(host), hasScheme
}

// lowerASCII lowercases A-Z and leaves every other byte untouched, unlike
// strings.ToLower which also folds non-ASCII runes.
func lowerASCII(s string) string {
	i := strings.IndexFunc(s, func(r rune) bool { return 'A' <= r && r <= 'Z' })
	if i < 0 {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
