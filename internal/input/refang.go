package input

import (
	"regexp"
	"strings"
)

// refangDotRe matches the bracketed dot notations used in threat reports.
var refangDotRe = regexp.MustCompile(`\[\.\]|\(\.\)|\{\.\}|\[dot\]|\(dot\)`)

// refangSchemeRe matches defanged http/https schemes (hxxp, hXXps, ...).
var refangSchemeRe = regexp.MustCompile(`(?i)^h(?:xx|tt)p(s?)(\[:\]|:)//`)

// Refang reverses common defanging so that "hxxps://example[.]com" becomes
// "https://example.com". Strings that are not defanged are returned unchanged.
func Refang(s string) string {
	s = refangSchemeRe.ReplaceAllString(s, "http${1}://")
	s = refangDotRe.ReplaceAllString(s, ".")
	return strings.ReplaceAll(s, "[:]", ":")
}
