package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tbckr/isdomain/internal/validate"
)

func TestExtractHostname(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare host", "example.com", "example.com"},
		{"http scheme", "http://example.com", "example.com"},
		{"https with port", "https://www.localhost.com:9000", "www.localhost.com"},
		{"ftp with path", "ftp://files.example.org/pub/file.txt", "files.example.org"},
		{"uppercase scheme", "HTTPS://Example.COM", "example.com"},
		{"query and fragment", "example.com/search?q=1#top", "example.com"},
		{"port only", "localhost:9000", "localhost"},
		{"surrounding whitespace", "  \texample.com \n", "example.com"},
		{"empty", "", ""},
		{"only scheme", "http:///", ""},
		{"scheme without slashes kept", "mailto:user@example.com", "mailto"},
		{"protocol relative not stripped", "//example.com", ""},
		{"digits in scheme not stripped", "h2://example.com", "h2"},
		{"ipv6 truncated at first colon", "[::1]:8080", "["},
		{"non-ascii passes through", "CAFÉ.com", "cafÉ.com"},
		{"path before port", "example.com/a:b", "example.com"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validate.ExtractHostname(tc.input))
		})
	}
}

func TestExtractHostname_Idempotent(t *testing.T) {
	for _, in := range []string{"example.com", "Sub.Example.CO.UK", "localhost", "a.b", "-bad-.x", "inva.lid!", ""} {
		once := validate.ExtractHostname(in)
		assert.Equal(t, once, validate.ExtractHostname(once), "input %q", in)
	}
}
