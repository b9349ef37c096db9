package output_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tbckr/isdomain/internal/output"
)

func TestDefangDomain(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"example.com", "example[.]com"},
		{"sub.domain.co.uk", "sub[.]domain[.]co[.]uk"},
		{"localhost", "localhost"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, output.DefangDomain(tt.input))
		})
	}
}

func TestDefangURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"http://example.com", "hxxp://example[.]com"},
		{"https://www.example.com/path.html?q=1", "hxxps://www[.]example[.]com/path.html?q=1"},
		{"HTTPS://EXAMPLE.COM:8443", "hxxps://EXAMPLE[.]COM:8443"},
		{"ftp://example.com", "ftp://example[.]com"},
		{"example.com:9000", "example[.]com:9000"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, output.DefangURL(tt.input))
		})
	}
}
