package output_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tbckr/isdomain/internal/output"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string", "example.com", "example.com"},
		{"red color", "\x1b[31mred\x1b[0m", "red"},
		{"multiple sequences", "\x1b[1m\x1b[31merror\x1b[0m", "error"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, output.StripANSI(tc.input))
		})
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "example.com", output.Sanitize("example.com"))
	assert.Equal(t, "evil.com", output.Sanitize("\x1b[2Jevil.com"))
	assert.Equal(t, "a�b", output.Sanitize("a\rb"))
	assert.Equal(t, "tab�sep", output.Sanitize("tab\tsep"))
}
