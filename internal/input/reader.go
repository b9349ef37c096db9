// Package input reads bulk candidates for validation from a stream.
package input

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Read reads lines from r, trims whitespace, and returns non-empty lines.
// Blank lines and lines starting with "#" are dropped.
func Read(r io.Reader) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return inputs, nil
}

// ReadJSON decodes a JSON array of arbitrary values from r. Elements keep
// their decoded type so that non-string values can be rejected downstream.
func ReadJSON(r io.Reader) ([]any, error) {
	var values []any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("decoding JSON input: %w", err)
	}
	return values, nil
}
