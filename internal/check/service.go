// Package check runs hostname validation over user input and collects
// results for display.
package check

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tbckr/isdomain/internal/input"
	"github.com/tbckr/isdomain/internal/validate"
)

// ReasonNotString is reported for untyped input that is not a string.
const ReasonNotString = "not a string"

// Options tune how inputs are prepared before validation.
type Options struct {
	// Refang reverses defanged notation (hxxp, [.]) before validation.
	Refang bool
}

// Service validates inputs and reports one Result per input.
type Service struct {
	logger *slog.Logger
	opts   Options
}

// NewService creates a check service.
func NewService(logger *slog.Logger, opts Options) *Service {
	return &Service{logger: logger, opts: opts}
}

// Run validates a single string input. The only error it returns is ctx's.
func (s *Service) Run(ctx context.Context, raw string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := raw
	if s.opts.Refang {
		in = input.Refang(raw)
	}

	reason := validate.Check(in)
	result := &Result{
		Input:    raw,
		Hostname: validate.ExtractHostname(in),
		Valid:    reason == validate.ReasonNone,
		Reason:   reason.String(),
	}
	s.logger.Debug("checked input",
		"input", raw,
		"hostname", result.Hostname,
		"valid", result.Valid,
		"reason", result.Reason,
	)
	return result, nil
}

// RunValue validates an untyped value such as an element of a JSON array.
// Non-string values are reported invalid without attempting extraction.
func (s *Service) RunValue(ctx context.Context, v any) (*Result, error) {
	if str, ok := v.(string); ok {
		return s.Run(ctx, str)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := &Result{
		Input:  describe(v),
		Valid:  validate.IsDomainValue(v),
		Reason: ReasonNotString,
	}
	s.logger.Debug("rejected non-string input", "input", result.Input, "type", fmt.Sprintf("%T", v))
	return result, nil
}

// Extract returns the hostname extracted from raw without validating it.
func (s *Service) Extract(raw string) *Extraction {
	in := raw
	if s.opts.Refang {
		in = input.Refang(raw)
	}
	return &Extraction{Input: raw, Hostname: validate.ExtractHostname(in)}
}

// describe renders v the way it appeared in the JSON input.
func describe(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
