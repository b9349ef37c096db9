package validate

import (
	"fmt"

	"github.com/tbckr/isdomain/internal/apperr"
)

// Sentinel errors returned by Diagnose. All of them wrap apperr.ErrInvalidInput.
var (
	ErrEmptyInput      = fmt.Errorf("%w: empty input", apperr.ErrInvalidInput)
	ErrEmptyHostname   = fmt.Errorf("%w: no hostname", apperr.ErrInvalidInput)
	ErrHostnameTooLong = fmt.Errorf("%w: hostname exceeds %d characters", apperr.ErrInvalidInput, MaxHostnameLength)
	ErrMissingDot      = fmt.Errorf("%w: hostname has no dot", apperr.ErrInvalidInput)
	ErrMalformed       = fmt.Errorf("%w: malformed hostname", apperr.ErrInvalidInput)
	ErrLabelTooLong    = fmt.Errorf("%w: label exceeds %d characters", apperr.ErrInvalidInput, MaxLabelLength)
)

// Reason identifies the first check an input failed.
type Reason int

// Reasons in the order the checks run.
const (
	ReasonNone Reason = iota
	ReasonEmptyInput
	ReasonEmptyHostname
	ReasonHostnameTooLong
	ReasonMissingDot
	ReasonMalformed
	ReasonLabelTooLong
)

var reasonNames = map[Reason]string{
	ReasonNone:            "",
	ReasonEmptyInput:      "empty input",
	ReasonEmptyHostname:   "no hostname",
	ReasonHostnameTooLong: "hostname too long",
	ReasonMissingDot:      "missing dot",
	ReasonMalformed:       "malformed",
	ReasonLabelTooLong:    "label too long",
}

var reasonErrors = map[Reason]error{
	ReasonEmptyInput:      ErrEmptyInput,
	ReasonEmptyHostname:   ErrEmptyHostname,
	ReasonHostnameTooLong: ErrHostnameTooLong,
	ReasonMissingDot:      ErrMissingDot,
	ReasonMalformed:       ErrMalformed,
	ReasonLabelTooLong:    ErrLabelTooLong,
}

// String returns a short human-readable name; empty for ReasonNone.
func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Err returns the sentinel error for r, or nil for ReasonNone.
func (r Reason) Err() error {
	return reasonErrors[r]
}
