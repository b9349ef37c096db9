// Package apperr defines shared error sentinels for the isdomain application.
// It is a leaf package with no internal imports so that both the validation
// core and the CLI can wrap the same sentinels without import cycles.
package apperr
