// Package validate decides whether a string has the shape of a legal DNS
// hostname.
//
// Validation is purely structural: nothing is resolved and no I/O is done.
// Input may be a bare hostname or a URL-like string; the hostname is first
// isolated by ExtractHostname and then checked against RFC 1035 label rules
// and the 63/253 length limits. The special name "localhost" is accepted
// when it is given without a scheme.
//
// Every function in this package is safe for concurrent use.
package validate
