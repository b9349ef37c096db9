// Package version reports the isdomain build version. Values come from
// -ldflags when set and otherwise from runtime/debug.BuildInfo.
package version
