// Package fallback holds the built-in formatters that terminate every chain.
//
// Built-ins are total: they never fail. Malformed input is reported as a short
// user-facing message in place of formatted output.
package fallback
