// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. Errors coming back from
// the model client can embed request URLs (with the API key in the query
// string), credentials, hostnames and local file paths; this package scrubs
// them so they never reach a client or a log line verbatim.
package redact

import (
	"regexp"
	"strings"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Applied in order; earlier rules see the unmodified input.
var rules = []rule{
	// Google API keys, bare or inside a URL.
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},
	// key=... query parameters.
	{regexp.MustCompile(`([?&](?:key|api_key|access_token)=)[^&\s"']+`), "${1}" + RedactedKeyPlaceholder},
	// Bearer tokens in header dumps.
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]{8,}`), "Bearer " + RedactedCredentialPlaceholder},
	// Generic key/secret assignments.
	{regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKeyPlaceholder},
	// Stack trace fragments.
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},
	// URLs are reduced to their scheme so hosts and paths do not leak.
	{regexp.MustCompile(`https?://[^\s"']+`), RedactedHostPlaceholder},
	// File paths.
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},
	// Bare host:port pairs, as in dial errors.
	{regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}:\d{1,5}\b`), RedactedHostPlaceholder},
	{regexp.MustCompile(`\b\d{1,3}(?:\.\d{1,3}){3}(?::\d{1,5})?\b`), RedactedHostPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Secret removes every occurrence of a known secret value from input before
// applying the pattern based rules. Used with the configured API key, which
// may not match any pattern.
func Secret(input, secret string) string {
	return Secrets(input, secret)
}

// Secrets is Secret for several known values. Empty values are ignored.
func Secrets(input string, secrets ...string) string {
	for _, secret := range secrets {
		if secret != "" {
			input = strings.ReplaceAll(input, secret, RedactedKeyPlaceholder)
		}
	}
	return String(input)
}
