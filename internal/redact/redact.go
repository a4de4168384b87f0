// Package redact scrubs credentials and other sensitive fragments from
// strings before they reach logs or error responses. Errors bubbling out of
// the database layer or the LLM provider can carry connection strings and
// API keys; everything logged through the shared response helpers passes
// through here first.
package redact

import "regexp"

// Placeholders inserted in place of matched fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	KeyPlaceholder        = "[REDACTED_KEY]"
	TokenPlaceholder      = "[REDACTED_TOKEN]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	PathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules apply in order; the specific ones run before the generic key rule
// so a already-redacted placeholder is never re-matched.
var rules = []rule{
	// Connection strings: drop the credentials, keep the host for debugging.
	{regexp.MustCompile(`(?i)(postgres(ql)?|mysql|mongodb)://[^@\s]+@`), CredentialPlaceholder},
	// password=..., pwd: "..."
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`), CredentialPlaceholder},
	// Google API keys, the shape the Gemini client is configured with.
	{regexp.MustCompile(`\bAIza[0-9A-Za-z_\-]{35}\b`), KeyPlaceholder},
	// Three-part JWTs.
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), TokenPlaceholder},
	// Generic api_key=..., secret: ..., token=...
	{regexp.MustCompile(`(?i)(api[_-]?key|secret|token|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), KeyPlaceholder},
	// Email addresses.
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), EmailPlaceholder},
	// Absolute file paths, e.g. uploaded document locations.
	{regexp.MustCompile(`(/[\w.-]+){2,}`), PathPlaceholder},
}

// String returns input with every sensitive fragment replaced by its
// placeholder.
func String(input string) string {
	if input == "" {
		return input
	}
	for _, r := range rules {
		input = r.pattern.ReplaceAllString(input, r.placeholder)
	}
	return input
}

// Error redacts an error's message. A nil error yields an empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
