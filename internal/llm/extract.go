package llm

import "strings"

// ExtractJSON strips a single leading/trailing Markdown code fence from a
// model reply, returning the inner text ready for JSON decoding.
//
// Models frequently wrap structured replies in ```json ... ``` or bare
// ``` ... ``` fences even when told not to. Only one outer fence pair is
// removed; replies without a fence are returned trimmed but otherwise
// untouched.
func ExtractJSON(reply string) string {
	text := strings.TrimSpace(reply)

	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")

	// Drop a language tag such as "json" on the opening fence line.
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{}[]\"") {
			text = text[idx+1:]
		}
	}

	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}
