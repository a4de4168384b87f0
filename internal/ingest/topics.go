package ingest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// fallbackPreviewLimit bounds the content of the single fallback topic
// created when no headings are found.
const fallbackPreviewLimit = 5000

// TopicContent is one extracted topic with its accompanying text.
type TopicContent struct {
	Topic   string `json:"topic"`
	Content string `json:"content"`
}

// ExtractTopics splits document text into topics using heading detection.
// Text under each detected heading becomes that topic's content. When no
// headings are found, the whole document (up to a preview limit) becomes a
// single "Document Content" topic.
func ExtractTopics(text string) []TopicContent {
	var (
		results        []TopicContent
		currentTopic   string
		currentContent []string
	)

	flush := func() {
		if currentTopic == "" {
			return
		}
		results = append(results, TopicContent{
			Topic:   strings.TrimSpace(currentTopic),
			Content: strings.TrimSpace(strings.Join(currentContent, "\n")),
		})
		currentContent = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if isHeading(line) {
			flush()
			currentTopic = strings.TrimSpace(line)
		} else {
			currentContent = append(currentContent, line)
		}
	}
	flush()

	if len(results) == 0 {
		preview := text
		if len(preview) > fallbackPreviewLimit {
			cut := fallbackPreviewLimit
			// Back up to a rune boundary so the cut never splits a
			// multi-byte character.
			for cut > 0 && !utf8.RuneStart(preview[cut]) {
				cut--
			}
			preview = preview[:cut]
		}
		results = append(results, TopicContent{Topic: "Document Content", Content: preview})
	}

	return results
}

// isHeading reports whether a line looks like a section heading: either
// mostly-uppercase text, or a short run of Title Case words.
func isHeading(line string) bool {
	clean := strings.TrimSpace(line)
	if clean == "" {
		return false
	}

	if clean == strings.ToUpper(clean) && hasLetter(clean) && len(clean) > 3 {
		return true
	}

	words := strings.Fields(clean)
	if len(words) > 8 {
		return false
	}
	for _, word := range words {
		if !isAlpha(word) {
			continue
		}
		first := []rune(word)[0]
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}
