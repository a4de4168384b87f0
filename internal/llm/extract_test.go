package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name     string
		reply    string
		expected string
	}{
		{
			name:     "language-tagged fence",
			reply:    "```json\n[{\"front\":\"a\",\"back\":\"b\"}]\n```",
			expected: `[{"front":"a","back":"b"}]`,
		},
		{
			name:     "bare fence",
			reply:    "```\n{\"title\": \"Lesson\"}\n```",
			expected: `{"title": "Lesson"}`,
		},
		{
			name:     "no fence",
			reply:    `{"score": 80}`,
			expected: `{"score": 80}`,
		},
		{
			name:     "surrounding whitespace",
			reply:    "\n\n  ```json\n[1, 2, 3]\n```  \n",
			expected: `[1, 2, 3]`,
		},
		{
			name:     "inner backticks preserved",
			reply:    "```json\n{\"explanation\": \"use `var` here\"}\n```",
			expected: "{\"explanation\": \"use `var` here\"}",
		},
		{
			name:     "empty reply",
			reply:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractJSON(tc.reply))
		})
	}
}

func TestExtractJSONFencedCardList(t *testing.T) {
	t.Parallel()

	// A fenced card list must decode to a one-element list after stripping.
	reply := "```json\n[{\"front\":\"a\",\"back\":\"b\"}]\n```"

	var cards []struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	}
	err := json.Unmarshal([]byte(ExtractJSON(reply)), &cards)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "a", cards[0].Front)
	assert.Equal(t, "b", cards[0].Back)
}
