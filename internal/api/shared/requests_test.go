package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradeCardRequest mirrors the review-grading body the flashcard endpoint
// accepts: a recall quality on the 0..5 scale.
type gradeCardRequest struct {
	Quality int `json:"quality" validate:"gte=0,lte=5"`
}

// ingestRequest carries its own validation instead of struct tags.
type ingestRequest struct {
	Path string `json:"path"`
}

var errBlankPath = errors.New("path must not be blank")

func (r ingestRequest) Validate() error {
	if strings.TrimSpace(r.Path) == "" {
		return errBlankPath
	}
	return nil
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel() // Enable parallel execution

	t.Run("decodes a grading body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/flashcards/review",
			strings.NewReader(`{"quality": 4}`))

		var body gradeCardRequest
		require.NoError(t, DecodeJSON(req, &body))
		assert.Equal(t, 4, body.Quality)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/flashcards/review",
			strings.NewReader(`{"quality": }`))

		var body gradeCardRequest
		err := DecodeJSON(req, &body)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid request body")
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/flashcards/review", strings.NewReader(""))

		var body gradeCardRequest
		assert.Error(t, DecodeJSON(req, &body))
	})
}

func TestValidateRequestStructTags(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(gradeCardRequest{Quality: 0}))
	assert.NoError(t, ValidateRequest(gradeCardRequest{Quality: 5}))
	assert.Error(t, ValidateRequest(gradeCardRequest{Quality: 6}))
	assert.Error(t, ValidateRequest(gradeCardRequest{Quality: -1}))
}

func TestValidateRequestHonorsCustomValidator(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(ingestRequest{Path: "/uploads/notes.txt"}))
	assert.ErrorIs(t, ValidateRequest(ingestRequest{Path: "   "}), errBlankPath)
}
