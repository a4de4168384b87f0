package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain/srs"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
)

// fakeFlashcardStore implements store.FlashcardStore backed by a map.
// WithTx returns the same store; transaction mechanics are exercised through
// sqlmock's Begin/Commit/Rollback expectations.
type fakeFlashcardStore struct {
	cards     map[uuid.UUID]*domain.Flashcard
	listErr   error
	updateErr error
}

func newFakeFlashcardStore() *fakeFlashcardStore {
	return &fakeFlashcardStore{cards: make(map[uuid.UUID]*domain.Flashcard)}
}

func (f *fakeFlashcardStore) CreateMultiple(ctx context.Context, cards []*domain.Flashcard) error {
	for _, card := range cards {
		f.cards[card.ID] = card
	}
	return nil
}

func (f *fakeFlashcardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	card, ok := f.cards[id]
	if !ok {
		return nil, store.ErrFlashcardNotFound
	}
	copied := *card
	return &copied, nil
}

func (f *fakeFlashcardStore) UpdateReviewState(ctx context.Context, card *domain.Flashcard) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.cards[card.ID]; !ok {
		return store.ErrFlashcardNotFound
	}
	copied := *card
	f.cards[card.ID] = &copied
	return nil
}

func (f *fakeFlashcardStore) ListDue(
	ctx context.Context,
	ownerID uuid.UUID,
	now time.Time,
	limit int,
) ([]*domain.Flashcard, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var due []*domain.Flashcard
	for _, card := range f.cards {
		if card.OwnerID == ownerID && !card.NextReviewAt.After(now) {
			copied := *card
			due = append(due, &copied)
		}
	}
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (f *fakeFlashcardStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.cards, id)
	return nil
}

func (f *fakeFlashcardStore) WithTx(tx *sql.Tx) store.FlashcardStore {
	return f
}

func newReviewFixture(t *testing.T) (FlashcardReviewService, *fakeFlashcardStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cards := newFakeFlashcardStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewFlashcardReviewService(db, cards, srs.NewDefaultService(), logger)
	return svc, cards, mock
}

func mustCard(t *testing.T, ownerID uuid.UUID) *domain.Flashcard {
	t.Helper()
	card, err := domain.NewFlashcard(ownerID, nil, "What is entropy?", "A measure of disorder.")
	require.NoError(t, err)
	return card
}

func TestGetNextCard(t *testing.T) {
	t.Parallel() // Enable parallel execution

	ownerID := uuid.New()

	t.Run("returns a due card", func(t *testing.T) {
		t.Parallel()

		svc, cards, _ := newReviewFixture(t)
		card := mustCard(t, ownerID)
		require.NoError(t, cards.CreateMultiple(context.Background(), []*domain.Flashcard{card}))

		got, err := svc.GetNextCard(context.Background(), ownerID)
		require.NoError(t, err)
		assert.Equal(t, card.ID, got.ID)
	})

	t.Run("returns ErrNoCardsDue when nothing is due", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newReviewFixture(t)
		_, err := svc.GetNextCard(context.Background(), ownerID)
		assert.ErrorIs(t, err, ErrNoCardsDue)
	})

	t.Run("other owners' cards are not visible", func(t *testing.T) {
		t.Parallel()

		svc, cards, _ := newReviewFixture(t)
		card := mustCard(t, uuid.New())
		require.NoError(t, cards.CreateMultiple(context.Background(), []*domain.Flashcard{card}))

		_, err := svc.GetNextCard(context.Background(), ownerID)
		assert.ErrorIs(t, err, ErrNoCardsDue)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		t.Parallel()

		svc, cards, _ := newReviewFixture(t)
		cards.listErr = errors.New("connection reset")

		_, err := svc.GetNextCard(context.Background(), ownerID)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "get_next_card", svcErr.Operation)
	})
}

func TestSubmitReview(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("updates the review schedule", func(t *testing.T) {
		t.Parallel()

		svc, cards, mock := newReviewFixture(t)
		card := mustCard(t, ownerID)
		require.NoError(t, cards.CreateMultiple(context.Background(), []*domain.Flashcard{card}))

		mock.ExpectBegin()
		mock.ExpectCommit()

		updated, err := svc.SubmitReview(context.Background(), ownerID, card.ID, 5)
		require.NoError(t, err)

		assert.Equal(t, 1, updated.Repetition)
		assert.Equal(t, 1, updated.IntervalDays)
		assert.True(t, updated.NextReviewAt.After(card.NextReviewAt))

		persisted, err := cards.GetByID(context.Background(), card.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, persisted.Repetition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects cards owned by another user", func(t *testing.T) {
		t.Parallel()

		svc, cards, mock := newReviewFixture(t)
		card := mustCard(t, uuid.New())
		require.NoError(t, cards.CreateMultiple(context.Background(), []*domain.Flashcard{card}))

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.SubmitReview(context.Background(), ownerID, card.ID, 4)
		assert.ErrorIs(t, err, ErrNotOwned)

		// Schedule must be untouched after the rollback.
		persisted, err := cards.GetByID(context.Background(), card.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, persisted.Repetition)
	})

	t.Run("returns not found for unknown card", func(t *testing.T) {
		t.Parallel()

		svc, _, mock := newReviewFixture(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.SubmitReview(context.Background(), ownerID, uuid.New(), 4)
		assert.ErrorIs(t, err, store.ErrFlashcardNotFound)
	})

	t.Run("rejects invalid quality", func(t *testing.T) {
		t.Parallel()

		svc, cards, mock := newReviewFixture(t)
		card := mustCard(t, ownerID)
		require.NoError(t, cards.CreateMultiple(context.Background(), []*domain.Flashcard{card}))

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.SubmitReview(context.Background(), ownerID, card.ID, 6)
		assert.ErrorIs(t, err, srs.ErrInvalidQuality)
	})

	t.Run("propagates persistence failures", func(t *testing.T) {
		t.Parallel()

		svc, cards, mock := newReviewFixture(t)
		card := mustCard(t, ownerID)
		require.NoError(t, cards.CreateMultiple(context.Background(), []*domain.Flashcard{card}))
		cards.updateErr = errors.New("write failed")

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.SubmitReview(context.Background(), ownerID, card.ID, 4)
		assert.ErrorContains(t, err, "write failed")
	})
}
