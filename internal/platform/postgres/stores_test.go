package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestMapError(t *testing.T) {
	t.Parallel() // Enable parallel execution

	assert.NoError(t, MapError(nil))

	assert.ErrorIs(t, MapError(sql.ErrNoRows), store.ErrNotFound)

	unique := &pgconn.PgError{Code: uniqueViolationCode}
	assert.ErrorIs(t, MapError(unique), store.ErrDuplicate)

	fk := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "flashcards_topic_id_fkey"}
	err := MapError(fk)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.Contains(t, err.Error(), "flashcards_topic_id_fkey")

	plain := errors.New("connection refused")
	assert.Equal(t, plain, MapError(plain))
}

func TestFlashcardStoreGetByIDNotFound(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	id := uuid.New()
	mock.ExpectQuery("FROM flashcards").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := NewPostgresFlashcardStore(db, nil).GetByID(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrFlashcardNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlashcardStoreGetByIDScansRow(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	id := uuid.New()
	ownerID := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "owner_id", "topic_id", "front", "back", "repetition",
		"easiness_factor", "interval_days", "next_review_at", "created_at", "updated_at",
	}).AddRow(id.String(), ownerID.String(), nil, "front", "back", 2, 2.5, 6, now, now, now)

	mock.ExpectQuery("FROM flashcards").
		WithArgs(id).
		WillReturnRows(rows)

	card, err := NewPostgresFlashcardStore(db, nil).GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, card.ID)
	assert.Equal(t, ownerID, card.OwnerID)
	assert.Nil(t, card.TopicID)
	assert.Equal(t, 2, card.Repetition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlashcardStoreUpdateReviewStateNotFound(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	card, err := domain.NewFlashcard(uuid.New(), nil, "front", "back")
	require.NoError(t, err)

	mock.ExpectExec("UPDATE flashcards").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewPostgresFlashcardStore(db, nil).UpdateReviewState(context.Background(), card)
	assert.ErrorIs(t, err, store.ErrFlashcardNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlashcardStoreCreateMultipleRejectsInvalidCard(t *testing.T) {
	t.Parallel()
	db, _ := newMockDB(t)

	card, err := domain.NewFlashcard(uuid.New(), nil, "front", "back")
	require.NoError(t, err)
	card.EasinessFactor = 1.0 // below the floor

	err = NewPostgresFlashcardStore(db, nil).CreateMultiple(
		context.Background(), []*domain.Flashcard{card})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestUserStoreCreateDuplicateEmail(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	user, err := domain.NewUser("Asha", "asha@example.com")
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	err = NewPostgresUserStore(db, nil).Create(context.Background(), user)
	assert.ErrorIs(t, err, store.ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicStoreUpdateStatusRejectsInvalidStatus(t *testing.T) {
	t.Parallel()
	db, _ := newMockDB(t)

	err := NewPostgresTopicStore(db, nil).UpdateStatus(
		context.Background(), uuid.New(), domain.TopicStatus("archived"))
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestQuizStoreGetByIDDecodesQuestions(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	id := uuid.New()
	ownerID := uuid.New()
	questions := []domain.QuizQuestion{{
		ID:            uuid.New(),
		Question:      "What is 2+2?",
		Options:       []string{"1", "2", "3", "4"},
		CorrectAnswer: "4",
		Explanation:   "Basic arithmetic.",
	}}
	encoded, err := json.Marshal(questions)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{
		"id", "owner_id", "topic_id", "title", "difficulty", "questions", "created_at",
	}).AddRow(id.String(), ownerID.String(), nil, "Arithmetic", "easy", encoded, time.Now().UTC())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, topic_id, title, difficulty, questions, created_at")).
		WithArgs(id).
		WillReturnRows(rows)

	quiz, err := NewPostgresQuizStore(db, nil).GetByID(context.Background(), id)
	require.NoError(t, err)

	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "4", quiz.Questions[0].CorrectAnswer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewResult(0, 0), "flashcard"), store.ErrNotFound)
	assert.NoError(t, CheckRowsAffected(sqlmock.NewResult(0, 1), "flashcard"))

	err := CheckRowsAffected(nil, "flashcard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil result")
}
