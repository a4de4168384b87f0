package task

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
)

// memTaskStore is an in-memory TaskStore that records every status
// transition, so tests can assert on the lifecycle a task went through.
type memTaskStore struct {
	saveErr error

	mu       sync.Mutex
	tasks    map[uuid.UUID]Task
	status   map[uuid.UUID]TaskStatus
	history  map[uuid.UUID][]TaskStatus
	messages map[uuid.UUID]string
	statusAt map[uuid.UUID]time.Time
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{
		tasks:    make(map[uuid.UUID]Task),
		status:   make(map[uuid.UUID]TaskStatus),
		history:  make(map[uuid.UUID][]TaskStatus),
		messages: make(map[uuid.UUID]string),
		statusAt: make(map[uuid.UUID]time.Time),
	}
}

func (s *memTaskStore) SaveTask(_ context.Context, task Task) error {
	if s.saveErr != nil {
		return s.saveErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID()] = task
	s.status[task.ID()] = task.Status()
	s.history[task.ID()] = append(s.history[task.ID()], task.Status())
	s.statusAt[task.ID()] = time.Now()
	return nil
}

func (s *memTaskStore) UpdateTaskStatus(
	_ context.Context,
	taskID uuid.UUID,
	status TaskStatus,
	errorMsg string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[taskID] = status
	s.history[taskID] = append(s.history[taskID], status)
	s.messages[taskID] = errorMsg
	s.statusAt[taskID] = time.Now()
	return nil
}

func (s *memTaskStore) GetPendingTasks(_ context.Context) ([]Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []Task
	for id, task := range s.tasks {
		if s.status[id] == TaskStatusPending {
			pending = append(pending, task)
		}
	}
	return pending, nil
}

func (s *memTaskStore) GetProcessingTasks(_ context.Context, olderThan time.Duration) ([]Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var processing []Task
	for id, task := range s.tasks {
		if s.status[id] != TaskStatusProcessing {
			continue
		}
		if olderThan == 0 || time.Since(s.statusAt[id]) > olderThan {
			processing = append(processing, task)
		}
	}
	return processing, nil
}

func (s *memTaskStore) WithTx(*sql.Tx) TaskStore { return s }

func (s *memTaskStore) taskStatus(id uuid.UUID) TaskStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status[id]
}

func (s *memTaskStore) taskHistory(id uuid.UUID) []TaskStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TaskStatus(nil), s.history[id]...)
}

func (s *memTaskStore) errorMessage(id uuid.UUID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages[id]
}

func testRunnerConfig() TaskRunnerConfig {
	return TaskRunnerConfig{
		WorkerCount:            2,
		QueueSize:              8,
		StuckTaskAge:           time.Minute,
		StuckTaskCheckInterval: time.Hour, // keep the monitor quiet during tests
	}
}

func waitForStatus(t *testing.T, store *memTaskStore, id uuid.UUID, want TaskStatus) {
	t.Helper()
	require.Eventually(t, func() bool {
		return store.taskStatus(id) == want
	}, 2*time.Second, 5*time.Millisecond, "task never reached status %q", want)
}

func TestTaskRunnerIngestsDocumentEndToEnd(t *testing.T) {
	t.Parallel() // Enable parallel execution

	ownerID := uuid.New()
	ingestor := &fakeIngestor{topics: []*domain.Topic{
		mustTopic(t, ownerID, "Photosynthesis"),
		mustTopic(t, ownerID, "Cell Respiration"),
	}}
	saver := &fakeTopicSaver{}

	ingestion, err := NewDocumentIngestionTask(
		ownerID, "/uploads/biology.txt", ingestor, saver, discardLogger())
	require.NoError(t, err)

	store := newMemTaskStore()
	runner := NewTaskRunner(store, testRunnerConfig(), discardLogger())
	require.NoError(t, runner.Start())
	defer runner.Stop()

	require.NoError(t, runner.Submit(context.Background(), ingestion))
	waitForStatus(t, store, ingestion.ID(), TaskStatusCompleted)

	// The pipeline ran against the submitted document and persisted its topics.
	assert.Equal(t, ownerID, ingestor.gotOwnerID)
	assert.Equal(t, "/uploads/biology.txt", ingestor.gotPath)
	require.Len(t, saver.saved, 2)
	assert.Equal(t, "Photosynthesis", saver.saved[0].Name)

	// Lifecycle: persisted as pending, picked up, then completed.
	assert.Equal(t,
		[]TaskStatus{TaskStatusPending, TaskStatusProcessing, TaskStatusCompleted},
		store.taskHistory(ingestion.ID()))
}

func TestTaskRunnerRecordsIngestionFailure(t *testing.T) {
	t.Parallel()

	processErr := errors.New("document is corrupt")
	ingestion, err := NewDocumentIngestionTask(
		uuid.New(), "/uploads/broken.pdf",
		&fakeIngestor{err: processErr}, &fakeTopicSaver{}, discardLogger())
	require.NoError(t, err)

	store := newMemTaskStore()
	runner := NewTaskRunner(store, testRunnerConfig(), discardLogger())

	handled := make(chan error, 1)
	runner.SetErrorHandler(func(_ Task, err error) { handled <- err })

	require.NoError(t, runner.Start())
	defer runner.Stop()

	require.NoError(t, runner.Submit(context.Background(), ingestion))
	waitForStatus(t, store, ingestion.ID(), TaskStatusFailed)

	assert.Contains(t, store.errorMessage(ingestion.ID()), "document is corrupt")

	select {
	case err := <-handled:
		assert.ErrorIs(t, err, processErr)
	case <-time.After(2 * time.Second):
		t.Fatal("error handler was never invoked")
	}
}

func TestTaskRunnerSubmitPersistsBeforeQueueing(t *testing.T) {
	t.Parallel()

	ingestion, err := NewDocumentIngestionTask(
		uuid.New(), "/uploads/notes.txt",
		&fakeIngestor{}, &fakeTopicSaver{}, discardLogger())
	require.NoError(t, err)

	store := newMemTaskStore()
	store.saveErr = errors.New("database unavailable")
	runner := NewTaskRunner(store, testRunnerConfig(), discardLogger())

	err = runner.Submit(context.Background(), ingestion)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save task")
}

func TestTaskRunnerSubmitFailsWhenQueueIsFull(t *testing.T) {
	t.Parallel()

	config := testRunnerConfig()
	config.QueueSize = 1
	store := newMemTaskStore()
	// Workers are never started, so the first task stays buffered.
	runner := NewTaskRunner(store, config, discardLogger())

	newIngestion := func() Task {
		ingestion, err := NewDocumentIngestionTask(
			uuid.New(), "/uploads/notes.txt",
			&fakeIngestor{}, &fakeTopicSaver{}, discardLogger())
		require.NoError(t, err)
		return ingestion
	}

	require.NoError(t, runner.Submit(context.Background(), newIngestion()))

	err := runner.Submit(context.Background(), newIngestion())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestTaskRunnerRecoversUnfinishedTasks(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	ctx := context.Background()
	store := newMemTaskStore()

	// A task persisted as pending by a previous instance that never ran it.
	pendingSaver := &fakeTopicSaver{}
	pending, err := NewDocumentIngestionTask(
		ownerID, "/uploads/chemistry.txt",
		&fakeIngestor{topics: []*domain.Topic{mustTopic(t, ownerID, "Stoichiometry")}},
		pendingSaver, discardLogger())
	require.NoError(t, err)
	require.NoError(t, store.SaveTask(ctx, pending))

	// A task interrupted mid-processing by a crash.
	interruptedSaver := &fakeTopicSaver{}
	interrupted, err := NewDocumentIngestionTask(
		ownerID, "/uploads/physics.txt",
		&fakeIngestor{topics: []*domain.Topic{mustTopic(t, ownerID, "Kinematics")}},
		interruptedSaver, discardLogger())
	require.NoError(t, err)
	require.NoError(t, store.SaveTask(ctx, interrupted))
	require.NoError(t, store.UpdateTaskStatus(ctx, interrupted.ID(), TaskStatusProcessing, ""))

	runner := NewTaskRunner(store, testRunnerConfig(), discardLogger())
	require.NoError(t, runner.Start())
	defer runner.Stop()

	waitForStatus(t, store, pending.ID(), TaskStatusCompleted)
	waitForStatus(t, store, interrupted.ID(), TaskStatusCompleted)

	require.Len(t, pendingSaver.saved, 1)
	require.Len(t, interruptedSaver.saved, 1)

	// The interrupted task was reset to pending before being re-run.
	assert.Contains(t, store.taskHistory(interrupted.ID()), TaskStatusPending)
}
