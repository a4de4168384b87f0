package retrieval

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	// Pure-Go SQLite driver backing the chunk index.
	_ "modernc.org/sqlite"
)

// DefaultTopK is the number of chunks returned by Query when the caller does
// not specify a limit.
const DefaultTopK = 5

// ContextSeparator joins retrieved chunks into a single grounding string.
const ContextSeparator = "\n---\n"

// Retriever maintains one semantically-searchable text collection per owner.
//
// Chunks never leak between owners: every operation is scoped to the owner ID
// it was called with, and Query can only ever see that owner's collection.
type Retriever interface {
	// AddChunks embeds each text and stores it in the owner's collection,
	// tagged with the source label. Chunk IDs default to the deterministic
	// "sourceLabel_index" form, so re-adding the same source replaces the
	// previous chunks instead of duplicating them; callers that manage
	// their own chunk identity may pass one explicit ID per text instead.
	// Returns the assigned chunk IDs.
	AddChunks(ctx context.Context, ownerID string, texts []string, sourceLabel string, chunkIDs ...string) ([]string, error)

	// Query embeds queryText and returns the topK most similar chunks from
	// the owner's collection, concatenated in similarity-descending order
	// and joined by ContextSeparator. Returns an empty string when the
	// owner has no chunks. topK <= 0 uses DefaultTopK.
	Query(ctx context.Context, ownerID, queryText string, topK int) (string, error)

	// DeleteChunk removes a chunk from the owner's collection.
	// Deleting an absent chunk is a no-op.
	DeleteChunk(ctx context.Context, ownerID, chunkID string) error
}

// SQLiteRetriever implements Retriever on a SQLite chunk table, ranking
// results by cosine similarity computed in process. Writes are serialized per
// owner; reads and writes for different owners proceed concurrently.
type SQLiteRetriever struct {
	db       *sql.DB
	embedder Embedder
	logger   *slog.Logger

	mu         sync.Mutex
	ownerLocks map[string]*sync.Mutex
}

const chunkSchema = `
CREATE TABLE IF NOT EXISTS chunks (
	owner_id   TEXT NOT NULL,
	chunk_id   TEXT NOT NULL,
	source     TEXT NOT NULL,
	content    TEXT NOT NULL,
	embedding  TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (owner_id, chunk_id)
);
CREATE INDEX IF NOT EXISTS idx_chunks_owner ON chunks(owner_id);
`

// OpenIndex opens (creating if necessary) the SQLite database backing the
// chunk index. Use ":memory:" for an ephemeral index.
func OpenIndex(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return db, nil
}

// NewSQLiteRetriever creates a retriever on the given database handle,
// creating the chunk table if it does not exist.
func NewSQLiteRetriever(db *sql.DB, embedder Embedder, logger *slog.Logger) (*SQLiteRetriever, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: nil database handle", ErrUnavailable)
	}
	if embedder == nil {
		return nil, fmt.Errorf("%w: nil embedder", ErrUnavailable)
	}

	if _, err := db.Exec(chunkSchema); err != nil {
		return nil, fmt.Errorf("%w: failed to create chunk schema: %v", ErrUnavailable, err)
	}

	return &SQLiteRetriever{
		db:         db,
		embedder:   embedder,
		logger:     logger.With("component", "retriever"),
		ownerLocks: make(map[string]*sync.Mutex),
	}, nil
}

// AddChunks implements the Retriever interface.
func (r *SQLiteRetriever) AddChunks(
	ctx context.Context,
	ownerID string,
	texts []string,
	sourceLabel string,
	chunkIDs ...string,
) ([]string, error) {
	if ownerID == "" {
		return nil, ErrEmptyOwner
	}
	if len(chunkIDs) > 0 && len(chunkIDs) != len(texts) {
		return nil, fmt.Errorf("%w: got %d chunk IDs for %d texts",
			ErrChunkIDMismatch, len(chunkIDs), len(texts))
	}
	if len(texts) == 0 {
		return nil, nil
	}

	embeddings, err := r.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding failed: %v", ErrUnavailable, err)
	}

	lock := r.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	ids := make([]string, 0, len(texts))
	for i, text := range texts {
		chunkID := fmt.Sprintf("%s_%d", sourceLabel, i)
		if len(chunkIDs) > 0 {
			chunkID = chunkIDs[i]
		}

		vec, err := json.Marshal(embeddings[i])
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode embedding: %v", ErrUnavailable, err)
		}

		// REPLACE keeps re-ingestion of the same source idempotent.
		_, err = r.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO chunks (owner_id, chunk_id, source, content, embedding)
			 VALUES (?, ?, ?, ?, ?)`,
			ownerID, chunkID, sourceLabel, text, string(vec))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to store chunk: %v", ErrUnavailable, err)
		}

		ids = append(ids, chunkID)
	}

	r.logger.DebugContext(ctx, "chunks stored",
		"owner_id", ownerID,
		"source", sourceLabel,
		"count", len(ids))

	return ids, nil
}

// Query implements the Retriever interface.
func (r *SQLiteRetriever) Query(
	ctx context.Context,
	ownerID, queryText string,
	topK int,
) (string, error) {
	if ownerID == "" {
		return "", ErrEmptyOwner
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	queryVec, err := r.embedder.Embed(ctx, queryText)
	if err != nil {
		return "", fmt.Errorf("%w: embedding failed: %v", ErrUnavailable, err)
	}

	// Hard isolation invariant: the scan is restricted to this owner's rows.
	rows, err := r.db.QueryContext(ctx,
		`SELECT chunk_id, content, embedding FROM chunks WHERE owner_id = ?`,
		ownerID)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read chunks: %v", ErrUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	type scored struct {
		chunkID    string
		content    string
		similarity float64
	}

	var candidates []scored
	for rows.Next() {
		var chunkID, content, embeddingJSON string
		if err := rows.Scan(&chunkID, &content, &embeddingJSON); err != nil {
			return "", fmt.Errorf("%w: failed to scan chunk: %v", ErrUnavailable, err)
		}

		var vec []float32
		if err := json.Unmarshal([]byte(embeddingJSON), &vec); err != nil {
			return "", fmt.Errorf("%w: corrupt embedding for chunk %s: %v", ErrUnavailable, chunkID, err)
		}

		similarity, err := CosineSimilarity(queryVec, vec)
		if err != nil {
			// Dimension mismatch happens when the embedding model changed
			// under an existing index; skip rather than fail the query.
			r.logger.WarnContext(ctx, "skipping chunk with mismatched embedding",
				"owner_id", ownerID,
				"chunk_id", chunkID,
				"error", err)
			continue
		}

		candidates = append(candidates, scored{chunkID: chunkID, content: content, similarity: similarity})
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("%w: failed to read chunks: %v", ErrUnavailable, err)
	}

	if len(candidates) == 0 {
		return "", nil
	}

	// Similarity-descending, chunk ID as the tie-break so identical queries
	// against an unchanged store return an identical ordering.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].similarity != candidates[j].similarity {
			return candidates[i].similarity > candidates[j].similarity
		}
		return candidates[i].chunkID < candidates[j].chunkID
	})

	if len(candidates) > topK {
		candidates = candidates[:topK]
	}

	parts := make([]string, len(candidates))
	for i, c := range candidates {
		parts[i] = c.content
	}

	return strings.Join(parts, ContextSeparator), nil
}

// DeleteChunk implements the Retriever interface.
func (r *SQLiteRetriever) DeleteChunk(ctx context.Context, ownerID, chunkID string) error {
	if ownerID == "" {
		return ErrEmptyOwner
	}

	lock := r.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM chunks WHERE owner_id = ? AND chunk_id = ?`,
		ownerID, chunkID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete chunk: %v", ErrUnavailable, err)
	}

	return nil
}

func (r *SQLiteRetriever) ownerLock(ownerID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.ownerLocks[ownerID]
	if !ok {
		lock = &sync.Mutex{}
		r.ownerLocks[ownerID] = lock
	}
	return lock
}
