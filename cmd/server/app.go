package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/agent"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/api"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/config"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain/srs"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/generation"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/ingest"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/orchestrator"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/platform/gemini"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/platform/postgres"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/retrieval"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/service"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/task"
)

// application holds the composed dependency graph of the server.
type application struct {
	cfg    *config.Config
	logger *slog.Logger

	db         *sql.DB
	indexDB    *sql.DB
	taskRunner *task.TaskRunner
	router     http.Handler
}

// newApplication wires every component of the server together. Construction
// fails fast: any unreachable dependency is reported before the server
// accepts traffic.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Stores
	userStore := postgres.NewPostgresUserStore(db, logger)
	topicStore := postgres.NewPostgresTopicStore(db, logger)
	cardStore := postgres.NewPostgresFlashcardStore(db, logger)
	quizStore := postgres.NewPostgresQuizStore(db, logger)
	taskStore := postgres.NewPostgresTaskStore(db)

	// LLM provider: live Gemini when an API key is configured, otherwise the
	// deterministic mock so the whole platform stays usable offline.
	var provider llm.Provider
	if cfg.LLM.GeminiAPIKey != "" {
		geminiProvider, err := gemini.NewProvider(ctx, cfg.LLM, logger)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create Gemini provider: %w", err)
		}
		provider = geminiProvider
		logger.Info("using Gemini LLM provider", "model", cfg.LLM.Model)
	} else {
		provider = llm.NewMockProvider(logger)
		logger.Warn("no Gemini API key configured, using deterministic mock provider")
	}

	// Embedder follows the provider choice.
	var embedder retrieval.Embedder
	if cfg.LLM.GeminiAPIKey != "" {
		embedder, err = gemini.NewEmbedder(ctx, cfg.LLM.GeminiAPIKey, cfg.Retrieval)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create Gemini embedder: %w", err)
		}
	} else {
		embedder = retrieval.NewHashEmbedder(cfg.Retrieval.EmbeddingDimensions)
	}

	// Per-user retrieval index on its own SQLite handle.
	indexDB, err := retrieval.OpenIndex(cfg.Retrieval.IndexPath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open retrieval index: %w", err)
	}
	retriever, err := retrieval.NewSQLiteRetriever(indexDB, embedder, logger)
	if err != nil {
		_ = indexDB.Close()
		_ = db.Close()
		return nil, fmt.Errorf("failed to create retriever: %w", err)
	}

	// Agents and orchestration
	registry := agent.NewDefaultRegistry(provider, retriever, logger)
	goalOrchestrator := orchestrator.New(provider, registry, logger)

	// Document ingestion pipeline running on the background task runner.
	ingestService := ingest.NewService(ingest.NewTextExtractor(), retriever, provider, logger)
	taskFactory := task.NewDocumentIngestionTaskFactory(ingestService, topicStore, logger)
	taskRunner := task.NewTaskRunner(taskStore, task.TaskRunnerConfig{
		WorkerCount:            cfg.Task.WorkerCount,
		QueueSize:              cfg.Task.QueueSize,
		StuckTaskAge:           time.Duration(cfg.Task.StuckTaskAge) * time.Minute,
		StuckTaskCheckInterval: 5 * time.Minute,
	}, logger)

	// Services
	reviewService := service.NewFlashcardReviewService(db, cardStore, srs.NewDefaultService(), logger)
	quizService := service.NewQuizService(
		agent.NewQuizGenAgent(provider, retriever, logger), quizStore, logger)
	cardGenService := service.NewCardGenerationService(
		generation.NewLLMGenerator(provider, logger), topicStore, cardStore, logger)

	// Handlers
	router := newRouter(routerDeps{
		users:     api.NewUserHandler(userStore, logger),
		topics:    api.NewTopicHandler(topicStore, cardGenService, logger),
		cards:     api.NewFlashcardHandler(reviewService, logger),
		quizzes:   api.NewQuizHandler(quizService, logger),
		goals:     api.NewGoalHandler(goalOrchestrator, logger),
		documents: api.NewDocumentHandler(taskFactory, taskRunner, logger),
	})

	return &application{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		indexDB:    indexDB,
		taskRunner: taskRunner,
		router:     router,
	}, nil
}

// start launches the background task runner. Start also re-queues tasks that
// were pending or processing when a previous instance stopped.
func (a *application) start() error {
	if err := a.taskRunner.Start(); err != nil {
		return fmt.Errorf("failed to start task runner: %w", err)
	}
	return nil
}

// Close releases every resource the application holds.
func (a *application) Close() {
	a.taskRunner.Stop()
	if err := a.indexDB.Close(); err != nil {
		a.logger.Warn("failed to close retrieval index", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database connection", "error", err)
	}
}
