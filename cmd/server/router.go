package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/api"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/api/middleware"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/api/shared"
)

// routerDeps bundles the handlers the router mounts.
type routerDeps struct {
	users     *api.UserHandler
	topics    *api.TopicHandler
	cards     *api.FlashcardHandler
	quizzes   *api.QuizHandler
	goals     *api.GoalHandler
	documents *api.DocumentHandler
}

// newRouter assembles the HTTP route tree.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", deps.users.CreateUser)
		r.Get("/users/{id}", deps.users.GetUser)

		r.Post("/goals", deps.goals.SubmitGoal)

		r.Post("/documents", deps.documents.IngestDocument)

		r.Get("/topics", deps.topics.ListTopics)
		r.Post("/topics/{id}/flashcards", deps.topics.GenerateCards)

		r.Get("/flashcards/next", deps.cards.GetNextCard)
		r.Post("/flashcards/{id}/review", deps.cards.SubmitReview)

		r.Post("/quizzes/generate", deps.quizzes.GenerateQuiz)
		r.Get("/quizzes", deps.quizzes.ListQuizzes)
		r.Get("/quizzes/{id}", deps.quizzes.GetQuiz)
	})

	return r
}
