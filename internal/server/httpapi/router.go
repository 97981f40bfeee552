package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Router assembles the full route tree with the standard middleware stack.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/refresh", h.handleRefresh)

	r.Group(func(r chi.Router) {
		r.Use(h.authMiddleware)

		r.Route("/fairs/{fairID}", func(r chi.Router) {
			r.Get("/", h.handleGetFair)
			r.Put("/", h.handleUpdateFair)
			r.Get("/submissions", h.handleListSubmissions)
			r.Post("/submissions", h.handleIngest)
		})

		r.Route("/submissions/{submissionID}", func(r chi.Router) {
			r.Get("/", h.handleGetSubmission)
			r.Delete("/", h.handleDeleteSubmission)
			r.Post("/votes", h.handleVote)
			r.Get("/comments", h.handleListComments)
			r.Post("/comments", h.handleCreateComment)
		})
	})

	return r
}
