package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Middleware is a standard net/http middleware.
type Middleware = func(next http.Handler) http.Handler

// NewHandler wires all routes. authGate protects the routes that
// require a valid bearer token; extra middlewares (metrics) run on
// every request. metricsHandler may be nil to skip the /metrics route.
func NewHandler(authHandler *AuthHandler, courseHandler *CourseHandler, authGate Middleware, metricsHandler http.Handler, extra ...Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	for _, mw := range extra {
		r.Use(mw)
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/reset-password", authHandler.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(authGate)
			r.Post("/logout", authHandler.Logout)
			r.Put("/change-password", authHandler.ChangePassword)
			r.Get("/me", authHandler.Me)
		})
	})

	r.Route("/courses", func(r chi.Router) {
		r.Get("/", courseHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(authGate)
			r.Post("/", courseHandler.Create)
			r.Put("/{id}", courseHandler.Update)
			r.Delete("/{id}", courseHandler.Delete)
		})
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	return r
}
