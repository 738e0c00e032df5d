package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/ekaraca/gymhub-backend/internal/api/handlers"
	"github.com/ekaraca/gymhub-backend/internal/auth"
	"github.com/ekaraca/gymhub-backend/internal/config"
	"github.com/ekaraca/gymhub-backend/internal/metrics"
	"github.com/ekaraca/gymhub-backend/internal/middleware"
	"github.com/ekaraca/gymhub-backend/internal/models"
	"github.com/ekaraca/gymhub-backend/internal/services"
)

// NewRouter wires the endpoint layer. Reads on users and gyms are open;
// every write except registration runs behind the auth middleware, and
// memberships are authenticated end to end.
func NewRouter(cfg config.Config, tm *auth.TokenManager, us *services.UserService, gs *services.GymService, ms *services.MembershipService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.HTTPMetrics)

	authMW := middleware.NewAuthMiddleware(tm)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	authH := handlers.NewAuthHandler(us)
	userH := handlers.NewUserHandler(us)
	gymH := handlers.NewGymHandler(gs)
	memH := handlers.NewMembershipHandler(ms)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userH.List)
			r.Post("/", userH.Register)

			r.Group(func(r chi.Router) {
				r.Use(authMW.RequireAuth)
				r.Get("/me", userH.Me)
				r.Put("/me", userH.UpdateMe)
			})

			r.Get("/{id}", userH.Get)
			r.Group(func(r chi.Router) {
				r.Use(authMW.RequireAuth)
				r.Put("/{id}", userH.Update)
				r.Patch("/{id}", userH.Update)
				r.With(middleware.RequireRole(models.RoleAdmin)).Delete("/{id}", userH.Delete)
			})
		})

		r.Route("/gyms", func(r chi.Router) {
			r.Get("/", gymH.List)
			r.Get("/{id}", gymH.Get)

			r.Group(func(r chi.Router) {
				r.Use(authMW.RequireAuth)
				r.Post("/", gymH.Create)
				r.Put("/{id}", gymH.Update)
				r.Patch("/{id}", gymH.Update)
				r.Delete("/{id}", gymH.Delete)
			})
		})

		r.Route("/memberships", func(r chi.Router) {
			r.Use(authMW.RequireAuth)
			r.Get("/", memH.List)
			r.Post("/", memH.Create)
			r.Get("/{id}", memH.Get)
			r.Put("/{id}", memH.Update)
			r.Patch("/{id}", memH.Update)
			r.Delete("/{id}", memH.Delete)
		})
	})

	return r
}
