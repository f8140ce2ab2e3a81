package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"dailydiet/internal/auth"
	"dailydiet/internal/config"
	"dailydiet/internal/http/handler"
	mw "dailydiet/internal/http/middleware"
	"dailydiet/internal/meal"
	"dailydiet/internal/metrics"
)

func NewRouter(cfg config.Config, log zerolog.Logger, users auth.UserStore, meals meal.Store, tokens *auth.Tokens) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(log))

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	uh := &handler.UserHandler{
		Users:        users,
		Tokens:       tokens,
		Agg:          &metrics.Aggregator{Store: meals},
		BcryptCost:   cfg.BcryptCost,
		CookieSecure: cfg.CookieSecure,
		Log:          log,
	}
	r.Post("/users/signup", uh.Signup)
	r.Post("/users/signin", uh.Signin)
	r.With(auth.RequireAuth(tokens, log)).Get("/users/metrics", uh.Metrics)

	mh := &handler.MealHandler{Meals: meals, Log: log}
	r.Route("/meals", func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens, log))

		r.Post("/", mh.Create)
		r.Get("/", mh.List)

		r.Get("/{id}", mh.Get)
		r.Put("/{id}", mh.Update)
		r.Delete("/{id}", mh.Delete)
	})

	return r
}
