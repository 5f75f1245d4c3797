package main

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eggy/internal/avatars"
	"eggy/internal/identity"
	"eggy/internal/mailer"
	"eggy/internal/session"
	"eggy/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type application struct {
	config    config
	store     store.Storage
	identity  *identity.Service
	sessions  *session.Slot
	avatars   avatars.Store
	mailer    mailer.Client // nil when mail is not configured
	templates *template.Template
	logger    *zap.SugaredLogger
}

type config struct {
	addr       string
	env        string
	db         dbConfig
	bcryptCost int
	uploadDir  string
	mail       mailConfig
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime string
}

type mailConfig struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/v1/health", app.healthCheckHandler)

	// Pages
	r.Get("/", app.homeHandler)
	r.Get("/restaurants", app.establishmentsHandler)
	r.Get("/userProfile", app.userProfileHandler)

	// Actions
	r.Post("/update-image", app.carouselHandler)
	r.Post("/create-user", app.createUserHandler)
	r.Post("/read-user", app.loginHandler)
	r.Post("/logout-user", app.logoutHandler)
	r.Post("/update-profile", app.updateProfileHandler)
	r.Post("/delete-account", app.deleteAccountHandler)

	// Static assets; /images also holds uploaded avatars.
	images := http.FileServer(http.Dir(app.config.uploadDir))
	r.Handle("/images/*", http.StripPrefix("/images/", images))
	static := http.FileServer(http.Dir("./web/static"))
	r.Handle("/static/*", http.StripPrefix("/static/", static))

	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":  "ok",
		"env":     app.config.env,
		"version": version,
	}
	if err := writeJSON(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
