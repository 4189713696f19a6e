package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime   time.Time
	notifications *sync.WaitGroup
}

// NewServer wires the router for settings. notifier may be nil.
func NewServer(settings config.Settings, database database.Database, notifier ContactNotifier) (Server, error) {
	startupTime := time.Now()
	notifications := &sync.WaitGroup{}

	router, err := newRouter(database, settings,
		withStartupTime(startupTime),
		withNotifier(notifier, notifications),
		withAccessLogger(log.With().Str("component", "http").Logger()),
	)
	if err != nil {
		return Server{}, err
	}

	server := &http.Server{
		Addr:              settings.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       settings.ReadTimeout,  // Timeout for reading the entire request
		WriteTimeout:      settings.WriteTimeout, // Timeout for writing the response
		IdleTimeout:       settings.IdleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime, notifications}, nil
}

type router struct {
	startupTime   time.Time
	notifier      ContactNotifier
	notifications *sync.WaitGroup
	accessLogger  zerolog.Logger
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

// withNotifier sets the contact notifier. Background sends are tracked in notifications.
func withNotifier(notifier ContactNotifier, notifications *sync.WaitGroup) func(*router) {
	return func(r *router) {
		r.notifier = notifier
		r.notifications = notifications
	}
}

func withAccessLogger(logger zerolog.Logger) func(*router) {
	return func(r *router) {
		r.accessLogger = logger
	}
}

func newRouter(database database.Database, settings config.Settings, opts ...func(*router)) (*chi.Mux, error) {
	router := router{
		startupTime:   time.Now(),
		notifications: &sync.WaitGroup{},
		accessLogger:  log.Logger,
	}
	for _, opt := range opts {
		opt(&router)
	}
	if router.notifications == nil {
		router.notifications = &sync.WaitGroup{}
	}

	assets, err := newAssetHandler(settings)
	if err != nil {
		return nil, err
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestIDMiddleware)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(RequestLoggingMiddleware(router.accessLogger))
	chiRouter.Use(LogInternalServerErrors)

	chiRouter.Use(CORSCheckMiddleware(settings.AcceptedOrigins))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   settings.AcceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Initialize all handlers
	handlers := initializeHandlers(database, router.notifier, router.notifications, router.startupTime)

	setupAPIRoutes(chiRouter, handlers)
	setupAssetRoutes(chiRouter, assets)

	return chiRouter, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Time("startupTime", s.startupTime).Msgf("Server started on: %s", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errChannel <- err
	}
}

// ShutdownGracefully stops accepting requests, then waits for in-flight
// requests and contact notifications until timeout.
func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}

	if err := waitGroupContext(gracefullCtx, s.notifications); err != nil {
		log.Warn().Err(err).Msg("Contact notifications still running at shutdown")
	}
}

// waitGroupContext waits for wg or until ctx is done, whichever comes first.
func waitGroupContext(ctx context.Context, wg *sync.WaitGroup) error {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
