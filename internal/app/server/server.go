package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SHEBN-DEV/Demoshebn/internal/app/server/handlers"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/metrics"
	"github.com/SHEBN-DEV/Demoshebn/pkg/middleware"
	"github.com/gorilla/mux"
)

type Server struct {
	router       *mux.Router
	http         *http.Server
	log          *slog.Logger
	name         string
	tokens       middleware.TokenValidator
	metrics      *metrics.Metrics
	authHandler  *handlers.AuthHandler
	verifHandler *handlers.VerificationHandler
	contacts     *handlers.ContactsHandler
	messages     *handlers.MessagesHandler
	wsHandler    *handlers.WSHandler
}

func NewServer(
	log *slog.Logger,
	name, addr string,
	tokens middleware.TokenValidator,
	authHandler *handlers.AuthHandler,
	verifHandler *handlers.VerificationHandler,
	contacts *handlers.ContactsHandler,
	messages *handlers.MessagesHandler,
	wsHandler *handlers.WSHandler,
	m *metrics.Metrics,
) *Server {
	s := &Server{
		router:       mux.NewRouter(),
		log:          log,
		name:         name,
		tokens:       tokens,
		metrics:      m,
		authHandler:  authHandler,
		verifHandler: verifHandler,
		contacts:     contacts,
		messages:     messages,
		wsHandler:    wsHandler,
	}
	s.routes()
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.TracerMiddleware(s.name), middleware.RequestLogger(s.log))
	auth := middleware.AuthMiddleware(s.tokens)

	s.router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK\n"))
	}).Methods(http.MethodGet)
	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}

	// Public routes
	s.router.HandleFunc("/auth/signup", s.authHandler.StartSignUp).Methods(http.MethodPost)
	s.router.HandleFunc("/auth/signup/{id}", s.authHandler.SignUpStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/auth/signup/{id}", s.authHandler.CancelSignUp).Methods(http.MethodDelete)
	s.router.HandleFunc("/auth/signup/{id}/verification", s.authHandler.RelayVerification).Methods(http.MethodPost)
	s.router.HandleFunc("/auth/login", s.authHandler.Login).Methods(http.MethodPost)
	s.router.HandleFunc("/auth/me", s.authHandler.Me).Methods(http.MethodGet)
	s.router.HandleFunc("/verification/callback", s.verifHandler.Callback).Methods(http.MethodPost)

	// Protected routes
	protected := s.router.NewRoute().Subrouter()
	protected.Use(auth)
	protected.HandleFunc("/contacts", s.contacts.List).Methods(http.MethodGet)
	protected.HandleFunc("/messages/{peerID}", s.messages.History).Methods(http.MethodGet)
	protected.HandleFunc("/messages/{peerID}", s.messages.Send).Methods(http.MethodPost)
	protected.HandleFunc("/ws", s.wsHandler.Handler).Methods(http.MethodGet)
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.log.Info("server - start - listening", slog.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
