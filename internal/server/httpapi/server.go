// Package httpapi exposes the auth service over HTTP with JSON bodies.
// It is the wire boundary consumed by the presentation client; all credential
// decisions happen in the service layer, the transport only forwards and maps
// errors onto statuses.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/syp-project/authd/internal/logging"
	"github.com/syp-project/authd/internal/server/auth"
	"github.com/syp-project/authd/internal/server/services"
)

// userSvc is the slice of the user service the transport needs.
type userSvc interface {
	Register(ctx context.Context, fullName, email, password string) error
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	VerifyToken(tokenString string) (*auth.Claims, error)
}

type HTTPServer struct {
	address string
	users   userSvc
	logger  logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, us userSvc) (*HTTPServer, error) {
	return &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
	}, nil
}

// Handler returns the route table. Exposed so tests can drive the server
// through httptest without binding a socket.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.Handle("GET /api/profile", s.requireToken(http.HandlerFunc(s.handleProfile)))

	return mux
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
