// Package server initializes and runs the application server. It wires the
// credential store into the auth service, handles graceful shutdown, and
// starts the HTTP endpoint.
package server

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/syp-project/authd/internal/logging"
	"github.com/syp-project/authd/internal/server/config"
	"github.com/syp-project/authd/internal/server/httpapi"
	usersrepo "github.com/syp-project/authd/internal/server/repositories/users"
	"github.com/syp-project/authd/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	// The signing secret only ever comes from configuration; a process
	// without one cannot issue verifiable tokens and must not start.
	if c.SecretKey == "" {
		return nil, errors.New("signing secret key is required (set AUTHD_SECRET_KEY, the -s flag, or secret_key in the config file)")
	}

	// The store is created here and torn down with the process; the service
	// only sees the Repository interface, so a durable backend can be swapped
	// in without touching auth logic.
	repo := usersrepo.NewMemoryRepository()
	us := services.NewUserService(repo, c)

	return &App{config: c, logger: logger, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger, app.userService)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
