package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"plantGame/internal/handler"
)

const shutdownTimeout = 10 * time.Second

func NewRouter(h *handler.Handler) chi.Router {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

// StartHTTPServer serves until SIGINT/SIGTERM and then drains in-flight
// requests before returning.
func StartHTTPServer(srv *http.Server, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Run(ctx, srv, log)
}

// Run serves srv until ctx is cancelled.
func Run(ctx context.Context, srv *http.Server, log *logrus.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
