package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type GlucoseHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	addr            string
	shutdownTimeout time.Duration
}

func NewGlucoseHttpServer(router *Router, muxRouter *mux.Router, port string, shutdownTimeout time.Duration) *GlucoseHttpServer {
	return &GlucoseHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		addr:            ":" + port,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start registers routes and serves until SIGINT or SIGTERM.
func (s *GlucoseHttpServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *GlucoseHttpServer) Run(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	// Start the server in a goroutine so it doesn't block
	go func() {
		log.Printf("[GlucoseHttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Println("[GlucoseHttpServer] Shutting down the server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("[GlucoseHttpServer] Server exiting")
	return nil
}
