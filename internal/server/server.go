// Package server exposes the farmos HTTP API over gin.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/702greens/farmos/internal/notify"
	"github.com/702greens/farmos/internal/store"
	"github.com/gin-gonic/gin"
)

// Opts holds configuration for the HTTP server.
type Opts struct {
	Store    *store.Store
	Notifier *notify.Notifier
	Port     int
	Out      io.Writer
}

// Start launches the HTTP server. It blocks until ctx is cancelled, then
// shuts down gracefully. In-flight notifier goroutines are not joined; they
// are fire-and-forget by design.
func Start(ctx context.Context, opts Opts) error {
	if opts.Store == nil {
		return fmt.Errorf("server: store is required")
	}
	if opts.Notifier == nil {
		return fmt.Errorf("server: notifier is required")
	}
	if opts.Port <= 0 {
		opts.Port = 3000
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	registerRoutes(router, opts.Store, opts.Notifier)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: router,
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if opts.Out != nil {
		fmt.Fprintf(opts.Out, "farmos listening at http://localhost:%d\n", opts.Port)
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
