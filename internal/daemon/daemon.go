package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// DefaultShutdownTimeout bounds how long in-flight requests may take to finish
const DefaultShutdownTimeout = 10 * time.Second

// Daemon runs the HTTP API until it is stopped or receives SIGINT/SIGTERM
type Daemon struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *zap.Logger
	ctx             context.Context
	cancel          context.CancelFunc

	mu        sync.Mutex
	addr      string // Bound address once serving
	startedAt time.Time
}

// NewDaemon creates a daemon serving handler on addr
func NewDaemon(addr string, handler http.Handler, logger *zap.Logger) *Daemon {
	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: DefaultShutdownTimeout,
		logger:          logger,
		ctx:             ctx,
		cancel:          cancel,
	}
}

// Start listens on the configured address and serves until stopped
func (d *Daemon) Start() error {
	ln, err := net.Listen("tcp", d.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", d.server.Addr, err)
	}
	return d.Serve(ln)
}

// Serve serves on ln until Stop is called or a signal arrives, then shuts
// down gracefully
func (d *Daemon) Serve(ln net.Listener) error {
	d.mu.Lock()
	d.addr = ln.Addr().String()
	d.startedAt = time.Now()
	d.mu.Unlock()

	d.logger.Info("Daemon started", zap.String("addr", d.addr))

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- d.server.Serve(ln)
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)

	case <-d.ctx.Done():
		d.logger.Info("Daemon stopping")

	case sig := <-sigChan:
		d.logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.shutdownTimeout)
	defer cancel()
	if err := d.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	d.logger.Info("Daemon stopped", zap.Any("status", d.GetStatus()))
	return nil
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.cancel()
}

// GetStatus returns daemon status
func (d *Daemon) GetStatus() map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := map[string]any{
		"running": d.ctx.Err() == nil && !d.startedAt.IsZero(),
		"addr":    d.addr,
	}
	if !d.startedAt.IsZero() {
		status["started_at"] = d.startedAt.Format(time.RFC3339)
		status["uptime"] = time.Since(d.startedAt).Round(time.Second).String()
	}
	return status
}
