package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server serves the notes API until its context ends, then drains.
type Server struct {
	srv    *http.Server
	grace  time.Duration
	logger *slog.Logger
	ln     net.Listener
}

// NewServer configures a server for handler. A nil logger discards logs.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	grace := cfg.ShutdownTimeout
	if grace <= 0 {
		grace = defaultShutdownTimeout
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		grace:  grace,
		logger: logger,
	}
}

// Listen binds the configured address. Run calls it when needed; calling
// it first surfaces bind errors before anything else starts.
func (s *Server) Listen() error {
	if s.ln != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	s.ln = ln
	return nil
}

// Addr is the bound address once listening, the configured one before.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}

// Run serves until ctx is done and then waits up to the shutdown timeout
// for in-flight requests. It returns nil after a clean drain.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	served := make(chan error, 1)
	go func() {
		s.logger.Info("serving notes API", slog.String("addr", s.Addr()))
		served <- s.srv.Serve(s.ln)
	}()

	select {
	case err := <-served:
		return fmt.Errorf("http server stopped: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("draining HTTP server", slog.Duration("timeout", s.grace))
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.grace)
	defer cancel()

	err := s.srv.Shutdown(drainCtx)
	if serveErr := <-served; !errors.Is(serveErr, http.ErrServerClosed) {
		err = errors.Join(err, serveErr)
	}
	if err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
