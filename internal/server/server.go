// Package server hosts the Mentortools tools on an MCP server over stdio or
// streamable HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mentortools-mcp/internal/config"
	"mentortools-mcp/internal/tools"
)

const (
	Name    = "mentortools-mcp-server"
	Version = "1.0.0"

	shutdownTimeout = 10 * time.Second
)

type Options struct {
	// Gatherer backs /metrics. Nil uses the default registry.
	Gatherer prometheus.Gatherer
	Logger   logr.Logger
}

type Server struct {
	cfg      config.Config
	mcp      *mcp.Server
	gatherer prometheus.Gatherer
	log      logr.Logger
}

func New(cfg config.Config, registry *tools.Registry, opts Options) *Server {
	s := mcp.NewServer(&mcp.Implementation{Name: Name, Version: Version}, nil)
	registry.Register(s)

	g := opts.Gatherer
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return &Server{cfg: cfg, mcp: s, gatherer: g, log: opts.Logger}
}

// MCP exposes the underlying server, mainly for in-process sessions.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Run serves the configured transport until ctx is cancelled or the
// transport closes.
func (s *Server) Run(ctx context.Context) error {
	switch s.cfg.Transport {
	case config.TransportHTTP:
		return s.runHTTP(ctx)
	case config.TransportStdio, "":
		s.log.Info("Mentortools MCP server running via stdio")
		return s.mcp.Run(ctx, &mcp.StdioTransport{})
	default:
		return fmt.Errorf("server: unsupported transport %q", s.cfg.Transport)
	}
}

// Handler routes /mcp, /healthz and /metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s.mcp }, nil))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","server":"` + Name + `"}`))
	})
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return mux
}

func (s *Server) runHTTP(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr(), err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Mentortools MCP server running on http", "addr", ln.Addr().String(), "endpoint", "/mcp")
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	}
}
