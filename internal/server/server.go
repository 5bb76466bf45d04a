package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HttpServer, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: cfg.Timeout,
			ReadTimeout:       cfg.Timeout,
			// rendering a large chart on a cold cache takes a while
			WriteTimeout: 3 * cfg.Timeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Run serves until Stop; a graceful stop is not reported as an error.
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

func (s *Server) Serve(ln net.Listener) error {
	if err := s.httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
