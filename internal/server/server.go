package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/handler"
	"github.com/MKhiriev/go-post-board/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

func (s *server) run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.serve(ctx)
}

// serve runs every created server until ctx is done, then shuts them down.
func (s *server) serve(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersAreCreated
	}

	idleConnectionsClosed := make(chan struct{})

	// listen for stop signals
	go func() {
		<-ctx.Done()

		// finish started servers
		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go s.gRPCServer.RunServer()
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
