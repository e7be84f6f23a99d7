package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/handler"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownOnce sync.Once
	logger       *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Str("func", "server.RunServer").Msg("server stopped with error")
		return
	}
	s.logger.Info().Msg("server shut down gracefully")
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// gRPC first so health probes report NOT_SERVING while HTTP drains
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}
	})
}

// run serves every transport until ctx ends or one of them fails; either way
// all of them are shut down before run returns.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNothingToRun
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.httpServer != nil {
		g.Go(s.httpServer.serve)
	}
	if s.gRPCServer != nil {
		g.Go(s.gRPCServer.serve)
	}
	g.Go(func() error {
		<-gctx.Done()
		s.Shutdown()
		return nil
	})

	return g.Wait()
}
