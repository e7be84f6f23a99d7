package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/service"
)

// Handler is the root gRPC transport handler.
//
// The document API itself is served over HTTP; over gRPC the server only
// answers the standard health protocol, which sync clients use as their
// reachability probe.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting SERVING for the whole server.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every service to NOT_SERVING so probing clients go offline
// before connections are drained.
func (h *Handler) Shutdown() {
	h.logger.Debug().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
