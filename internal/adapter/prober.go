package adapter

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// httpProber probes reachability with the REST ping endpoint.
type httpProber struct {
	store RemoteStore
}

// NewHTTPProber returns a [Prober] backed by store.Ping.
func NewHTTPProber(store RemoteStore) Prober {
	return &httpProber{store: store}
}

func (p *httpProber) Probe(ctx context.Context) error {
	return p.store.Ping(ctx)
}

// GRPCProber probes reachability with the standard gRPC health protocol.
type GRPCProber struct {
	conn   *grpc.ClientConn
	client healthpb.HealthClient
}

// NewGRPCProber dials address lazily; no connection is made until the first
// Probe.
func NewGRPCProber(address string) (*GRPCProber, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("error creating grpc health client: %w", err)
	}

	return &GRPCProber{conn: conn, client: healthpb.NewHealthClient(conn)}, nil
}

func (p *GRPCProber) Probe(ctx context.Context) error {
	resp, err := p.client.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return fmt.Errorf("grpc health check: %w", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: %s", ErrUnhealthy, resp.GetStatus())
	}
	return nil
}

// Close releases the underlying connection.
func (p *GRPCProber) Close() error {
	return p.conn.Close()
}
