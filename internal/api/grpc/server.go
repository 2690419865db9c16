// Package grpc serves the standard gRPC health service and server reflection
// next to the HTTP API, for load balancers and grpcurl.
package grpc

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"vehicle-rental-backend/internal/api/grpc/interceptor"
	"vehicle-rental-backend/internal/logger"
)

// ServiceName is the health-checked name of the rental API.
const ServiceName = "vehicle.rental.v1.RentalAgency"

type Server struct {
	grpcServer   *grpc.Server
	healthServer *health.Server
}

// NewServer builds a gRPC server with health, reflection and the logging
// interceptor registered. It reports NOT_SERVING until SetServing(true).
func NewServer() *Server {
	logging := interceptor.NewLoggingInterceptor()
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(logging.Unary()),
	)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	// Register reflection service for grpcurl
	reflection.Register(s)

	return &Server{grpcServer: s, healthServer: hs}
}

// SetServing flips the reported health of the server and the rental API.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.healthServer.SetServingStatus("", status)
	s.healthServer.SetServingStatus(ServiceName, status)
	logger.Info("gRPC health status changed", "status", status.String())
}

func (s *Server) Serve(lis net.Listener) error {
	logger.Info("gRPC server listening", "address", lis.Addr().String())
	return s.grpcServer.Serve(lis)
}

// GracefulStop marks the server as not serving and waits for in-flight RPCs.
func (s *Server) GracefulStop() {
	s.healthServer.Shutdown()
	s.grpcServer.GracefulStop()
}
