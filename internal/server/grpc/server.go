// Package grpc exposes the server's services over the Marketplace gRPC
// service defined in proto/citylifes/v1/marketplace.proto.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/citylifes/internal/logging"
	pb "github.com/dmitrijs2005/citylifes/internal/proto"
)

// Services groups the business services the transport calls into.
type Services struct {
	Messages  MessageService
	Campaigns CampaignService
	Location  LocationService
	Admin     AdminService
	Media     MediaService
}

type GRPCServer struct {
	address   string
	logger    logging.Logger
	jwtSecret []byte
	svc       Services
}

func NewGRPCServer(address string, l logging.Logger, svc Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		jwtSecret: []byte(secretKey),
		svc:       svc,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)
	pb.RegisterMarketplaceServer(srv, &handler{s: s})
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
