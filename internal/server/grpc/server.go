// Package grpc exposes the FileVault services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/filevault/internal/logging"
	pb "github.com/dmitrijs2005/filevault/internal/proto"
	"github.com/dmitrijs2005/filevault/internal/server/models"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type fileSvc interface {
	RequestUpload(ctx context.Context, userID string) (*models.UploadHandle, error)
	Store(ctx context.Context, userID, storageKey, name, originalName string, isEncrypted bool) (string, error)
	Get(ctx context.Context, userID, id string) (*models.FileView, error)
	ListByOwner(ctx context.Context, userID string) ([]*models.FileView, error)
	Delete(ctx context.Context, userID, id string) error
}

type transformSvc interface {
	Transform(ctx context.Context, userID, fileID, password string, direction models.Direction) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedFileVaultServer
	address    string
	users      userSvc
	files      fileSvc
	transforms transformSvc
	logger     logging.Logger
	jwtSecret  []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, fs fileSvc, ts transformSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		users:      us,
		files:      fs,
		transforms: ts,
		jwtSecret:  []byte(secretKey),
	}
}

// NewServer builds a grpc.Server with the service and its interceptors
// registered but not yet serving.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterFileVaultServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
