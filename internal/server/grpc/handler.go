package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/filevault/internal/common"
	pb "github.com/dmitrijs2005/filevault/internal/proto"
	"github.com/dmitrijs2005/filevault/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatus maps service errors onto gRPC codes. Unknown errors are logged
// and reported as Internal without detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorUnauthenticated):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case errors.Is(err, common.ErrorInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrorInvalidCredentials.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "file not found")
	case errors.Is(err, common.ErrTransformFailed):
		return status.Error(codes.FailedPrecondition, common.ErrTransformFailed.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "username is taken")
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func toFile(v *models.FileView) *pb.File {
	return &pb.File{
		Id:           v.ID,
		Name:         v.Name,
		OriginalName: v.OriginalName,
		IsEncrypted:  v.IsEncrypted,
		CreatedAt:    timestamppb.New(v.CreatedAt),
		Url:          v.URL,
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	user, err := s.users.Register(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RegisterResponse{UserId: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, err := s.users.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LoginResponse{AccessToken: token}, nil
}

func (s *GRPCServer) RequestUpload(ctx context.Context, req *pb.RequestUploadRequest) (*pb.RequestUploadResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	h, err := s.files.RequestUpload(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RequestUploadResponse{StorageKey: h.Key, Url: h.URL}, nil
}

func (s *GRPCServer) StoreFile(ctx context.Context, req *pb.StoreFileRequest) (*pb.StoreFileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	id, err := s.files.Store(ctx, userID, req.GetStorageKey(), req.GetName(), req.GetOriginalName(), req.GetIsEncrypted())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.StoreFileResponse{FileId: id}, nil
}

func (s *GRPCServer) ListFiles(ctx context.Context, req *pb.ListFilesRequest) (*pb.ListFilesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	views, err := s.files.ListByOwner(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListFilesResponse{Files: make([]*pb.File, 0, len(views))}
	for _, v := range views {
		resp.Files = append(resp.Files, toFile(v))
	}
	return resp, nil
}

func (s *GRPCServer) GetFile(ctx context.Context, req *pb.GetFileRequest) (*pb.GetFileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	v, err := s.files.Get(ctx, userID, req.GetFileId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetFileResponse{File: toFile(v)}, nil
}

func (s *GRPCServer) DeleteFile(ctx context.Context, req *pb.DeleteFileRequest) (*pb.DeleteFileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	if err := s.files.Delete(ctx, userID, req.GetFileId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteFileResponse{}, nil
}

func (s *GRPCServer) TransformFile(ctx context.Context, req *pb.TransformFileRequest) (*pb.TransformFileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	id, err := s.transforms.Transform(ctx, userID, req.GetFileId(), req.GetPassword(), models.Direction(req.GetDirection()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TransformFileResponse{FileId: id}, nil
}
