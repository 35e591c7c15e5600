package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/filevault/internal/common"
	pb "github.com/dmitrijs2005/filevault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.FileVaultClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	s.mu.RLock()
	token := s.accessToken
	s.mu.RUnlock()

	if token != "" {
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewFileVaultClientService dials endpointURL lazily; the first RPC
// establishes the connection.
func NewFileVaultClientService(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFileVaultClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username, password string) error {
	_, err := s.client.Register(ctx, &pb.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

// Login authenticates and keeps the returned token for subsequent calls.
func (s *GRPCClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	s.SetAccessToken(resp.GetAccessToken())
	return resp.GetAccessToken(), nil
}

func (s *GRPCClient) RequestUpload(ctx context.Context) (*Upload, error) {
	resp, err := s.client.RequestUpload(ctx, &pb.RequestUploadRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &Upload{StorageKey: resp.GetStorageKey(), URL: resp.GetUrl()}, nil
}

// StoreFile registers an already pushed blob as a plain file named name.
func (s *GRPCClient) StoreFile(ctx context.Context, storageKey, name string) (string, error) {
	resp, err := s.client.StoreFile(ctx, &pb.StoreFileRequest{
		StorageKey:   storageKey,
		Name:         name,
		OriginalName: name,
	})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetFileId(), nil
}

func (s *GRPCClient) ListFiles(ctx context.Context) ([]*File, error) {
	resp, err := s.client.ListFiles(ctx, &pb.ListFilesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	files := make([]*File, 0, len(resp.GetFiles()))
	for _, f := range resp.GetFiles() {
		files = append(files, fromPB(f))
	}
	return files, nil
}

func (s *GRPCClient) GetFile(ctx context.Context, fileID string) (*File, error) {
	resp, err := s.client.GetFile(ctx, &pb.GetFileRequest{FileId: fileID})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.GetFile() == nil {
		return nil, ErrNotFound
	}
	return fromPB(resp.GetFile()), nil
}

func (s *GRPCClient) DeleteFile(ctx context.Context, fileID string) error {
	_, err := s.client.DeleteFile(ctx, &pb.DeleteFileRequest{FileId: fileID})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

// Transform returns the id of the newly created file.
func (s *GRPCClient) Transform(ctx context.Context, fileID, password string, direction Direction) (string, error) {
	resp, err := s.client.TransformFile(ctx, &pb.TransformFileRequest{
		FileId:    fileID,
		Password:  password,
		Direction: string(direction),
	})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetFileId(), nil
}

func fromPB(f *pb.File) *File {
	var created time.Time
	if f.GetCreatedAt() != nil {
		created = f.GetCreatedAt().AsTime()
	}
	return &File{
		ID:           f.GetId(),
		Name:         f.GetName(),
		OriginalName: f.GetOriginalName(),
		IsEncrypted:  f.GetIsEncrypted(),
		CreatedAt:    created,
		URL:          f.GetUrl(),
	}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.FailedPrecondition:
		return ErrWrongPassword
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
