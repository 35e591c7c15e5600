package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/filevault/internal/common"
	pb "github.com/dmitrijs2005/filevault/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	lastStoreReq     *pb.StoreFileRequest
	lastTransformReq *pb.TransformFileRequest
	lastGetReq       *pb.GetFileRequest
	lastDeleteReq    *pb.DeleteFileRequest

	pingResp *pb.PingResponse
	pingErr  error

	loginResp *pb.LoginResponse
	loginErr  error

	registerErr error

	uploadResp *pb.RequestUploadResponse
	storeResp  *pb.StoreFileResponse
	listResp   *pb.ListFilesResponse
	getResp    *pb.GetFileResponse
	deleteErr  error

	transformResp *pb.TransformFileResponse
	transformErr  error
}

func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}
func (f *fakePB) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.RegisterResponse, error) {
	return &pb.RegisterResponse{}, f.registerErr
}
func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	return f.loginResp, f.loginErr
}
func (f *fakePB) RequestUpload(ctx context.Context, in *pb.RequestUploadRequest, opts ...grpc.CallOption) (*pb.RequestUploadResponse, error) {
	return f.uploadResp, nil
}
func (f *fakePB) StoreFile(ctx context.Context, in *pb.StoreFileRequest, opts ...grpc.CallOption) (*pb.StoreFileResponse, error) {
	f.lastStoreReq = in
	return f.storeResp, nil
}
func (f *fakePB) ListFiles(ctx context.Context, in *pb.ListFilesRequest, opts ...grpc.CallOption) (*pb.ListFilesResponse, error) {
	return f.listResp, nil
}
func (f *fakePB) GetFile(ctx context.Context, in *pb.GetFileRequest, opts ...grpc.CallOption) (*pb.GetFileResponse, error) {
	f.lastGetReq = in
	return f.getResp, nil
}
func (f *fakePB) DeleteFile(ctx context.Context, in *pb.DeleteFileRequest, opts ...grpc.CallOption) (*pb.DeleteFileResponse, error) {
	f.lastDeleteReq = in
	return &pb.DeleteFileResponse{}, f.deleteErr
}
func (f *fakePB) TransformFile(ctx context.Context, in *pb.TransformFileRequest, opts ...grpc.CallOption) (*pb.TransformFileResponse, error) {
	f.lastTransformReq = in
	return f.transformResp, f.transformErr
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_AttachesToken(t *testing.T) {
	c := &GRPCClient{}
	c.SetAccessToken("A1")

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Equal(t, []string{"A1"}, toks)
		return nil
	}

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "stale")
	require.NoError(t, c.accessTokenInterceptor(ctx, "/svc/Method", nil, nil, nil, invoker))
}

func TestInterceptor_NoTokenNoHeader(t *testing.T) {
	c := &GRPCClient{}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(common.AccessTokenHeaderName))
		return status.Error(codes.Internal, "boom")
	}

	require.Error(t, c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker))
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), ErrUnauthorized)
	require.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "x")), ErrUnauthorized)
	require.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), ErrUnavailable)
	require.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x")), ErrUnavailable)
	require.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "file not found")), ErrNotFound)
	require.ErrorIs(t, c.mapError(status.Error(codes.FailedPrecondition, "x")), ErrWrongPassword)
	require.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x")), ErrAlreadyExists)

	err := c.mapError(status.Error(codes.InvalidArgument, "name is required"))
	require.ErrorIs(t, err, ErrInvalidRequest)
	require.ErrorContains(t, err, "name is required")

	require.ErrorContains(t, c.mapError(errors.New("plain")), "rpc error:")
	require.NoError(t, c.mapError(nil))
}

/*************
 * RPC wrappers over a fake
 *************/

func TestPing(t *testing.T) {
	c := &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}}
	require.NoError(t, c.Ping(context.Background()))

	c = &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "NOT_OK"}}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	c = &GRPCClient{client: &fakePB{pingErr: status.Error(codes.Unavailable, "down")}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestLogin_StoresToken(t *testing.T) {
	c := &GRPCClient{client: &fakePB{loginResp: &pb.LoginResponse{AccessToken: "T"}}}

	tok, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "T", tok)
	assert.Equal(t, "T", c.accessToken)
}

func TestLogin_Failure(t *testing.T) {
	c := &GRPCClient{client: &fakePB{loginErr: status.Error(codes.Unauthenticated, "invalid login/password")}}

	_, err := c.Login(context.Background(), "alice", "bad")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.accessToken)
}

func TestRegister_Taken(t *testing.T) {
	c := &GRPCClient{client: &fakePB{registerErr: status.Error(codes.AlreadyExists, "username is taken")}}
	require.ErrorIs(t, c.Register(context.Background(), "alice", "pw"), ErrAlreadyExists)
}

func TestStoreFile_UsesNameAsOriginal(t *testing.T) {
	f := &fakePB{storeResp: &pb.StoreFileResponse{FileId: "F1"}}
	c := &GRPCClient{client: f}

	id, err := c.StoreFile(context.Background(), "users/1/k", "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "F1", id)
	assert.Equal(t, "report.pdf", f.lastStoreReq.Name)
	assert.Equal(t, "report.pdf", f.lastStoreReq.OriginalName)
	assert.False(t, f.lastStoreReq.IsEncrypted)
}

func TestListFiles_Converts(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f := &fakePB{listResp: &pb.ListFilesResponse{Files: []*pb.File{
		{Id: "1", Name: "a.txt.enc", OriginalName: "a.txt", IsEncrypted: true, CreatedAt: timestamppb.New(created), Url: "u"},
	}}}
	c := &GRPCClient{client: f}

	files, err := c.ListFiles(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, &File{ID: "1", Name: "a.txt.enc", OriginalName: "a.txt", IsEncrypted: true, CreatedAt: created, URL: "u"}, files[0])
}

func TestGetFile_NilFile(t *testing.T) {
	c := &GRPCClient{client: &fakePB{getResp: &pb.GetFileResponse{}}}
	_, err := c.GetFile(context.Background(), "x")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTransform(t *testing.T) {
	f := &fakePB{transformResp: &pb.TransformFileResponse{FileId: "new"}}
	c := &GRPCClient{client: f}

	id, err := c.Transform(context.Background(), "old", "pw", DirectionEncrypt)
	require.NoError(t, err)
	assert.Equal(t, "new", id)
	assert.Equal(t, "encrypt", f.lastTransformReq.Direction)
	assert.Equal(t, "pw", f.lastTransformReq.Password)

	f.transformErr = status.Error(codes.FailedPrecondition, "wrong password or corrupted file")
	_, err = c.Transform(context.Background(), "old", "bad", DirectionDecrypt)
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestDeleteFile(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}
	require.NoError(t, c.DeleteFile(context.Background(), "F"))
	assert.Equal(t, "F", f.lastDeleteReq.GetFileId())

	f.deleteErr = status.Error(codes.NotFound, "file not found")
	require.ErrorIs(t, c.DeleteFile(context.Background(), "F"), ErrNotFound)
}

/*************
 * Over a real gRPC connection
 *************/

type tokenEchoServer struct {
	pb.UnimplementedFileVaultServer
}

func (tokenEchoServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (tokenEchoServer) GetFile(ctx context.Context, req *pb.GetFileRequest) (*pb.GetFileResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	toks := md.Get(common.AccessTokenHeaderName)
	if len(toks) != 1 || toks[0] != "secret" {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return &pb.GetFileResponse{File: &pb.File{Id: req.GetFileId(), Name: "n"}}, nil
}

func TestGRPCClient_OverBufconn(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterFileVaultServer(srv, tokenEchoServer{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewFileVaultClientService("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, c.Ping(ctx))

	_, err = c.GetFile(ctx, "F1")
	require.ErrorIs(t, err, ErrUnauthorized)

	c.SetAccessToken("secret")
	f, err := c.GetFile(ctx, "F1")
	require.NoError(t, err)
	assert.Equal(t, "F1", f.ID)

	_, err = c.ListFiles(ctx)
	require.Error(t, err, "unimplemented method")
}
