package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/filevault/internal/cryptox"
	"github.com/dmitrijs2005/filevault/internal/dbx"
	"github.com/dmitrijs2005/filevault/internal/logging"
	"github.com/dmitrijs2005/filevault/internal/server/blobstore"
	"github.com/dmitrijs2005/filevault/internal/server/config"
	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/files"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	alice = "6f1c2a9e-0000-4000-8000-00000000a11c"
	bob   = "6f1c2a9e-0000-4000-8000-000000000b0b"
)

var errBoom = errors.New("boom")

// flakyBlobs lets a test fail individual blob operations.
type flakyBlobs struct {
	blobstore.Store

	mu          sync.Mutex
	pushErr     error
	fetchErr    error
	deleteErr   error
	failDelete  map[string]bool
	pushedKeys  []string
	deletedKeys []string
}

func (f *flakyBlobs) Push(ctx context.Context, h *models.UploadHandle, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pushErr != nil {
		return "", f.pushErr
	}
	f.pushedKeys = append(f.pushedKeys, h.Key)
	return f.Store.Push(ctx, h, data)
}

func (f *flakyBlobs) Fetch(ctx context.Context, key string) ([]byte, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.Store.Fetch(ctx, key)
}

func (f *flakyBlobs) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil || f.failDelete[key] {
		return errBoom
	}
	f.deletedKeys = append(f.deletedKeys, key)
	return f.Store.Delete(ctx, key)
}

// flakyFiles lets a test fail record writes.
type flakyFiles struct {
	files.Repository
	createErr error
	deleteErr error
}

func (f *flakyFiles) Create(ctx context.Context, rec *models.FileRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	return f.Repository.Create(ctx, rec)
}

func (f *flakyFiles) Delete(ctx context.Context, userID, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.Repository.Delete(ctx, userID, id)
}

type managerWithFiles struct {
	*repomanager.MemoryRepositoryManager
	files *flakyFiles
}

// Files keeps the tx journaling of the memory manager underneath the
// injected failures.
func (m *managerWithFiles) Files(tx dbx.DBTX) files.Repository {
	if tx == nil {
		return m.files
	}
	return &flakyFiles{
		Repository: m.MemoryRepositoryManager.Files(tx),
		createErr:  m.files.createErr,
		deleteErr:  m.files.deleteErr,
	}
}

type testEnv struct {
	manager   *managerWithFiles
	blobs     *flakyBlobs
	files     *FileService
	transform *TransformService
	users     *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := blobstore.NewMemoryStore()
	require.NoError(t, err)

	mem := repomanager.NewMemoryRepositoryManager()
	m := &managerWithFiles{
		MemoryRepositoryManager: mem,
		files:                   &flakyFiles{Repository: mem.Files(nil)},
	}
	blobs := &flakyBlobs{Store: store, failDelete: map[string]bool{}}

	us := NewUserService(m, &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}, logging.Nop{})
	us.bcryptCost = bcrypt.MinCost

	return &testEnv{
		manager:   m,
		blobs:     blobs,
		files:     NewFileService(m, blobs, logging.Nop{}),
		transform: NewTransformService(m, blobs, cryptox.SHA256Deriver{}, cryptox.NewEngine(true), logging.Nop{}),
		users:     us,
	}
}

// upload walks the client side of the upload handshake.
func (e *testEnv) upload(t *testing.T, userID, name string, content []byte) string {
	t.Helper()
	ctx := context.Background()

	h, err := e.files.RequestUpload(ctx, userID)
	require.NoError(t, err)
	_, err = e.blobs.Store.Push(ctx, h, content)
	require.NoError(t, err)

	id, err := e.files.Store(ctx, userID, h.Key, name, name, false)
	require.NoError(t, err)
	return id
}

func (e *testEnv) content(t *testing.T, userID, id string) []byte {
	t.Helper()
	ctx := context.Background()

	v, err := e.files.Get(ctx, userID, id)
	require.NoError(t, err)
	data, err := e.blobs.Store.Fetch(ctx, v.StorageKey)
	require.NoError(t, err)
	return data
}
