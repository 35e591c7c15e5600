package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sync"

	"github.com/absfs/absfs"
	"github.com/absfs/memfs"
	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/models"
)

const memoryURLScheme = "mem://"

// MemoryStore keeps blobs in an in-memory filesystem. Its URLs are not
// dereferenceable over HTTP; it backs tests and single-process runs where
// the server itself pushes and fetches content.
type MemoryStore struct {
	mu sync.Mutex
	fs absfs.FileSystem
}

func NewMemoryStore() (*MemoryStore, error) {
	fs, err := memfs.NewFS()
	if err != nil {
		return nil, fmt.Errorf("create memfs: %w", err)
	}
	return &MemoryStore{fs: fs}, nil
}

func (m *MemoryStore) RequestUpload(ctx context.Context, owner string) (*models.UploadHandle, error) {
	key := NewStorageKey(owner)
	return &models.UploadHandle{Key: key, URL: memoryURLScheme + key}, nil
}

func (m *MemoryStore) Push(ctx context.Context, h *models.UploadHandle, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p := blobPath(h.Key)
	if err := m.fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}

	if _, err := m.fs.Stat(p); err == nil {
		if err := m.fs.Remove(p); err != nil {
			return "", fmt.Errorf("replace blob: %w", err)
		}
	}

	f, err := m.fs.OpenFile(p, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open blob: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close blob: %w", err)
	}
	return h.Key, nil
}

func (m *MemoryStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p := blobPath(key)
	if _, err := m.fs.Stat(p); err != nil {
		return nil, mapFSError("stat blob", err)
	}

	f, err := m.fs.OpenFile(p, os.O_RDONLY, 0)
	if err != nil {
		return nil, mapFSError("open blob", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

func (m *MemoryStore) ResolveDownloadURL(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.fs.Stat(blobPath(key)); err != nil {
		return "", mapFSError("stat blob", err)
	}
	return memoryURLScheme + key, nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := blobPath(key)
	if _, err := m.fs.Stat(p); err != nil {
		return mapFSError("stat blob", err)
	}
	if err := m.fs.Remove(p); err != nil {
		return mapFSError("remove blob", err)
	}
	return nil
}

func blobPath(key string) string {
	return path.Join("/", key)
}

func mapFSError(op string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, common.ErrorNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
