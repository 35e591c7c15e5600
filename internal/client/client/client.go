package client

import (
	"context"
	"time"
)

// Direction names a transform. Values match the server's wire format.
type Direction string

const (
	DirectionEncrypt Direction = "encrypt"
	DirectionDecrypt Direction = "decrypt"
)

// File is the client's view of a stored file.
type File struct {
	ID           string
	Name         string
	OriginalName string
	IsEncrypted  bool
	CreatedAt    time.Time
	URL          string
}

// Upload is a negotiated upload slot: bytes go to URL, then the record is
// registered under StorageKey.
type Upload struct {
	StorageKey string
	URL        string
}

type Client interface {
	Close() error
	SetAccessToken(token string)
	Ping(ctx context.Context) error
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	RequestUpload(ctx context.Context) (*Upload, error)
	StoreFile(ctx context.Context, storageKey, name string) (string, error)
	ListFiles(ctx context.Context) ([]*File, error)
	GetFile(ctx context.Context, fileID string) (*File, error)
	DeleteFile(ctx context.Context, fileID string) error
	Transform(ctx context.Context, fileID, password string, direction Direction) (string, error)
}
