// Package models defines server-side data models persisted in the database.
package models

import "time"

// FileRecord is the metadata row describing one stored file. The content
// itself lives in the blob store under StorageKey.
type FileRecord struct {
	// ID is server assigned (UUID).
	ID string
	// UserID is the owner; every access is checked against it.
	UserID string
	// StorageKey is the blob-store key of the content.
	StorageKey string
	// Name is the display name, e.g. "hello.txt.enc".
	Name string
	// OriginalName is the name the file was uploaded with.
	OriginalName string
	IsEncrypted  bool
	CreatedAt    time.Time
}

// FileView is a FileRecord together with a short-lived download URL.
type FileView struct {
	FileRecord
	URL string
}

// UploadHandle is the first half of the upload handshake: the client (or
// the server itself) pushes bytes to URL, after which Key names the blob.
type UploadHandle struct {
	Key string
	URL string
}

// Direction selects which way a transform goes.
type Direction string

const (
	DirectionEncrypt Direction = "encrypt"
	DirectionDecrypt Direction = "decrypt"
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == DirectionEncrypt || d == DirectionDecrypt
}
