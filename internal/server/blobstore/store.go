// Package blobstore keeps file contents addressed by opaque storage keys.
// Metadata about those blobs lives in the files repository.
package blobstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/google/uuid"
)

// Store is the blob side of the upload/download handshake.
//
// Fetch, ResolveDownloadURL and Delete return common.ErrorNotFound
// (possibly wrapped) when the key does not name a live blob.
type Store interface {
	// RequestUpload allocates a fresh key under owner's prefix and a URL the
	// client can PUT to.
	RequestUpload(ctx context.Context, owner string) (*models.UploadHandle, error)
	// Push uploads data under h.Key from the server side and returns the key.
	Push(ctx context.Context, h *models.UploadHandle, data []byte) (string, error)
	Fetch(ctx context.Context, key string) ([]byte, error)
	ResolveDownloadURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

var now = time.Now

// NewStorageKey returns a key of the form users/<owner>/<yyyy>/<m>/<d>/<uuid>.
func NewStorageKey(owner string) string {
	d := now()
	return fmt.Sprintf("%s%d/%d/%d/%v", ownerPrefix(owner), d.Year(), d.Month(), d.Day(), uuid.New())
}

// OwnedBy reports whether key was issued by NewStorageKey for owner.
func OwnedBy(key, owner string) bool {
	if owner == "" || strings.Contains(key, "..") {
		return false
	}
	rest, ok := strings.CutPrefix(key, ownerPrefix(owner))
	return ok && rest != ""
}

func ownerPrefix(owner string) string {
	return "users/" + owner + "/"
}
