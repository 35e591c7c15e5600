package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/dbx"
	"github.com/dmitrijs2005/filevault/internal/logging"
	"github.com/dmitrijs2005/filevault/internal/server/blobstore"
	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// FileService keeps file records and their blobs consistent. Every method
// is scoped to the calling user; records of other users look absent.
type FileService struct {
	repomanager repomanager.RepositoryManager
	blobs       blobstore.Store
	logger      logging.Logger
}

func NewFileService(m repomanager.RepositoryManager, blobs blobstore.Store, logger logging.Logger) *FileService {
	return &FileService{
		repomanager: m,
		blobs:       blobs,
		logger:      logger.With("module", "files"),
	}
}

// RequestUpload hands out a fresh storage key bound to userID and a URL to
// push content to.
func (s *FileService) RequestUpload(ctx context.Context, userID string) (*models.UploadHandle, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	h, err := s.blobs.RequestUpload(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("request upload: %w", err)
	}
	return h, nil
}

// Store records a blob the client has already pushed under storageKey. Only
// keys issued to userID by RequestUpload are accepted, and each key can back
// a single record.
func (s *FileService) Store(ctx context.Context, userID, storageKey, name, originalName string, isEncrypted bool) (string, error) {
	if err := requireUser(userID); err != nil {
		return "", err
	}
	if strings.TrimSpace(storageKey) == "" || strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: storage key and name are required", common.ErrorValidation)
	}
	if !blobstore.OwnedBy(storageKey, userID) {
		return "", fmt.Errorf("%w: storage key was not issued to this user", common.ErrorValidation)
	}
	if originalName == "" {
		originalName = name
	}

	if _, err := s.blobs.ResolveDownloadURL(ctx, storageKey); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", fmt.Errorf("%w: nothing was uploaded under this key", common.ErrorValidation)
		}
		return "", fmt.Errorf("resolve blob: %w", err)
	}

	return s.Create(ctx, &models.FileRecord{
		UserID:       userID,
		StorageKey:   storageKey,
		Name:         name,
		OriginalName: originalName,
		IsEncrypted:  isEncrypted,
	})
}

// Create assigns an ID to rec and persists it.
func (s *FileService) Create(ctx context.Context, rec *models.FileRecord) (string, error) {
	if err := requireUser(rec.UserID); err != nil {
		return "", err
	}
	rec.ID = uuid.NewString()

	repo := s.repomanager.Files(s.repomanager.DB())
	if err := repo.Create(ctx, rec); err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}

	s.logger.Info(ctx, "file stored", "user_id", rec.UserID, "file_id", rec.ID, "encrypted", rec.IsEncrypted)
	return rec.ID, nil
}

// Get returns the record with a fresh download URL. A record whose blob is
// gone is reported as not found.
func (s *FileService) Get(ctx context.Context, userID, id string) (*models.FileView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if err := checkFileID(id); err != nil {
		return nil, err
	}

	repo := s.repomanager.Files(s.repomanager.DB())
	rec, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	url, err := s.blobs.ResolveDownloadURL(ctx, rec.StorageKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("resolve blob: %w", err)
	}

	return &models.FileView{FileRecord: *rec, URL: url}, nil
}

// ListByOwner returns the caller's files, newest first. Records whose blob
// cannot be resolved are left out of the result but not removed.
func (s *FileService) ListByOwner(ctx context.Context, userID string) ([]*models.FileView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	repo := s.repomanager.Files(s.repomanager.DB())
	records, err := repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*models.FileView, 0, len(records))
	for _, rec := range records {
		url, err := s.blobs.ResolveDownloadURL(ctx, rec.StorageKey)
		if err != nil {
			s.logger.Warn(ctx, "hiding file with unresolvable blob", "file_id", rec.ID, "error", err)
			continue
		}
		views = append(views, &models.FileView{FileRecord: *rec, URL: url})
	}
	return views, nil
}

// Delete removes the record and its blob. The record deletion is rolled
// back if the blob cannot be removed. A blob that is already gone does
// not block the record deletion.
func (s *FileService) Delete(ctx context.Context, userID, id string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := checkFileID(id); err != nil {
		return err
	}

	err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Files(tx)

		rec, err := repo.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, userID, id); err != nil {
			return err
		}
		if err := s.blobs.Delete(ctx, rec.StorageKey); err != nil && !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("delete blob: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "file deleted", "user_id", userID, "file_id", id)
	return nil
}
