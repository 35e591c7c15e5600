package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/cryptox"
	"github.com/dmitrijs2005/filevault/internal/logging"
	"github.com/dmitrijs2005/filevault/internal/server/blobstore"
	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Cipher is the part of cryptox.Engine the transform needs.
type Cipher interface {
	Encrypt(plaintext []byte, key cryptox.DerivedKey) ([]byte, error)
	Decrypt(ciphertext []byte, key cryptox.DerivedKey) ([]byte, error)
}

// TransformService replaces a stored file with its encrypted or decrypted
// counterpart.
type TransformService struct {
	repomanager repomanager.RepositoryManager
	blobs       blobstore.Store
	deriver     cryptox.KeyDeriver
	cipher      Cipher
	logger      logging.Logger
}

func NewTransformService(m repomanager.RepositoryManager, blobs blobstore.Store, deriver cryptox.KeyDeriver, cipher Cipher, logger logging.Logger) *TransformService {
	return &TransformService{
		repomanager: m,
		blobs:       blobs,
		deriver:     deriver,
		cipher:      cipher,
		logger:      logger.With("module", "transform"),
	}
}

// Transform encrypts or decrypts the content of fileID with a key derived
// from password and returns the ID of the record that replaces it.
//
// The replacement record is created before the source record and blob are
// removed. Failures to remove the source are logged and leave both copies
// in place. Every failure after the source was found, a wrong password
// included, is reported as common.ErrTransformFailed.
func (s *TransformService) Transform(ctx context.Context, userID, fileID, password string, direction models.Direction) (string, error) {
	if err := requireUser(userID); err != nil {
		return "", err
	}
	if !direction.Valid() {
		return "", fmt.Errorf("%w: unknown direction %q", common.ErrorValidation, direction)
	}
	if err := checkFileID(fileID); err != nil {
		return "", err
	}

	log := s.logger.With("user_id", userID, "file_id", fileID, "direction", string(direction))

	repo := s.repomanager.Files(s.repomanager.DB())
	src, err := repo.GetByID(ctx, userID, fileID)
	if err != nil {
		return "", err
	}

	if src.IsEncrypted != (direction == models.DirectionDecrypt) {
		log.Info(ctx, "transform direction does not match file state", "encrypted", src.IsEncrypted)
		return "", common.ErrTransformFailed
	}

	var (
		content []byte
		key     cryptox.DerivedKey
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		content, err = s.blobs.Fetch(gctx, src.StorageKey)
		return err
	})
	g.Go(func() error {
		key = s.deriver.DeriveKey(password)
		return nil
	})
	err = g.Wait()
	defer key.Wipe()
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		log.Error(ctx, "fetch source blob", "error", err)
		return "", common.ErrTransformFailed
	}

	out, err := s.run(content, key, direction)
	key.Wipe()
	if err != nil {
		log.Info(ctx, "cipher rejected input", "error", err)
		return "", common.ErrTransformFailed
	}

	h, err := s.blobs.RequestUpload(ctx, userID)
	if err != nil {
		log.Error(ctx, "request upload", "error", err)
		return "", common.ErrTransformFailed
	}
	newKey, err := s.blobs.Push(ctx, h, out)
	if err != nil {
		log.Error(ctx, "push result blob", "error", err)
		return "", common.ErrTransformFailed
	}

	dst := &models.FileRecord{
		ID:           uuid.NewString(),
		UserID:       userID,
		StorageKey:   newKey,
		Name:         transformedName(src.OriginalName, direction),
		OriginalName: src.OriginalName,
		IsEncrypted:  direction == models.DirectionEncrypt,
	}
	if err := repo.Create(ctx, dst); err != nil {
		log.Error(ctx, "create result record", "error", err)
		if derr := s.blobs.Delete(ctx, newKey); derr != nil {
			log.Warn(ctx, "remove orphaned result blob", "error", derr)
		}
		return "", common.ErrTransformFailed
	}

	s.cleanup(ctx, log, repo.Delete, src)

	log.Info(ctx, "file transformed", "new_file_id", dst.ID)
	return dst.ID, nil
}

func (s *TransformService) run(content []byte, key cryptox.DerivedKey, direction models.Direction) ([]byte, error) {
	if direction == models.DirectionEncrypt {
		return s.cipher.Encrypt(content, key)
	}
	return s.cipher.Decrypt(content, key)
}

// cleanup removes the superseded record and blob. Not-found means a
// concurrent transform got there first.
func (s *TransformService) cleanup(ctx context.Context, log logging.Logger,
	deleteRecord func(ctx context.Context, userID, id string) error, src *models.FileRecord) {

	if err := deleteRecord(ctx, src.UserID, src.ID); err != nil && !errors.Is(err, common.ErrorNotFound) {
		log.Warn(ctx, "delete superseded record", "error", err)
	}
	if err := s.blobs.Delete(ctx, src.StorageKey); err != nil && !errors.Is(err, common.ErrorNotFound) {
		log.Warn(ctx, "delete superseded blob", "error", err)
	}
}

// transformedName derives the display name from the upload-time name, so
// repeated round trips never stack suffixes.
func transformedName(originalName string, direction models.Direction) string {
	if direction == models.DirectionEncrypt {
		return originalName + common.EncryptedSuffix
	}
	return originalName
}
