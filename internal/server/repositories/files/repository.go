package files

import (
	"context"

	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// Repository stores file records. Every method that takes a userID only
// ever sees that user's rows; a row owned by someone else is reported as
// common.ErrorNotFound, exactly like a missing one.
type Repository interface {
	Create(ctx context.Context, file *models.FileRecord) error
	GetByID(ctx context.Context, userID, id string) (*models.FileRecord, error)
	ListByOwner(ctx context.Context, userID string) ([]*models.FileRecord, error)
	Delete(ctx context.Context, userID, id string) error
}
