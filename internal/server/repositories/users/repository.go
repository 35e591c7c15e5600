package users

import (
	"context"

	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// Repository stores vault accounts. Usernames are unique; the stored
// PasswordHash is a bcrypt hash, never the password itself.
type Repository interface {
	// Create persists user and returns it with ID and CreatedAt filled in.
	// A taken username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByUsername returns the account used to verify a login. An unknown
	// name yields common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
