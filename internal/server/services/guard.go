// Package services contains server-side business logic: account handling,
// file metadata with its blob counterpart, and encrypt/decrypt transforms.
package services

import (
	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/google/uuid"
)

// requireUser fails when no identity was resolved for the caller.
func requireUser(userID string) error {
	if userID == "" {
		return common.ErrorUnauthenticated
	}
	return nil
}

// checkFileID treats malformed IDs as unknown ones.
func checkFileID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return nil
}
