package files

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Ownership(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	require.NoError(t, r.Create(ctx, &models.FileRecord{ID: "f1", UserID: "alice", Name: "a.txt"}))
	require.ErrorIs(t, r.Create(ctx, &models.FileRecord{ID: "f1", UserID: "alice"}), common.ErrorAlreadyExists)

	got, err := r.GetByID(ctx, "alice", "f1")
	require.NoError(t, err)
	assert.Equal(t, "a.txt", got.Name)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = r.GetByID(ctx, "bob", "f1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, r.Delete(ctx, "bob", "f1"), common.ErrorNotFound)
	require.NoError(t, r.Delete(ctx, "alice", "f1"))
	assert.ErrorIs(t, r.Delete(ctx, "alice", "f1"), common.ErrorNotFound)
}

func TestMemoryRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	base := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	tick := 0
	r.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	require.NoError(t, r.Create(ctx, &models.FileRecord{ID: "old", UserID: "alice"}))
	require.NoError(t, r.Create(ctx, &models.FileRecord{ID: "new", UserID: "alice"}))
	require.NoError(t, r.Create(ctx, &models.FileRecord{ID: "other", UserID: "bob"}))

	got, err := r.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
}

func TestMemoryRepository_StorageKeyUnique(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	require.NoError(t, r.Create(ctx, &models.FileRecord{ID: "f1", UserID: "alice", StorageKey: "users/alice/k"}))

	err := r.Create(ctx, &models.FileRecord{ID: "f2", UserID: "bob", StorageKey: "users/alice/k"})
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = r.GetByID(ctx, "bob", "f2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryTx_RollbackUndoesOwnWrites(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	require.NoError(t, r.Create(ctx, &models.FileRecord{ID: "kept", UserID: "alice", StorageKey: "k0"}))

	tx := r.Begin()
	require.NoError(t, tx.Create(ctx, &models.FileRecord{ID: "f1", UserID: "alice", StorageKey: "k1"}))
	require.NoError(t, tx.Delete(ctx, "alice", "kept"))
	require.NoError(t, r.Create(ctx, &models.FileRecord{ID: "outside", UserID: "bob", StorageKey: "k2"}))

	tx.Rollback()
	tx.Rollback()

	_, err := r.GetByID(ctx, "alice", "f1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.GetByID(ctx, "alice", "kept")
	assert.NoError(t, err)
	_, err = r.GetByID(ctx, "bob", "outside")
	assert.NoError(t, err)
}

func TestMemoryTx_CreateThenDeleteRollsBackToAbsent(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	tx := r.Begin()
	require.NoError(t, tx.Create(ctx, &models.FileRecord{ID: "f1", UserID: "alice", StorageKey: "k1"}))
	require.NoError(t, tx.Delete(ctx, "alice", "f1"))
	tx.Rollback()

	got, err := r.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryTx_ImplementsRepository(t *testing.T) {
	var _ Repository = (*MemoryTx)(nil)
	var _ Repository = (*MemoryRepository)(nil)
}
