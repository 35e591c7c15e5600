package repomanager

import (
	"context"

	"github.com/dmitrijs2005/filevault/internal/dbx"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/files"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory. DB returns
// nil and Files(nil) is the shared table. WithTx hands fn a handle whose
// file writes are journaled and undone when fn fails; writes made outside
// that handle survive. Uncommitted writes are visible to other callers.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
	files *files.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		files: files.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *MemoryRepositoryManager) DB() dbx.DBTX { return nil }

// memoryTx is the tx value WithTx passes to fn. It only satisfies
// dbx.DBTX so it can travel through the RepositoryManager API; running SQL
// on it panics.
type memoryTx struct {
	dbx.DBTX
	files *files.MemoryTx
}

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) (err error) {
	tx := &memoryTx{files: m.files.Begin()}

	defer func() {
		if p := recover(); p != nil {
			tx.files.Rollback()
			panic(p)
		}
		if err != nil {
			tx.files.Rollback()
		}
	}()

	return fn(ctx, tx)
}

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return m.users }

func (m *MemoryRepositoryManager) Files(db dbx.DBTX) files.Repository {
	if tx, ok := db.(*memoryTx); ok {
		return tx.files
	}
	return m.files
}
