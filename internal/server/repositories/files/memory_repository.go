package files

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// MemoryRepository keeps records in a map. It backs local runs without a
// database and the service tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	files map[string]models.FileRecord
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{files: make(map[string]models.FileRecord), now: time.Now}
}

func (r *MemoryRepository) Create(ctx context.Context, file *models.FileRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.files[file.ID]; ok {
		return common.ErrorAlreadyExists
	}
	for _, f := range r.files {
		if file.StorageKey != "" && f.StorageKey == file.StorageKey {
			return fmt.Errorf("%w: storage key already in use", common.ErrorValidation)
		}
	}
	file.CreatedAt = r.now()
	r.files[file.ID] = *file
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, userID, id string) (*models.FileRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.files[id]
	if !ok || f.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return &f, nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, userID string) ([]*models.FileRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.FileRecord
	for _, f := range r.files {
		if f.UserID == userID {
			result = append(result, &f)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.take(userID, id)
	return err
}

func (r *MemoryRepository) take(userID, id string) (models.FileRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.files[id]
	if !ok || f.UserID != userID {
		return models.FileRecord{}, common.ErrorNotFound
	}
	delete(r.files, id)
	return f, nil
}

// Begin returns a handle whose writes can be undone with Rollback. Reads and
// writes go straight to r, so other callers see them immediately.
func (r *MemoryRepository) Begin() *MemoryTx {
	return &MemoryTx{repo: r}
}

type journalEntry struct {
	created bool
	rec     models.FileRecord
}

// MemoryTx records the writes made through it. Rollback reverts only those;
// records written by other callers in the meantime stay untouched.
type MemoryTx struct {
	repo *MemoryRepository

	mu      sync.Mutex
	journal []journalEntry
}

func (t *MemoryTx) Create(ctx context.Context, file *models.FileRecord) error {
	if err := t.repo.Create(ctx, file); err != nil {
		return err
	}
	t.record(journalEntry{created: true, rec: *file})
	return nil
}

func (t *MemoryTx) GetByID(ctx context.Context, userID, id string) (*models.FileRecord, error) {
	return t.repo.GetByID(ctx, userID, id)
}

func (t *MemoryTx) ListByOwner(ctx context.Context, userID string) ([]*models.FileRecord, error) {
	return t.repo.ListByOwner(ctx, userID)
}

func (t *MemoryTx) Delete(ctx context.Context, userID, id string) error {
	f, err := t.repo.take(userID, id)
	if err != nil {
		return err
	}
	t.record(journalEntry{rec: f})
	return nil
}

func (t *MemoryTx) record(e journalEntry) {
	t.mu.Lock()
	t.journal = append(t.journal, e)
	t.mu.Unlock()
}

// Rollback replays the journal backwards. It is safe to call more than once.
func (t *MemoryTx) Rollback() {
	t.mu.Lock()
	journal := t.journal
	t.journal = nil
	t.mu.Unlock()

	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for i := len(journal) - 1; i >= 0; i-- {
		e := journal[i]
		if e.created {
			delete(t.repo.files, e.rec.ID)
			continue
		}
		if _, ok := t.repo.files[e.rec.ID]; !ok {
			t.repo.files[e.rec.ID] = e.rec
		}
	}
}
