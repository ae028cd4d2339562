package demodb

import (
	"context"
	"sort"

	"github.com/vedsagar/educrm/core/batch"
)

type batchRepository struct {
	db *batchTable
}

var _ batch.Repository = (*batchRepository)(nil)

func NewBatchRepository(db *DB) *batchRepository {
	return &batchRepository{db: db.batch}
}

func (repo *batchRepository) query() []batch.Batch {
	batches := make([]batch.Batch, 0, len(repo.db.table))
	for _, b := range repo.db.table {
		batches = append(batches, *b)
	}
	sort.Slice(batches, func(i, j int) bool { return batches[i].ID < batches[j].ID })
	return batches
}

func (repo *batchRepository) CreateBatch(_ context.Context, b batch.Batch) (batch.Batch, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	b.ID = repo.db.pk
	repo.db.table[b.ID] = &b
	return b, nil
}

func (repo *batchRepository) GetBatchByID(_ context.Context, id int) (batch.Batch, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if b, ok := repo.db.table[id]; ok {
		return *b, nil
	}
	return batch.Batch{}, batch.ErrNotFound
}

func (repo *batchRepository) GetBatchByName(_ context.Context, name string) (batch.Batch, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, b := range repo.db.table {
		if b.Name == name {
			return *b, nil
		}
	}
	return batch.Batch{}, batch.ErrNotFound
}

func (repo *batchRepository) QueryAllBatches(_ context.Context) ([]batch.Batch, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *batchRepository) QueryBatchesByCategory(_ context.Context, category string) ([]batch.Batch, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var filtered []batch.Batch
	for _, b := range repo.query() {
		if b.Category == category {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (repo *batchRepository) UpdateBatch(_ context.Context, b batch.Batch) (batch.Batch, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[b.ID]; !ok {
		return batch.Batch{}, batch.ErrNotFound
	}
	repo.db.table[b.ID] = &b
	return b, nil
}

func (repo *batchRepository) DeleteBatchesByID(_ context.Context, ids ...int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
