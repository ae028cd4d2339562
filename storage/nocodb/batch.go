package nocodb

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core/batch"
)

const batchesTable = "batches"

type batchRecord struct {
	ID         int             `json:"id,omitempty"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	CategoryID int             `json:"category_id,omitempty"`
	Schedule   string          `json:"schedule,omitempty"`
	StartDate  *Date           `json:"start_date,omitempty"`
	EndDate    *Date           `json:"end_date,omitempty"`
	Fee        decimal.Decimal `json:"fee"`
	Capacity   int             `json:"capacity,omitempty"`
	Instructor string          `json:"instructor,omitempty"`
	Active     bool            `json:"active"`
	CreatedAt  *Date           `json:"created_at,omitempty"`
	UpdatedAt  *Date           `json:"updated_at,omitempty"`
}

func newBatchRecord(b batch.Batch) batchRecord {
	return batchRecord{
		ID:         b.ID,
		Name:       b.Name,
		Category:   b.Category,
		CategoryID: b.CategoryID,
		Schedule:   b.Schedule,
		StartDate:  NewDate(b.StartDate),
		EndDate:    NewDate(b.EndDate),
		Fee:        b.Fee,
		Capacity:   b.Capacity,
		Instructor: b.Teacher,
		Active:     b.Active,
		CreatedAt:  NewDate(&b.CreatedAt),
		UpdatedAt:  NewDate(&b.UpdatedAt),
	}
}

func (r batchRecord) toBatch() batch.Batch {
	return batch.Batch{
		ID:         r.ID,
		Name:       r.Name,
		Category:   r.Category,
		CategoryID: r.CategoryID,
		Schedule:   r.Schedule,
		StartDate:  r.StartDate.TimePtr(),
		EndDate:    r.EndDate.TimePtr(),
		Fee:        r.Fee,
		Capacity:   r.Capacity,
		Teacher:    r.Instructor,
		Active:     r.Active,
		CreatedAt:  r.CreatedAt.OrZero(),
		UpdatedAt:  r.UpdatedAt.OrZero(),
	}
}

type batchRepository struct {
	client *Client
}

var _ batch.Repository = (*batchRepository)(nil)

func NewBatchRepository(client *Client) *batchRepository {
	return &batchRepository{client: client}
}

func (repo *batchRepository) CreateBatch(ctx context.Context, b batch.Batch) (batch.Batch, error) {
	rec := newBatchRecord(b)
	rec.ID = 0
	var created batchRecord
	if err := repo.client.Create(ctx, batchesTable, rec, &created); err != nil {
		return batch.Batch{}, err
	}
	return created.toBatch(), nil
}

func (repo *batchRepository) GetBatchByID(ctx context.Context, id int) (batch.Batch, error) {
	var rec batchRecord
	if err := repo.client.Get(ctx, batchesTable, id, &rec); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return batch.Batch{}, batch.ErrNotFound
		}
		return batch.Batch{}, err
	}
	return rec.toBatch(), nil
}

func (repo *batchRepository) GetBatchByName(ctx context.Context, name string) (batch.Batch, error) {
	var recs []batchRecord
	params := url.Values{"where": []string{"(name,eq," + name + ")"}, "limit": []string{"1"}}
	if err := repo.client.List(ctx, batchesTable, params, &recs); err != nil {
		return batch.Batch{}, err
	}
	if len(recs) == 0 {
		return batch.Batch{}, batch.ErrNotFound
	}
	return recs[0].toBatch(), nil
}

func (repo *batchRepository) QueryAllBatches(ctx context.Context) ([]batch.Batch, error) {
	var recs []batchRecord
	params := url.Values{"sort": []string{"id"}, "limit": []string{"1000"}}
	if err := repo.client.List(ctx, batchesTable, params, &recs); err != nil {
		return nil, err
	}
	batches := make([]batch.Batch, 0, len(recs))
	for _, rec := range recs {
		batches = append(batches, rec.toBatch())
	}
	return batches, nil
}

func (repo *batchRepository) QueryBatchesByCategory(ctx context.Context, category string) ([]batch.Batch, error) {
	var recs []batchRecord
	params := url.Values{"where": []string{"(category,eq," + category + ")"}, "sort": []string{"id"}}
	if err := repo.client.List(ctx, batchesTable, params, &recs); err != nil {
		return nil, err
	}
	batches := make([]batch.Batch, 0, len(recs))
	for _, rec := range recs {
		batches = append(batches, rec.toBatch())
	}
	return batches, nil
}

func (repo *batchRepository) UpdateBatch(ctx context.Context, b batch.Batch) (batch.Batch, error) {
	if err := repo.client.Update(ctx, batchesTable, b.ID, newBatchRecord(b)); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return batch.Batch{}, batch.ErrNotFound
		}
		return batch.Batch{}, err
	}
	return b, nil
}

func (repo *batchRepository) DeleteBatchesByID(ctx context.Context, ids ...int) error {
	for _, id := range ids {
		if err := repo.client.Delete(ctx, batchesTable, id); err != nil && errors.Cause(err) != ErrNotFound {
			return err
		}
	}
	return nil
}
