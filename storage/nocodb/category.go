package nocodb

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core/category"
)

const categoriesTable = "categories"

type categoryRecord struct {
	ID          int             `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	DefaultFee  decimal.Decimal `json:"default_fee"`
	DurationMo  int             `json:"duration_months,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   *Date           `json:"created_at,omitempty"`
	UpdatedAt   *Date           `json:"updated_at,omitempty"`
}

func newCategoryRecord(c category.Category) categoryRecord {
	return categoryRecord{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		DefaultFee:  c.DefaultFee,
		DurationMo:  c.DurationMo,
		Active:      c.Active,
		CreatedAt:   NewDate(&c.CreatedAt),
		UpdatedAt:   NewDate(&c.UpdatedAt),
	}
}

func (r categoryRecord) toCategory() category.Category {
	return category.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		DefaultFee:  r.DefaultFee,
		DurationMo:  r.DurationMo,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt.OrZero(),
		UpdatedAt:   r.UpdatedAt.OrZero(),
	}
}

type categoryRepository struct {
	client *Client
}

var _ category.Repository = (*categoryRepository)(nil)

func NewCategoryRepository(client *Client) *categoryRepository {
	return &categoryRepository{client: client}
}

func (repo *categoryRepository) CreateCategory(ctx context.Context, c category.Category) (category.Category, error) {
	rec := newCategoryRecord(c)
	rec.ID = 0
	var created categoryRecord
	if err := repo.client.Create(ctx, categoriesTable, rec, &created); err != nil {
		return category.Category{}, err
	}
	return created.toCategory(), nil
}

func (repo *categoryRepository) GetCategoryByID(ctx context.Context, id int) (category.Category, error) {
	var rec categoryRecord
	if err := repo.client.Get(ctx, categoriesTable, id, &rec); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return category.Category{}, category.ErrNotFound
		}
		return category.Category{}, err
	}
	return rec.toCategory(), nil
}

func (repo *categoryRepository) GetCategoryByName(ctx context.Context, name string) (category.Category, error) {
	var recs []categoryRecord
	params := url.Values{"where": []string{"(name,eq," + name + ")"}, "limit": []string{"1"}}
	if err := repo.client.List(ctx, categoriesTable, params, &recs); err != nil {
		return category.Category{}, err
	}
	if len(recs) == 0 {
		return category.Category{}, category.ErrNotFound
	}
	return recs[0].toCategory(), nil
}

func (repo *categoryRepository) QueryAllCategories(ctx context.Context) ([]category.Category, error) {
	var recs []categoryRecord
	params := url.Values{"sort": []string{"id"}, "limit": []string{"1000"}}
	if err := repo.client.List(ctx, categoriesTable, params, &recs); err != nil {
		return nil, err
	}
	categories := make([]category.Category, 0, len(recs))
	for _, rec := range recs {
		categories = append(categories, rec.toCategory())
	}
	return categories, nil
}

func (repo *categoryRepository) UpdateCategory(ctx context.Context, c category.Category) (category.Category, error) {
	if err := repo.client.Update(ctx, categoriesTable, c.ID, newCategoryRecord(c)); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return category.Category{}, category.ErrNotFound
		}
		return category.Category{}, err
	}
	return c, nil
}

func (repo *categoryRepository) DeleteCategoriesByID(ctx context.Context, ids ...int) error {
	for _, id := range ids {
		if err := repo.client.Delete(ctx, categoriesTable, id); err != nil && errors.Cause(err) != ErrNotFound {
			return err
		}
	}
	return nil
}
