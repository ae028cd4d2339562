package demodb

import (
	"context"
	"sort"

	"github.com/vedsagar/educrm/core/category"
)

type categoryRepository struct {
	db *categoryTable
}

var _ category.Repository = (*categoryRepository)(nil)

func NewCategoryRepository(db *DB) *categoryRepository {
	return &categoryRepository{db: db.category}
}

func (repo *categoryRepository) query() []category.Category {
	categories := make([]category.Category, 0, len(repo.db.table))
	for _, c := range repo.db.table {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories
}

func (repo *categoryRepository) CreateCategory(_ context.Context, c category.Category) (category.Category, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	c.ID = repo.db.pk
	repo.db.table[c.ID] = &c
	return c, nil
}

func (repo *categoryRepository) GetCategoryByID(_ context.Context, id int) (category.Category, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.table[id]; ok {
		return *c, nil
	}
	return category.Category{}, category.ErrNotFound
}

func (repo *categoryRepository) GetCategoryByName(_ context.Context, name string) (category.Category, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, c := range repo.db.table {
		if c.Name == name {
			return *c, nil
		}
	}
	return category.Category{}, category.ErrNotFound
}

func (repo *categoryRepository) QueryAllCategories(_ context.Context) ([]category.Category, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *categoryRepository) UpdateCategory(_ context.Context, c category.Category) (category.Category, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[c.ID]; !ok {
		return category.Category{}, category.ErrNotFound
	}
	repo.db.table[c.ID] = &c
	return c, nil
}

func (repo *categoryRepository) DeleteCategoriesByID(_ context.Context, ids ...int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
