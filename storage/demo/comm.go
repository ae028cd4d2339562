package demodb

import (
	"context"
	"sort"

	"github.com/vedsagar/educrm/core/comm"
)

type templateRepository struct {
	db *templateTable
}

var _ comm.TemplateRepository = (*templateRepository)(nil)

func NewTemplateRepository(db *DB) *templateRepository {
	return &templateRepository{db: db.template}
}

func (repo *templateRepository) query() []comm.Template {
	templates := make([]comm.Template, 0, len(repo.db.table))
	for _, t := range repo.db.table {
		templates = append(templates, *t)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].ID < templates[j].ID })
	return templates
}

func (repo *templateRepository) CreateTemplate(_ context.Context, t comm.Template) (comm.Template, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	t.ID = repo.db.pk
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *templateRepository) GetTemplateByID(_ context.Context, id int) (comm.Template, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return comm.Template{}, comm.ErrTemplateNotFound
}

func (repo *templateRepository) QueryAllTemplates(_ context.Context) ([]comm.Template, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *templateRepository) QueryTemplatesByCategory(_ context.Context, category string) ([]comm.Template, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var filtered []comm.Template
	for _, t := range repo.query() {
		if t.Category == category {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (repo *templateRepository) UpdateTemplate(_ context.Context, t comm.Template) (comm.Template, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[t.ID]; !ok {
		return comm.Template{}, comm.ErrTemplateNotFound
	}
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *templateRepository) DeleteTemplatesByID(_ context.Context, ids ...int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}

type commLogRepository struct {
	db *commLogTable
}

var _ comm.LogRepository = (*commLogRepository)(nil)

func NewCommLogRepository(db *DB) *commLogRepository {
	return &commLogRepository{db: db.commLog}
}

func (repo *commLogRepository) CreateLog(_ context.Context, l comm.Log) (comm.Log, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	l.ID = repo.db.pk
	repo.db.table[l.ID] = &l
	return l, nil
}

func (repo *commLogRepository) QueryRecentLogs(_ context.Context, limit int) ([]comm.Log, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	logs := make([]comm.Log, 0, len(repo.db.table))
	for _, l := range repo.db.table {
		logs = append(logs, *l)
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].Timestamp.After(logs[j].Timestamp) })
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}
