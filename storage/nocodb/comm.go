package nocodb

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/vedsagar/educrm/core/comm"
)

const (
	templatesTable = "message_templates"
	commLogsTable  = "communication_logs"
)

type templateRecord struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Content    string `json:"content"`
	IsActive   bool   `json:"is_active"`
	UsageCount int    `json:"usage_count"`
	CreatedAt  *Date  `json:"created_at,omitempty"`
	UpdatedAt  *Date  `json:"updated_at,omitempty"`
}

func newTemplateRecord(t comm.Template) templateRecord {
	return templateRecord{
		ID:         t.ID,
		Name:       t.Name,
		Category:   t.Category,
		Content:    t.Content,
		IsActive:   t.IsActive,
		UsageCount: t.UsageCount,
		CreatedAt:  NewDate(&t.CreatedAt),
		UpdatedAt:  NewDate(&t.UpdatedAt),
	}
}

func (r templateRecord) toTemplate() comm.Template {
	return comm.Template{
		ID:         r.ID,
		Name:       r.Name,
		Category:   r.Category,
		Content:    r.Content,
		IsActive:   r.IsActive,
		UsageCount: r.UsageCount,
		CreatedAt:  r.CreatedAt.OrZero(),
		UpdatedAt:  r.UpdatedAt.OrZero(),
	}
}

type templateRepository struct {
	client *Client
}

var _ comm.TemplateRepository = (*templateRepository)(nil)

func NewTemplateRepository(client *Client) *templateRepository {
	return &templateRepository{client: client}
}

func (repo *templateRepository) CreateTemplate(ctx context.Context, t comm.Template) (comm.Template, error) {
	rec := newTemplateRecord(t)
	rec.ID = 0
	var created templateRecord
	if err := repo.client.Create(ctx, templatesTable, rec, &created); err != nil {
		return comm.Template{}, err
	}
	return created.toTemplate(), nil
}

func (repo *templateRepository) GetTemplateByID(ctx context.Context, id int) (comm.Template, error) {
	var rec templateRecord
	if err := repo.client.Get(ctx, templatesTable, id, &rec); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return comm.Template{}, comm.ErrTemplateNotFound
		}
		return comm.Template{}, err
	}
	return rec.toTemplate(), nil
}

func (repo *templateRepository) QueryAllTemplates(ctx context.Context) ([]comm.Template, error) {
	var recs []templateRecord
	params := url.Values{"sort": []string{"id"}, "limit": []string{"1000"}}
	if err := repo.client.List(ctx, templatesTable, params, &recs); err != nil {
		return nil, err
	}
	return toTemplates(recs), nil
}

func (repo *templateRepository) QueryTemplatesByCategory(ctx context.Context, category string) ([]comm.Template, error) {
	var recs []templateRecord
	params := url.Values{"where": []string{"(category,eq," + category + ")"}, "sort": []string{"id"}}
	if err := repo.client.List(ctx, templatesTable, params, &recs); err != nil {
		return nil, err
	}
	return toTemplates(recs), nil
}

func (repo *templateRepository) UpdateTemplate(ctx context.Context, t comm.Template) (comm.Template, error) {
	if err := repo.client.Update(ctx, templatesTable, t.ID, newTemplateRecord(t)); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return comm.Template{}, comm.ErrTemplateNotFound
		}
		return comm.Template{}, err
	}
	return t, nil
}

func (repo *templateRepository) DeleteTemplatesByID(ctx context.Context, ids ...int) error {
	for _, id := range ids {
		if err := repo.client.Delete(ctx, templatesTable, id); err != nil && errors.Cause(err) != ErrNotFound {
			return err
		}
	}
	return nil
}

func toTemplates(recs []templateRecord) []comm.Template {
	templates := make([]comm.Template, 0, len(recs))
	for _, rec := range recs {
		templates = append(templates, rec.toTemplate())
	}
	return templates
}

type commLogRecord struct {
	ID             int    `json:"id,omitempty"`
	Timestamp      string `json:"timestamp"`
	RecipientCount int    `json:"recipient_count"`
	MessagePreview string `json:"message_preview,omitempty"`
	TemplateUsed   string `json:"template_used,omitempty"`
	ActivityType   string `json:"activity_type"`
	Status         string `json:"status"`
}

func (r commLogRecord) toLog() comm.Log {
	ts, _ := time.Parse(time.RFC3339, r.Timestamp)
	return comm.Log{
		ID:             r.ID,
		Timestamp:      ts,
		RecipientCount: r.RecipientCount,
		MessagePreview: r.MessagePreview,
		TemplateUsed:   r.TemplateUsed,
		ActivityType:   r.ActivityType,
		Status:         r.Status,
	}
}

type commLogRepository struct {
	client *Client
}

var _ comm.LogRepository = (*commLogRepository)(nil)

func NewCommLogRepository(client *Client) *commLogRepository {
	return &commLogRepository{client: client}
}

func (repo *commLogRepository) CreateLog(ctx context.Context, l comm.Log) (comm.Log, error) {
	rec := commLogRecord{
		Timestamp:      l.Timestamp.Format(time.RFC3339),
		RecipientCount: l.RecipientCount,
		MessagePreview: l.MessagePreview,
		TemplateUsed:   l.TemplateUsed,
		ActivityType:   l.ActivityType,
		Status:         l.Status,
	}
	var created commLogRecord
	if err := repo.client.Create(ctx, commLogsTable, rec, &created); err != nil {
		return comm.Log{}, err
	}
	return created.toLog(), nil
}

func (repo *commLogRepository) QueryRecentLogs(ctx context.Context, limit int) ([]comm.Log, error) {
	var recs []commLogRecord
	params := url.Values{"sort": []string{"-timestamp"}, "limit": []string{strconv.Itoa(limit)}}
	if err := repo.client.List(ctx, commLogsTable, params, &recs); err != nil {
		return nil, err
	}
	logs := make([]comm.Log, 0, len(recs))
	for _, rec := range recs {
		logs = append(logs, rec.toLog())
	}
	return logs, nil
}
