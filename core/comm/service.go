package comm

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrTemplateNotFound is used when a specific Template is requested but does not exist.
	ErrTemplateNotFound = errors.New("template not found")
)

type TemplateRepository interface {
	CreateTemplate(ctx context.Context, t Template) (Template, error)
	GetTemplateByID(ctx context.Context, id int) (Template, error)
	QueryAllTemplates(ctx context.Context) ([]Template, error)
	QueryTemplatesByCategory(ctx context.Context, category string) ([]Template, error)
	UpdateTemplate(ctx context.Context, t Template) (Template, error)
	DeleteTemplatesByID(ctx context.Context, ids ...int) error
}

type LogRepository interface {
	CreateLog(ctx context.Context, l Log) (Log, error)
	QueryRecentLogs(ctx context.Context, limit int) ([]Log, error)
}

// LinkBuilder turns a phone number and message into a messaging deep link.
type LinkBuilder interface {
	BuildLink(phone, message string) (string, error)
}

type ActivityLogger interface {
	Log(ctx context.Context, description, activityType string)
}

type Service struct {
	templates TemplateRepository
	logs      LogRepository
	links     LinkBuilder
	activity  ActivityLogger
}

func NewService(templates TemplateRepository, logs LogRepository, links LinkBuilder, activity ActivityLogger) *Service {
	return &Service{templates: templates, logs: logs, links: links, activity: activity}
}

func (svc *Service) CreateTemplate(ctx context.Context, nt NewTemplate) (Template, error) {
	if err := nt.Validate(); err != nil {
		return Template{}, err
	}
	now := time.Now().UTC()
	t := Template{
		Name:      nt.Name,
		Category:  nt.Category,
		Content:   nt.Content,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t, err := svc.templates.CreateTemplate(ctx, t)
	return t, errors.Wrap(err, "creating template")
}

func (svc *Service) GetTemplate(ctx context.Context, id int) (Template, error) {
	return svc.templates.GetTemplateByID(ctx, id)
}

func (svc *Service) QueryTemplates(ctx context.Context, category string) ([]Template, error) {
	if category == "" {
		return svc.templates.QueryAllTemplates(ctx)
	}
	return svc.templates.QueryTemplatesByCategory(ctx, category)
}

// FeeReminderTemplates lists the active templates usable for fee reminders.
func (svc *Service) FeeReminderTemplates(ctx context.Context) ([]Template, error) {
	tpls, err := svc.templates.QueryTemplatesByCategory(ctx, CategoryFeeReminder)
	if err != nil {
		return nil, err
	}
	active := tpls[:0]
	for _, t := range tpls {
		if t.IsActive {
			active = append(active, t)
		}
	}
	return active, nil
}

func (svc *Service) UpdateTemplate(ctx context.Context, id int, ut UpdateTemplate) (Template, error) {
	t, err := svc.templates.GetTemplateByID(ctx, id)
	if err != nil {
		return Template{}, err
	}
	if err = ut.Validate(); err != nil {
		return Template{}, err
	}

	if ut.Name != "" {
		t.Name = ut.Name
	}
	if ut.Category != "" {
		t.Category = ut.Category
	}
	if ut.Content != "" {
		t.Content = ut.Content
	}
	if ut.IsActive != nil {
		t.IsActive = *ut.IsActive
	}
	t.UpdatedAt = time.Now().UTC()

	t, err = svc.templates.UpdateTemplate(ctx, t)
	return t, errors.Wrapf(err, "updating template %d", id)
}

func (svc *Service) DeleteTemplates(ctx context.Context, ids ...int) error {
	if len(ids) == 0 {
		return nil
	}
	return errors.Wrap(svc.templates.DeleteTemplatesByID(ctx, ids...), "deleting templates")
}

// BuildReminders prepares one personalized message and deep link per
// recipient. It is best-effort: a bad phone number fails that row only,
// and the batch result reports partial success.
func (svc *Service) BuildReminders(ctx context.Context, recipients []Recipient, template Template) (BatchResult, error) {
	var res BatchResult
	res.Reminders = make([]Reminder, 0, len(recipients))

	for _, rcp := range recipients {
		r := Reminder{StudentID: rcp.StudentID, Name: rcp.Name, Phone: rcp.Phone}
		r.Message = Personalize(template.Content, rcp.Fields)

		link, err := svc.links.BuildLink(rcp.Phone, r.Message)
		if err != nil {
			r.Error = err.Error()
			res.Failed++
		} else {
			r.Link = link
			res.Prepared++
		}
		res.Reminders = append(res.Reminders, r)
	}

	if template.ID != 0 && res.Prepared > 0 {
		svc.bumpUsage(ctx, template)
	}
	svc.logBatch(ctx, res, template)
	return res, nil
}

func (svc *Service) bumpUsage(ctx context.Context, t Template) {
	cur, err := svc.templates.GetTemplateByID(ctx, t.ID)
	if err != nil {
		return
	}
	cur.UsageCount++
	cur.UpdatedAt = time.Now().UTC()
	svc.templates.UpdateTemplate(ctx, cur) //nolint:errcheck // usage count is advisory
}

// logBatch records the batch; logging is fire-and-forget.
func (svc *Service) logBatch(ctx context.Context, res BatchResult, template Template) {
	status := LogStatusSuccess
	switch {
	case res.Prepared == 0 && res.Failed > 0:
		status = LogStatusFailed
	case res.Failed > 0:
		status = LogStatusPartial
	}

	var msg string
	for _, r := range res.Reminders {
		if r.Message != "" {
			msg = r.Message
			break
		}
	}

	l := Log{
		Timestamp:      time.Now().UTC(),
		RecipientCount: len(res.Reminders),
		MessagePreview: preview(msg),
		TemplateUsed:   template.Name,
		ActivityType:   "whatsapp_message",
		Status:         status,
	}
	svc.logs.CreateLog(ctx, l) //nolint:errcheck

	if svc.activity != nil {
		svc.activity.Log(ctx, fmt.Sprintf("Fee reminders prepared for %d of %d recipient(s)",
			res.Prepared, len(res.Reminders)), "communication")
	}
}

// RecentLogs lists the latest communication batches, newest first.
func (svc *Service) RecentLogs(ctx context.Context, limit int) ([]Log, error) {
	if limit <= 0 {
		limit = 20
	}
	logs, err := svc.logs.QueryRecentLogs(ctx, limit)
	return logs, errors.Wrap(err, "querying communication logs")
}
