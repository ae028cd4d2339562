package activity

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/vedsagar/educrm/core"
)

// Activity types recorded in the audit trail.
const (
	TypeSystem        = "system"
	TypeEnrollment    = "enrollment"
	TypePayment       = "payment"
	TypeCommunication = "communication"
	TypeTest          = "test"
)

var (
	ErrNotFound = errors.New("activity not found")
)

// Activity is a single audit trail entry. Entries are append-only.
type Activity struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	User        string    `json:"user,omitempty"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	Age         string    `json:"time_ago,omitempty"` // derived, never stored
}

// TimeAgo renders the entry age relative to now for dashboards.
func (a Activity) TimeAgo(now time.Time) string {
	return core.TimeAgo(a.CreatedAt, now)
}

type Repository interface {
	CreateActivity(ctx context.Context, a Activity) (Activity, error)
	QueryRecentActivities(ctx context.Context, limit int) ([]Activity, error)
}

type Service struct {
	repo Repository
	log  core.Logger
}

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Log records an audit entry. Failures are logged and swallowed; the audit
// trail must never fail the operation that produced it.
func (svc *Service) Log(ctx context.Context, description, activityType string) {
	a := Activity{
		Description: description,
		Type:        activityType,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := svc.repo.CreateActivity(ctx, a); err != nil && svc.log != nil {
		svc.log.Error("recording activity", "error", err)
	}
}

// Recent returns the latest entries, newest first, each annotated with its
// humanized age.
func (svc *Service) Recent(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 10
	}
	acts, err := svc.repo.QueryRecentActivities(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "querying recent activities")
	}
	now := time.Now().UTC()
	for i := range acts {
		acts[i].Age = acts[i].TimeAgo(now)
	}
	return acts, nil
}
