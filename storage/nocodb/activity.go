package nocodb

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/vedsagar/educrm/core/activity"
)

const activitiesTable = "activities"

type activityRecord struct {
	ID          int    `json:"id,omitempty"`
	Description string `json:"description"`
	Type        string `json:"activity_type"`
	User        string `json:"user,omitempty"`
	Timestamp   string `json:"timestamp"`
}

func (r activityRecord) toActivity() activity.Activity {
	ts, _ := time.Parse(time.RFC3339, r.Timestamp)
	return activity.Activity{
		ID:          r.ID,
		Description: r.Description,
		Type:        r.Type,
		User:        r.User,
		CreatedAt:   ts,
	}
}

type activityRepository struct {
	client *Client
}

var _ activity.Repository = (*activityRepository)(nil)

func NewActivityRepository(client *Client) *activityRepository {
	return &activityRepository{client: client}
}

func (repo *activityRepository) CreateActivity(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	rec := activityRecord{
		Description: a.Description,
		Type:        a.Type,
		User:        a.User,
		Timestamp:   a.CreatedAt.Format(time.RFC3339),
	}
	var created activityRecord
	if err := repo.client.Create(ctx, activitiesTable, rec, &created); err != nil {
		return activity.Activity{}, err
	}
	return created.toActivity(), nil
}

func (repo *activityRepository) QueryRecentActivities(ctx context.Context, limit int) ([]activity.Activity, error) {
	var recs []activityRecord
	params := url.Values{"sort": []string{"-timestamp"}, "limit": []string{strconv.Itoa(limit)}}
	if err := repo.client.List(ctx, activitiesTable, params, &recs); err != nil {
		return nil, err
	}
	activities := make([]activity.Activity, 0, len(recs))
	for _, rec := range recs {
		activities = append(activities, rec.toActivity())
	}
	return activities, nil
}
