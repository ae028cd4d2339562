package demodb

import (
	"context"
	"sort"

	"github.com/vedsagar/educrm/core/activity"
)

type activityRepository struct {
	db *activityTable
}

var _ activity.Repository = (*activityRepository)(nil)

func NewActivityRepository(db *DB) *activityRepository {
	return &activityRepository{db: db.activities}
}

func (repo *activityRepository) CreateActivity(_ context.Context, a activity.Activity) (activity.Activity, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	a.ID = repo.db.pk
	repo.db.table[a.ID] = &a
	return a, nil
}

func (repo *activityRepository) QueryRecentActivities(_ context.Context, limit int) ([]activity.Activity, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	activities := make([]activity.Activity, 0, len(repo.db.table))
	for _, a := range repo.db.table {
		activities = append(activities, *a)
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].CreatedAt.After(activities[j].CreatedAt) })
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}
