package performance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrTestNotFound  = errors.New("test not found")
	ErrScoreNotFound = errors.New("score not found")
)

type Repository interface {
	CreateTest(ctx context.Context, t Test) (Test, error)
	GetTestByID(ctx context.Context, id int) (Test, error)
	QueryRecentTests(ctx context.Context, limit int) ([]Test, error)
	QueryTestsByBatch(ctx context.Context, batch string) ([]Test, error)
	UpdateTest(ctx context.Context, t Test) (Test, error)

	UpsertScore(ctx context.Context, s Score) (Score, error)
	QueryScoresByTest(ctx context.Context, testID int) ([]Score, error)
	QueryScoresByStudent(ctx context.Context, studentID int) ([]Score, error)
}

type ActivityLogger interface {
	Log(ctx context.Context, description, activityType string)
}

type Service struct {
	repo     Repository
	activity ActivityLogger
}

func NewService(repo Repository, activity ActivityLogger) *Service {
	return &Service{repo: repo, activity: activity}
}

func (svc *Service) CreateTest(ctx context.Context, nt NewTest) (Test, error) {
	if err := nt.Validate(); err != nil {
		return Test{}, err
	}
	t := Test{
		Name:        nt.Name,
		Subject:     nt.Subject,
		Date:        nt.Date,
		MaxMarks:    nt.MaxMarks,
		Category:    nt.Category,
		Batch:       nt.Batch,
		BatchID:     nt.BatchID,
		Description: nt.Description,
		Status:      StatusScheduled,
		CreatedAt:   time.Now().UTC(),
	}
	t, err := svc.repo.CreateTest(ctx, t)
	if err != nil {
		return Test{}, errors.Wrap(err, "creating test")
	}
	if svc.activity != nil {
		svc.activity.Log(ctx, fmt.Sprintf("Test %q scheduled for %s", t.Name, t.Batch), "test")
	}
	return t, nil
}

func (svc *Service) GetTest(ctx context.Context, id int) (Test, error) {
	return svc.repo.GetTestByID(ctx, id)
}

func (svc *Service) RecentTests(ctx context.Context, limit int) ([]Test, error) {
	if limit <= 0 {
		limit = 10
	}
	return svc.repo.QueryRecentTests(ctx, limit)
}

func (svc *Service) TestsByBatch(ctx context.Context, batch string) ([]Test, error) {
	return svc.repo.QueryTestsByBatch(ctx, batch)
}

// SaveScore records or replaces a student's result for a test. Saving the
// first score moves a scheduled test to Completed.
func (svc *Service) SaveScore(ctx context.Context, ns NewScore) (Score, error) {
	t, err := svc.repo.GetTestByID(ctx, ns.TestID)
	if err != nil {
		return Score{}, err
	}
	if err = ns.Validate(t.MaxMarks); err != nil {
		return Score{}, err
	}

	s := Score{
		TestID:        ns.TestID,
		StudentID:     ns.StudentID,
		MarksObtained: ns.MarksObtained,
		Attendance:    ns.Attendance,
		Remarks:       ns.Remarks,
		CreatedAt:     time.Now().UTC(),
	}
	s, err = svc.repo.UpsertScore(ctx, s)
	if err != nil {
		return Score{}, errors.Wrap(err, "saving score")
	}

	if t.Status == StatusScheduled {
		t.Status = StatusCompleted
		if _, err = svc.repo.UpdateTest(ctx, t); err != nil {
			return Score{}, errors.Wrapf(err, "completing test %d", t.ID)
		}
	}
	return s, nil
}

func (svc *Service) ScoresForTest(ctx context.Context, testID int) ([]Score, error) {
	if _, err := svc.repo.GetTestByID(ctx, testID); err != nil {
		return nil, err
	}
	return svc.repo.QueryScoresByTest(ctx, testID)
}

// StudentHistory joins a student's scores with their tests, newest test
// first, with percent and grade computed.
func (svc *Service) StudentHistory(ctx context.Context, studentID int) ([]Result, error) {
	scores, err := svc.repo.QueryScoresByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "querying scores")
	}

	results := make([]Result, 0, len(scores))
	for _, s := range scores {
		t, err := svc.repo.GetTestByID(ctx, s.TestID)
		if err != nil {
			if errors.Cause(err) == ErrTestNotFound {
				continue // orphaned score, skip
			}
			return nil, err
		}
		pct := Percent(s.MarksObtained, t.MaxMarks)
		results = append(results, Result{Score: s, Test: t, Percent: pct, Grade: Grade(pct)})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Test.Date.After(results[j].Test.Date) })
	return results, nil
}
