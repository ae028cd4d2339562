package nocodb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vedsagar/educrm/core/performance"
)

const (
	testsTable  = "tests"
	scoresTable = "test_scores"
)

type testRecord struct {
	ID          int     `json:"id,omitempty"`
	Name        string  `json:"name"`
	Subject     string  `json:"subject"`
	Date        *Date   `json:"date,omitempty"`
	MaxMarks    float64 `json:"max_marks"`
	Category    string  `json:"category,omitempty"`
	Batch       string  `json:"batch"`
	BatchID     int     `json:"batch_id,omitempty"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   *Date   `json:"created_at,omitempty"`
}

func newTestRecord(t performance.Test) testRecord {
	return testRecord{
		ID:          t.ID,
		Name:        t.Name,
		Subject:     t.Subject,
		Date:        NewDate(&t.Date),
		MaxMarks:    t.MaxMarks,
		Category:    t.Category,
		Batch:       t.Batch,
		BatchID:     t.BatchID,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   NewDate(&t.CreatedAt),
	}
}

func (r testRecord) toTest() performance.Test {
	return performance.Test{
		ID:          r.ID,
		Name:        r.Name,
		Subject:     r.Subject,
		Date:        r.Date.OrZero(),
		MaxMarks:    r.MaxMarks,
		Category:    r.Category,
		Batch:       r.Batch,
		BatchID:     r.BatchID,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt.OrZero(),
	}
}

type scoreRecord struct {
	ID            int     `json:"id,omitempty"`
	TestID        int     `json:"test_id"`
	StudentID     int     `json:"student_id"`
	StudentName   string  `json:"student_name,omitempty"`
	MarksObtained float64 `json:"marks_obtained"`
	Attendance    string  `json:"attendance"`
	Remarks       string  `json:"remarks,omitempty"`
	CreatedAt     *Date   `json:"created_at,omitempty"`
}

func newScoreRecord(s performance.Score) scoreRecord {
	return scoreRecord{
		ID:            s.ID,
		TestID:        s.TestID,
		StudentID:     s.StudentID,
		StudentName:   s.StudentName,
		MarksObtained: s.MarksObtained,
		Attendance:    s.Attendance,
		Remarks:       s.Remarks,
		CreatedAt:     NewDate(&s.CreatedAt),
	}
}

func (r scoreRecord) toScore() performance.Score {
	return performance.Score{
		ID:            r.ID,
		TestID:        r.TestID,
		StudentID:     r.StudentID,
		StudentName:   r.StudentName,
		MarksObtained: r.MarksObtained,
		Attendance:    r.Attendance,
		Remarks:       r.Remarks,
		CreatedAt:     r.CreatedAt.OrZero(),
	}
}

type performanceRepository struct {
	client *Client
}

var _ performance.Repository = (*performanceRepository)(nil)

func NewPerformanceRepository(client *Client) *performanceRepository {
	return &performanceRepository{client: client}
}

func (repo *performanceRepository) CreateTest(ctx context.Context, t performance.Test) (performance.Test, error) {
	rec := newTestRecord(t)
	rec.ID = 0
	var created testRecord
	if err := repo.client.Create(ctx, testsTable, rec, &created); err != nil {
		return performance.Test{}, err
	}
	return created.toTest(), nil
}

func (repo *performanceRepository) GetTestByID(ctx context.Context, id int) (performance.Test, error) {
	var rec testRecord
	if err := repo.client.Get(ctx, testsTable, id, &rec); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return performance.Test{}, performance.ErrTestNotFound
		}
		return performance.Test{}, err
	}
	return rec.toTest(), nil
}

func (repo *performanceRepository) QueryRecentTests(ctx context.Context, limit int) ([]performance.Test, error) {
	var recs []testRecord
	params := url.Values{"sort": []string{"-date"}, "limit": []string{strconv.Itoa(limit)}}
	if err := repo.client.List(ctx, testsTable, params, &recs); err != nil {
		return nil, err
	}
	tests := make([]performance.Test, 0, len(recs))
	for _, rec := range recs {
		tests = append(tests, rec.toTest())
	}
	return tests, nil
}

func (repo *performanceRepository) QueryTestsByBatch(ctx context.Context, batch string) ([]performance.Test, error) {
	var recs []testRecord
	params := url.Values{"where": []string{"(batch,eq," + batch + ")"}, "sort": []string{"-date"}}
	if err := repo.client.List(ctx, testsTable, params, &recs); err != nil {
		return nil, err
	}
	tests := make([]performance.Test, 0, len(recs))
	for _, rec := range recs {
		tests = append(tests, rec.toTest())
	}
	return tests, nil
}

func (repo *performanceRepository) UpdateTest(ctx context.Context, t performance.Test) (performance.Test, error) {
	if err := repo.client.Update(ctx, testsTable, t.ID, newTestRecord(t)); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return performance.Test{}, performance.ErrTestNotFound
		}
		return performance.Test{}, err
	}
	return t, nil
}

func (repo *performanceRepository) UpsertScore(ctx context.Context, s performance.Score) (performance.Score, error) {
	// look for an existing (test, student) entry first
	var existing []scoreRecord
	params := url.Values{
		"where": []string{fmt.Sprintf("(test_id,eq,%d)~and(student_id,eq,%d)", s.TestID, s.StudentID)},
		"limit": []string{"1"},
	}
	if err := repo.client.List(ctx, scoresTable, params, &existing); err != nil {
		return performance.Score{}, err
	}

	if len(existing) > 0 {
		s.ID = existing[0].ID
		if err := repo.client.Update(ctx, scoresTable, s.ID, newScoreRecord(s)); err != nil {
			return performance.Score{}, err
		}
		return s, nil
	}

	rec := newScoreRecord(s)
	rec.ID = 0
	var created scoreRecord
	if err := repo.client.Create(ctx, scoresTable, rec, &created); err != nil {
		return performance.Score{}, err
	}
	return created.toScore(), nil
}

func (repo *performanceRepository) QueryScoresByTest(ctx context.Context, testID int) ([]performance.Score, error) {
	return repo.queryScores(ctx, "(test_id,eq,"+strconv.Itoa(testID)+")")
}

func (repo *performanceRepository) QueryScoresByStudent(ctx context.Context, studentID int) ([]performance.Score, error) {
	return repo.queryScores(ctx, "(student_id,eq,"+strconv.Itoa(studentID)+")")
}

func (repo *performanceRepository) queryScores(ctx context.Context, where string) ([]performance.Score, error) {
	var recs []scoreRecord
	params := url.Values{"where": []string{where}, "limit": []string{"1000"}}
	if err := repo.client.List(ctx, scoresTable, params, &recs); err != nil {
		return nil, err
	}
	scores := make([]performance.Score, 0, len(recs))
	for _, rec := range recs {
		scores = append(scores, rec.toScore())
	}
	return scores, nil
}
