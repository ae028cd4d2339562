package demodb

import (
	"context"
	"sort"

	"github.com/vedsagar/educrm/core/performance"
)

type performanceRepository struct {
	tests  *testTable
	scores *scoreTable
}

var _ performance.Repository = (*performanceRepository)(nil)

func NewPerformanceRepository(db *DB) *performanceRepository {
	return &performanceRepository{tests: db.test, scores: db.score}
}

func (repo *performanceRepository) queryTests() []performance.Test {
	tests := make([]performance.Test, 0, len(repo.tests.table))
	for _, t := range repo.tests.table {
		tests = append(tests, *t)
	}
	sort.Slice(tests, func(i, j int) bool { return tests[i].Date.After(tests[j].Date) })
	return tests
}

func (repo *performanceRepository) CreateTest(_ context.Context, t performance.Test) (performance.Test, error) {
	repo.tests.Lock()
	defer repo.tests.Unlock()

	repo.tests.pk++
	t.ID = repo.tests.pk
	repo.tests.table[t.ID] = &t
	return t, nil
}

func (repo *performanceRepository) GetTestByID(_ context.Context, id int) (performance.Test, error) {
	repo.tests.RLock()
	defer repo.tests.RUnlock()

	if t, ok := repo.tests.table[id]; ok {
		return *t, nil
	}
	return performance.Test{}, performance.ErrTestNotFound
}

func (repo *performanceRepository) QueryRecentTests(_ context.Context, limit int) ([]performance.Test, error) {
	repo.tests.RLock()
	defer repo.tests.RUnlock()

	tests := repo.queryTests()
	if len(tests) > limit {
		tests = tests[:limit]
	}
	return tests, nil
}

func (repo *performanceRepository) QueryTestsByBatch(_ context.Context, batch string) ([]performance.Test, error) {
	repo.tests.RLock()
	defer repo.tests.RUnlock()

	var filtered []performance.Test
	for _, t := range repo.queryTests() {
		if t.Batch == batch {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (repo *performanceRepository) UpdateTest(_ context.Context, t performance.Test) (performance.Test, error) {
	repo.tests.Lock()
	defer repo.tests.Unlock()

	if _, ok := repo.tests.table[t.ID]; !ok {
		return performance.Test{}, performance.ErrTestNotFound
	}
	repo.tests.table[t.ID] = &t
	return t, nil
}

// UpsertScore keys on (test, student): saving twice replaces the earlier
// entry.
func (repo *performanceRepository) UpsertScore(_ context.Context, s performance.Score) (performance.Score, error) {
	repo.scores.Lock()
	defer repo.scores.Unlock()

	for id, existing := range repo.scores.table {
		if existing.TestID == s.TestID && existing.StudentID == s.StudentID {
			s.ID = id
			repo.scores.table[id] = &s
			return s, nil
		}
	}
	repo.scores.pk++
	s.ID = repo.scores.pk
	repo.scores.table[s.ID] = &s
	return s, nil
}

func (repo *performanceRepository) QueryScoresByTest(_ context.Context, testID int) ([]performance.Score, error) {
	repo.scores.RLock()
	defer repo.scores.RUnlock()

	var scores []performance.Score
	for _, s := range repo.scores.table {
		if s.TestID == testID {
			scores = append(scores, *s)
		}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].StudentID < scores[j].StudentID })
	return scores, nil
}

func (repo *performanceRepository) QueryScoresByStudent(_ context.Context, studentID int) ([]performance.Score, error) {
	repo.scores.RLock()
	defer repo.scores.RUnlock()

	var scores []performance.Score
	for _, s := range repo.scores.table {
		if s.StudentID == studentID {
			scores = append(scores, *s)
		}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].TestID < scores[j].TestID })
	return scores, nil
}
