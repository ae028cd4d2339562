package fees

import (
	"testing"
	"time"

	"github.com/vedsagar/educrm/core/student"
)

func record(t *testing.T, id int, name string, total, paid int64, due *time.Time, category string) PendingFee {
	t.Helper()
	pf, err := FromStudent(student.Student{
		ID:         id,
		FullName:   name,
		Category:   category,
		TotalFee:   dec(total),
		PaidAmount: dec(paid),
		FeeDueDate: due,
	}, today)
	if err != nil {
		t.Fatalf("building record: %v", err)
	}
	return pf
}

// three students in distinct fee positions, as on the pending-fee screen
func sampleRecords(t *testing.T) []PendingFee {
	return []PendingFee{
		record(t, 1, "Priya Sharma", 50000, 25000, days(15), "NEET Preparation"),
		record(t, 3, "Anita Singh", 75000, 15000, days(5), "UPSC Preparation"),
	}
}

func ids(records []PendingFee) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.StudentID)
	}
	return out
}

func equalIDs(a []int, b ...int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterOverdueOnlyExcludesFutureDues(t *testing.T) {
	// both records are pending with future due dates
	got := Filter(sampleRecords(t), Criteria{Due: DueOverdueOnly})
	if len(got) != 0 {
		t.Errorf("got %d records, want 0", len(got))
	}

	// pushing one due date 5 days back makes it overdue by exactly 5 days
	overdue := record(t, 3, "Anita Singh", 75000, 15000, days(-5), "UPSC Preparation")
	got = Filter([]PendingFee{overdue}, Criteria{Due: DueOverdueOnly})
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].Status.DaysOverdue != 5 {
		t.Errorf("DaysOverdue = %d, want 5", got[0].Status.DaysOverdue)
	}
}

func TestFilterAmountBuckets(t *testing.T) {
	records := []PendingFee{
		record(t, 1, "a", 9999, 0, nil, ""),
		record(t, 2, "b", 10000, 0, nil, ""),
		record(t, 3, "c", 25000, 0, nil, ""),
		record(t, 4, "d", 25001, 0, nil, ""),
	}

	tests := []struct {
		name   string
		bucket AmountBucket
		want   []int
	}{
		{"below 10k is strict", AmountBelow10K, []int{1}},
		{"middle band closed on both ends", Amount10KTo25K, []int{2, 3}},
		{"above 25k is strict", AmountAbove25K, []int{4}},
		{"all", AmountAll, []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(records, Criteria{Amount: tt.bucket}))
			if !equalIDs(got, tt.want...) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	// every record lands in exactly one bucket
	total := 0
	for _, b := range []AmountBucket{AmountBelow10K, Amount10KTo25K, AmountAbove25K} {
		total += len(Filter(records, Criteria{Amount: b}))
	}
	if total != len(records) {
		t.Errorf("buckets cover %d of %d records", total, len(records))
	}
}

func TestFilterDueWindows(t *testing.T) {
	records := []PendingFee{
		record(t, 1, "overdue", 1000, 0, days(-2), ""),
		record(t, 2, "today", 1000, 0, days(0), ""),
		record(t, 3, "day7", 1000, 0, days(7), ""),
		record(t, 4, "day8", 1000, 0, days(8), ""),
		record(t, 5, "day30", 1000, 0, days(30), ""),
		record(t, 6, "nodate", 1000, 0, nil, ""),
	}

	tests := []struct {
		name   string
		bucket DueBucket
		want   []int
	}{
		{"within 7 includes today and day 7, not overdue", DueWithin7Days, []int{2, 3}},
		{"within 30 includes day 8 and 30", DueWithin30Days, []int{2, 3, 4, 5}},
		{"overdue only", DueOverdueOnly, []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(records, Criteria{Due: tt.bucket}))
			if !equalIDs(got, tt.want...) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterConjunctionAndOrder(t *testing.T) {
	records := []PendingFee{
		record(t, 1, "a", 30000, 0, days(3), "NEET"),
		record(t, 2, "b", 20000, 0, days(3), "NEET"),
		record(t, 3, "c", 20000, 0, days(3), "JEE"),
		record(t, 4, "d", 20000, 0, days(20), "NEET"),
	}

	got := ids(Filter(records, Criteria{Amount: Amount10KTo25K, Due: DueWithin7Days, Category: "NEET"}))
	if !equalIDs(got, 2) {
		t.Errorf("got %v, want [2]", got)
	}

	// no criteria preserves input order
	got = ids(Filter(records, Criteria{}))
	if !equalIDs(got, 1, 2, 3, 4) {
		t.Errorf("got %v, want input order", got)
	}
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, Criteria{Amount: AmountAbove25K, Due: DueOverdueOnly})
	if len(got) != 0 {
		t.Errorf("got %d records, want 0", len(got))
	}
}

func TestParseBuckets(t *testing.T) {
	if _, err := ParseAmountBucket("nope"); err == nil {
		t.Error("ParseAmountBucket() expected error for unknown value")
	}
	if _, err := ParseDueBucket("nope"); err == nil {
		t.Error("ParseDueBucket() expected error for unknown value")
	}
	if b, err := ParseAmountBucket(""); err != nil || b != AmountAll {
		t.Errorf("ParseAmountBucket(\"\") = %v, %v", b, err)
	}
}
