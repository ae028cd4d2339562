package fees

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core"
	"github.com/vedsagar/educrm/core/student"
)

// Amount buckets. The three non-empty buckets partition the positive range
// exactly: below is strict, the middle band is closed on both ends, above
// is strict.
type AmountBucket string

const (
	AmountAll      AmountBucket = ""
	AmountBelow10K AmountBucket = "below_10k"
	Amount10KTo25K AmountBucket = "10k_to_25k"
	AmountAbove25K AmountBucket = "above_25k"
)

var (
	tenThousand        = decimal.NewFromInt(10000)
	twentyFiveThousand = decimal.NewFromInt(25000)
)

func (b AmountBucket) matches(amount decimal.Decimal) bool {
	switch b {
	case AmountAll:
		return true
	case AmountBelow10K:
		return amount.LessThan(tenThousand)
	case Amount10KTo25K:
		return amount.GreaterThanOrEqual(tenThousand) && amount.LessThanOrEqual(twentyFiveThousand)
	case AmountAbove25K:
		return amount.GreaterThan(twentyFiveThousand)
	}
	return false
}

// Due-date buckets. The "due within" windows count from today inclusive and
// never include overdue records.
type DueBucket string

const (
	DueAll          DueBucket = ""
	DueOverdueOnly  DueBucket = "overdue"
	DueWithin7Days  DueBucket = "due_7_days"
	DueWithin30Days DueBucket = "due_30_days"
)

func (b DueBucket) matches(st Status) bool {
	switch b {
	case DueAll:
		return true
	case DueOverdueOnly:
		return st.State == StateOverdue
	case DueWithin7Days:
		return st.State == StatePending && st.HasDueDate && st.DaysUntilDue <= 7
	case DueWithin30Days:
		return st.State == StatePending && st.HasDueDate && st.DaysUntilDue <= 30
	}
	return false
}

// ParseAmountBucket maps a query value to a bucket; unknown values are a
// validation error.
func ParseAmountBucket(v string) (AmountBucket, error) {
	switch b := AmountBucket(v); b {
	case AmountAll, AmountBelow10K, Amount10KTo25K, AmountAbove25K:
		return b, nil
	}
	return AmountAll, core.NewValidationError(nil, core.FieldError{Field: "amount", Error: "unknown amount filter"})
}

func ParseDueBucket(v string) (DueBucket, error) {
	switch b := DueBucket(v); b {
	case DueAll, DueOverdueOnly, DueWithin7Days, DueWithin30Days:
		return b, nil
	}
	return DueAll, core.NewValidationError(nil, core.FieldError{Field: "due", Error: "unknown due date filter"})
}

// Criteria narrows a pending-fee listing. Zero values are no-ops and all
// set criteria must match (conjunction).
type Criteria struct {
	Amount   AmountBucket
	Due      DueBucket
	Category string
	Batch    string
}

// PendingFee is one row of the pending-fee report: the student joined with
// their computed fee status.
type PendingFee struct {
	StudentID     int             `json:"student_id"`
	StudentName   string          `json:"student_name"`
	ParentPhone   string          `json:"parent_phone"`
	Category      string          `json:"category"`
	Batch         string          `json:"batch"`
	TotalFee      decimal.Decimal `json:"total_fee"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	Status        Status          `json:"fee_status"`
}

// FromStudent computes the report row for one student as of today.
func FromStudent(s student.Student, today time.Time) (PendingFee, error) {
	st, err := ComputeStatus(s.TotalFee, s.PaidAmount, s.FeeDueDate, today)
	if err != nil {
		return PendingFee{}, err
	}
	return PendingFee{
		StudentID:     s.ID,
		StudentName:   s.FullName,
		ParentPhone:   s.ParentPhone,
		Category:      s.Category,
		Batch:         s.Batch,
		TotalFee:      s.TotalFee,
		PaidAmount:    s.PaidAmount,
		PendingAmount: st.PendingAmount,
		DueDate:       s.FeeDueDate,
		Status:        st,
	}, nil
}

// Filter applies the criteria to a pending-fee listing, preserving input
// order. An empty input yields an empty output regardless of criteria.
func Filter(records []PendingFee, c Criteria) []PendingFee {
	out := make([]PendingFee, 0, len(records))
	for _, r := range records {
		if !c.Amount.matches(r.PendingAmount) {
			continue
		}
		if !c.Due.matches(r.Status) {
			continue
		}
		if c.Category != "" && r.Category != c.Category {
			continue
		}
		if c.Batch != "" && r.Batch != c.Batch {
			continue
		}
		out = append(out, r)
	}
	return out
}
