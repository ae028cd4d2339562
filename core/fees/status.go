package fees

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core"
)

// Fee states.
const (
	StatePaid    = "Paid"
	StatePending = "Pending"
	StateOverdue = "Overdue"
)

// Status is a student's computed fee position at a point in time. It is
// always derived from the ledger, never stored.
type Status struct {
	State         string          `json:"status"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	PaidPercent   float64         `json:"paid_percent"`
	// DaysOverdue is >= 1 when State is Overdue, 0 otherwise.
	DaysOverdue int `json:"days_overdue"`
	// DaysUntilDue is meaningful only when State is Pending and a due date
	// exists; 0 means due today.
	DaysUntilDue int  `json:"days_until_due"`
	HasDueDate   bool `json:"has_due_date"`
}

// ComputeStatus classifies a fee position as of today.
//
// A record is Paid when nothing is pending, Overdue when something is
// pending and the due date has passed, and Pending otherwise. A record due
// today is Pending, not Overdue. Negative amounts and paid exceeding total
// are rejected rather than silently clamped.
func ComputeStatus(totalFee, paidAmount decimal.Decimal, dueDate *time.Time, today time.Time) (Status, error) {
	var flds []core.FieldError
	if totalFee.Sign() < 0 {
		flds = append(flds, core.FieldError{Field: "total_fee", Error: "amount must not be negative"})
	}
	if paidAmount.Sign() < 0 {
		flds = append(flds, core.FieldError{Field: "paid_amount", Error: "amount must not be negative"})
	}
	if flds == nil && paidAmount.GreaterThan(totalFee) {
		flds = append(flds, core.FieldError{Field: "paid_amount", Error: "paid amount cannot exceed total fee"})
	}
	if flds != nil {
		return Status{}, core.NewValidationError(nil, flds...)
	}

	st := Status{
		PendingAmount: totalFee.Sub(paidAmount),
		HasDueDate:    dueDate != nil,
	}
	if totalFee.Sign() > 0 {
		pct, _ := paidAmount.Div(totalFee).Mul(decimal.NewFromInt(100)).Float64()
		st.PaidPercent = pct
	} else {
		st.PaidPercent = 100
	}

	if st.PendingAmount.Sign() == 0 {
		st.State = StatePaid
		return st, nil
	}

	st.State = StatePending
	if dueDate != nil {
		if days := core.DaysBetween(*dueDate, today); days > 0 {
			st.State = StateOverdue
			st.DaysOverdue = days
		} else {
			st.DaysUntilDue = -days
		}
	}
	return st, nil
}
