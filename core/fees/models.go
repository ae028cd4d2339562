package fees

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core"
)

// Accepted payment modes.
var PaymentModes = []string{"Cash", "UPI", "Card", "Cheque", "Bank Transfer", "Online"}

// Payment is one ledger entry. Entries are append-only; corrections are
// recorded as new entries.
type Payment struct {
	ID             int             `json:"id"`
	StudentID      int             `json:"student_id"`
	StudentName    string          `json:"student_name"`
	Amount         decimal.Decimal `json:"amount"`
	Mode           string          `json:"mode"`
	TransactionRef string          `json:"transaction_ref,omitempty"`
	Remarks        string          `json:"remarks,omitempty"`
	PaidAt         time.Time       `json:"paid_at"`    // UTC
	CreatedAt      time.Time       `json:"created_at"` // UTC
}

// NewPayment contains information needed to record a Payment.
type NewPayment struct {
	StudentID      int             `json:"student_id" validate:"required"`
	Amount         decimal.Decimal `json:"amount"`
	Mode           string          `json:"mode" validate:"required"`
	TransactionRef string          `json:"transaction_ref"`
	Remarks        string          `json:"remarks"`
	PaidAt         time.Time       `json:"paid_at"`
}

func (np *NewPayment) Validate() error {
	np.Mode = core.CleanString(np.Mode)
	if err := core.Validate.Struct(np); err != nil {
		return err
	}

	var flds []core.FieldError
	if np.Amount.Sign() <= 0 {
		flds = append(flds, core.FieldError{Field: "amount", Error: "amount must be greater than zero"})
	} else if np.Amount.GreaterThan(maxAmount) {
		flds = append(flds, core.FieldError{Field: "amount", Error: "amount exceeds the maximum allowed"})
	}
	if !isValidMode(np.Mode) {
		flds = append(flds, core.FieldError{Field: "mode", Error: "unknown payment mode"})
	}
	if flds != nil {
		return core.NewValidationError(nil, flds...)
	}
	return nil
}

var maxAmount = decimal.NewFromInt(1000000)

func isValidMode(mode string) bool {
	for _, m := range PaymentModes {
		if m == mode {
			return true
		}
	}
	return false
}

// Receipt is the printable view of a payment.
type Receipt struct {
	Payment       Payment         `json:"payment"`
	StudentName   string          `json:"student_name"`
	Batch         string          `json:"batch"`
	Category      string          `json:"category"`
	TotalFee      decimal.Decimal `json:"total_fee"`
	PaidToDate    decimal.Decimal `json:"paid_to_date"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	IssuedAt      time.Time       `json:"issued_at"` // UTC
}

// Statistics summarizes the whole ledger for the dashboard.
type Statistics struct {
	TotalStudents   int             `json:"total_students"`
	TotalExpected   decimal.Decimal `json:"total_expected"`
	TotalCollected  decimal.Decimal `json:"total_collected"`
	TotalPending    decimal.Decimal `json:"total_pending"`
	CollectionRate  float64         `json:"collection_rate"`
	StudentsPaid    int             `json:"students_paid"`
	StudentsPending int             `json:"students_pending"`
	StudentsOverdue int             `json:"students_overdue"`
}

// MonthlyTotal is one bar of the collection trend chart.
type MonthlyTotal struct {
	Month  string          `json:"month"` // YYYY-MM
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// Digest summarizes dues for the daily reminder run.
type Digest struct {
	Date        time.Time    `json:"date"`
	Overdue     []PendingFee `json:"overdue"`
	DueToday    []PendingFee `json:"due_today"`
	DueUpcoming []PendingFee `json:"due_upcoming"` // within the configured reminder window
}

func (d Digest) IsEmpty() bool {
	return len(d.Overdue) == 0 && len(d.DueToday) == 0 && len(d.DueUpcoming) == 0
}
