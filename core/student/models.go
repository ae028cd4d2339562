package student

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core"
)

// Enrollment statuses
const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusCompleted = "Completed"
	StatusDropped   = "Dropped"
)

// Fee status filter values accepted by QueryFilter.
const (
	FeeStatusPaid    = "Paid"
	FeeStatusPending = "Pending"
	FeeStatusOverdue = "Overdue"
)

// MaxFeeAmount is the hard cap on any single money amount.
var MaxFeeAmount = decimal.NewFromInt(1000000)

type Student struct {
	ID            int             `json:"id"`
	FullName      string          `json:"full_name"`
	ParentPhone   string          `json:"parent_phone"`
	StudentPhone  string          `json:"student_phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	Address       string          `json:"address,omitempty"`
	DateOfBirth   *time.Time      `json:"date_of_birth,omitempty"`
	Category      string          `json:"category"`
	Batch         string          `json:"batch"`
	BatchID       int             `json:"batch_id,omitempty"`
	TotalFee      decimal.Decimal `json:"total_fee"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Discount      decimal.Decimal `json:"discount"`
	FeeDueDate    *time.Time      `json:"fee_due_date,omitempty"`
	AdmissionDate *time.Time      `json:"admission_date,omitempty"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"` // UTC
	UpdatedAt     time.Time       `json:"updated_at"` // UTC
}

// PendingAmount is always recomputed from total and paid; it is never a
// stored source of truth.
func (s Student) PendingAmount() decimal.Decimal {
	pending := s.TotalFee.Sub(s.PaidAmount)
	if pending.Sign() < 0 {
		return decimal.Zero
	}
	return pending
}

func (s Student) IsPaid() bool {
	return s.PendingAmount().Sign() == 0
}

// IsOverdue reports whether s has dues past the fee due date.
func (s Student) IsOverdue(today time.Time) bool {
	if s.IsPaid() || s.FeeDueDate == nil {
		return false
	}
	return core.DaysBetween(*s.FeeDueDate, today) > 0
}

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	FullName      string          `json:"full_name" validate:"required,min=2,max=100,personname"`
	ParentPhone   string          `json:"parent_phone" validate:"required,inphone"`
	StudentPhone  string          `json:"student_phone" validate:"omitempty,inphone"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Address       string          `json:"address"`
	DateOfBirth   *time.Time      `json:"date_of_birth"`
	Category      string          `json:"category" validate:"required"`
	Batch         string          `json:"batch" validate:"required"`
	BatchID       int             `json:"batch_id"`
	TotalFee      decimal.Decimal `json:"total_fee"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Discount      decimal.Decimal `json:"discount"`
	FeeDueDate    *time.Time      `json:"fee_due_date"`
	AdmissionDate *time.Time      `json:"admission_date"`
	Notes         string          `json:"notes"`
}

func (ns *NewStudent) Validate() error {
	ns.FullName = core.CleanString(ns.FullName)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Category = core.CleanString(ns.Category)
	ns.Batch = core.CleanString(ns.Batch)

	if err := core.Validate.Struct(ns); err != nil {
		return err
	}
	return validateMoney(ns.TotalFee, ns.PaidAmount, ns.Discount)
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. Money fields are pointers so that "absent" and "zero"
// stay distinguishable.
type UpdateStudent struct {
	FullName      string           `json:"full_name" validate:"omitempty,min=2,max=100,personname"`
	ParentPhone   string           `json:"parent_phone" validate:"omitempty,inphone"`
	StudentPhone  string           `json:"student_phone" validate:"omitempty,inphone"`
	Email         string           `json:"email" validate:"omitempty,email"`
	Address       string           `json:"address"`
	Category      string           `json:"category"`
	Batch         string           `json:"batch"`
	BatchID       *int             `json:"batch_id"`
	TotalFee      *decimal.Decimal `json:"total_fee"`
	PaidAmount    *decimal.Decimal `json:"paid_amount"`
	Discount      *decimal.Decimal `json:"discount"`
	FeeDueDate    *time.Time       `json:"fee_due_date"`
	Status        string           `json:"status"`
	Notes         string           `json:"notes"`
}

func (us *UpdateStudent) Validate(orig Student) error {
	if name := core.CleanString(us.FullName); name != "" {
		us.FullName = name
	} else {
		us.FullName = orig.FullName
	}
	if us.ParentPhone == "" {
		us.ParentPhone = orig.ParentPhone
	}
	if email := core.CleanString(us.Email, true /* lower */); email != "" {
		us.Email = email
	}

	if err := core.Validate.Struct(us); err != nil {
		return err
	}

	total := orig.TotalFee
	if us.TotalFee != nil {
		total = *us.TotalFee
	}
	paid := orig.PaidAmount
	if us.PaidAmount != nil {
		paid = *us.PaidAmount
	}
	discount := orig.Discount
	if us.Discount != nil {
		discount = *us.Discount
	}
	return validateMoney(total, paid, discount)
}

// validateMoney enforces the fee invariants at data entry: no negative
// amounts, amounts under the hard cap, and paid never exceeding total.
func validateMoney(total, paid, discount decimal.Decimal) error {
	var flds []core.FieldError
	for _, amt := range []struct {
		field string
		value decimal.Decimal
	}{
		{"total_fee", total},
		{"paid_amount", paid},
		{"discount", discount},
	} {
		if amt.value.Sign() < 0 {
			flds = append(flds, core.FieldError{Field: amt.field, Error: "amount must not be negative"})
		} else if amt.value.GreaterThan(MaxFeeAmount) {
			flds = append(flds, core.FieldError{Field: amt.field, Error: "amount exceeds the maximum allowed"})
		}
	}
	if paid.GreaterThan(total) {
		flds = append(flds, core.FieldError{Field: "paid_amount", Error: "paid amount cannot exceed total fee"})
	}
	if flds != nil {
		return core.NewValidationError(nil, flds...)
	}
	return nil
}

// QueryFilter narrows student listings; zero values are no-ops.
type QueryFilter struct {
	Search        string    `query:"search"`
	Category      string    `query:"category"`
	Batch         string    `query:"batch"`
	FeeStatus     string    `query:"fee_status"`
	AdmittedFrom  time.Time `query:"admitted_from"`
	AdmittedTo    time.Time `query:"admitted_to"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Category == "" && qf.Batch == "" && qf.FeeStatus == "" &&
		qf.AdmittedFrom.IsZero() && qf.AdmittedTo.IsZero()
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Category = core.CleanString(qf.Category)
	qf.Batch = core.CleanString(qf.Batch)
	qf.FeeStatus = core.CleanString(qf.FeeStatus)
}

// Matches applies the filter to a single student; repositories use it so
// that both stores filter identically. Search does a case-insensitive match
// on name and phones.
func (qf QueryFilter) Matches(s Student, today time.Time) bool {
	if qf.Search != "" {
		needle := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(s.FullName), needle) &&
			!strings.Contains(s.ParentPhone, qf.Search) &&
			!strings.Contains(s.StudentPhone, qf.Search) {
			return false
		}
	}
	if qf.Category != "" && s.Category != qf.Category {
		return false
	}
	if qf.Batch != "" && s.Batch != qf.Batch {
		return false
	}
	switch qf.FeeStatus {
	case "":
	case FeeStatusPaid:
		if !s.IsPaid() {
			return false
		}
	case FeeStatusPending:
		if s.IsPaid() {
			return false
		}
	case FeeStatusOverdue:
		if !s.IsOverdue(today) {
			return false
		}
	default:
		return false
	}
	if !qf.AdmittedFrom.IsZero() {
		if s.AdmissionDate == nil || s.AdmissionDate.Before(qf.AdmittedFrom) {
			return false
		}
	}
	if !qf.AdmittedTo.IsZero() {
		if s.AdmissionDate == nil || s.AdmissionDate.After(qf.AdmittedTo) {
			return false
		}
	}
	return true
}
