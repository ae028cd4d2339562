package fees

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core"
	"github.com/vedsagar/educrm/core/student"
)

var (
	// ErrPaymentNotFound is used when a specific Payment is requested but does not exist.
	ErrPaymentNotFound = errors.New("payment not found")
)

type PaymentRepository interface {
	CreatePayment(ctx context.Context, p Payment) (Payment, error)
	GetPaymentByID(ctx context.Context, id int) (Payment, error)
	QueryPaymentsByStudent(ctx context.Context, studentID int) ([]Payment, error)
	QueryRecentPayments(ctx context.Context, limit int) ([]Payment, error)
	QueryAllPayments(ctx context.Context) ([]Payment, error)
}

type ActivityLogger interface {
	Log(ctx context.Context, description, activityType string)
}

type Service struct {
	payments PaymentRepository
	students student.Repository
	activity ActivityLogger
}

func NewService(payments PaymentRepository, students student.Repository, activity ActivityLogger) *Service {
	return &Service{payments: payments, students: students, activity: activity}
}

// StatusFor computes the current fee status of one student.
func (svc *Service) StatusFor(ctx context.Context, studentID int) (Status, error) {
	s, err := svc.students.GetStudentByID(ctx, studentID)
	if err != nil {
		return Status{}, err
	}
	return ComputeStatus(s.TotalFee, s.PaidAmount, s.FeeDueDate, time.Now().UTC())
}

// PendingFees lists students with dues matching the criteria, preserving
// the store's ordering. A record with inconsistent amounts fails the whole
// listing with an error naming the student.
func (svc *Service) PendingFees(ctx context.Context, c Criteria, today time.Time) ([]PendingFee, error) {
	students, err := svc.students.QueryAllStudents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}

	records := make([]PendingFee, 0, len(students))
	for _, s := range students {
		pf, err := FromStudent(s, today)
		if err != nil {
			return nil, errors.Wrapf(err, "fee record for student %d (%s)", s.ID, s.FullName)
		}
		if pf.Status.State == StatePaid {
			continue
		}
		records = append(records, pf)
	}
	return Filter(records, c), nil
}

// RecordPayment appends a ledger entry, rolls the amount into the student's
// paid total and emits an audit entry. The payment is rejected when it
// would push paid over total.
func (svc *Service) RecordPayment(ctx context.Context, np NewPayment) (Payment, error) {
	if err := np.Validate(); err != nil {
		return Payment{}, err
	}

	s, err := svc.students.GetStudentByID(ctx, np.StudentID)
	if err != nil {
		return Payment{}, err
	}
	if s.PaidAmount.Add(np.Amount).GreaterThan(s.TotalFee) {
		return Payment{}, core.NewValidationError(nil, core.FieldError{
			Field: "amount",
			Error: fmt.Sprintf("payment exceeds pending amount of %s", core.FormatCurrency(s.PendingAmount())),
		})
	}

	now := time.Now().UTC()
	p := Payment{
		StudentID:      s.ID,
		StudentName:    s.FullName,
		Amount:         np.Amount,
		Mode:           np.Mode,
		TransactionRef: np.TransactionRef,
		Remarks:        np.Remarks,
		PaidAt:         np.PaidAt,
		CreatedAt:      now,
	}
	if p.PaidAt.IsZero() {
		p.PaidAt = now
	}
	if p.TransactionRef == "" {
		p.TransactionRef = uuid.New().String()
	}

	p, err = svc.payments.CreatePayment(ctx, p)
	if err != nil {
		return Payment{}, errors.Wrap(err, "creating payment")
	}

	s.PaidAmount = s.PaidAmount.Add(np.Amount)
	s.UpdatedAt = now
	if _, err = svc.students.UpdateStudent(ctx, s); err != nil {
		return Payment{}, errors.Wrapf(err, "updating paid amount for student %d", s.ID)
	}

	if svc.activity != nil {
		svc.activity.Log(ctx, fmt.Sprintf("Payment of %s received from %s (%s)",
			core.FormatCurrency(p.Amount), s.FullName, p.Mode), "payment")
	}
	return p, nil
}

// Receipt assembles the printable view of a payment.
func (svc *Service) Receipt(ctx context.Context, paymentID int) (Receipt, error) {
	p, err := svc.payments.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return Receipt{}, err
	}
	s, err := svc.students.GetStudentByID(ctx, p.StudentID)
	if err != nil {
		return Receipt{}, err
	}
	return Receipt{
		Payment:       p,
		StudentName:   s.FullName,
		Batch:         s.Batch,
		Category:      s.Category,
		TotalFee:      s.TotalFee,
		PaidToDate:    s.PaidAmount,
		PendingAmount: s.PendingAmount(),
		IssuedAt:      time.Now().UTC(),
	}, nil
}

func (svc *Service) PaymentsByStudent(ctx context.Context, studentID int) ([]Payment, error) {
	if _, err := svc.students.GetStudentByID(ctx, studentID); err != nil {
		return nil, err
	}
	return svc.payments.QueryPaymentsByStudent(ctx, studentID)
}

func (svc *Service) RecentPayments(ctx context.Context, limit int) ([]Payment, error) {
	if limit <= 0 {
		limit = 10
	}
	return svc.payments.QueryRecentPayments(ctx, limit)
}

// Statistics summarizes the ledger as of today.
func (svc *Service) Statistics(ctx context.Context, today time.Time) (Statistics, error) {
	students, err := svc.students.QueryAllStudents(ctx)
	if err != nil {
		return Statistics{}, errors.Wrap(err, "querying students")
	}

	stats := Statistics{TotalStudents: len(students)}
	for _, s := range students {
		st, err := ComputeStatus(s.TotalFee, s.PaidAmount, s.FeeDueDate, today)
		if err != nil {
			return Statistics{}, errors.Wrapf(err, "fee record for student %d (%s)", s.ID, s.FullName)
		}
		stats.TotalExpected = stats.TotalExpected.Add(s.TotalFee)
		stats.TotalCollected = stats.TotalCollected.Add(s.PaidAmount)
		stats.TotalPending = stats.TotalPending.Add(st.PendingAmount)
		switch st.State {
		case StatePaid:
			stats.StudentsPaid++
		case StateOverdue:
			stats.StudentsOverdue++
		default:
			stats.StudentsPending++
		}
	}
	if stats.TotalExpected.Sign() > 0 {
		rate, _ := stats.TotalCollected.Div(stats.TotalExpected).Mul(decimal.NewFromInt(100)).Float64()
		stats.CollectionRate = rate
	}
	return stats, nil
}

// MonthlyCollection groups ledger entries by calendar month, oldest first.
func (svc *Service) MonthlyCollection(ctx context.Context) ([]MonthlyTotal, error) {
	payments, err := svc.payments.QueryAllPayments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying payments")
	}

	byMonth := make(map[string]*MonthlyTotal)
	for _, p := range payments {
		month := p.PaidAt.Format("2006-01")
		mt, ok := byMonth[month]
		if !ok {
			mt = &MonthlyTotal{Month: month}
			byMonth[month] = mt
		}
		mt.Amount = mt.Amount.Add(p.Amount)
		mt.Count++
	}

	totals := make([]MonthlyTotal, 0, len(byMonth))
	for _, mt := range byMonth {
		totals = append(totals, *mt)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Month < totals[j].Month })
	return totals, nil
}

// DueDigest collects dues for the daily reminder run. upcomingDays bounds
// the "coming up" window, counted from tomorrow.
func (svc *Service) DueDigest(ctx context.Context, today time.Time, upcomingDays int) (Digest, error) {
	records, err := svc.PendingFees(ctx, Criteria{}, today)
	if err != nil {
		return Digest{}, err
	}

	d := Digest{Date: today}
	for _, r := range records {
		switch {
		case r.Status.State == StateOverdue:
			d.Overdue = append(d.Overdue, r)
		case r.Status.HasDueDate && r.Status.DaysUntilDue == 0:
			d.DueToday = append(d.DueToday, r)
		case r.Status.HasDueDate && r.Status.DaysUntilDue <= upcomingDays:
			d.DueUpcoming = append(d.DueUpcoming, r)
		}
	}
	return d, nil
}
