package nocodb

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core/fees"
)

const paymentsTable = "payments"

type paymentRecord struct {
	ID             int             `json:"id,omitempty"`
	StudentID      int             `json:"student_id"`
	StudentName    string          `json:"student_name,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentDate    *Date           `json:"payment_date,omitempty"`
	TransactionRef string          `json:"transaction_reference,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      *Date           `json:"created_at,omitempty"`
}

func newPaymentRecord(p fees.Payment) paymentRecord {
	return paymentRecord{
		ID:             p.ID,
		StudentID:      p.StudentID,
		StudentName:    p.StudentName,
		Amount:         p.Amount,
		PaymentMethod:  p.Mode,
		PaymentDate:    NewDate(&p.PaidAt),
		TransactionRef: p.TransactionRef,
		Notes:          p.Remarks,
		CreatedAt:      NewDate(&p.CreatedAt),
	}
}

func (r paymentRecord) toPayment() fees.Payment {
	return fees.Payment{
		ID:             r.ID,
		StudentID:      r.StudentID,
		StudentName:    r.StudentName,
		Amount:         r.Amount,
		Mode:           r.PaymentMethod,
		TransactionRef: r.TransactionRef,
		Remarks:        r.Notes,
		PaidAt:         r.PaymentDate.OrZero(),
		CreatedAt:      r.CreatedAt.OrZero(),
	}
}

type paymentRepository struct {
	client *Client
}

var _ fees.PaymentRepository = (*paymentRepository)(nil)

func NewPaymentRepository(client *Client) *paymentRepository {
	return &paymentRepository{client: client}
}

func (repo *paymentRepository) CreatePayment(ctx context.Context, p fees.Payment) (fees.Payment, error) {
	rec := newPaymentRecord(p)
	rec.ID = 0
	var created paymentRecord
	if err := repo.client.Create(ctx, paymentsTable, rec, &created); err != nil {
		return fees.Payment{}, err
	}
	return created.toPayment(), nil
}

func (repo *paymentRepository) GetPaymentByID(ctx context.Context, id int) (fees.Payment, error) {
	var rec paymentRecord
	if err := repo.client.Get(ctx, paymentsTable, id, &rec); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return fees.Payment{}, fees.ErrPaymentNotFound
		}
		return fees.Payment{}, err
	}
	return rec.toPayment(), nil
}

func (repo *paymentRepository) QueryPaymentsByStudent(ctx context.Context, studentID int) ([]fees.Payment, error) {
	var recs []paymentRecord
	params := url.Values{
		"where": []string{"(student_id,eq," + strconv.Itoa(studentID) + ")"},
		"sort":  []string{"-payment_date"},
	}
	if err := repo.client.List(ctx, paymentsTable, params, &recs); err != nil {
		return nil, err
	}
	return toPayments(recs), nil
}

func (repo *paymentRepository) QueryRecentPayments(ctx context.Context, limit int) ([]fees.Payment, error) {
	var recs []paymentRecord
	params := url.Values{"sort": []string{"-payment_date"}, "limit": []string{strconv.Itoa(limit)}}
	if err := repo.client.List(ctx, paymentsTable, params, &recs); err != nil {
		return nil, err
	}
	return toPayments(recs), nil
}

func (repo *paymentRepository) QueryAllPayments(ctx context.Context) ([]fees.Payment, error) {
	var recs []paymentRecord
	params := url.Values{"sort": []string{"-payment_date"}, "limit": []string{"10000"}}
	if err := repo.client.List(ctx, paymentsTable, params, &recs); err != nil {
		return nil, err
	}
	return toPayments(recs), nil
}

func toPayments(recs []paymentRecord) []fees.Payment {
	payments := make([]fees.Payment, 0, len(recs))
	for _, rec := range recs {
		payments = append(payments, rec.toPayment())
	}
	return payments
}
