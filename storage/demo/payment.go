package demodb

import (
	"context"
	"sort"

	"github.com/vedsagar/educrm/core/fees"
)

type paymentRepository struct {
	db *paymentTable
}

var _ fees.PaymentRepository = (*paymentRepository)(nil)

func NewPaymentRepository(db *DB) *paymentRepository {
	return &paymentRepository{db: db.payment}
}

// query returns all payments newest first.
func (repo *paymentRepository) query() []fees.Payment {
	payments := make([]fees.Payment, 0, len(repo.db.table))
	for _, p := range repo.db.table {
		payments = append(payments, *p)
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].PaidAt.After(payments[j].PaidAt) })
	return payments
}

func (repo *paymentRepository) CreatePayment(_ context.Context, p fees.Payment) (fees.Payment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	p.ID = repo.db.pk
	repo.db.table[p.ID] = &p
	return p, nil
}

func (repo *paymentRepository) GetPaymentByID(_ context.Context, id int) (fees.Payment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if p, ok := repo.db.table[id]; ok {
		return *p, nil
	}
	return fees.Payment{}, fees.ErrPaymentNotFound
}

func (repo *paymentRepository) QueryPaymentsByStudent(_ context.Context, studentID int) ([]fees.Payment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var payments []fees.Payment
	for _, p := range repo.query() {
		if p.StudentID == studentID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (repo *paymentRepository) QueryRecentPayments(_ context.Context, limit int) ([]fees.Payment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	payments := repo.query()
	if len(payments) > limit {
		payments = payments[:limit]
	}
	return payments, nil
}

func (repo *paymentRepository) QueryAllPayments(_ context.Context) ([]fees.Payment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}
