package nocodb

import (
	"context"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core/student"
)

const studentsTable = "students"

// studentRecord is the students grid row. Dates travel as YYYY-MM-DD.
type studentRecord struct {
	ID            int             `json:"id,omitempty"`
	FullName      string          `json:"full_name"`
	ParentPhone   string          `json:"parent_phone"`
	StudentPhone  string          `json:"student_phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	Address       string          `json:"address,omitempty"`
	DateOfBirth   *Date           `json:"date_of_birth,omitempty"`
	Category      string          `json:"category"`
	Batch         string          `json:"batch"`
	BatchID       int             `json:"batch_id,omitempty"`
	TotalFee      decimal.Decimal `json:"total_fee"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Discount      decimal.Decimal `json:"discount"`
	FeeDueDate    *Date           `json:"fee_due_date,omitempty"`
	AdmissionDate *Date           `json:"admission_date,omitempty"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     *Date           `json:"created_at,omitempty"`
	UpdatedAt     *Date           `json:"updated_at,omitempty"`
}

func newStudentRecord(s student.Student) studentRecord {
	return studentRecord{
		ID:            s.ID,
		FullName:      s.FullName,
		ParentPhone:   s.ParentPhone,
		StudentPhone:  s.StudentPhone,
		Email:         s.Email,
		Address:       s.Address,
		DateOfBirth:   NewDate(s.DateOfBirth),
		Category:      s.Category,
		Batch:         s.Batch,
		BatchID:       s.BatchID,
		TotalFee:      s.TotalFee,
		PaidAmount:    s.PaidAmount,
		Discount:      s.Discount,
		FeeDueDate:    NewDate(s.FeeDueDate),
		AdmissionDate: NewDate(s.AdmissionDate),
		Status:        s.Status,
		Notes:         s.Notes,
		CreatedAt:     NewDate(&s.CreatedAt),
		UpdatedAt:     NewDate(&s.UpdatedAt),
	}
}

func (r studentRecord) toStudent() student.Student {
	return student.Student{
		ID:            r.ID,
		FullName:      r.FullName,
		ParentPhone:   r.ParentPhone,
		StudentPhone:  r.StudentPhone,
		Email:         r.Email,
		Address:       r.Address,
		DateOfBirth:   r.DateOfBirth.TimePtr(),
		Category:      r.Category,
		Batch:         r.Batch,
		BatchID:       r.BatchID,
		TotalFee:      r.TotalFee,
		PaidAmount:    r.PaidAmount,
		Discount:      r.Discount,
		FeeDueDate:    r.FeeDueDate.TimePtr(),
		AdmissionDate: r.AdmissionDate.TimePtr(),
		Status:        r.Status,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt.OrZero(),
		UpdatedAt:     r.UpdatedAt.OrZero(),
	}
}

type studentRepository struct {
	client *Client
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(client *Client) *studentRepository {
	return &studentRepository{client: client}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	rec := newStudentRecord(s)
	rec.ID = 0
	var created studentRecord
	if err := repo.client.Create(ctx, studentsTable, rec, &created); err != nil {
		return student.Student{}, err
	}
	return created.toStudent(), nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id int) (student.Student, error) {
	var rec studentRecord
	if err := repo.client.Get(ctx, studentsTable, id, &rec); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, err
	}
	return rec.toStudent(), nil
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	var recs []studentRecord
	params := url.Values{"sort": []string{"id"}, "limit": []string{"1000"}}
	if err := repo.client.List(ctx, studentsTable, params, &recs); err != nil {
		return nil, err
	}
	students := make([]student.Student, 0, len(recs))
	for _, rec := range recs {
		students = append(students, rec.toStudent())
	}
	return students, nil
}

// FilterStudents lists then filters in-process; NocoDB's where syntax does
// not cover the derived fee-status predicates.
func (repo *studentRepository) FilterStudents(ctx context.Context, qf student.QueryFilter) ([]student.Student, error) {
	students, err := repo.QueryAllStudents(ctx)
	if err != nil {
		return nil, err
	}
	today := time.Now().UTC()
	filtered := students[:0]
	for _, s := range students {
		if qf.Matches(s, today) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	if err := repo.client.Update(ctx, studentsTable, s.ID, newStudentRecord(s)); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, err
	}
	return s, nil
}

func (repo *studentRepository) DeleteStudentsByID(ctx context.Context, ids ...int) error {
	for _, id := range ids {
		if err := repo.client.Delete(ctx, studentsTable, id); err != nil && errors.Cause(err) != ErrNotFound {
			return err
		}
	}
	return nil
}

// CountStudentsByBatch satisfies batch.EnrollmentCounter.
func (repo *studentRepository) CountStudentsByBatch(ctx context.Context, batchName string) (int, error) {
	students, err := repo.QueryAllStudents(ctx)
	if err != nil {
		return 0, err
	}
	var n int
	for _, s := range students {
		if s.Batch == batchName && s.Status == student.StatusActive {
			n++
		}
	}
	return n, nil
}
