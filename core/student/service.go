package student

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is used when a specific Student is requested but does not exist.
	ErrNotFound = errors.New("student not found")
)

// Repository abstracts the student store.
type Repository interface {
	CreateStudent(ctx context.Context, s Student) (Student, error)
	GetStudentByID(ctx context.Context, id int) (Student, error)
	QueryAllStudents(ctx context.Context) ([]Student, error)
	FilterStudents(ctx context.Context, qf QueryFilter) ([]Student, error)
	UpdateStudent(ctx context.Context, s Student) (Student, error)
	DeleteStudentsByID(ctx context.Context, ids ...int) error
}

// ActivityLogger records audit trail entries; a nil logger disables the trail.
type ActivityLogger interface {
	Log(ctx context.Context, description, activityType string)
}

type Service struct {
	repo     Repository
	activity ActivityLogger
}

func NewService(repo Repository, activity ActivityLogger) *Service {
	return &Service{repo: repo, activity: activity}
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}

	now := time.Now().UTC()
	s := Student{
		FullName:      ns.FullName,
		ParentPhone:   ns.ParentPhone,
		StudentPhone:  ns.StudentPhone,
		Email:         ns.Email,
		Address:       ns.Address,
		DateOfBirth:   ns.DateOfBirth,
		Category:      ns.Category,
		Batch:         ns.Batch,
		BatchID:       ns.BatchID,
		TotalFee:      ns.TotalFee,
		PaidAmount:    ns.PaidAmount,
		Discount:      ns.Discount,
		FeeDueDate:    ns.FeeDueDate,
		AdmissionDate: ns.AdmissionDate,
		Status:        StatusActive,
		Notes:         ns.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if s.AdmissionDate == nil {
		today := now
		s.AdmissionDate = &today
	}

	s, err := svc.repo.CreateStudent(ctx, s)
	if err != nil {
		return Student{}, errors.Wrap(err, "creating student")
	}
	svc.log(ctx, fmt.Sprintf("New student %s enrolled in %s", s.FullName, s.Batch), "enrollment")
	return s, nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) Filter(ctx context.Context, qf QueryFilter) ([]Student, error) {
	qf.Clean()
	if qf.IsEmpty() {
		return svc.repo.QueryAllStudents(ctx)
	}
	return svc.repo.FilterStudents(ctx, qf)
}

// Search is a convenience for name/phone lookups.
func (svc *Service) Search(ctx context.Context, query string) ([]Student, error) {
	return svc.Filter(ctx, QueryFilter{Search: query})
}

func (svc *Service) Update(ctx context.Context, id int, us UpdateStudent) (Student, error) {
	s, err := svc.repo.GetStudentByID(ctx, id)
	if err != nil {
		return Student{}, err
	}
	if err = us.Validate(s); err != nil {
		return Student{}, err
	}

	s.FullName = us.FullName
	s.ParentPhone = us.ParentPhone
	if us.StudentPhone != "" {
		s.StudentPhone = us.StudentPhone
	}
	if us.Email != "" {
		s.Email = us.Email
	}
	if us.Address != "" {
		s.Address = us.Address
	}
	if us.Category != "" {
		s.Category = us.Category
	}
	if us.Batch != "" {
		s.Batch = us.Batch
	}
	if us.BatchID != nil {
		s.BatchID = *us.BatchID
	}
	if us.TotalFee != nil {
		s.TotalFee = *us.TotalFee
	}
	if us.PaidAmount != nil {
		s.PaidAmount = *us.PaidAmount
	}
	if us.Discount != nil {
		s.Discount = *us.Discount
	}
	if us.FeeDueDate != nil {
		s.FeeDueDate = us.FeeDueDate
	}
	if us.Status != "" {
		s.Status = us.Status
	}
	if us.Notes != "" {
		s.Notes = us.Notes
	}
	s.UpdatedAt = time.Now().UTC()

	s, err = svc.repo.UpdateStudent(ctx, s)
	if err != nil {
		return Student{}, errors.Wrapf(err, "updating student %d", id)
	}
	return s, nil
}

func (svc *Service) Delete(ctx context.Context, ids ...int) error {
	if len(ids) == 0 {
		return nil
	}
	if err := svc.repo.DeleteStudentsByID(ctx, ids...); err != nil {
		return errors.Wrap(err, "deleting students")
	}
	svc.log(ctx, fmt.Sprintf("Deleted %d student record(s)", len(ids)), "system")
	return nil
}

func (svc *Service) log(ctx context.Context, description, typ string) {
	if svc.activity != nil {
		svc.activity.Log(ctx, description, typ)
	}
}
