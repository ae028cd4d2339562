package batch

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core"
)

var (
	// ErrNotFound is used when a specific Batch is requested but does not exist.
	ErrNotFound = errors.New("batch not found")
)

// Batch standing derived from the active flag and the batch dates. It is
// recomputed on every read, never stored.
const (
	StatusUpcoming  = "Upcoming"
	StatusActive    = "Active"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

type Batch struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	CategoryID int             `json:"category_id,omitempty"`
	Schedule   string          `json:"schedule,omitempty"`
	StartDate  *time.Time      `json:"start_date,omitempty"`
	EndDate    *time.Time      `json:"end_date,omitempty"`
	Fee        decimal.Decimal `json:"fee"`
	Capacity   int             `json:"capacity,omitempty"`
	Teacher    string          `json:"teacher,omitempty"`
	Active     bool            `json:"active"`
	Status     string          `json:"status,omitempty"` // derived, never stored
	CreatedAt  time.Time       `json:"created_at"`       // UTC
	UpdatedAt  time.Time       `json:"updated_at"`       // UTC
}

// StatusOn derives the batch standing for the given day. A deactivated batch
// is Cancelled regardless of dates; a missing end date means the batch runs
// until deactivated.
func (b Batch) StatusOn(today time.Time) string {
	if !b.Active {
		return StatusCancelled
	}
	if b.StartDate != nil && core.DaysBetween(today, *b.StartDate) > 0 {
		return StatusUpcoming
	}
	if b.EndDate != nil && core.DaysBetween(*b.EndDate, today) > 0 {
		return StatusCompleted
	}
	return StatusActive
}

type NewBatch struct {
	Name       string          `json:"name" validate:"required,min=2,max=100"`
	Category   string          `json:"category" validate:"required"`
	CategoryID int             `json:"category_id"`
	Schedule   string          `json:"schedule"`
	StartDate  *time.Time      `json:"start_date"`
	EndDate    *time.Time      `json:"end_date"`
	Fee        decimal.Decimal `json:"fee"`
	Capacity   int             `json:"capacity" validate:"omitempty,min=1"`
	Teacher    string          `json:"teacher"`
}

func (nb *NewBatch) Validate() error {
	nb.Name = core.CleanString(nb.Name)
	nb.Category = core.CleanString(nb.Category)
	if err := core.Validate.Struct(nb); err != nil {
		return err
	}
	if nb.Fee.Sign() < 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "fee", Error: "amount must not be negative"})
	}
	if nb.StartDate != nil && nb.EndDate != nil && nb.EndDate.Before(*nb.StartDate) {
		return core.NewValidationError(nil, core.FieldError{Field: "end_date", Error: "end date cannot be before start date"})
	}
	return nil
}

type UpdateBatch struct {
	Name      string           `json:"name" validate:"omitempty,min=2,max=100"`
	Schedule  string           `json:"schedule"`
	StartDate *time.Time       `json:"start_date"`
	EndDate   *time.Time       `json:"end_date"`
	Fee       *decimal.Decimal `json:"fee"`
	Capacity  *int             `json:"capacity"`
	Teacher   string           `json:"teacher"`
	Active    *bool            `json:"active"`
}

func (ub *UpdateBatch) Validate() error {
	ub.Name = core.CleanString(ub.Name)
	if err := core.Validate.Struct(ub); err != nil {
		return err
	}
	if ub.Fee != nil && ub.Fee.Sign() < 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "fee", Error: "amount must not be negative"})
	}
	return nil
}

type Repository interface {
	CreateBatch(ctx context.Context, b Batch) (Batch, error)
	GetBatchByID(ctx context.Context, id int) (Batch, error)
	GetBatchByName(ctx context.Context, name string) (Batch, error)
	QueryAllBatches(ctx context.Context) ([]Batch, error)
	QueryBatchesByCategory(ctx context.Context, category string) ([]Batch, error)
	UpdateBatch(ctx context.Context, b Batch) (Batch, error)
	DeleteBatchesByID(ctx context.Context, ids ...int) error
}

// EnrollmentCounter reports how many students are enrolled in a batch; the
// student store provides it.
type EnrollmentCounter interface {
	CountStudentsByBatch(ctx context.Context, batchName string) (int, error)
}

type Service struct {
	repo       Repository
	enrollment EnrollmentCounter
}

func NewService(repo Repository, enrollment EnrollmentCounter) *Service {
	return &Service{repo: repo, enrollment: enrollment}
}

func (svc *Service) Create(ctx context.Context, nb NewBatch) (Batch, error) {
	if err := nb.Validate(); err != nil {
		return Batch{}, err
	}
	now := time.Now().UTC()
	b := Batch{
		Name:       nb.Name,
		Category:   nb.Category,
		CategoryID: nb.CategoryID,
		Schedule:   nb.Schedule,
		StartDate:  nb.StartDate,
		EndDate:    nb.EndDate,
		Fee:        nb.Fee,
		Capacity:   nb.Capacity,
		Teacher:    nb.Teacher,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	b, err := svc.repo.CreateBatch(ctx, b)
	if err != nil {
		return Batch{}, errors.Wrap(err, "creating batch")
	}
	b.Status = b.StatusOn(now)
	return b, nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Batch, error) {
	b, err := svc.repo.GetBatchByID(ctx, id)
	if err != nil {
		return Batch{}, err
	}
	b.Status = b.StatusOn(time.Now().UTC())
	return b, nil
}

func (svc *Service) GetByName(ctx context.Context, name string) (Batch, error) {
	b, err := svc.repo.GetBatchByName(ctx, core.CleanString(name))
	if err != nil {
		return Batch{}, err
	}
	b.Status = b.StatusOn(time.Now().UTC())
	return b, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Batch, error) {
	batches, err := svc.repo.QueryAllBatches(ctx)
	return withStatus(batches), err
}

func (svc *Service) QueryByCategory(ctx context.Context, category string) ([]Batch, error) {
	category = core.CleanString(category)
	if category == "" {
		return svc.QueryAll(ctx)
	}
	batches, err := svc.repo.QueryBatchesByCategory(ctx, category)
	return withStatus(batches), err
}

func withStatus(batches []Batch) []Batch {
	today := time.Now().UTC()
	for i := range batches {
		batches[i].Status = batches[i].StatusOn(today)
	}
	return batches
}

func (svc *Service) Update(ctx context.Context, id int, ub UpdateBatch) (Batch, error) {
	b, err := svc.repo.GetBatchByID(ctx, id)
	if err != nil {
		return Batch{}, err
	}
	if err = ub.Validate(); err != nil {
		return Batch{}, err
	}

	if ub.Name != "" {
		b.Name = ub.Name
	}
	if ub.Schedule != "" {
		b.Schedule = ub.Schedule
	}
	if ub.StartDate != nil {
		b.StartDate = ub.StartDate
	}
	if ub.EndDate != nil {
		b.EndDate = ub.EndDate
	}
	if ub.Fee != nil {
		b.Fee = *ub.Fee
	}
	if ub.Capacity != nil {
		b.Capacity = *ub.Capacity
	}
	if ub.Teacher != "" {
		b.Teacher = ub.Teacher
	}
	if ub.Active != nil {
		b.Active = *ub.Active
	}
	b.UpdatedAt = time.Now().UTC()

	b, err = svc.repo.UpdateBatch(ctx, b)
	if err != nil {
		return Batch{}, errors.Wrapf(err, "updating batch %d", id)
	}
	b.Status = b.StatusOn(b.UpdatedAt)
	return b, nil
}

func (svc *Service) Delete(ctx context.Context, ids ...int) error {
	if len(ids) == 0 {
		return nil
	}
	return errors.Wrap(svc.repo.DeleteBatchesByID(ctx, ids...), "deleting batches")
}

// Upcoming lists active batches starting within the next `days` days,
// today included.
func (svc *Service) Upcoming(ctx context.Context, days int) ([]Batch, error) {
	if days <= 0 {
		days = 7
	}
	batches, err := svc.repo.QueryAllBatches(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	upcoming := make([]Batch, 0, len(batches))
	for _, b := range batches {
		if !b.Active || b.StartDate == nil {
			continue
		}
		d := core.DaysBetween(today, *b.StartDate)
		if d >= 0 && d <= days {
			b.Status = b.StatusOn(today)
			upcoming = append(upcoming, b)
		}
	}
	return upcoming, nil
}

// StudentCount returns the current enrollment for a batch.
func (svc *Service) StudentCount(ctx context.Context, name string) (int, error) {
	if svc.enrollment == nil {
		return 0, nil
	}
	return svc.enrollment.CountStudentsByBatch(ctx, name)
}
