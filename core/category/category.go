package category

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core"
)

var (
	// ErrNotFound is used when a specific Category is requested but does not exist.
	ErrNotFound = errors.New("category not found")
)

// Category groups batches by program, e.g. "JEE Advanced" or "NEET".
type Category struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	DefaultFee  decimal.Decimal `json:"default_fee"`
	DurationMo  int             `json:"duration_months,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"` // UTC
	UpdatedAt   time.Time       `json:"updated_at"` // UTC
}

type NewCategory struct {
	Name        string          `json:"name" validate:"required,min=2,max=100"`
	Description string          `json:"description"`
	DefaultFee  decimal.Decimal `json:"default_fee"`
	DurationMo  int             `json:"duration_months" validate:"omitempty,min=1,max=60"`
}

func (nc *NewCategory) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	if err := core.Validate.Struct(nc); err != nil {
		return err
	}
	if nc.DefaultFee.Sign() < 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "default_fee", Error: "amount must not be negative"})
	}
	return nil
}

type UpdateCategory struct {
	Name        string           `json:"name" validate:"omitempty,min=2,max=100"`
	Description string           `json:"description"`
	DefaultFee  *decimal.Decimal `json:"default_fee"`
	DurationMo  *int             `json:"duration_months"`
	Active      *bool            `json:"active"`
}

func (uc *UpdateCategory) Validate() error {
	uc.Name = core.CleanString(uc.Name)
	if err := core.Validate.Struct(uc); err != nil {
		return err
	}
	if uc.DefaultFee != nil && uc.DefaultFee.Sign() < 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "default_fee", Error: "amount must not be negative"})
	}
	return nil
}

type Repository interface {
	CreateCategory(ctx context.Context, c Category) (Category, error)
	GetCategoryByID(ctx context.Context, id int) (Category, error)
	GetCategoryByName(ctx context.Context, name string) (Category, error)
	QueryAllCategories(ctx context.Context) ([]Category, error)
	UpdateCategory(ctx context.Context, c Category) (Category, error)
	DeleteCategoriesByID(ctx context.Context, ids ...int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewCategory) (Category, error) {
	if err := nc.Validate(); err != nil {
		return Category{}, err
	}
	now := time.Now().UTC()
	c := Category{
		Name:        nc.Name,
		Description: nc.Description,
		DefaultFee:  nc.DefaultFee,
		DurationMo:  nc.DurationMo,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	c, err := svc.repo.CreateCategory(ctx, c)
	if err != nil {
		return Category{}, errors.Wrap(err, "creating category")
	}
	return c, nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Category, error) {
	return svc.repo.GetCategoryByID(ctx, id)
}

func (svc *Service) GetByName(ctx context.Context, name string) (Category, error) {
	return svc.repo.GetCategoryByName(ctx, core.CleanString(name))
}

func (svc *Service) QueryAll(ctx context.Context) ([]Category, error) {
	return svc.repo.QueryAllCategories(ctx)
}

func (svc *Service) Update(ctx context.Context, id int, uc UpdateCategory) (Category, error) {
	c, err := svc.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return Category{}, err
	}
	if err = uc.Validate(); err != nil {
		return Category{}, err
	}

	if uc.Name != "" {
		c.Name = uc.Name
	}
	if uc.Description != "" {
		c.Description = uc.Description
	}
	if uc.DefaultFee != nil {
		c.DefaultFee = *uc.DefaultFee
	}
	if uc.DurationMo != nil {
		c.DurationMo = *uc.DurationMo
	}
	if uc.Active != nil {
		c.Active = *uc.Active
	}
	c.UpdatedAt = time.Now().UTC()

	c, err = svc.repo.UpdateCategory(ctx, c)
	if err != nil {
		return Category{}, errors.Wrapf(err, "updating category %d", id)
	}
	return c, nil
}

func (svc *Service) Delete(ctx context.Context, ids ...int) error {
	if len(ids) == 0 {
		return nil
	}
	return errors.Wrap(svc.repo.DeleteCategoriesByID(ctx, ids...), "deleting categories")
}
