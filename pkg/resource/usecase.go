package resource

import (
	"context"
	"strings"
	"time"

	"github.com/reson-hq/reson-api/pkg/validation"
)

// UseCase exposes the per-entity operations. All input validation happens
// here, before any store access.
type UseCase interface {
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	FindBy(ctx context.Context, filters []Filter) ([]Record, error)
	Create(ctx context.Context, input Record) (int64, error)
	Update(ctx context.Context, id int64, input Record) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	desc Descriptor
	repo Repository
	now  func() time.Time
}

// NewService binds the generic engine to one entity descriptor.
func NewService(desc Descriptor, repo Repository) UseCase {
	return &service{desc: desc, repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx, s.desc)
}

func (s *service) GetByID(ctx context.Context, id int64) (Record, error) {
	return s.repo.GetByID(ctx, s.desc, id)
}

func (s *service) FindBy(ctx context.Context, filters []Filter) ([]Record, error) {
	return s.repo.FindBy(ctx, s.desc, filters)
}

func (s *service) Create(ctx context.Context, input Record) (int64, error) {
	if j := validation.ValidateRequiredFields(input, s.desc.RequiredCreate); !j.Valid {
		return 0, missingFields(j.Missing)
	}
	if err := s.checkFormats(input); err != nil {
		return 0, err
	}

	rec := pick(input, s.desc.Columns)
	now := s.now().UTC()
	if s.desc.CreatedColumn != "" {
		rec[s.desc.CreatedColumn] = now
	}
	if s.desc.UpdatedColumn != "" {
		if s.desc.UpdatedOnCreate {
			rec[s.desc.UpdatedColumn] = now
		} else {
			rec[s.desc.UpdatedColumn] = nil
		}
	}
	return s.repo.Insert(ctx, s.desc, rec)
}

func (s *service) Update(ctx context.Context, id int64, input Record) error {
	if j := validation.ValidateRequiredFields(input, s.desc.requiredForUpdate()); !j.Valid {
		return missingFields(j.Missing)
	}
	if err := s.checkFormats(input); err != nil {
		return err
	}

	cols := s.desc.UpdateColumns
	if cols == nil {
		cols = s.desc.Columns
	}
	rec := pick(input, cols)
	if s.desc.UpdatedColumn != "" {
		rec[s.desc.UpdatedColumn] = s.now().UTC()
	}
	return s.repo.Update(ctx, s.desc, id, rec)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, s.desc, id)
}

// checkFormats validates id-typed and email-typed fields whenever the body
// carries them.
func (s *service) checkFormats(input Record) error {
	for _, f := range s.desc.IDFields {
		if v, ok := input[f]; ok && v != nil {
			if !validation.IsValidID(v) {
				return &ValidationError{Message: "Invalid " + IDLabel(f) + " ID"}
			}
		}
	}
	for _, f := range s.desc.EmailFields {
		if v, ok := input[f]; ok && v != nil && v != "" {
			if !validation.IsValidEmail(v) {
				return &ValidationError{Message: "Invalid email format"}
			}
		}
	}
	return nil
}

// pick keeps only known columns; unknown body keys never reach the store.
func pick(input Record, cols []string) Record {
	rec := make(Record, len(cols)+2)
	for _, col := range cols {
		if v, ok := input[col]; ok {
			rec[col] = v
		}
	}
	return rec
}

func missingFields(missing []string) *ValidationError {
	return &ValidationError{Message: "Missing required fields: " + strings.Join(missing, ", ")}
}
