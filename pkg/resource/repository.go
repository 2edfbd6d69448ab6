package resource

import (
	"context"
	"fmt"
)

// ValidationError rejects malformed or incomplete input before any store
// round-trip.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports that no row matched a lookup or mutation.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found", e.Entity) }

// Repository abstracts row storage for the generic engine. Implementations
// return *NotFoundError when an id matches nothing.
type Repository interface {
	List(ctx context.Context, d Descriptor) ([]Record, error)
	GetByID(ctx context.Context, d Descriptor, id int64) (Record, error)
	FindBy(ctx context.Context, d Descriptor, filters []Filter) ([]Record, error)
	Insert(ctx context.Context, d Descriptor, rec Record) (int64, error)
	Update(ctx context.Context, d Descriptor, id int64, rec Record) error
	Delete(ctx context.Context, d Descriptor, id int64) error
}
