package account

import (
	"context"
	"errors"

	"github.com/reson-hq/reson-api/pkg/resource"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("user account not found")
	ErrEmailExists        = errors.New("email address already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// DefaultRole is assigned to every registered account.
const DefaultRole = "recruiter"

// Repository abstracts user-account persistence from the domain layer.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (resource.Record, error)
	GetByID(ctx context.Context, id int64) (resource.Record, error)
	// Register atomically checks email uniqueness and inserts the account
	// inside one unit of work, returning the generated id. A pre-existing
	// email yields ErrEmailExists whether it is seen by the in-transaction
	// check or by a racing commit.
	Register(ctx context.Context, rec resource.Record) (int64, error)
	Update(ctx context.Context, id int64, rec resource.Record) error
}
