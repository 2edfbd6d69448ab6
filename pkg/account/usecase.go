package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/reson-hq/reson-api/pkg/resource"
	"github.com/reson-hq/reson-api/pkg/security/password"
	"github.com/reson-hq/reson-api/pkg/validation"
)

// UseCase describes registration, login, and the credential-bearing user
// operations that cannot go through the generic engine unhashed.
type UseCase interface {
	Register(ctx context.Context, email, name, plaintext string) (int64, error)
	Login(ctx context.Context, email, plaintext string) (resource.Record, error)
	GetByID(ctx context.Context, id int64) (resource.Record, error)
	Update(ctx context.Context, id int64, input resource.Record) error
}

type service struct {
	repo      Repository
	hasher    password.Hasher
	minPwdLen int
	now       func() time.Time
}

// NewService returns the default UseCase implementation.
func NewService(repo Repository, hasher password.Hasher, minPasswordLength int) UseCase {
	return &service{repo: repo, hasher: hasher, minPwdLen: minPasswordLength, now: time.Now}
}

func (s *service) Register(ctx context.Context, email, name, plaintext string) (int64, error) {
	if !validation.IsValidEmail(email) {
		return 0, &resource.ValidationError{Message: "Invalid email format"}
	}
	if j := validation.ValidatePassword(plaintext, s.minPwdLen); !j.Valid {
		return 0, &resource.ValidationError{Message: j.Message}
	}
	if !validation.IsValidLength(name, 1, 255) {
		return 0, &resource.ValidationError{Message: "User name must be between 1 and 255 characters"}
	}

	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		return 0, err
	}
	rec := resource.Record{
		"user_name":          name,
		"user_email_address": email,
		"password":           digest,
		"role":               DefaultRole,
		"created_date":       s.now().UTC(),
		"last_modified_date": nil,
	}
	return s.repo.Register(ctx, rec)
}

func (s *service) Login(ctx context.Context, email, plaintext string) (resource.Record, error) {
	if email == "" || plaintext == "" {
		return nil, &resource.ValidationError{Message: "Email and password are required"}
	}
	// A malformed email cannot belong to an account; answer exactly as an
	// unknown one so the response reveals nothing.
	if !validation.IsValidEmail(email) {
		return nil, ErrInvalidCredentials
	}
	rec, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	digest, _ := rec["password"].(string)
	if !s.hasher.Compare(plaintext, digest) {
		return nil, ErrInvalidCredentials
	}
	return rec, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (resource.Record, error) {
	return s.repo.GetByID(ctx, id)
}

// Update keeps the original full-resubmission policy but never stores the
// password as given: the resubmitted plaintext is re-hashed.
func (s *service) Update(ctx context.Context, id int64, input resource.Record) error {
	if j := validation.ValidateRequiredFields(input, []string{"user_email_address", "password", "role"}); !j.Valid {
		return &resource.ValidationError{Message: "Missing required fields: " + strings.Join(j.Missing, ", ")}
	}
	if !validation.IsValidEmail(input["user_email_address"]) {
		return &resource.ValidationError{Message: "Invalid email format"}
	}
	plaintext, _ := input["password"].(string)
	if j := validation.ValidatePassword(plaintext, s.minPwdLen); !j.Valid {
		return &resource.ValidationError{Message: j.Message}
	}
	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		return err
	}

	rec := resource.Record{
		"user_email_address": input["user_email_address"],
		"user_name":          input["user_name"],
		"password":           digest,
		"role":               input["role"],
		"last_modified_date": s.now().UTC(),
	}
	return s.repo.Update(ctx, id, rec)
}
