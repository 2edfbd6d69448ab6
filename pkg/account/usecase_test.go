package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reson-hq/reson-api/pkg/resource"
)

type fakeRepository struct {
	GetByEmailFn func(ctx context.Context, email string) (resource.Record, error)
	GetByIDFn    func(ctx context.Context, id int64) (resource.Record, error)
	RegisterFn   func(ctx context.Context, rec resource.Record) (int64, error)
	UpdateFn     func(ctx context.Context, id int64, rec resource.Record) error
}

func (f *fakeRepository) GetByEmail(ctx context.Context, email string) (resource.Record, error) {
	return f.GetByEmailFn(ctx, email)
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (resource.Record, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeRepository) Register(ctx context.Context, rec resource.Record) (int64, error) {
	return f.RegisterFn(ctx, rec)
}

func (f *fakeRepository) Update(ctx context.Context, id int64, rec resource.Record) error {
	return f.UpdateFn(ctx, id, rec)
}

// fakeHasher marks digests deterministically so tests can prove the
// plaintext never reaches the repository.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "digest:" + plain, nil }

func (fakeHasher) Compare(plain, digest string) bool { return "digest:"+plain == digest }

func newTestService(repo *fakeRepository) *service {
	return &service{
		repo:      repo,
		hasher:    fakeHasher{},
		minPwdLen: 6,
		now:       func() time.Time { return time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC) },
	}
}

func TestRegisterStoresDigestAndDefaultRole(t *testing.T) {
	var stored resource.Record
	repo := &fakeRepository{
		RegisterFn: func(ctx context.Context, rec resource.Record) (int64, error) {
			stored = rec
			return 9, nil
		},
	}
	svc := newTestService(repo)

	id, err := svc.Register(context.Background(), "ada@example.com", "Ada", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.Equal(t, "digest:hunter22", stored["password"])
	assert.Equal(t, "recruiter", stored["role"])
	assert.Nil(t, stored["last_modified_date"])
	assert.NotNil(t, stored["created_date"])
}

func TestRegisterValidation(t *testing.T) {
	repo := &fakeRepository{
		RegisterFn: func(ctx context.Context, rec resource.Record) (int64, error) {
			t.Fatal("register must not hit the store on invalid input")
			return 0, nil
		},
	}
	svc := newTestService(repo)

	tests := []struct {
		name     string
		email    string
		userName string
		password string
		message  string
	}{
		{"bad email", "nope", "Ada", "hunter22", "Invalid email format"},
		{"short password", "a@b.com", "Ada", "abc", "Password must be at least 6 characters long"},
		{"missing password", "a@b.com", "Ada", "", "Password is required"},
		{"blank name", "a@b.com", "   ", "hunter22", "User name must be between 1 and 255 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.email, tt.userName, tt.password)
			var verr *resource.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestRegisterPropagatesDuplicateEmail(t *testing.T) {
	repo := &fakeRepository{
		RegisterFn: func(ctx context.Context, rec resource.Record) (int64, error) {
			return 0, ErrEmailExists
		},
	}
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "taken@example.com", "Ada", "hunter22")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	repo := &fakeRepository{
		GetByEmailFn: func(ctx context.Context, email string) (resource.Record, error) {
			return resource.Record{
				"user_id":            int64(4),
				"user_email_address": email,
				"password":           "digest:hunter22",
			}, nil
		},
	}
	svc := newTestService(repo)

	rec, err := svc.Login(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, int64(4), rec["user_id"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := &fakeRepository{
		GetByEmailFn: func(ctx context.Context, email string) (resource.Record, error) {
			if email == "known@example.com" {
				return resource.Record{"password": "digest:hunter22"}, nil
			}
			return nil, ErrNotFound
		},
	}
	svc := newTestService(repo)

	// Unknown email, wrong password, and malformed email all yield the same
	// error, so responses cannot be used to enumerate accounts.
	_, err := svc.Login(context.Background(), "unknown@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "known@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "not-an-email", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	svc := newTestService(&fakeRepository{})

	_, err := svc.Login(context.Background(), "", "hunter22")
	var verr *resource.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email and password are required", verr.Message)
}

func TestUpdateRehashesPassword(t *testing.T) {
	var updated resource.Record
	repo := &fakeRepository{
		UpdateFn: func(ctx context.Context, id int64, rec resource.Record) error {
			updated = rec
			return nil
		},
	}
	svc := newTestService(repo)

	err := svc.Update(context.Background(), 4, resource.Record{
		"user_email_address": "ada@example.com",
		"user_name":          "Ada",
		"password":           "hunter22",
		"role":               "recruiter",
	})
	require.NoError(t, err)
	assert.Equal(t, "digest:hunter22", updated["password"])
	assert.NotNil(t, updated["last_modified_date"])
}

func TestUpdateRequiresFullFieldSet(t *testing.T) {
	svc := newTestService(&fakeRepository{})

	err := svc.Update(context.Background(), 4, resource.Record{"user_email_address": "a@b.com"})
	var verr *resource.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required fields: password, role", verr.Message)
}

func TestUpdatePassesThroughRepositoryError(t *testing.T) {
	notFound := &resource.NotFoundError{Entity: "User account"}
	repo := &fakeRepository{
		UpdateFn: func(ctx context.Context, id int64, rec resource.Record) error {
			return notFound
		},
	}
	svc := newTestService(repo)

	err := svc.Update(context.Background(), 4, resource.Record{
		"user_email_address": "ada@example.com",
		"password":           "hunter22",
		"role":               "recruiter",
	})
	var nf *resource.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Same(t, notFound, err)
}
