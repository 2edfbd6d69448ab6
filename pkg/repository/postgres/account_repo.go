package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reson-hq/reson-api/pkg/account"
	"github.com/reson-hq/reson-api/pkg/resource"
	storage "github.com/reson-hq/reson-api/pkg/storage/postgres"
)

// AccountRepository implements account.Repository backed by PostgreSQL (pgx).
type AccountRepository struct {
	pool      *pgxpool.Pool
	txPool    storage.Pool
	resources *ResourceRepository
}

func NewAccountRepository(pool *pgxpool.Pool, resources *ResourceRepository) *AccountRepository {
	return &AccountRepository{pool: pool, txPool: storage.NewPool(pool), resources: resources}
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (resource.Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT * FROM user_account WHERE user_email_address = $1`, email)
	if err != nil {
		return nil, err
	}
	rec, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (resource.Record, error) {
	rec, err := r.resources.GetByID(ctx, resource.User, id)
	if err != nil {
		var nf *resource.NotFoundError
		if errors.As(err, &nf) {
			return nil, account.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Register performs the uniqueness check and the insert as one unit of work.
// The transaction plus the UNIQUE constraint on user_email_address guarantee
// that of two racing registrations for the same address exactly one commits;
// the loser surfaces ErrEmailExists whichever way it loses.
func (r *AccountRepository) Register(ctx context.Context, rec resource.Record) (int64, error) {
	email, _ := rec["user_email_address"].(string)
	return storage.ExecuteTransaction(ctx, r.txPool, func(tx pgx.Tx) (int64, error) {
		var existing int64
		err := tx.QueryRow(ctx,
			`SELECT user_id FROM user_account WHERE user_email_address = $1`, email).Scan(&existing)
		if err == nil {
			return 0, account.ErrEmailExists
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, err
		}

		id, err := insertRecord(ctx, tx, resource.User, rec)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
				return 0, account.ErrEmailExists
			}
			return 0, err
		}
		return id, nil
	})
}

func (r *AccountRepository) Update(ctx context.Context, id int64, rec resource.Record) error {
	return r.resources.Update(ctx, resource.User, id, rec)
}
