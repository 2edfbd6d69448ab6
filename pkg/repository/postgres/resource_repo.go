package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reson-hq/reson-api/pkg/resource"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the same SQL
// builders serve plain reads and transactional units of work.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ResourceRepository implements resource.Repository for every descriptor-
// driven entity. Identifiers interpolated into SQL come exclusively from
// compile-time descriptors; all external values travel as placeholders.
type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) (*ResourceRepository, error) {
	r := &ResourceRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResourceRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, schemaDDL)
	return err
}

func (r *ResourceRepository) List(ctx context.Context, d resource.Descriptor) ([]resource.Record, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT * FROM %s`, d.Table))
	if err != nil {
		return nil, err
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []resource.Record{}
	}
	return recs, nil
}

func (r *ResourceRepository) GetByID(ctx context.Context, d resource.Descriptor, id int64) (resource.Record, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1`, d.Table, d.IDColumn), id)
	if err != nil {
		return nil, err
	}
	rec, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &resource.NotFoundError{Entity: d.Name}
		}
		return nil, err
	}
	return rec, nil
}

func (r *ResourceRepository) FindBy(ctx context.Context, d resource.Descriptor, filters []resource.Filter) ([]resource.Record, error) {
	conds := make([]string, len(filters))
	args := make([]any, len(filters))
	for i, f := range filters {
		conds[i] = fmt.Sprintf("%s = $%d", f.Column, i+1)
		args[i] = f.Value
	}
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT * FROM %s WHERE %s`, d.Table, strings.Join(conds, " AND ")), args...)
	if err != nil {
		return nil, err
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []resource.Record{}
	}
	return recs, nil
}

func (r *ResourceRepository) Insert(ctx context.Context, d resource.Descriptor, rec resource.Record) (int64, error) {
	return insertRecord(ctx, r.pool, d, rec)
}

func (r *ResourceRepository) Update(ctx context.Context, d resource.Descriptor, id int64, rec resource.Record) error {
	cols := d.UpdateColumnList()
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
		args = append(args, rec[col])
	}
	args = append(args, id)
	cmd, err := r.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d`,
			d.Table, strings.Join(sets, ", "), d.IDColumn, len(cols)+1), args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &resource.NotFoundError{Entity: d.Name}
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, d resource.Descriptor, id int64) error {
	cmd, err := r.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, d.Table, d.IDColumn), id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &resource.NotFoundError{Entity: d.Name}
	}
	return nil
}

// insertRecord writes the descriptor's full insert column list; absent
// record keys become NULL. Works against the pool or a transaction.
func insertRecord(ctx context.Context, q querier, d resource.Descriptor, rec resource.Record) (int64, error) {
	cols := d.InsertColumns()
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = rec[col]
	}
	var id int64
	err := q.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
			d.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "), d.IDColumn),
		args...).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
