package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"hemis/m/domain"
)

// Store bundles the per-entity repositories over one database handle.
type Store struct {
	Accounts    *AccountRepository
	Medicines   *MedicineRepository
	Equipment   *EquipmentRepository
	Maintenance *MaintenanceRepository
	Suppliers   *SupplierRepository
	Orders      *OrderRepository
}

func New(db *sqlx.DB) *Store {
	base := repo{db: db}
	return &Store{
		Accounts:    &AccountRepository{base},
		Medicines:   &MedicineRepository{base},
		Equipment:   &EquipmentRepository{base},
		Maintenance: &MaintenanceRepository{base},
		Suppliers:   &SupplierRepository{base},
		Orders:      &OrderRepository{base},
	}
}

type repo struct {
	db *sqlx.DB
}

func (r repo) get(ctx context.Context, dest any, query string, args ...any) error {
	return translate(r.db.GetContext(ctx, dest, r.db.Rebind(query), args...))
}

func (r repo) list(ctx context.Context, dest any, query string, args ...any) error {
	return translate(r.db.SelectContext(ctx, dest, r.db.Rebind(query), args...))
}

// insert runs a named INSERT ... RETURNING id and returns the new id.
func (r repo) insert(ctx context.Context, query string, arg any) (int64, error) {
	q, args, err := sqlx.Named(query, arg)
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(q), args...).Scan(&id); err != nil {
		return 0, translate(err)
	}
	return id, nil
}

// update runs a named UPDATE and reports domain.ErrNotFound when no row matched.
func (r repo) update(ctx context.Context, query string, arg any) error {
	q, args, err := sqlx.Named(query, arg)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q), args...)
	if err != nil {
		return translate(err)
	}
	return requireRow(res)
}

func (r repo) deleteByID(ctx context.Context, table string, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM "+table+" WHERE id = ?"), id)
	if err != nil {
		return translate(err)
	}
	return requireRow(res)
}

func (r repo) exists(ctx context.Context, table string, id int64) (bool, error) {
	var n int64
	if err := r.get(ctx, &n, "SELECT COUNT(*) FROM "+table+" WHERE id = ?", id); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r repo) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.get(ctx, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %v", domain.ErrDuplicateKey, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
