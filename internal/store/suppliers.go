package store

import (
	"context"

	"hemis/m/domain"
)

const supplierColumns = `id, name, contact_person, email, phone, address, active, created_at`

type SupplierRepository struct {
	repo
}

func (r *SupplierRepository) FindByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	var s domain.Supplier
	if err := r.get(ctx, &s, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepository) FindAll(ctx context.Context) ([]domain.Supplier, error) {
	return r.query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY id`)
}

func (r *SupplierRepository) FindActive(ctx context.Context) ([]domain.Supplier, error) {
	return r.query(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE active = ? ORDER BY id`, true)
}

func (r *SupplierRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM suppliers WHERE active = ?`, true)
}

func (r *SupplierRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM suppliers`)
}

func (r *SupplierRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "suppliers", id)
}

func (r *SupplierRepository) Save(ctx context.Context, s *domain.Supplier) error {
	if s.ID == 0 {
		id, err := r.insert(ctx, `INSERT INTO suppliers (name, contact_person, email, phone, address, active, created_at)
                VALUES (:name, :contact_person, :email, :phone, :address, :active, :created_at) RETURNING id`, s)
		if err != nil {
			return err
		}
		s.ID = id
		return nil
	}
	return r.update(ctx, `UPDATE suppliers SET name = :name, contact_person = :contact_person, email = :email, phone = :phone,
                address = :address, active = :active WHERE id = :id`, s)
}

func (r *SupplierRepository) query(ctx context.Context, query string, args ...any) ([]domain.Supplier, error) {
	suppliers := []domain.Supplier{}
	if err := r.list(ctx, &suppliers, query, args...); err != nil {
		return nil, err
	}
	return suppliers, nil
}
