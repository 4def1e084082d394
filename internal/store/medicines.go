package store

import (
	"context"

	"hemis/m/domain"
)

const medicineColumns = `id, name, description, category, quantity, unit_price, expiry_date, batch_number, supplier_id, active, created_at, updated_at`

type MedicineRepository struct {
	repo
}

func (r *MedicineRepository) FindByID(ctx context.Context, id int64) (*domain.Medicine, error) {
	var m domain.Medicine
	if err := r.get(ctx, &m, `SELECT `+medicineColumns+` FROM medicines WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MedicineRepository) FindAll(ctx context.Context) ([]domain.Medicine, error) {
	return r.query(ctx, `SELECT `+medicineColumns+` FROM medicines ORDER BY id`)
}

func (r *MedicineRepository) FindActive(ctx context.Context) ([]domain.Medicine, error) {
	return r.query(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE active = ? ORDER BY id`, true)
}

func (r *MedicineRepository) FindByQuantityLessThan(ctx context.Context, threshold int64) ([]domain.Medicine, error) {
	return r.query(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE quantity < ? AND active = ? ORDER BY quantity, id`, threshold, true)
}

// FindExpiringBetween returns active medicines with from <= expiry_date <= to.
func (r *MedicineRepository) FindExpiringBetween(ctx context.Context, from, to domain.Date) ([]domain.Medicine, error) {
	return r.query(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE expiry_date BETWEEN ? AND ? AND active = ? ORDER BY expiry_date, id`, from, to, true)
}

func (r *MedicineRepository) FindExpiredBefore(ctx context.Context, asOf domain.Date) ([]domain.Medicine, error) {
	return r.query(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE expiry_date < ? AND active = ? ORDER BY expiry_date, id`, asOf, true)
}

func (r *MedicineRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM medicines WHERE active = ?`, true)
}

func (r *MedicineRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM medicines`)
}

func (r *MedicineRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "medicines", id)
}

func (r *MedicineRepository) Save(ctx context.Context, m *domain.Medicine) error {
	if m.ID == 0 {
		id, err := r.insert(ctx, `INSERT INTO medicines (name, description, category, quantity, unit_price, expiry_date, batch_number, supplier_id, active, created_at, updated_at)
                VALUES (:name, :description, :category, :quantity, :unit_price, :expiry_date, :batch_number, :supplier_id, :active, :created_at, :updated_at) RETURNING id`, m)
		if err != nil {
			return err
		}
		m.ID = id
		return nil
	}
	return r.update(ctx, `UPDATE medicines SET name = :name, description = :description, category = :category, quantity = :quantity,
                unit_price = :unit_price, expiry_date = :expiry_date, batch_number = :batch_number, supplier_id = :supplier_id,
                active = :active, updated_at = :updated_at WHERE id = :id`, m)
}

func (r *MedicineRepository) query(ctx context.Context, query string, args ...any) ([]domain.Medicine, error) {
	medicines := []domain.Medicine{}
	if err := r.list(ctx, &medicines, query, args...); err != nil {
		return nil, err
	}
	return medicines, nil
}
