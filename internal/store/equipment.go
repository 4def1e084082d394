package store

import (
	"context"

	"hemis/m/domain"
)

const equipmentColumns = `id, name, description, category, serial_number, model, supplier_id, purchase_date, purchase_price,
                status, next_maintenance_date, location, active, created_at, updated_at`

type EquipmentRepository struct {
	repo
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := r.get(ctx, &e, `SELECT `+equipmentColumns+` FROM equipment WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) FindAll(ctx context.Context) ([]domain.Equipment, error) {
	return r.query(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY id`)
}

func (r *EquipmentRepository) FindActive(ctx context.Context) ([]domain.Equipment, error) {
	return r.query(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE active = ? ORDER BY id`, true)
}

// FindMaintenanceDue returns active equipment whose next maintenance falls before due.
func (r *EquipmentRepository) FindMaintenanceDue(ctx context.Context, due domain.Date) ([]domain.Equipment, error) {
	return r.query(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE next_maintenance_date < ? AND active = ? ORDER BY next_maintenance_date, id`, due, true)
}

func (r *EquipmentRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM equipment WHERE active = ?`, true)
}

func (r *EquipmentRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM equipment`)
}

func (r *EquipmentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "equipment", id)
}

func (r *EquipmentRepository) Save(ctx context.Context, e *domain.Equipment) error {
	if e.ID == 0 {
		id, err := r.insert(ctx, `INSERT INTO equipment (name, description, category, serial_number, model, supplier_id, purchase_date, purchase_price,
                status, next_maintenance_date, location, active, created_at, updated_at)
                VALUES (:name, :description, :category, :serial_number, :model, :supplier_id, :purchase_date, :purchase_price,
                :status, :next_maintenance_date, :location, :active, :created_at, :updated_at) RETURNING id`, e)
		if err != nil {
			return err
		}
		e.ID = id
		return nil
	}
	return r.update(ctx, `UPDATE equipment SET name = :name, description = :description, category = :category, serial_number = :serial_number,
                model = :model, supplier_id = :supplier_id, purchase_date = :purchase_date, purchase_price = :purchase_price, status = :status,
                next_maintenance_date = :next_maintenance_date, location = :location, active = :active, updated_at = :updated_at WHERE id = :id`, e)
}

func (r *EquipmentRepository) query(ctx context.Context, query string, args ...any) ([]domain.Equipment, error) {
	equipment := []domain.Equipment{}
	if err := r.list(ctx, &equipment, query, args...); err != nil {
		return nil, err
	}
	return equipment, nil
}
