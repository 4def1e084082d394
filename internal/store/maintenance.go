package store

import (
	"context"

	"hemis/m/domain"
)

const maintenanceColumns = `id, equipment_id, technician_id, maintenance_date, type, description, cost, performed_by,
                next_scheduled_date, status, created_at`

type MaintenanceRepository struct {
	repo
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id int64) (*domain.MaintenanceRecord, error) {
	var rec domain.MaintenanceRecord
	if err := r.get(ctx, &rec, `SELECT `+maintenanceColumns+` FROM maintenance_records WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *MaintenanceRepository) FindAll(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	return r.query(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_records ORDER BY maintenance_date DESC, id DESC`)
}

func (r *MaintenanceRepository) FindByEquipment(ctx context.Context, equipmentID int64) ([]domain.MaintenanceRecord, error) {
	return r.query(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_records WHERE equipment_id = ? ORDER BY maintenance_date DESC, id DESC`, equipmentID)
}

func (r *MaintenanceRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "maintenance_records", id)
}

func (r *MaintenanceRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "maintenance_records", id)
}

func (r *MaintenanceRepository) Save(ctx context.Context, rec *domain.MaintenanceRecord) error {
	if rec.ID == 0 {
		id, err := r.insert(ctx, `INSERT INTO maintenance_records (equipment_id, technician_id, maintenance_date, type, description, cost,
                performed_by, next_scheduled_date, status, created_at)
                VALUES (:equipment_id, :technician_id, :maintenance_date, :type, :description, :cost,
                :performed_by, :next_scheduled_date, :status, :created_at) RETURNING id`, rec)
		if err != nil {
			return err
		}
		rec.ID = id
		return nil
	}
	return r.update(ctx, `UPDATE maintenance_records SET equipment_id = :equipment_id, technician_id = :technician_id,
                maintenance_date = :maintenance_date, type = :type, description = :description, cost = :cost, performed_by = :performed_by,
                next_scheduled_date = :next_scheduled_date, status = :status WHERE id = :id`, rec)
}

func (r *MaintenanceRepository) query(ctx context.Context, query string, args ...any) ([]domain.MaintenanceRecord, error) {
	records := []domain.MaintenanceRecord{}
	if err := r.list(ctx, &records, query, args...); err != nil {
		return nil, err
	}
	return records, nil
}
