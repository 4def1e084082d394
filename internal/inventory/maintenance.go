package inventory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hemis/m/domain"
)

func (s *Service) ListMaintenance(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	return s.maintenance.FindAll(ctx)
}

func (s *Service) GetMaintenance(ctx context.Context, id int64) (*domain.MaintenanceRecord, error) {
	return s.maintenance.FindByID(ctx, id)
}

func (s *Service) MaintenanceHistory(ctx context.Context, equipmentID int64) ([]domain.MaintenanceRecord, error) {
	return s.maintenance.FindByEquipment(ctx, equipmentID)
}

func (s *Service) CreateMaintenance(ctx context.Context, in domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkMaintenanceRefs(ctx, &in); err != nil {
		return nil, err
	}

	rec := in
	rec.ID = 0
	if rec.Status == "" {
		rec.Status = domain.MaintenanceCompleted
	}
	rec.CreatedAt = s.now()
	if err := s.maintenance.Save(ctx, &rec); err != nil {
		return nil, err
	}
	s.logger.Info("maintenance recorded",
		zap.Int64("record_id", rec.ID),
		zap.Int64("equipment_id", rec.EquipmentID),
		zap.String("type", string(rec.Type)))
	return &rec, nil
}

func (s *Service) UpdateMaintenance(ctx context.Context, id int64, in domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	existing, err := s.maintenance.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkMaintenanceRefs(ctx, &in); err != nil {
		return nil, err
	}

	rec := in
	rec.ID = id
	if rec.Status == "" {
		rec.Status = existing.Status
	}
	rec.CreatedAt = existing.CreatedAt
	if err := s.maintenance.Save(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteMaintenance removes the record permanently.
func (s *Service) DeleteMaintenance(ctx context.Context, id int64) error {
	ok, err := s.maintenance.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	if err := s.maintenance.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("maintenance record deleted", zap.Int64("record_id", id))
	return nil
}

func (s *Service) checkMaintenanceRefs(ctx context.Context, rec *domain.MaintenanceRecord) error {
	ok, err := s.equipment.ExistsByID(ctx, rec.EquipmentID)
	if err != nil {
		return fmt.Errorf("check equipment %d: %w", rec.EquipmentID, err)
	}
	if !ok {
		return fmt.Errorf("%w: equipment %d does not exist", domain.ErrValidation, rec.EquipmentID)
	}
	return s.optionalAccount(ctx, rec.TechnicianID, "technician_id")
}
