package inventory

import (
	"context"

	"go.uber.org/zap"

	"hemis/m/domain"
)

func (s *Service) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipment.FindActive(ctx)
}

func (s *Service) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error) {
	return s.equipment.FindByID(ctx, id)
}

func (s *Service) CreateEquipment(ctx context.Context, in domain.Equipment) (*domain.Equipment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.optionalSupplier(ctx, in.SupplierID); err != nil {
		return nil, err
	}

	e := in
	e.ID = 0
	if e.Status == "" {
		e.Status = domain.EquipmentOperational
	}
	e.Active = true
	e.CreatedAt = s.now()
	e.UpdatedAt = nil
	if err := s.equipment.Save(ctx, &e); err != nil {
		return nil, err
	}
	s.logger.Info("equipment created", zap.Int64("equipment_id", e.ID), zap.String("name", e.Name))
	return &e, nil
}

func (s *Service) UpdateEquipment(ctx context.Context, id int64, in domain.Equipment) (*domain.Equipment, error) {
	existing, err := s.equipment.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.optionalSupplier(ctx, in.SupplierID); err != nil {
		return nil, err
	}

	e := in
	e.ID = id
	if e.Status == "" {
		e.Status = existing.Status
	}
	e.Active = existing.Active
	e.CreatedAt = existing.CreatedAt
	now := s.now()
	e.UpdatedAt = &now
	if err := s.equipment.Save(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) DeleteEquipment(ctx context.Context, id int64) error {
	e, err := s.equipment.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !e.Active {
		return nil
	}
	e.Active = false
	now := s.now()
	e.UpdatedAt = &now
	if err := s.equipment.Save(ctx, e); err != nil {
		return err
	}
	s.logger.Info("equipment deactivated", zap.Int64("equipment_id", id))
	return nil
}
