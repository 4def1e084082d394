package inventory

import (
	"context"

	"go.uber.org/zap"

	"hemis/m/domain"
)

func (s *Service) ListMedicines(ctx context.Context) ([]domain.Medicine, error) {
	return s.medicines.FindActive(ctx)
}

func (s *Service) GetMedicine(ctx context.Context, id int64) (*domain.Medicine, error) {
	return s.medicines.FindByID(ctx, id)
}

func (s *Service) CreateMedicine(ctx context.Context, in domain.Medicine) (*domain.Medicine, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.optionalSupplier(ctx, in.SupplierID); err != nil {
		return nil, err
	}

	m := in
	m.ID = 0
	m.Active = true
	m.CreatedAt = s.now()
	m.UpdatedAt = nil
	if err := s.medicines.Save(ctx, &m); err != nil {
		return nil, err
	}
	s.logger.Info("medicine created", zap.Int64("medicine_id", m.ID), zap.String("name", m.Name))
	return &m, nil
}

// UpdateMedicine replaces the mutable fields of medicine id with in.
func (s *Service) UpdateMedicine(ctx context.Context, id int64, in domain.Medicine) (*domain.Medicine, error) {
	existing, err := s.medicines.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.optionalSupplier(ctx, in.SupplierID); err != nil {
		return nil, err
	}

	m := in
	m.ID = id
	m.Active = existing.Active
	m.CreatedAt = existing.CreatedAt
	now := s.now()
	m.UpdatedAt = &now
	if err := s.medicines.Save(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMedicine marks the medicine inactive. Deleting an inactive medicine is a no-op.
func (s *Service) DeleteMedicine(ctx context.Context, id int64) error {
	m, err := s.medicines.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !m.Active {
		return nil
	}
	m.Active = false
	now := s.now()
	m.UpdatedAt = &now
	if err := s.medicines.Save(ctx, m); err != nil {
		return err
	}
	s.logger.Info("medicine deactivated", zap.Int64("medicine_id", id))
	return nil
}
