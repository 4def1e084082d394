package inventory

import (
	"context"

	"go.uber.org/zap"

	"hemis/m/domain"
)

func (s *Service) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.suppliers.FindActive(ctx)
}

func (s *Service) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	return s.suppliers.FindByID(ctx, id)
}

func (s *Service) CreateSupplier(ctx context.Context, in domain.Supplier) (*domain.Supplier, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	sup := in
	sup.ID = 0
	sup.Active = true
	sup.CreatedAt = s.now()
	if err := s.suppliers.Save(ctx, &sup); err != nil {
		return nil, err
	}
	s.logger.Info("supplier created", zap.Int64("supplier_id", sup.ID), zap.String("name", sup.Name))
	return &sup, nil
}

func (s *Service) UpdateSupplier(ctx context.Context, id int64, in domain.Supplier) (*domain.Supplier, error) {
	existing, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	sup := in
	sup.ID = id
	sup.Active = existing.Active
	sup.CreatedAt = existing.CreatedAt
	if err := s.suppliers.Save(ctx, &sup); err != nil {
		return nil, err
	}
	return &sup, nil
}

func (s *Service) DeleteSupplier(ctx context.Context, id int64) error {
	sup, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !sup.Active {
		return nil
	}
	sup.Active = false
	if err := s.suppliers.Save(ctx, sup); err != nil {
		return err
	}
	s.logger.Info("supplier deactivated", zap.Int64("supplier_id", id))
	return nil
}
