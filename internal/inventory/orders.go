package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hemis/m/domain"
)

// ListOrders returns every order, or only those in status when it is set.
func (s *Service) ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.PurchaseOrder, error) {
	if status == "" {
		return s.orders.FindAll(ctx)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid order status %q", domain.ErrValidation, status)
	}
	return s.orders.FindByStatus(ctx, status)
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *Service) CreateOrder(ctx context.Context, in domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkOrderRefs(ctx, &in); err != nil {
		return nil, err
	}

	o := in
	o.ID = 0
	o.OrderNumber = strings.TrimSpace(o.OrderNumber)
	if o.OrderNumber == "" {
		o.OrderNumber = s.newOrderNumber()
	}
	if err := s.ensureOrderNumberFree(ctx, o.OrderNumber, 0); err != nil {
		return nil, err
	}
	if o.Status == "" {
		o.Status = domain.OrderPending
	}
	o.TotalAmount = nil
	o.ComputeTotal()
	o.CreatedAt = s.now()
	o.UpdatedAt = nil
	if err := s.orders.Save(ctx, &o); err != nil {
		return nil, err
	}
	s.logger.Info("purchase order created", zap.Int64("order_id", o.ID), zap.String("order_number", o.OrderNumber))
	return &o, nil
}

// UpdateOrder replaces order id with in. A blank order number or status
// keeps the stored value. The total is always derived from quantity and
// unit price, never taken from the payload.
func (s *Service) UpdateOrder(ctx context.Context, id int64, in domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	existing, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkOrderRefs(ctx, &in); err != nil {
		return nil, err
	}

	o := in
	o.ID = id
	o.OrderNumber = strings.TrimSpace(o.OrderNumber)
	if o.OrderNumber == "" {
		o.OrderNumber = existing.OrderNumber
	}
	if o.OrderNumber != existing.OrderNumber {
		if err := s.ensureOrderNumberFree(ctx, o.OrderNumber, id); err != nil {
			return nil, err
		}
	}
	if o.Status == "" {
		o.Status = existing.Status
	}
	o.TotalAmount = nil
	o.ComputeTotal()
	o.CreatedAt = existing.CreatedAt
	now := s.now()
	o.UpdatedAt = &now
	if err := s.orders.Save(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// DeleteOrder removes the order permanently.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	ok, err := s.orders.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	if err := s.orders.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("purchase order deleted", zap.Int64("order_id", id))
	return nil
}

func (s *Service) checkOrderRefs(ctx context.Context, o *domain.PurchaseOrder) error {
	if err := s.requireSupplier(ctx, o.SupplierID); err != nil {
		return err
	}
	return s.optionalAccount(ctx, o.OrderedByID, "ordered_by_id")
}

func (s *Service) ensureOrderNumberFree(ctx context.Context, number string, selfID int64) error {
	other, err := s.orders.FindByOrderNumber(ctx, number)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check order number: %w", err)
	}
	if other.ID != selfID {
		return fmt.Errorf("%w: order number %s already exists", domain.ErrDuplicateKey, number)
	}
	return nil
}
