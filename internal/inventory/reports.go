package inventory

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"hemis/m/domain"
)

// The dashboard always uses these fixed windows, whatever the ad hoc
// queries are asked for.
const (
	DashboardLowStockThreshold = 50
	DashboardWindowDays        = 30
)

// Reports computes derived views fresh on every call.
type Reports struct {
	medicines MedicineStore
	equipment EquipmentStore
	suppliers SupplierStore
	orders    OrderStore
	now       func() time.Time
}

func NewReports(repos Repositories) *Reports {
	return &Reports{
		medicines: repos.Medicines,
		equipment: repos.Equipment,
		suppliers: repos.Suppliers,
		orders:    repos.Orders,
		now:       time.Now,
	}
}

func (r *Reports) Today() domain.Date {
	return domain.DateOf(r.now())
}

// LowStock lists active medicines with quantity below threshold.
func (r *Reports) LowStock(ctx context.Context, threshold int64) ([]domain.Medicine, error) {
	return r.medicines.FindByQuantityLessThan(ctx, threshold)
}

// ExpiringSoon lists active medicines expiring between today and today+days, inclusive.
func (r *Reports) ExpiringSoon(ctx context.Context, days int) ([]domain.Medicine, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days must be non-negative", domain.ErrValidation)
	}
	today := r.Today()
	return r.medicines.FindExpiringBetween(ctx, today, today.AddDays(days))
}

// Expired lists active medicines whose expiry date is before asOf; a zero
// asOf means today.
func (r *Reports) Expired(ctx context.Context, asOf domain.Date) ([]domain.Medicine, error) {
	if asOf.IsZero() {
		asOf = r.Today()
	}
	return r.medicines.FindExpiredBefore(ctx, asOf)
}

// MaintenanceDue lists active equipment with next maintenance before today+days.
func (r *Reports) MaintenanceDue(ctx context.Context, days int) ([]domain.Equipment, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days must be non-negative", domain.ErrValidation)
	}
	return r.equipment.FindMaintenanceDue(ctx, r.Today().AddDays(days))
}

func (r *Reports) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalMedicines, err = r.medicines.CountActive(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalEquipment, err = r.equipment.CountActive(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalSuppliers, err = r.suppliers.CountActive(ctx)
		return err
	})
	g.Go(func() error {
		low, err := r.LowStock(ctx, DashboardLowStockThreshold)
		stats.LowStockMedicines = int64(len(low))
		return err
	})
	g.Go(func() error {
		expiring, err := r.ExpiringSoon(ctx, DashboardWindowDays)
		stats.ExpiringMedicines = int64(len(expiring))
		return err
	})
	g.Go(func() error {
		due, err := r.MaintenanceDue(ctx, DashboardWindowDays)
		stats.EquipmentNeedingMaintenance = int64(len(due))
		return err
	})
	g.Go(func() error {
		pending, err := r.orders.FindByStatus(ctx, domain.OrderPending)
		stats.PendingOrders = int64(len(pending))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}
