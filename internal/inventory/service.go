// Package inventory holds the lifecycle rules for every inventory entity
// and the derived views computed over them.
package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hemis/m/domain"
)

type AccountStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindAll(ctx context.Context) ([]domain.Account, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, a *domain.Account) error
}

type MedicineStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Medicine, error)
	FindActive(ctx context.Context) ([]domain.Medicine, error)
	FindByQuantityLessThan(ctx context.Context, threshold int64) ([]domain.Medicine, error)
	FindExpiringBetween(ctx context.Context, from, to domain.Date) ([]domain.Medicine, error)
	FindExpiredBefore(ctx context.Context, asOf domain.Date) ([]domain.Medicine, error)
	CountActive(ctx context.Context) (int64, error)
	Save(ctx context.Context, m *domain.Medicine) error
}

type EquipmentStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Equipment, error)
	FindActive(ctx context.Context) ([]domain.Equipment, error)
	FindMaintenanceDue(ctx context.Context, due domain.Date) ([]domain.Equipment, error)
	CountActive(ctx context.Context) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, e *domain.Equipment) error
}

type MaintenanceStore interface {
	FindByID(ctx context.Context, id int64) (*domain.MaintenanceRecord, error)
	FindAll(ctx context.Context) ([]domain.MaintenanceRecord, error)
	FindByEquipment(ctx context.Context, equipmentID int64) ([]domain.MaintenanceRecord, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	Save(ctx context.Context, r *domain.MaintenanceRecord) error
}

type SupplierStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Supplier, error)
	FindActive(ctx context.Context) ([]domain.Supplier, error)
	CountActive(ctx context.Context) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, s *domain.Supplier) error
}

type OrderStore interface {
	FindByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error)
	FindByOrderNumber(ctx context.Context, number string) (*domain.PurchaseOrder, error)
	FindAll(ctx context.Context) ([]domain.PurchaseOrder, error)
	FindByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.PurchaseOrder, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	Save(ctx context.Context, o *domain.PurchaseOrder) error
}

type SecretHasher interface {
	Hash(secret string) (string, error)
}

type Repositories struct {
	Accounts    AccountStore
	Medicines   MedicineStore
	Equipment   EquipmentStore
	Maintenance MaintenanceStore
	Suppliers   SupplierStore
	Orders      OrderStore
}

// Service applies create/update/delete rules. It keeps no state between
// calls; every operation performs at most one write.
type Service struct {
	accounts    AccountStore
	medicines   MedicineStore
	equipment   EquipmentStore
	maintenance MaintenanceStore
	suppliers   SupplierStore
	orders      OrderStore
	hasher      SecretHasher
	logger      *zap.Logger

	now            func() time.Time
	newOrderNumber func() string
}

func NewService(repos Repositories, hasher SecretHasher, logger *zap.Logger) *Service {
	return &Service{
		accounts:       repos.Accounts,
		medicines:      repos.Medicines,
		equipment:      repos.Equipment,
		maintenance:    repos.Maintenance,
		suppliers:      repos.Suppliers,
		orders:         repos.Orders,
		hasher:         hasher,
		logger:         logger,
		now:            time.Now,
		newOrderNumber: NewOrderNumber,
	}
}

// NewOrderNumber returns PO- followed by 8 uppercase hex characters.
func NewOrderNumber() string {
	return "PO-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *Service) requireSupplier(ctx context.Context, id int64) error {
	ok, err := s.suppliers.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check supplier %d: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("%w: supplier %d does not exist", domain.ErrValidation, id)
	}
	return nil
}

func (s *Service) optionalSupplier(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	return s.requireSupplier(ctx, *id)
}

func (s *Service) optionalAccount(ctx context.Context, id *int64, field string) error {
	if id == nil {
		return nil
	}
	ok, err := s.accounts.ExistsByID(ctx, *id)
	if err != nil {
		return fmt.Errorf("check account %d: %w", *id, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s %d is not a known account", domain.ErrValidation, field, *id)
	}
	return nil
}
