package inventory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"hemis/m/domain"
)

type table[T any] struct {
	mu   sync.Mutex
	rows map[int64]T
	next int64
	err  error
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[int64]T{}}
}

func (t *table[T]) find(id int64) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return nil, t.err
	}
	v, ok := t.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

// put stores v under id, allocating an id when it is zero.
func (t *table[T]) put(id int64, v T) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return 0, t.err
	}
	if id == 0 {
		t.next++
		id = t.next
	} else if _, ok := t.rows[id]; !ok {
		return 0, domain.ErrNotFound
	}
	t.rows[id] = v
	return id, nil
}

func (t *table[T]) filter(keep func(T) bool) ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return nil, t.err
	}
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := []T{}
	for _, id := range ids {
		if keep == nil || keep(t.rows[id]) {
			out = append(out, t.rows[id])
		}
	}
	return out, nil
}

func (t *table[T]) exists(id int64) (bool, error) {
	_, err := t.find(id)
	if err == domain.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (t *table[T]) remove(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

type memAccounts struct{ *table[domain.Account] }

func (m memAccounts) FindByID(_ context.Context, id int64) (*domain.Account, error) { return m.find(id) }
func (m memAccounts) ExistsByID(_ context.Context, id int64) (bool, error)         { return m.exists(id) }
func (m memAccounts) FindAll(context.Context) ([]domain.Account, error)            { return m.filter(nil) }

func (m memAccounts) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	return m.first(func(a domain.Account) bool { return a.Username == username })
}

func (m memAccounts) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	return m.first(func(a domain.Account) bool { return a.Email != nil && strings.EqualFold(*a.Email, email) })
}

func (m memAccounts) first(keep func(domain.Account) bool) (*domain.Account, error) {
	found, err := m.filter(keep)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.ErrNotFound
	}
	return &found[0], nil
}

func (m memAccounts) Save(_ context.Context, a *domain.Account) error {
	id, err := m.put(a.ID, *a)
	if err != nil {
		return err
	}
	a.ID = id
	m.rows[id] = *a
	return nil
}

type memMedicines struct{ *table[domain.Medicine] }

func (m memMedicines) FindByID(_ context.Context, id int64) (*domain.Medicine, error) { return m.find(id) }

func (m memMedicines) FindActive(context.Context) ([]domain.Medicine, error) {
	return m.filter(func(x domain.Medicine) bool { return x.Active })
}

func (m memMedicines) FindByQuantityLessThan(_ context.Context, threshold int64) ([]domain.Medicine, error) {
	return m.filter(func(x domain.Medicine) bool { return x.Active && x.Quantity < threshold })
}

func (m memMedicines) FindExpiringBetween(_ context.Context, from, to domain.Date) ([]domain.Medicine, error) {
	return m.filter(func(x domain.Medicine) bool {
		return x.Active && !x.ExpiryDate.Before(from) && !x.ExpiryDate.After(to)
	})
}

func (m memMedicines) FindExpiredBefore(_ context.Context, asOf domain.Date) ([]domain.Medicine, error) {
	return m.filter(func(x domain.Medicine) bool { return x.Active && x.ExpiryDate.Before(asOf) })
}

func (m memMedicines) CountActive(ctx context.Context) (int64, error) {
	active, err := m.FindActive(ctx)
	return int64(len(active)), err
}

func (m memMedicines) Save(_ context.Context, x *domain.Medicine) error {
	id, err := m.put(x.ID, *x)
	if err != nil {
		return err
	}
	x.ID = id
	m.rows[id] = *x
	return nil
}

type memEquipment struct{ *table[domain.Equipment] }

func (m memEquipment) FindByID(_ context.Context, id int64) (*domain.Equipment, error) { return m.find(id) }
func (m memEquipment) ExistsByID(_ context.Context, id int64) (bool, error)           { return m.exists(id) }

func (m memEquipment) FindActive(context.Context) ([]domain.Equipment, error) {
	return m.filter(func(x domain.Equipment) bool { return x.Active })
}

func (m memEquipment) FindMaintenanceDue(_ context.Context, due domain.Date) ([]domain.Equipment, error) {
	return m.filter(func(x domain.Equipment) bool {
		return x.Active && x.NextMaintenanceDate != nil && x.NextMaintenanceDate.Before(due)
	})
}

func (m memEquipment) CountActive(ctx context.Context) (int64, error) {
	active, err := m.FindActive(ctx)
	return int64(len(active)), err
}

func (m memEquipment) Save(_ context.Context, x *domain.Equipment) error {
	id, err := m.put(x.ID, *x)
	if err != nil {
		return err
	}
	x.ID = id
	m.rows[id] = *x
	return nil
}

type memMaintenance struct{ *table[domain.MaintenanceRecord] }

func (m memMaintenance) FindByID(_ context.Context, id int64) (*domain.MaintenanceRecord, error) {
	return m.find(id)
}
func (m memMaintenance) ExistsByID(_ context.Context, id int64) (bool, error) { return m.exists(id) }
func (m memMaintenance) DeleteByID(_ context.Context, id int64) error         { return m.remove(id) }
func (m memMaintenance) FindAll(context.Context) ([]domain.MaintenanceRecord, error) {
	return m.filter(nil)
}

func (m memMaintenance) FindByEquipment(_ context.Context, equipmentID int64) ([]domain.MaintenanceRecord, error) {
	return m.filter(func(x domain.MaintenanceRecord) bool { return x.EquipmentID == equipmentID })
}

func (m memMaintenance) Save(_ context.Context, x *domain.MaintenanceRecord) error {
	id, err := m.put(x.ID, *x)
	if err != nil {
		return err
	}
	x.ID = id
	m.rows[id] = *x
	return nil
}

type memSuppliers struct{ *table[domain.Supplier] }

func (m memSuppliers) FindByID(_ context.Context, id int64) (*domain.Supplier, error) { return m.find(id) }
func (m memSuppliers) ExistsByID(_ context.Context, id int64) (bool, error)          { return m.exists(id) }

func (m memSuppliers) FindActive(context.Context) ([]domain.Supplier, error) {
	return m.filter(func(x domain.Supplier) bool { return x.Active })
}

func (m memSuppliers) CountActive(ctx context.Context) (int64, error) {
	active, err := m.FindActive(ctx)
	return int64(len(active)), err
}

func (m memSuppliers) Save(_ context.Context, x *domain.Supplier) error {
	id, err := m.put(x.ID, *x)
	if err != nil {
		return err
	}
	x.ID = id
	m.rows[id] = *x
	return nil
}

type memOrders struct{ *table[domain.PurchaseOrder] }

func (m memOrders) FindByID(_ context.Context, id int64) (*domain.PurchaseOrder, error) {
	return m.find(id)
}
func (m memOrders) ExistsByID(_ context.Context, id int64) (bool, error)      { return m.exists(id) }
func (m memOrders) DeleteByID(_ context.Context, id int64) error              { return m.remove(id) }
func (m memOrders) FindAll(context.Context) ([]domain.PurchaseOrder, error) { return m.filter(nil) }

func (m memOrders) FindByStatus(_ context.Context, status domain.OrderStatus) ([]domain.PurchaseOrder, error) {
	return m.filter(func(x domain.PurchaseOrder) bool { return x.Status == status })
}

func (m memOrders) FindByOrderNumber(_ context.Context, number string) (*domain.PurchaseOrder, error) {
	found, err := m.filter(func(x domain.PurchaseOrder) bool { return x.OrderNumber == number })
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.ErrNotFound
	}
	return &found[0], nil
}

func (m memOrders) Save(_ context.Context, x *domain.PurchaseOrder) error {
	id, err := m.put(x.ID, *x)
	if err != nil {
		return err
	}
	x.ID = id
	m.rows[id] = *x
	return nil
}

type plainHasher struct{}

func (plainHasher) Hash(secret string) (string, error) { return "hashed:" + secret, nil }

type fixture struct {
	accounts    memAccounts
	medicines   memMedicines
	equipment   memEquipment
	maintenance memMaintenance
	suppliers   memSuppliers
	orders      memOrders

	service *Service
	reports *Reports
	clock   time.Time
}

var testNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

func newFixture() *fixture {
	f := &fixture{
		accounts:    memAccounts{newTable[domain.Account]()},
		medicines:   memMedicines{newTable[domain.Medicine]()},
		equipment:   memEquipment{newTable[domain.Equipment]()},
		maintenance: memMaintenance{newTable[domain.MaintenanceRecord]()},
		suppliers:   memSuppliers{newTable[domain.Supplier]()},
		orders:      memOrders{newTable[domain.PurchaseOrder]()},
		clock:       testNow,
	}
	repos := Repositories{
		Accounts:    f.accounts,
		Medicines:   f.medicines,
		Equipment:   f.equipment,
		Maintenance: f.maintenance,
		Suppliers:   f.suppliers,
		Orders:      f.orders,
	}
	f.service = NewService(repos, plainHasher{}, zap.NewNop())
	f.service.now = func() time.Time { return f.clock }
	f.reports = NewReports(repos)
	f.reports.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) today() domain.Date { return domain.DateOf(f.clock) }

func ptr[T any](v T) *T { return &v }
