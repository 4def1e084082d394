package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hemis/m/domain"
)

func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(sqlx.NewDb(db, "sqlmock")), mock
}

var medicineCols = []string{"id", "name", "description", "category", "quantity", "unit_price", "expiry_date", "batch_number", "supplier_id", "active", "created_at", "updated_at"}

func TestMedicineFindByID(t *testing.T) {
	s, mock := setupMockStore(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows(medicineCols).
		AddRow(1, "Insulin 100IU/ml", "Diabetes management", "Diabetes", 45, 15.0, "2026-11-03", "INS-2024-003", 1, true, created, nil)
	mock.ExpectQuery(`SELECT id, name, .* FROM medicines WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	m, err := s.Medicines.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Insulin 100IU/ml", m.Name)
	assert.Equal(t, int64(45), m.Quantity)
	assert.Equal(t, "2026-11-03", m.ExpiryDate.String())
	require.NotNil(t, m.SupplierID)
	assert.Equal(t, int64(1), *m.SupplierID)
	assert.True(t, m.Active)
	assert.Equal(t, created, m.CreatedAt)
	assert.Nil(t, m.UpdatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicineFindByIDNotFound(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectQuery(`FROM medicines WHERE id = \?`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(medicineCols))

	_, err := s.Medicines.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicineFindExpiringBetweenArgs(t *testing.T) {
	s, mock := setupMockStore(t)
	from := domain.NewDate(2026, time.October, 14)

	mock.ExpectQuery(`WHERE expiry_date BETWEEN \? AND \? AND active = \?`).
		WithArgs("2026-10-14", "2026-11-13", true).
		WillReturnRows(sqlmock.NewRows(medicineCols))

	medicines, err := s.Medicines.FindExpiringBetween(context.Background(), from, from.AddDays(30))
	require.NoError(t, err)
	assert.NotNil(t, medicines)
	assert.Len(t, medicines, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicineLowStockFiltersActive(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectQuery(`WHERE quantity < \? AND active = \?`).
		WithArgs(int64(50), true).
		WillReturnRows(sqlmock.NewRows(medicineCols).
			AddRow(3, "Insulin", "", "Diabetes", 45, 15.0, "2026-11-03", "", nil, true, time.Now(), nil))

	medicines, err := s.Medicines.FindByQuantityLessThan(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, medicines, 1)
	assert.Nil(t, medicines[0].SupplierID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicineSaveInsert(t *testing.T) {
	s, mock := setupMockStore(t)
	m := &domain.Medicine{Name: "Paracetamol 500mg", Category: "Analgesics", Quantity: 500, UnitPrice: 0.5,
		ExpiryDate: domain.NewDate(2028, time.April, 1), Active: true, CreatedAt: time.Now()}

	mock.ExpectQuery(`INSERT INTO medicines .* RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	require.NoError(t, s.Medicines.Save(context.Background(), m))
	assert.Equal(t, int64(12), m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicineSaveUpdateMissingRow(t *testing.T) {
	s, mock := setupMockStore(t)
	m := &domain.Medicine{ID: 4, Name: "Gone", Category: "x", ExpiryDate: domain.NewDate(2028, 1, 1)}

	mock.ExpectExec(`UPDATE medicines SET .* WHERE id = \?`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.Medicines.Save(context.Background(), m), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentFindMaintenanceDue(t *testing.T) {
	s, mock := setupMockStore(t)
	cols := []string{"id", "name", "description", "category", "serial_number", "model", "supplier_id", "purchase_date", "purchase_price",
		"status", "next_maintenance_date", "location", "active", "created_at", "updated_at"}

	mock.ExpectQuery(`WHERE next_maintenance_date < \? AND active = \?`).
		WithArgs("2026-11-13", true).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(3, "Patient Monitor", "", "Monitoring", "PM-2024-0128", "MX40", 2, "2026-07-14", 8500.0,
				"MAINTENANCE", "2026-10-19", "ICU", true, time.Now(), nil))

	due, err := s.Equipment.FindMaintenanceDue(context.Background(), domain.NewDate(2026, time.November, 13))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, domain.EquipmentMaintenance, due[0].Status)
	require.NotNil(t, due[0].NextMaintenanceDate)
	assert.Equal(t, "2026-10-19", due[0].NextMaintenanceDate.String())
	require.NotNil(t, due[0].PurchasePrice)
	assert.Equal(t, 8500.0, *due[0].PurchasePrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderDeleteByID(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectExec(`DELETE FROM purchase_orders WHERE id = \?`).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM purchase_orders WHERE id = \?`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, s.Orders.DeleteByID(context.Background(), 8))
	assert.ErrorIs(t, s.Orders.DeleteByID(context.Background(), 9), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderSaveDuplicateNumber(t *testing.T) {
	s, mock := setupMockStore(t)
	qty := int64(3)
	o := &domain.PurchaseOrder{OrderNumber: "PO-1A2B3C4D", SupplierID: 1, ItemType: domain.ItemSupplies, Quantity: &qty,
		OrderDate: domain.NewDate(2026, 10, 1), Status: domain.OrderPending, CreatedAt: time.Now()}

	mock.ExpectQuery(`INSERT INTO purchase_orders`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := s.Orders.Save(context.Background(), o)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.Equal(t, int64(0), o.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderFindByStatus(t *testing.T) {
	s, mock := setupMockStore(t)
	cols := []string{"id", "order_number", "supplier_id", "ordered_by_id", "item_type", "item_name", "quantity", "unit_price", "total_amount",
		"order_date", "delivery_date", "status", "notes", "created_at", "updated_at"}

	mock.ExpectQuery(`FROM purchase_orders WHERE status = \?`).
		WithArgs("PENDING").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "PO-00000001", 1, nil, "MEDICINE", "Insulin", 3, 10.0, 30.0, "2026-10-01", nil, "PENDING", "", time.Now(), nil))

	orders, err := s.Orders.FindByStatus(context.Background(), domain.OrderPending)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].TotalAmount)
	assert.Equal(t, 30.0, *orders[0].TotalAmount)
	assert.Nil(t, orders[0].DeliveryDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountFindByUsername(t *testing.T) {
	s, mock := setupMockStore(t)
	cols := []string{"id", "username", "password_hash", "full_name", "email", "role", "active", "created_at"}

	mock.ExpectQuery(`FROM accounts WHERE username = \?`).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "admin", "$2a$10$hash", "System Administrator", "admin@hemis.com", "ADMIN", true, time.Now()))

	a, err := s.Accounts.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, a.Role)
	require.NotNil(t, a.Email)
	assert.Equal(t, "admin@hemis.com", *a.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByID(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM suppliers WHERE id = \?`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := s.Suppliers.ExistsByID(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(errors.New("UNIQUE constraint failed: accounts.username")), domain.ErrDuplicateKey)
	plain := errors.New("disk I/O error")
	assert.Equal(t, plain, translate(plain))
}
