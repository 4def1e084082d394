// Package seed populates an empty database with starter records.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hemis/m/domain"
)

// Writer is the part of the inventory service the seeder drives. Records go
// through the normal create path so defaults and validation apply.
type Writer interface {
	CreateAccount(ctx context.Context, in domain.Account, password string) (*domain.Account, error)
	CreateSupplier(ctx context.Context, in domain.Supplier) (*domain.Supplier, error)
	CreateMedicine(ctx context.Context, in domain.Medicine) (*domain.Medicine, error)
	CreateEquipment(ctx context.Context, in domain.Equipment) (*domain.Equipment, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Tables reports row counts, inactive rows included.
type Tables struct {
	Accounts  Counter
	Suppliers Counter
	Medicines Counter
	Equipment Counter
}

type Seeder struct {
	writer Writer
	tables Tables
	logger *zap.Logger
	now    func() time.Time
}

func New(writer Writer, tables Tables, logger *zap.Logger) *Seeder {
	return &Seeder{writer: writer, tables: tables, logger: logger, now: time.Now}
}

// Defaults seeds each table that is still empty.
func (s *Seeder) Defaults(ctx context.Context) error {
	steps := []struct {
		name  string
		table Counter
		run   func(context.Context) error
	}{
		{"accounts", s.tables.Accounts, s.accounts},
		{"suppliers", s.tables.Suppliers, s.suppliers},
		{"medicines", s.tables.Medicines, s.medicines},
		{"equipment", s.tables.Equipment, s.equipment},
	}
	for _, step := range steps {
		n, err := step.table.Count(ctx)
		if err != nil {
			return fmt.Errorf("count %s: %w", step.name, err)
		}
		if n > 0 {
			continue
		}
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		s.logger.Info("initialized default records", zap.String("table", step.name))
	}
	return nil
}

func email(s string) *string { return &s }

func (s *Seeder) accounts(ctx context.Context) error {
	defaults := []struct {
		account  domain.Account
		password string
	}{
		{domain.Account{Username: "admin", FullName: "System Administrator", Email: email("admin@hemis.com"), Role: domain.RoleAdmin}, "admin123"},
		{domain.Account{Username: "pharmacist", FullName: "John Pharmacist", Email: email("pharmacist@hemis.com"), Role: domain.RolePharmacist}, "pharm123"},
		{domain.Account{Username: "technician", FullName: "Jane Technician", Email: email("technician@hemis.com"), Role: domain.RoleTechnician}, "tech123"},
	}
	for _, d := range defaults {
		if _, err := s.writer.CreateAccount(ctx, d.account, d.password); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) suppliers(ctx context.Context) error {
	defaults := []domain.Supplier{
		{Name: "MediPharma Ltd", ContactPerson: "Robert Smith", Email: "contact@medipharma.com", Phone: "+250788123456", Address: "KG 11 Ave, Kigali"},
		{Name: "HealthEquip Solutions", ContactPerson: "Sarah Johnson", Email: "info@healthequip.com", Phone: "+250788234567", Address: "KN 5 Rd, Kigali"},
	}
	for _, sup := range defaults {
		if _, err := s.writer.CreateSupplier(ctx, sup); err != nil {
			return err
		}
	}
	return nil
}

// supplierAt returns the id of the idx-th active supplier, or nil.
func (s *Seeder) supplierAt(ctx context.Context, idx int) (*int64, error) {
	all, err := s.writer.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	if idx >= len(all) {
		return nil, nil
	}
	id := all[idx].ID
	return &id, nil
}

func (s *Seeder) medicines(ctx context.Context) error {
	supplierID, err := s.supplierAt(ctx, 0)
	if err != nil {
		return err
	}
	today := domain.DateOf(s.now())
	defaults := []domain.Medicine{
		{Name: "Paracetamol 500mg", Description: "Pain relief and fever reducer", Category: "Analgesics",
			Quantity: 500, UnitPrice: 0.50, ExpiryDate: today.AddMonths(18), BatchNumber: "PAR-2024-001"},
		{Name: "Amoxicillin 250mg", Description: "Antibiotic", Category: "Antibiotics",
			Quantity: 300, UnitPrice: 1.20, ExpiryDate: today.AddMonths(12), BatchNumber: "AMX-2024-002"},
		{Name: "Insulin 100IU/ml", Description: "Diabetes management", Category: "Diabetes",
			Quantity: 45, UnitPrice: 15.00, ExpiryDate: today.AddDays(20), BatchNumber: "INS-2024-003"},
	}
	for _, m := range defaults {
		m.SupplierID = supplierID
		if _, err := s.writer.CreateMedicine(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) equipment(ctx context.Context) error {
	supplierID, err := s.supplierAt(ctx, 1)
	if err != nil {
		return err
	}
	today := domain.DateOf(s.now())
	date := func(d domain.Date) *domain.Date { return &d }
	price := func(p float64) *float64 { return &p }

	defaults := []domain.Equipment{
		{Name: "X-Ray Machine", Description: "Digital X-Ray imaging system", Category: "Imaging",
			SerialNumber: "XR-2023-0015", Model: "Siemens Luminos dRF",
			PurchaseDate: date(today.AddMonths(-24)), PurchasePrice: price(85000),
			Status: domain.EquipmentOperational, NextMaintenanceDate: date(today.AddMonths(2)), Location: "Radiology Department"},
		{Name: "Ultrasound Scanner", Description: "Portable ultrasound device", Category: "Imaging",
			SerialNumber: "US-2024-0032", Model: "GE LOGIQ P9",
			PurchaseDate: date(today.AddMonths(-6)), PurchasePrice: price(45000),
			Status: domain.EquipmentOperational, NextMaintenanceDate: date(today.AddMonths(4)), Location: "OB/GYN Department"},
		{Name: "Patient Monitor", Description: "Vital signs monitoring", Category: "Monitoring",
			SerialNumber: "PM-2024-0128", Model: "Philips IntelliVue MX40",
			PurchaseDate: date(today.AddMonths(-3)), PurchasePrice: price(8500),
			Status: domain.EquipmentMaintenance, NextMaintenanceDate: date(today.AddDays(5)), Location: "ICU"},
	}
	for _, e := range defaults {
		e.SupplierID = supplierID
		if _, err := s.writer.CreateEquipment(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
