package migrations

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Run creates the inventory schema. Statements are idempotent, so Run is
// safe on every start.
func Run(db *sqlx.DB) error {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if db.DriverName() == "postgres" {
		pk = "BIGSERIAL PRIMARY KEY"
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
            id {{pk}},
            username TEXT NOT NULL UNIQUE,
            password_hash TEXT NOT NULL,
            full_name TEXT NOT NULL DEFAULT '',
            email TEXT UNIQUE,
            role TEXT NOT NULL,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMP NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS suppliers (
            id {{pk}},
            name TEXT NOT NULL,
            contact_person TEXT NOT NULL DEFAULT '',
            email TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMP NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS medicines (
            id {{pk}},
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL,
            quantity BIGINT NOT NULL CHECK (quantity >= 0),
            unit_price DOUBLE PRECISION NOT NULL CHECK (unit_price >= 0),
            expiry_date DATE NOT NULL,
            batch_number TEXT NOT NULL DEFAULT '',
            supplier_id BIGINT REFERENCES suppliers(id),
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMP NOT NULL,
            updated_at TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS equipment (
            id {{pk}},
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL,
            serial_number TEXT NOT NULL DEFAULT '',
            model TEXT NOT NULL DEFAULT '',
            supplier_id BIGINT REFERENCES suppliers(id),
            purchase_date DATE,
            purchase_price DOUBLE PRECISION,
            status TEXT NOT NULL,
            next_maintenance_date DATE,
            location TEXT NOT NULL DEFAULT '',
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMP NOT NULL,
            updated_at TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS maintenance_records (
            id {{pk}},
            equipment_id BIGINT NOT NULL REFERENCES equipment(id),
            technician_id BIGINT REFERENCES accounts(id),
            maintenance_date DATE NOT NULL,
            type TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            cost DOUBLE PRECISION,
            performed_by TEXT NOT NULL DEFAULT '',
            next_scheduled_date DATE,
            status TEXT NOT NULL,
            created_at TIMESTAMP NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS purchase_orders (
            id {{pk}},
            order_number TEXT NOT NULL UNIQUE,
            supplier_id BIGINT NOT NULL REFERENCES suppliers(id),
            ordered_by_id BIGINT REFERENCES accounts(id),
            item_type TEXT NOT NULL,
            item_name TEXT NOT NULL DEFAULT '',
            quantity BIGINT,
            unit_price DOUBLE PRECISION,
            total_amount DOUBLE PRECISION,
            order_date DATE NOT NULL,
            delivery_date DATE,
            status TEXT NOT NULL,
            notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMP NOT NULL,
            updated_at TIMESTAMP
        );`,
		`CREATE INDEX IF NOT EXISTS idx_medicines_expiry ON medicines (expiry_date);`,
		`CREATE INDEX IF NOT EXISTS idx_equipment_next_maintenance ON equipment (next_maintenance_date);`,
		`CREATE INDEX IF NOT EXISTS idx_maintenance_equipment ON maintenance_records (equipment_id);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON purchase_orders (status);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(strings.ReplaceAll(stmt, "{{pk}}", pk)); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
