package domain

import "time"

type EquipmentStatus string

const (
	EquipmentOperational EquipmentStatus = "OPERATIONAL"
	EquipmentMaintenance EquipmentStatus = "MAINTENANCE"
	EquipmentOutOfOrder  EquipmentStatus = "OUT_OF_ORDER"
	EquipmentRetired     EquipmentStatus = "RETIRED"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentOperational, EquipmentMaintenance, EquipmentOutOfOrder, EquipmentRetired:
		return true
	}
	return false
}

type Equipment struct {
	ID                  int64           `db:"id" json:"id"`
	Name                string          `db:"name" json:"name"`
	Description         string          `db:"description" json:"description"`
	Category            string          `db:"category" json:"category"`
	SerialNumber        string          `db:"serial_number" json:"serial_number"`
	Model               string          `db:"model" json:"model"`
	SupplierID          *int64          `db:"supplier_id" json:"supplier_id,omitempty"`
	PurchaseDate        *Date           `db:"purchase_date" json:"purchase_date,omitempty"`
	PurchasePrice       *float64        `db:"purchase_price" json:"purchase_price,omitempty"`
	Status              EquipmentStatus `db:"status" json:"status"`
	NextMaintenanceDate *Date           `db:"next_maintenance_date" json:"next_maintenance_date,omitempty"`
	Location            string          `db:"location" json:"location"`
	Active              bool            `db:"active" json:"active"`
	CreatedAt           time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt           *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
}
