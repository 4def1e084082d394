package domain

import "time"

type Medicine struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	Category    string     `db:"category" json:"category"`
	Quantity    int64      `db:"quantity" json:"quantity"`
	UnitPrice   float64    `db:"unit_price" json:"unit_price"`
	ExpiryDate  Date       `db:"expiry_date" json:"expiry_date"`
	BatchNumber string     `db:"batch_number" json:"batch_number"`
	SupplierID  *int64     `db:"supplier_id" json:"supplier_id,omitempty"`
	Active      bool       `db:"active" json:"active"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
