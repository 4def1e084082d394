package domain

import "time"

type ItemType string

const (
	ItemMedicine  ItemType = "MEDICINE"
	ItemEquipment ItemType = "EQUIPMENT"
	ItemSupplies  ItemType = "SUPPLIES"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemMedicine, ItemEquipment, ItemSupplies:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderApproved  OrderStatus = "APPROVED"
	OrderOrdered   OrderStatus = "ORDERED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderOrdered, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type PurchaseOrder struct {
	ID           int64       `db:"id" json:"id"`
	OrderNumber  string      `db:"order_number" json:"order_number"`
	SupplierID   int64       `db:"supplier_id" json:"supplier_id"`
	OrderedByID  *int64      `db:"ordered_by_id" json:"ordered_by_id,omitempty"`
	ItemType     ItemType    `db:"item_type" json:"item_type"`
	ItemName     string      `db:"item_name" json:"item_name"`
	Quantity     *int64      `db:"quantity" json:"quantity,omitempty"`
	UnitPrice    *float64    `db:"unit_price" json:"unit_price,omitempty"`
	TotalAmount  *float64    `db:"total_amount" json:"total_amount,omitempty"`
	OrderDate    Date        `db:"order_date" json:"order_date"`
	DeliveryDate *Date       `db:"delivery_date" json:"delivery_date,omitempty"`
	Status       OrderStatus `db:"status" json:"status"`
	Notes        string      `db:"notes" json:"notes"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time  `db:"updated_at" json:"updated_at,omitempty"`
}

// ComputeTotal sets TotalAmount when both quantity and unit price are known.
func (o *PurchaseOrder) ComputeTotal() {
	if o.Quantity != nil && o.UnitPrice != nil {
		total := float64(*o.Quantity) * *o.UnitPrice
		o.TotalAmount = &total
	}
}
