package domain

type DashboardStats struct {
	TotalMedicines              int64 `json:"total_medicines"`
	TotalEquipment              int64 `json:"total_equipment"`
	TotalSuppliers              int64 `json:"total_suppliers"`
	LowStockMedicines           int64 `json:"low_stock_medicines"`
	ExpiringMedicines           int64 `json:"expiring_medicines"`
	EquipmentNeedingMaintenance int64 `json:"equipment_needing_maintenance"`
	PendingOrders               int64 `json:"pending_orders"`
}
