package auth

import (
	"fmt"
	"slices"

	"hemis/m/domain"
)

type Operation string

const (
	OpMedicineRead      Operation = "medicine.read"
	OpMedicineWrite     Operation = "medicine.write"
	OpMedicineDelete    Operation = "medicine.delete"
	OpEquipmentRead     Operation = "equipment.read"
	OpEquipmentWrite    Operation = "equipment.write"
	OpEquipmentDelete   Operation = "equipment.delete"
	OpMaintenanceRead   Operation = "maintenance.read"
	OpMaintenanceWrite  Operation = "maintenance.write"
	OpMaintenanceDelete Operation = "maintenance.delete"
	OpSupplierRead      Operation = "supplier.read"
	OpSupplierWrite     Operation = "supplier.write"
	OpSupplierDelete    Operation = "supplier.delete"
	OpOrderRead         Operation = "order.read"
	OpOrderWrite        Operation = "order.write"
	OpOrderDelete       Operation = "order.delete"
	OpUserRead          Operation = "user.read"
	OpUserWrite         Operation = "user.write"
	OpUserDelete        Operation = "user.delete"
	OpUserToggle        Operation = "user.toggle"
	OpDashboardRead     Operation = "dashboard.read"
)

var (
	anyStaff      = []domain.Role{domain.RoleAdmin, domain.RolePharmacist, domain.RoleTechnician}
	pharmacy      = []domain.Role{domain.RoleAdmin, domain.RolePharmacist}
	engineering   = []domain.Role{domain.RoleAdmin, domain.RoleTechnician}
	administrator = []domain.Role{domain.RoleAdmin}
)

// Policy maps each operation to the roles allowed to invoke it.
type Policy map[Operation][]domain.Role

// DefaultPolicy lists every role explicitly; ADMIN has no implicit rights.
func DefaultPolicy() Policy {
	return Policy{
		OpMedicineRead:      pharmacy,
		OpMedicineWrite:     pharmacy,
		OpMedicineDelete:    administrator,
		OpEquipmentRead:     anyStaff,
		OpEquipmentWrite:    anyStaff,
		OpEquipmentDelete:   administrator,
		OpMaintenanceRead:   engineering,
		OpMaintenanceWrite:  engineering,
		OpMaintenanceDelete: administrator,
		OpSupplierRead:      anyStaff,
		OpSupplierWrite:     anyStaff,
		OpSupplierDelete:    anyStaff,
		OpOrderRead:         pharmacy,
		OpOrderWrite:        pharmacy,
		OpOrderDelete:       administrator,
		OpUserRead:          administrator,
		OpUserWrite:         administrator,
		OpUserDelete:        administrator,
		OpUserToggle:        administrator,
		OpDashboardRead:     anyStaff,
	}
}

// Authorize grants access only when actor is listed in required.
func Authorize(required []domain.Role, actor domain.Role) bool {
	return slices.Contains(required, actor)
}

// Check returns domain.ErrForbidden unless actor may perform op.
// Operations missing from the policy are denied.
func (p Policy) Check(op Operation, actor domain.Role) error {
	required, ok := p[op]
	if !ok || !Authorize(required, actor) {
		return fmt.Errorf("%w: %s requires one of %v", domain.ErrForbidden, op, required)
	}
	return nil
}
