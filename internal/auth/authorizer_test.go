package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hemis/m/domain"
)

func TestAuthorize(t *testing.T) {
	assert.False(t, Authorize([]domain.Role{domain.RoleAdmin}, domain.RolePharmacist))
	assert.True(t, Authorize([]domain.Role{domain.RoleAdmin, domain.RolePharmacist}, domain.RolePharmacist))
	assert.False(t, Authorize([]domain.Role{domain.RolePharmacist}, domain.RoleAdmin), "admin has no implicit rights")
	assert.False(t, Authorize(nil, domain.RoleAdmin))
}

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		op      Operation
		allowed []domain.Role
	}{
		{OpMedicineRead, []domain.Role{domain.RoleAdmin, domain.RolePharmacist}},
		{OpMedicineWrite, []domain.Role{domain.RoleAdmin, domain.RolePharmacist}},
		{OpMedicineDelete, []domain.Role{domain.RoleAdmin}},
		{OpEquipmentRead, []domain.Role{domain.RoleAdmin, domain.RolePharmacist, domain.RoleTechnician}},
		{OpEquipmentWrite, []domain.Role{domain.RoleAdmin, domain.RolePharmacist, domain.RoleTechnician}},
		{OpEquipmentDelete, []domain.Role{domain.RoleAdmin}},
		{OpMaintenanceRead, []domain.Role{domain.RoleAdmin, domain.RoleTechnician}},
		{OpMaintenanceWrite, []domain.Role{domain.RoleAdmin, domain.RoleTechnician}},
		{OpMaintenanceDelete, []domain.Role{domain.RoleAdmin}},
		{OpSupplierRead, []domain.Role{domain.RoleAdmin, domain.RolePharmacist, domain.RoleTechnician}},
		{OpSupplierDelete, []domain.Role{domain.RoleAdmin, domain.RolePharmacist, domain.RoleTechnician}},
		{OpOrderRead, []domain.Role{domain.RoleAdmin, domain.RolePharmacist}},
		{OpOrderDelete, []domain.Role{domain.RoleAdmin}},
		{OpUserRead, []domain.Role{domain.RoleAdmin}},
		{OpUserToggle, []domain.Role{domain.RoleAdmin}},
		{OpDashboardRead, []domain.Role{domain.RoleAdmin, domain.RolePharmacist, domain.RoleTechnician}},
	}

	roles := []domain.Role{domain.RoleAdmin, domain.RolePharmacist, domain.RoleTechnician}
	for _, tt := range tests {
		for _, role := range roles {
			t.Run(string(tt.op)+"/"+string(role), func(t *testing.T) {
				err := policy.Check(tt.op, role)
				if Authorize(tt.allowed, role) {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, domain.ErrForbidden)
				}
			})
		}
	}
}

func TestPolicyUnknownOperation(t *testing.T) {
	assert.ErrorIs(t, DefaultPolicy().Check("reactor.meltdown", domain.RoleAdmin), domain.ErrForbidden)
}
