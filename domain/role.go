package domain

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RolePharmacist Role = "PHARMACIST"
	RoleTechnician Role = "TECHNICIAN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePharmacist, RoleTechnician:
		return true
	}
	return false
}
