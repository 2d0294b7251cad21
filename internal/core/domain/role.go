package domain

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleFulfillment Role = "fulfillment"
	RoleVendor      Role = "vendor"
	RoleBuyer       Role = "buyer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFulfillment, RoleVendor, RoleBuyer:
		return true
	}
	return false
}
