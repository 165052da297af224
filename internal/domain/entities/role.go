package entities

// Role names accepted at registration. Roles are created lazily on
// first reference, so these are the only names that ever reach the
// roles table through the public API.
const (
	RoleAdmin  = "Admin"
	RoleStaff  = "Staff"
	RoleTenant = "Tenant"
)

// DefaultRoleName is assigned when registration omits a role.
const DefaultRoleName = RoleTenant

type Role struct {
	Id   uint
	Name string
}

// IsAllowedRole reports whether name is one of the fixed role names.
func IsAllowedRole(name string) bool {
	switch name {
	case RoleAdmin, RoleStaff, RoleTenant:
		return true
	}
	return false
}
