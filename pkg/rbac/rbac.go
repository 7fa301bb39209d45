package rbac

// Capabilities guarding the notifier's admin surfaces.
const (
	PermissionManageOrders = "orders:manage"
	PermissionManageSite   = "site:manage"
)

// Platform roles the notifier recognises.
const (
	RoleAdministrator = "administrator"
	RoleShopManager   = "shop_manager"
	RoleCustomer      = "customer"
)

var rolePermissions = map[string][]string{
	RoleAdministrator: {
		PermissionManageOrders,
		PermissionManageSite,
	},
	RoleShopManager: {
		PermissionManageOrders,
	},
}

// HasPermission reports whether the role grants the permission.
func HasPermission(role string, permission string) bool {
	permissions, ok := rolePermissions[role]
	if !ok {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether the role grants at least one of the permissions.
func HasAnyPermission(role string, permissions ...string) bool {
	for _, p := range permissions {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// CheckPermission returns an error when the role lacks the permission.
func CheckPermission(role string, permission string) error {
	if !HasPermission(role, permission) {
		return &PermissionDeniedError{
			Role:       role,
			Permission: permission,
		}
	}
	return nil
}

// PermissionDeniedError reports a failed capability check.
type PermissionDeniedError struct {
	Role       string
	Permission string
}

func (e *PermissionDeniedError) Error() string {
	return "insufficient permissions"
}
