package rbac

import (
	"errors"
	"testing"
)

func TestHasPermission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		role       string
		permission string
		want       bool
	}{
		{name: "administrator manages orders", role: RoleAdministrator, permission: PermissionManageOrders, want: true},
		{name: "administrator manages site", role: RoleAdministrator, permission: PermissionManageSite, want: true},
		{name: "shop manager manages orders", role: RoleShopManager, permission: PermissionManageOrders, want: true},
		{name: "shop manager cannot manage site", role: RoleShopManager, permission: PermissionManageSite, want: false},
		{name: "customer has nothing", role: RoleCustomer, permission: PermissionManageOrders, want: false},
		{name: "unknown role", role: "subscriber", permission: PermissionManageOrders, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HasPermission(tt.role, tt.permission); got != tt.want {
				t.Fatalf("HasPermission(%q, %q) = %v, want %v", tt.role, tt.permission, got, tt.want)
			}
		})
	}
}

func TestHasAnyPermission(t *testing.T) {
	t.Parallel()

	if !HasAnyPermission(RoleShopManager, PermissionManageOrders, PermissionManageSite) {
		t.Fatal("shop manager should pass when one permission matches")
	}
	if HasAnyPermission(RoleCustomer, PermissionManageOrders, PermissionManageSite) {
		t.Fatal("customer should fail every permission")
	}
	if HasAnyPermission(RoleAdministrator) {
		t.Fatal("empty permission list grants nothing")
	}
}

func TestCheckPermission(t *testing.T) {
	t.Parallel()

	if err := CheckPermission(RoleAdministrator, PermissionManageSite); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := CheckPermission(RoleCustomer, PermissionManageSite)
	var denied *PermissionDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("expected PermissionDeniedError, got %v", err)
	}
	if denied.Role != RoleCustomer || denied.Permission != PermissionManageSite {
		t.Fatalf("unexpected error fields: %+v", denied)
	}
}
