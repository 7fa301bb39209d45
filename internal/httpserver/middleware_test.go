package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/model"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/util"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/rbac"
)

const testSecret = "test-secret"

type fakeUsers struct {
	users map[int64]*model.User
	err   error
}

func (f *fakeUsers) FindByID(_ context.Context, id int64) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func protectedRouter(users UserDirectory, permissions ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		AuthMiddleware(testSecret),
		RequireAnyPermission(users, permissions...),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt64("user_id")})
		})
	return r
}

func authedRequest(t *testing.T, userID int64) *http.Request {
	t.Helper()
	token, err := util.GenerateJWT(userID, testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{users: map[int64]*model.User{
		7: {ID: 7, Email: "admin@example.com", Role: rbac.RoleAdministrator},
	}}
	r := protectedRouter(users, rbac.PermissionManageSite)

	t.Run("valid token passes", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(t, 7))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("missing token rejected", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})
}

func TestRequireAnyPermission(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{users: map[int64]*model.User{
		1: {ID: 1, Role: rbac.RoleAdministrator},
		2: {ID: 2, Role: rbac.RoleShopManager},
		3: {ID: 3, Role: rbac.RoleCustomer},
	}}

	tests := []struct {
		name        string
		userID      int64
		permissions []string
		wantStatus  int
	}{
		{name: "administrator can manage site", userID: 1, permissions: []string{rbac.PermissionManageSite}, wantStatus: http.StatusOK},
		{name: "shop manager can manage orders", userID: 2, permissions: []string{rbac.PermissionManageOrders, rbac.PermissionManageSite}, wantStatus: http.StatusOK},
		{name: "shop manager cannot manage site", userID: 2, permissions: []string{rbac.PermissionManageSite}, wantStatus: http.StatusForbidden},
		{name: "customer is forbidden", userID: 3, permissions: []string{rbac.PermissionManageOrders}, wantStatus: http.StatusForbidden},
		{name: "unknown user is forbidden", userID: 99, permissions: []string{rbac.PermissionManageOrders}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := protectedRouter(users, tt.permissions...)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, authedRequest(t, tt.userID))
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireAnyPermissionLookupFailure(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{err: errors.New("db down")}
	r := protectedRouter(users, rbac.PermissionManageOrders)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, 1))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
