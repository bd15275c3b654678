package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gesbanque-backend/internal/middleware"
	"gesbanque-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func routerWithRole(role models.Role, perm models.Permission) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected",
		func(c *gin.Context) {
			c.Set("user", models.User{ID: "u-1", Role: role})
		},
		middleware.RequirePermission(perm),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	return router
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name           string
		role           models.Role
		perm           models.Permission
		expectedStatus int
	}{
		{"client denied block", models.RoleClient, models.PermBlockAccounts, http.StatusForbidden},
		{"admin allowed block", models.RoleAdmin, models.PermBlockAccounts, http.StatusOK},
		{"admin denied manage admins", models.RoleAdmin, models.PermManageAdmins, http.StatusForbidden},
		{"super admin allowed everything", models.RoleSuperAdmin, models.PermSystemSettings, http.StatusOK},
		{"client allowed own accounts", models.RoleClient, models.PermViewOwnAccounts, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := routerWithRole(tt.role, tt.perm)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequirePermissionWithoutUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", middleware.RequirePermission(models.PermBlockAccounts), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
