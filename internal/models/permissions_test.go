package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePermissionsAreAdditive(t *testing.T) {
	// Every permission a client holds, an admin holds; every permission an
	// admin holds, a super admin holds.
	for _, perm := range RoleClient.Permissions() {
		assert.True(t, RoleAdmin.Can(perm), string(perm))
	}
	for _, perm := range RoleAdmin.Permissions() {
		assert.True(t, RoleSuperAdmin.Can(perm), string(perm))
	}
}

func TestRoleCan(t *testing.T) {
	assert.True(t, RoleClient.Can(PermViewOwnAccounts))
	assert.False(t, RoleClient.Can(PermBlockAccounts))

	assert.True(t, RoleAdmin.Can(PermBlockAccounts))
	assert.True(t, RoleAdmin.Can(PermUnblockAccounts))
	assert.False(t, RoleAdmin.Can(PermManageAdmins))
	assert.False(t, RoleAdmin.Can(PermSystemSettings))

	assert.True(t, RoleSuperAdmin.Can(PermManageAdmins))
	assert.True(t, RoleSuperAdmin.Can(PermSystemSettings))
}

func TestUnknownRoleHasNoPermissions(t *testing.T) {
	assert.False(t, Role("invite").Can(PermViewOwnAccounts))
	assert.Empty(t, Role("invite").Permissions())
}
