package models

type Permission string

const (
	PermViewOwnAccounts     Permission = "view-own-accounts"
	PermViewOwnTransactions Permission = "view-own-transactions"
	PermCreateTransaction   Permission = "create-transaction"
	PermViewAllAccounts     Permission = "view-all-accounts"
	PermViewAllTransactions Permission = "view-all-transactions"
	PermBlockAccounts       Permission = "block-accounts"
	PermUnblockAccounts     Permission = "unblock-accounts"
	PermManageClients       Permission = "manage-clients"
	PermManageAdmins        Permission = "manage-admins"
	PermSystemSettings      Permission = "system-settings"
)

// rolePermissions is the single authorization table. The hierarchy is strictly
// additive: client < admin < super_admin.
var rolePermissions = map[Role][]Permission{
	RoleClient: {
		PermViewOwnAccounts,
		PermViewOwnTransactions,
		PermCreateTransaction,
	},
	RoleAdmin: {
		PermViewOwnAccounts,
		PermViewOwnTransactions,
		PermCreateTransaction,
		PermViewAllAccounts,
		PermViewAllTransactions,
		PermBlockAccounts,
		PermUnblockAccounts,
		PermManageClients,
	},
	RoleSuperAdmin: {
		PermViewOwnAccounts,
		PermViewOwnTransactions,
		PermCreateTransaction,
		PermViewAllAccounts,
		PermViewAllTransactions,
		PermBlockAccounts,
		PermUnblockAccounts,
		PermManageClients,
		PermManageAdmins,
		PermSystemSettings,
	},
}

// Can reports whether the role carries the given permission.
func (r Role) Can(perm Permission) bool {
	for _, p := range rolePermissions[r] {
		if p == perm {
			return true
		}
	}
	return false
}

// Permissions returns the scopes granted to the role, in declaration order.
func (r Role) Permissions() []Permission {
	perms := rolePermissions[r]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}
