// Package authz concentra a checagem de capacidade multi-tenant.
// Toda operação de núcleo valida o chamador aqui, sem depender da
// ordem de middlewares HTTP.
package authz

const RoleAdmin = "admin"

type Caller struct {
	UserID   string
	TenantID string
	Role     string
}

// CanActOnTenant responde se o chamador pode operar sobre o tenant.
// Admins atravessam tenants; os demais só atuam no próprio.
func CanActOnTenant(caller Caller, tenantID string) bool {
	if tenantID == "" {
		return false
	}
	if caller.Role == RoleAdmin {
		return true
	}
	return caller.TenantID == tenantID
}
