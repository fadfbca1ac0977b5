package constant

type ContextKey string

const (
	SessionKey   ContextKey = "session"
	RequestIDKey ContextKey = "request_id"
)

// Cookies shared with the marketplace front-end middleware.
const (
	CookieToken     = "afribrok-token"
	CookieTenant    = "afribrok-tenant"
	CookieTenantID  = "afribrok-tenant-id"
	CookieRole      = "afribrok-role"
	CookieSessionID = "afribrok-session"
)

const (
	HeaderTenant    = "X-Tenant"
	HeaderTenantID  = "x-tenant-id"
	HeaderRequestID = "X-Request-ID"
)

const AuthUserKeyPrefix = "afribrok-auth-user:"

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleBroker     Role = "BROKER"
	RoleBuyer      Role = "BUYER"
)

// IsAdmin reports whether the role may open the admin console.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// TenantScoped is false only for SUPER_ADMIN, which sees every tenant.
func (r Role) TenantScoped() bool {
	return r != RoleSuperAdmin
}
