package types

type UserRole string

const (
	RoleSuperAdmin    UserRole = "SUPER_ADMIN"
	RoleAdmin         UserRole = "ADMIN"
	RoleRegionalAdmin UserRole = "REGIONAL_ADMIN"
	RoleRegionalUser  UserRole = "REGIONAL_USER"
	RoleZoneAdmin     UserRole = "ZONE_ADMIN"
	RoleZoneUser      UserRole = "ZONE_USER"
)

// AdminRoles lists the roles allowed to manage users.
var AdminRoles = []UserRole{RoleSuperAdmin, RoleAdmin, RoleRegionalAdmin, RoleZoneAdmin}

type User struct {
	UserId            string   `json:"userId"`
	Email             string   `json:"email"`
	Username          string   `json:"username"`
	FullName          string   `json:"fullName"`
	Role              UserRole `json:"role"`
	IsActive          bool     `json:"isActive"`
	MustResetPassword bool     `json:"mustResetPassword"`
	CreatedAt         string   `json:"createdAt"`
	LastLoginAt       string   `json:"lastLoginAt,omitempty"`
	RegionAccess      []string `json:"regionAccess"`
}
