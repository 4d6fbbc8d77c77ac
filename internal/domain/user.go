package domain

// UserRole is the access level carried in the access token. Phase
// transitions and winner designation are reserved for admins; everything
// else is open to any authenticated user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// IsAdmin reports whether the role grants administrative access.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
