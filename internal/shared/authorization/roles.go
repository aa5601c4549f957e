package authorization

// UserRole is the access level stored on a user row. Wire values match the
// users.role enum. A role never changes after the account is created.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleStaff UserRole = "staff"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsStaff() bool {
	return r == RoleStaff
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleUser
}

// ParseUserRole maps a stored string to a UserRole, defaulting unknown
// values to the least-privileged role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
