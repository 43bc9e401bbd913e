package authorization

import "fmt"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleClientUser Role = "client_user"
	RoleAuditor    Role = "auditor"
)

// AllRoles lists every recognized role in declaration order.
var AllRoles = []Role{RoleAdmin, RoleTechnician, RoleClientUser, RoleAuditor}

var validRoles = map[Role]bool{
	RoleAdmin:      true,
	RoleTechnician: true,
	RoleClientUser: true,
	RoleAuditor:    true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsTechnician() bool {
	return r == RoleTechnician
}

// IsClientScoped reports whether the role must carry a client affiliation
// and only sees rows belonging to that client.
func (r Role) IsClientScoped() bool {
	return r == RoleClientUser || r == RoleAuditor
}

// IsReadOnly reports whether the role is barred from every mutation.
func (r Role) IsReadOnly() bool {
	return r == RoleAuditor
}

// ParseRole converts a string to a Role. An unrecognized value is a
// configuration error, not a recoverable user condition.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("unrecognized role: %q", s)
	}
	return role, nil
}
