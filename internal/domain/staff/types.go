package staff

type Role string

const (
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
	RoleHousekeeping Role = "housekeeping"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleReceptionist, RoleHousekeeping:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
