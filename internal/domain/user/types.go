package user

// Role distinguishes a plain client from a user who has upgraded to an
// expert profile. There is no finer-grained hierarchy.
type Role string

const (
	RoleClient Role = "client"
	RoleExpert Role = "expert"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleExpert:
		return true
	default:
		return false
	}
}

func (r Role) IsExpert() bool {
	return r == RoleExpert
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
