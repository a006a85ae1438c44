package booking

type Role string

const (
	RoleClient        Role = "CLIENT"
	RoleProfessional  Role = "PROFESSIONAL"
	RoleReceptionist  Role = "RECEPTIONIST"
	RoleAdministrator Role = "ADMINISTRATOR"
)

func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleClient, RoleProfessional, RoleReceptionist, RoleAdministrator:
		return r, true
	}
	return "", false
}

// IsFrontDesk reports roles allowed to act on any booking.
func (r Role) IsFrontDesk() bool {
	return r == RoleReceptionist || r == RoleAdministrator
}
