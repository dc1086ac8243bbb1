package user

// Role is the actor role attached to every authenticated request. Identity
// itself lives in an external service; this engine only consumes the role
// for its mutation guardrails.
type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

// Privileged roles may force booking status transitions, set pricing fields
// and delete confirmed bookings.
func (r Role) Privileged() bool {
	return r == RoleStaff || r == RoleAdmin
}
