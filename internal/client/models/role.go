package models

// Role selects which dashboard content a user sees.
type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
	RoleAdmin   Role = "admin"
)

var roleLabels = map[Role]string{
	RoleStudent: "Student",
	RoleMentor:  "Mentor",
	RoleAdmin:   "Admin",
}

// Roles lists the selectable roles in display order.
func Roles() []Role {
	return []Role{RoleStudent, RoleMentor, RoleAdmin}
}

// Valid reports whether r is one of the fixed roles.
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the display label, or the raw value for unknown roles.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}
