package authz

import "strings"

// Role is the closed set of principal roles carried in token claims.
type Role int

const (
	RoleGuest Role = iota
	RoleOwner
	RoleTherapist
)

// roleWireNames maps roles to their claim string form.
var roleWireNames = map[Role]string{
	RoleGuest:     "Guest",
	RoleOwner:     "Owner",
	RoleTherapist: "Therapist",
}

func (r Role) String() string {
	if name, ok := roleWireNames[r]; ok {
		return name
	}
	return "Guest"
}

// ParseRole maps a claim string to a Role. Anything unrecognized is a
// Guest, which never passes an ownership check.
func ParseRole(s string) Role {
	for role, name := range roleWireNames {
		if strings.EqualFold(s, name) {
			return role
		}
	}
	return RoleGuest
}
