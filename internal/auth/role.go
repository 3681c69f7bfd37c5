package auth

import (
	"fmt"
	"strings"
)

// Role is the closed set of roles a credential record can carry. A verified
// password with an unrecognized role still refuses the session.
type Role int

const (
	RoleClient Role = iota
	RoleHerbalist
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "Client"
	case RoleHerbalist:
		return "Herbalist"
	case RoleAdmin:
		return "Admin"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// ParseRole maps a stored role name, case-insensitively, onto the enum.
func ParseRole(name string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "client":
		return RoleClient, nil
	case "herbalist":
		return RoleHerbalist, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("unrecognized role %q", name)
	}
}
