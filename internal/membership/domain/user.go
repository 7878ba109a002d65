package domain

import "time"

type Role string

// Role values are exchanged with clients verbatim.
const (
	RoleGuest  Role = "guest"
	RoleMember Role = "member"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleMember, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// CanOperateDesk reports whether the role may validate and activate
// registrations.
func (r Role) CanOperateDesk() bool {
	return r == RoleStaff || r == RoleAdmin
}

type User struct {
	ID           string
	Username     string
	PasswordHash string // argon2id, PHC encoded
	Role         Role
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
