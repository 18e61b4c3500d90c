package model

const (
	RoleAdmin     = "ADMIN"
	RoleOrganizer = "ORGANIZER"
	RoleMember    = "MEMBER"
)

type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // ADMIN, ORGANIZER, or MEMBER
	JTI      string `json:"jti"`
}

// IsAdmin checks if the scope has admin role
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsOrganizer checks if the scope has organizer role
func (s Scope) IsOrganizer() bool {
	return s.Role == RoleOrganizer
}
